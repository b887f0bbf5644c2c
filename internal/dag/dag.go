// Package dag orders work orders by dependency precedence using Kahn's
// algorithm, with explicit cycle and missing-parent detection.
package dag

import "github.com/shopfloor/reflow/internal/domain"

// TopoSort returns the work order ids in an order where every parent
// precedes its children. Tie-breaking among ready nodes follows the
// insertion order of orders, making the result deterministic for a given
// input.
func TopoSort(orders []*domain.WorkOrder) ([]string, error) {
	indexOf := make(map[string]int, len(orders))
	for i, o := range orders {
		indexOf[o.DocID] = i
	}

	indegree := make(map[string]int, len(orders))
	children := make(map[string][]string, len(orders))
	for _, o := range orders {
		indegree[o.DocID] = 0
	}
	for _, o := range orders {
		for _, parentID := range o.DependsOnWorkOrderIDs {
			if _, ok := indexOf[parentID]; !ok {
				return nil, domain.NewScheduleError(
					domain.ErrUnknownDependency,
					o.DocID,
					"depends on an id not present in the input set: "+parentID,
				)
			}
			children[parentID] = append(children[parentID], o.DocID)
			indegree[o.DocID]++
		}
	}

	queue := make([]string, 0, len(orders))
	for _, o := range orders {
		if indegree[o.DocID] == 0 {
			queue = append(queue, o.DocID)
		}
	}

	order := make([]string, 0, len(orders))
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		order = append(order, current)

		for _, childID := range children[current] {
			indegree[childID]--
			if indegree[childID] == 0 {
				queue = append(queue, childID)
			}
		}
	}

	if len(order) != len(orders) {
		return nil, domain.NewScheduleError(
			domain.ErrCyclicDependency,
			"",
			"dependency graph cannot be fully drained by topological sort",
		)
	}

	return order, nil
}
