package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/shopfloor/reflow/internal/domain"
)

func order(id string, deps ...string) *domain.WorkOrder {
	return &domain.WorkOrder{DocID: id, DependsOnWorkOrderIDs: deps}
}

func TestTopoSortOrdersParentsBeforeChildren(t *testing.T) {
	orders := []*domain.WorkOrder{
		order("C", "B"),
		order("A"),
		order("B", "A"),
	}

	result, err := TopoSort(orders)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, result)
}

func TestTopoSortIsDeterministicOnTies(t *testing.T) {
	orders := []*domain.WorkOrder{
		order("B"),
		order("A"),
		order("C"),
	}

	result, err := TopoSort(orders)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, result, "zero-indegree nodes emit in input insertion order")
}

func TestTopoSortDetectsUnknownDependency(t *testing.T) {
	orders := []*domain.WorkOrder{
		order("B", "X"),
	}

	_, err := TopoSort(orders)
	require.Error(t, err)

	var scheduleErr *domain.ScheduleError
	require.ErrorAs(t, err, &scheduleErr)
	assert.Equal(t, domain.ErrUnknownDependency, scheduleErr.Kind)
}

func TestTopoSortDetectsCycle(t *testing.T) {
	orders := []*domain.WorkOrder{
		order("A", "B"),
		order("B", "A"),
	}

	_, err := TopoSort(orders)
	require.Error(t, err)

	var scheduleErr *domain.ScheduleError
	require.ErrorAs(t, err, &scheduleErr)
	assert.Equal(t, domain.ErrCyclicDependency, scheduleErr.Kind)
}
