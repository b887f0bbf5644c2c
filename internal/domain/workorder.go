package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DocTypeWorkOrder is the fixed docType value a work order document
// carries on the wire, per the input format's docId/docType/data envelope.
const DocTypeWorkOrder = "workOrder"

// WorkOrder is a unit of production work tied to a work center, with an
// original placement, a required duration, and optional dependencies on
// other orders (on any center).
type WorkOrder struct {
	DocID                 string    `yaml:"docId"`
	WorkOrderNumber       string    `yaml:"workOrderNumber"`
	ManufacturingOrderID  string    `yaml:"manufacturingOrderId,omitempty"`
	WorkCenterID          string    `yaml:"workCenterId"`
	StartDate             time.Time `yaml:"startDate"`
	EndDate               time.Time `yaml:"endDate"`
	DurationMinutes       int       `yaml:"durationMinutes"`
	SetupTimeMinutes      int       `yaml:"setupTimeMinutes,omitempty"`
	IsMaintenance         bool      `yaml:"isMaintenance,omitempty"`
	DependsOnWorkOrderIDs []string  `yaml:"dependsOnWorkOrderIds,omitempty"`
}

// workOrderEnvelope mirrors the wire document shape: {docId, docType,
// data:{...}}.
type workOrderEnvelope struct {
	DocID   string `json:"docId"`
	DocType string `json:"docType,omitempty"`
	Data    struct {
		WorkOrderNumber       string    `json:"workOrderNumber"`
		ManufacturingOrderID  string    `json:"manufacturingOrderId,omitempty"`
		WorkCenterID          string    `json:"workCenterId"`
		StartDate             time.Time `json:"startDate"`
		EndDate               time.Time `json:"endDate"`
		DurationMinutes       int       `json:"durationMinutes"`
		SetupTimeMinutes      int       `json:"setupTimeMinutes,omitempty"`
		IsMaintenance         bool      `json:"isMaintenance,omitempty"`
		DependsOnWorkOrderIDs []string  `json:"dependsOnWorkOrderIds,omitempty"`
	} `json:"data"`
}

// UnmarshalJSON accepts the documented docId/docType/data envelope and
// projects it into the flat in-memory shape the engine works with.
func (wo *WorkOrder) UnmarshalJSON(b []byte) error {
	var env workOrderEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	if env.DocType != "" && env.DocType != DocTypeWorkOrder {
		return fmt.Errorf("work order %s: docType %q, want %q", env.DocID, env.DocType, DocTypeWorkOrder)
	}
	wo.DocID = env.DocID
	wo.WorkOrderNumber = env.Data.WorkOrderNumber
	wo.ManufacturingOrderID = env.Data.ManufacturingOrderID
	wo.WorkCenterID = env.Data.WorkCenterID
	wo.StartDate = env.Data.StartDate
	wo.EndDate = env.Data.EndDate
	wo.DurationMinutes = env.Data.DurationMinutes
	wo.SetupTimeMinutes = env.Data.SetupTimeMinutes
	wo.IsMaintenance = env.Data.IsMaintenance
	wo.DependsOnWorkOrderIDs = env.Data.DependsOnWorkOrderIDs
	return nil
}

// MarshalJSON re-wraps the flat shape back into the docId/docType/data
// envelope, so a value round-trips through JSON unchanged.
func (wo WorkOrder) MarshalJSON() ([]byte, error) {
	var env workOrderEnvelope
	env.DocID = wo.DocID
	env.DocType = DocTypeWorkOrder
	env.Data.WorkOrderNumber = wo.WorkOrderNumber
	env.Data.ManufacturingOrderID = wo.ManufacturingOrderID
	env.Data.WorkCenterID = wo.WorkCenterID
	env.Data.StartDate = wo.StartDate
	env.Data.EndDate = wo.EndDate
	env.Data.DurationMinutes = wo.DurationMinutes
	env.Data.SetupTimeMinutes = wo.SetupTimeMinutes
	env.Data.IsMaintenance = wo.IsMaintenance
	env.Data.DependsOnWorkOrderIDs = wo.DependsOnWorkOrderIDs
	return json.Marshal(env)
}

// TotalMinutes is the working duration the allocator must place:
// DurationMinutes plus any SetupTimeMinutes.
func (wo *WorkOrder) TotalMinutes() int {
	return wo.DurationMinutes + wo.SetupTimeMinutes
}

// Clone returns a deep copy so the reflow driver can mutate a working set
// without aliasing the caller's input, per the Lifecycle invariant: input
// work orders are deep-copied, the copies are mutated in place and
// returned.
func (wo *WorkOrder) Clone() *WorkOrder {
	clone := *wo
	clone.DependsOnWorkOrderIDs = append([]string(nil), wo.DependsOnWorkOrderIDs...)
	return &clone
}
