package domain

import (
	"encoding/json"
	"fmt"
)

// DocTypeWorkCenter is the fixed docType value a work center document
// carries on the wire, per the input format's docId/docType/data envelope.
const DocTypeWorkCenter = "workCenter"

// WorkCenter is a resource with a recurring weekly shift calendar and a
// set of fixed maintenance blackouts. Capacity is exactly one work order
// at a time; that invariant is enforced by the reflow driver, not by this
// type.
//
// Invariant: maintenance windows on the same center are pairwise
// non-overlapping. This is assumed of valid input and is not
// re-validated here.
type WorkCenter struct {
	DocID              string     `yaml:"docId"`
	Name               string     `yaml:"name"`
	Shifts             []Shift    `yaml:"shifts"`
	MaintenanceWindows []Interval `yaml:"maintenanceWindows,omitempty"`
}

// workCenterEnvelope mirrors the wire document shape: {docId, docType,
// data:{name, shifts, maintenanceWindows}}.
type workCenterEnvelope struct {
	DocID   string `json:"docId"`
	DocType string `json:"docType,omitempty"`
	Data    struct {
		Name               string     `json:"name"`
		Shifts             []Shift    `json:"shifts"`
		MaintenanceWindows []Interval `json:"maintenanceWindows,omitempty"`
	} `json:"data"`
}

// UnmarshalJSON accepts the documented docId/docType/data envelope and
// projects it into the flat in-memory shape the engine works with.
func (wc *WorkCenter) UnmarshalJSON(b []byte) error {
	var env workCenterEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	if env.DocType != "" && env.DocType != DocTypeWorkCenter {
		return fmt.Errorf("work center %s: docType %q, want %q", env.DocID, env.DocType, DocTypeWorkCenter)
	}
	wc.DocID = env.DocID
	wc.Name = env.Data.Name
	wc.Shifts = env.Data.Shifts
	wc.MaintenanceWindows = env.Data.MaintenanceWindows
	return nil
}

// MarshalJSON re-wraps the flat shape back into the docId/docType/data
// envelope, so a value round-trips through JSON unchanged.
func (wc WorkCenter) MarshalJSON() ([]byte, error) {
	var env workCenterEnvelope
	env.DocID = wc.DocID
	env.DocType = DocTypeWorkCenter
	env.Data.Name = wc.Name
	env.Data.Shifts = wc.Shifts
	env.Data.MaintenanceWindows = wc.MaintenanceWindows
	return json.Marshal(env)
}

// Clone returns a deep copy. Work centers are read-only inputs to reflow,
// but callers (tests, the CLI) that mutate a scenario between runs need
// an independent copy.
func (wc *WorkCenter) Clone() *WorkCenter {
	clone := &WorkCenter{
		DocID: wc.DocID,
		Name:  wc.Name,
	}
	clone.Shifts = append(clone.Shifts, wc.Shifts...)
	clone.MaintenanceWindows = append(clone.MaintenanceWindows, wc.MaintenanceWindows...)
	return clone
}
