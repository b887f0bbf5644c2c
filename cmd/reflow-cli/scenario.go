package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/shopfloor/reflow/internal/domain"
)

// scenarioFile is the on-disk shape of a demo scenario: a work center
// list and a work order list, loaded as either JSON or YAML depending
// on the file extension.
type scenarioFile struct {
	WorkCenters []*domain.WorkCenter `json:"workCenters" yaml:"workCenters"`
	WorkOrders  []*domain.WorkOrder  `json:"workOrders" yaml:"workOrders"`
}

// loadScenario reads a scenario file, fills in any missing ids with
// generated uuids (so hand-authored fixtures don't need to invent their
// own identifiers), and applies defaultShifts to any work center that
// declares no shifts of its own.
func loadScenario(path string, defaultShifts []domain.Shift) (*domain.ReflowInput, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading scenario file %s: %w", path, err)
	}

	var sf scenarioFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &sf); err != nil {
			return nil, nil, fmt.Errorf("parsing YAML scenario %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &sf); err != nil {
			return nil, nil, fmt.Errorf("parsing JSON scenario %s: %w", path, err)
		}
	}

	for _, wc := range sf.WorkCenters {
		if wc.DocID == "" {
			wc.DocID = uuid.NewString()
		}
		if len(wc.Shifts) == 0 {
			wc.Shifts = append([]domain.Shift(nil), defaultShifts...)
		}
	}
	for _, wo := range sf.WorkOrders {
		if wo.DocID == "" {
			wo.DocID = uuid.NewString()
		}
		if wo.WorkOrderNumber == "" {
			wo.WorkOrderNumber = wo.DocID
		}
	}

	return &domain.ReflowInput{
		WorkCenters: sf.WorkCenters,
		WorkOrders:  sf.WorkOrders,
	}, data, nil
}
