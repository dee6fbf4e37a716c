package model

import (
	"fmt"

	"timetable_backend/internals/constants"
)

const (
	DefaultBatches     = 1
	DefaultLabDuration = 2
)

// Component adalah satu mode pengajaran (Theory | Lab | Tutorial) dari sebuah subject.
// Type adalah diskriminator; aturan field tiap varian ada di Validate.
type Component struct {
	Type        string `json:"type"`
	Hours       int    `json:"hours"`
	Batches     int    `json:"batches"`
	LabDuration int    `json:"labDuration"`
}

// WithDefaults mengisi batches=1 dan labDuration=2 bila kosong.
func (c Component) WithDefaults() Component {
	if c.Batches <= 0 {
		c.Batches = DefaultBatches
	}
	if c.LabDuration <= 0 {
		c.LabDuration = DefaultLabDuration
	}
	return c
}

func (c Component) Validate() error {
	switch c.Type {
	case constants.ComponentTheory, constants.ComponentTutorial, constants.ComponentLab:
	default:
		return fmt.Errorf("unknown component type %q", c.Type)
	}
	if c.Hours <= 0 {
		return fmt.Errorf("%s hours must be positive", c.Type)
	}
	if c.Batches <= 0 {
		return fmt.Errorf("%s batches must be positive", c.Type)
	}
	if c.IsLab() && c.LabDuration <= 0 {
		return fmt.Errorf("lab duration must be positive")
	}
	return nil
}

func (c Component) IsLab() bool { return c.Type == constants.ComponentLab }
