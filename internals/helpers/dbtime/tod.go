package dbtime

import (
	"fmt"
	"strings"
	"time"
)

// Tod: jam dalam sehari (HH:MM), tanpa tanggal & zona.
type Tod struct{ time.Time }

// Parse: terima "HH:MM" atau "HH:MM:SS"
func Parse(s string) (Tod, error) {
	s = strings.TrimSpace(s)
	if len(s) == 5 {
		s += ":00"
	}
	tt, err := time.Parse("15:04:05", s)
	if err != nil {
		return Tod{}, fmt.Errorf("tod: invalid time of day %q", s)
	}
	return Tod{Time: tt}, nil
}

func (t Tod) Minutes() int { return t.Hour()*60 + t.Minute() }

func (t Tod) Before(o Tod) bool { return t.Minutes() < o.Minutes() }

func (t Tod) String() string { return t.Format("15:04") }
