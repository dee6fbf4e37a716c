package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cs101() SubjectModel {
	return SubjectModel{
		Code:       "CS101",
		Name:       "Programming Fundamentals",
		Year:       "1st",
		Semester:   1,
		Department: "Computer Engineering",
		Components: []Component{
			{Type: "Theory", Hours: 4},
			{Type: "Lab", Hours: 2, Batches: 2, LabDuration: 2},
		},
	}
}

func TestFlatten_CS101(t *testing.T) {
	units := cs101().Flatten()
	require.Len(t, units, 2)

	assert.Equal(t, Unit{Code: "CS101", Name: "Programming Fundamentals", Type: "Theory", Hours: 4, Batches: 1, LabDuration: 2}, units[0])
	assert.Equal(t, Unit{Code: "CS101", Name: "Programming Fundamentals", Type: "Lab", Hours: 2, Batches: 2, LabDuration: 2}, units[1])
}

func TestFlatten_IsLossless(t *testing.T) {
	subjects := []SubjectModel{
		cs101(),
		{Code: "MA101", Name: "Maths", Components: []Component{{Type: "Theory", Hours: 3}, {Type: "Tutorial", Hours: 1}}},
		{Code: "EL201", Name: "Electronics", Components: []Component{
			{Type: "Theory", Hours: 3},
			{Type: "Lab", Hours: 4, Batches: 3, LabDuration: 2},
			{Type: "Tutorial", Hours: 1, Batches: 2},
		}},
	}

	want := map[string]int{}
	n := 0
	for _, s := range subjects {
		for _, c := range s.Components {
			want[c.Type] += c.Hours
			n++
		}
	}

	units := FlattenAll(subjects)
	assert.Len(t, units, n)
	assert.Equal(t, want, HoursByType(units))
}

func TestGroup_InvertsFlatten(t *testing.T) {
	a := cs101()
	b := SubjectModel{Code: "MA101", Name: "Maths", Components: []Component{
		{Type: "Theory", Hours: 3, Batches: 1, LabDuration: 2},
	}}
	groups := Group(FlattenAll([]SubjectModel{a, b}))
	require.Len(t, groups, 2)

	assert.Equal(t, "CS101", groups[0].Code)
	assert.Equal(t, "MA101", groups[1].Code)

	wantA := make([]Component, 0, len(a.Components))
	for _, c := range a.Components {
		wantA = append(wantA, c.WithDefaults())
	}
	assert.Equal(t, wantA, groups[0].Components)
	assert.Equal(t, []Component(b.Components), groups[1].Components)
}

func TestComponent_Validate(t *testing.T) {
	tests := []struct {
		name    string
		c       Component
		wantErr bool
	}{
		{"theory", Component{Type: "Theory", Hours: 3}.WithDefaults(), false},
		{"lab", Component{Type: "Lab", Hours: 2, Batches: 2, LabDuration: 2}, false},
		{"unknown type", Component{Type: "Seminar", Hours: 2, Batches: 1}, true},
		{"zero hours", Component{Type: "Theory", Hours: 0, Batches: 1}, true},
		{"one hour lab with default duration", Component{Type: "Lab", Hours: 1}.WithDefaults(), false},
		{"lab block longer than weekly hours", Component{Type: "Lab", Hours: 2, Batches: 1, LabDuration: 3}, false},
		{"lab without duration", Component{Type: "Lab", Hours: 2, Batches: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "CS101", NormalizeCode("  cs101 "))
}
