package model

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapt_DefaultsEveryKey(t *testing.T) {
	r, err := Adapt([]byte(`{}`))
	require.NoError(t, err)

	b, err := sonic.Marshal(r)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, sonic.Unmarshal(b, &doc))

	for _, key := range []string{"conflicts", "room_conflicts", "unallocated", "recommendations", "warnings", "critical_issues", "lab_conflicts"} {
		v, ok := doc[key]
		require.True(t, ok, key)
		assert.Equal(t, []any{}, v, key)
	}
	for _, key := range []string{"class_timetable", "teacher_timetable"} {
		v, ok := doc[key]
		require.True(t, ok, key)
		assert.Equal(t, map[string]any{}, v, key)
	}
	assert.Equal(t, "", doc["status"])
}

func TestAdapt_KeepsSolverValues(t *testing.T) {
	raw := `{
		"status": "success",
		"class_timetable": {"1st": {"A": {"Monday": []}}},
		"conflicts": [{"slot": "Mon-1"}],
		"warnings": "one warning",
		"lab_conflicts": null
	}`
	r, err := Adapt([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "success", r.Status)
	assert.Contains(t, r.ClassTimetable, "1st")
	assert.Len(t, r.Conflicts, 1)
	assert.Equal(t, []any{"one warning"}, r.Warnings)
	assert.Equal(t, []any{}, r.LabConflicts)
	assert.Equal(t, map[string]any{}, r.TeacherTimetable)
}

func TestAdapt_EmptyBodyAndGarbage(t *testing.T) {
	r, err := Adapt(nil)
	require.NoError(t, err)
	assert.NotNil(t, r.Unallocated)

	_, err = Adapt([]byte(`not json`))
	assert.Error(t, err)
}
