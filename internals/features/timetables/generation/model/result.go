package model

import (
	"log"

	"github.com/bytedance/sonic"
)

// Result adalah bentuk output generate yang stabil. Semua key selalu ada.
type Result struct {
	Status           string         `json:"status"`
	ClassTimetable   map[string]any `json:"class_timetable"`
	TeacherTimetable map[string]any `json:"teacher_timetable"`
	Conflicts        []any          `json:"conflicts"`
	RoomConflicts    []any          `json:"room_conflicts"`
	Unallocated      []any          `json:"unallocated"`
	Recommendations  []any          `json:"recommendations"`
	Warnings         []any          `json:"warnings"`
	CriticalIssues   []any          `json:"critical_issues"`
	LabConflicts     []any          `json:"lab_conflicts"`
}

// Adapt mengubah respons mentah solver menjadi Result.
// Key yang hilang atau null menjadi koleksi kosong; nilai tunggal pada key list dibungkus slice.
func Adapt(raw []byte) (Result, error) {
	doc := map[string]any{}
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &doc); err != nil {
			return Result{}, err
		}
	}
	if doc == nil {
		doc = map[string]any{}
	}

	r := Result{
		ClassTimetable:   asObject(doc, "class_timetable"),
		TeacherTimetable: asObject(doc, "teacher_timetable"),
		Conflicts:        asList(doc, "conflicts"),
		RoomConflicts:    asList(doc, "room_conflicts"),
		Unallocated:      asList(doc, "unallocated"),
		Recommendations:  asList(doc, "recommendations"),
		Warnings:         asList(doc, "warnings"),
		CriticalIssues:   asList(doc, "critical_issues"),
		LabConflicts:     asList(doc, "lab_conflicts"),
	}
	if s, ok := doc["status"].(string); ok {
		r.Status = s
	}
	return r, nil
}

func asObject(doc map[string]any, key string) map[string]any {
	switch v := doc[key].(type) {
	case map[string]any:
		return v
	case nil:
	default:
		log.Printf("[GENERATE] solver field %s is %T, expected object; dropped", key, v)
	}
	return map[string]any{}
}

func asList(doc map[string]any, key string) []any {
	switch v := doc[key].(type) {
	case []any:
		return v
	case nil:
		return []any{}
	default:
		return []any{v}
	}
}
