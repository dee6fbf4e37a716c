package model

import (
	"fmt"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"

	"timetable_backend/internals/helpers/dbtime"
)

// DefaultTimeConfig dipakai saat timetable baru disimpan tanpa timeConfig lengkap.
func DefaultTimeConfig() map[string]any {
	return map[string]any{
		"startTime":    "09:00",
		"endTime":      "17:00",
		"slotDuration": 60,
		"lunchBreak": map[string]any{
			"start": "13:00",
			"end":   "14:00",
		},
		"workingDays": []any{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
	}
}

// MergeTimeConfig menimpa key level atas dari base dengan patch.
// Nilai nested diganti utuh, tidak di-merge rekursif.
func MergeTimeConfig(base, patch map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// ValidateTimeConfig cek key yang dikenal pada patch timeConfig.
// Key lain dibiarkan lewat apa adanya.
func ValidateTimeConfig(patch map[string]any) (string, error) {
	var start, end *dbtime.Tod
	for _, key := range []string{"startTime", "endTime"} {
		v, ok := patch[key]
		if !ok {
			continue
		}
		s, isStr := v.(string)
		if !isStr {
			return key, fmt.Errorf("%s must be HH:MM", key)
		}
		t, err := dbtime.Parse(s)
		if err != nil {
			return key, fmt.Errorf("%s must be HH:MM", key)
		}
		if key == "startTime" {
			start = &t
		} else {
			end = &t
		}
	}
	if start != nil && end != nil && !start.Before(*end) {
		return "endTime", fmt.Errorf("endTime must be after startTime")
	}

	if v, ok := patch["slotDuration"]; ok {
		n, isNum := v.(float64)
		if i, isInt := v.(int); isInt {
			n, isNum = float64(i), true
		}
		if !isNum || n <= 0 {
			return "slotDuration", fmt.Errorf("slotDuration must be a positive number of minutes")
		}
	}

	if v, ok := patch["lunchBreak"]; ok {
		lb, isObj := v.(map[string]any)
		if !isObj {
			return "lunchBreak", fmt.Errorf("lunchBreak must be an object")
		}
		for _, key := range []string{"start", "end"} {
			if s, isStr := lb[key].(string); isStr {
				if _, err := dbtime.Parse(s); err != nil {
					return "lunchBreak." + key, fmt.Errorf("lunchBreak.%s must be HH:MM", key)
				}
			}
		}
	}
	return "", nil
}

func DecodeObject(raw datatypes.JSON) (map[string]any, error) {
	out := map[string]any{}
	if len(raw) == 0 || string(raw) == "null" {
		return out, nil
	}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func EncodeObject(m map[string]any) (datatypes.JSON, error) {
	if m == nil {
		m = map[string]any{}
	}
	b, err := sonic.Marshal(m)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
