package model

// Unit adalah satu input penjadwalan independen untuk solver:
// satu unit per component, bukan satu per subject.
type Unit struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Hours       int    `json:"hours"`
	Batches     int    `json:"batches"`
	LabDuration int    `json:"labDuration"`
}

// SubjectComponents adalah proyeksi subject yang dibawa oleh unit.
type SubjectComponents struct {
	Code       string
	Name       string
	Components []Component
}

// Flatten menghasilkan tepat len(components) unit dengan urutan component terjaga.
func Flatten(code, name string, components []Component) []Unit {
	out := make([]Unit, 0, len(components))
	for _, c := range components {
		c = c.WithDefaults()
		out = append(out, Unit{
			Code:        code,
			Name:        name,
			Type:        c.Type,
			Hours:       c.Hours,
			Batches:     c.Batches,
			LabDuration: c.LabDuration,
		})
	}
	return out
}

func (s SubjectModel) Flatten() []Unit {
	return Flatten(s.Code, s.Name, s.Components)
}

// FlattenAll meratakan beberapa subject, urutan subject lalu urutan component.
func FlattenAll(subjects []SubjectModel) []Unit {
	out := make([]Unit, 0, len(subjects)*2)
	for _, s := range subjects {
		out = append(out, s.Flatten()...)
	}
	return out
}

// Group adalah invers Flatten: unit dikelompokkan per code sesuai urutan
// kemunculan pertama, component mengikuti urutan unit.
func Group(units []Unit) []SubjectComponents {
	out := make([]SubjectComponents, 0)
	idx := make(map[string]int)
	for _, u := range units {
		i, ok := idx[u.Code]
		if !ok {
			i = len(out)
			idx[u.Code] = i
			out = append(out, SubjectComponents{Code: u.Code, Name: u.Name, Components: []Component{}})
		}
		out[i].Components = append(out[i].Components, Component{
			Type:        u.Type,
			Hours:       u.Hours,
			Batches:     u.Batches,
			LabDuration: u.LabDuration,
		})
	}
	return out
}

// HoursByType menjumlah jam per tipe component.
func HoursByType(units []Unit) map[string]int {
	out := make(map[string]int)
	for _, u := range units {
		out[u.Type] += u.Hours
	}
	return out
}
