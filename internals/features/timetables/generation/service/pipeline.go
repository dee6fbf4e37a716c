package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	roomModel "timetable_backend/internals/features/academics/rooms/model"
	subjectModel "timetable_backend/internals/features/academics/subjects/model"
	"timetable_backend/internals/features/timetables/generation/dto"
	"timetable_backend/internals/features/timetables/generation/model"
	timetableModel "timetable_backend/internals/features/timetables/timetable/model"
	accountModel "timetable_backend/internals/features/users/accounts/model"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

type RoomSource interface {
	ForDepartment(ctx context.Context, department string) ([]roomModel.RoomModel, error)
}

type TeacherSource interface {
	ActiveTeachers(ctx context.Context, department string) ([]accountModel.AccountModel, error)
}

type SubjectSource interface {
	ForCodes(ctx context.Context, department, year string, codes []string, semester int) ([]subjectModel.SubjectModel, error)
}

type TimetableSource interface {
	Recent(ctx context.Context, department string) ([]timetableModel.TimetableModel, error)
}

type Solver interface {
	Generate(ctx context.Context, payload model.SchedulingPayload) ([]byte, error)
}

// Pipeline merakit payload solver dari store milik satu department lalu memanggil solver.
// Tidak ada penulisan ke store timetable selama generate.
type Pipeline struct {
	Rooms      RoomSource
	Teachers   TeacherSource
	Subjects   SubjectSource
	Timetables TimetableSource
	Solver     Solver
}

// Assembly adalah payload siap kirim plus catatan dari proses perakitan.
type Assembly struct {
	Department   string
	Payload      model.SchedulingPayload
	MissingCodes map[string][]string // year -> code yang tidak ditemukan
}

// Build menjalankan langkah validasi dan perakitan secara berurutan.
// Error pertama menghentikan proses; solver belum disentuh.
func (p *Pipeline) Build(ctx context.Context, principal helperAuth.Principal, req dto.GenerateRequest) (*Assembly, error) {
	if err := helperAuth.BlockSuperadminGeneration(principal); err != nil {
		return nil, err
	}
	if err := helper.ValidateStruct("generate", &req); err != nil {
		return nil, err
	}
	dept, err := helperAuth.OperatingDepartment(principal, "")
	if err != nil {
		return nil, err
	}

	// rooms
	rooms, err := p.Rooms.ForDepartment(ctx, dept)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, helper.ValidationError(helper.CodeNoRoomsConfigured, "rooms",
			"no rooms configured for department").WithMeta("department", dept)
	}

	// teachers: inline lebih dulu, fallback ke akun teacher aktif
	teachers := make([]model.TeacherPayload, 0, len(req.Teachers))
	for _, t := range req.Teachers {
		teachers = append(teachers, t.ToPayload(dept))
	}
	if len(teachers) == 0 {
		accs, err := p.Teachers.ActiveTeachers(ctx, dept)
		if err != nil {
			return nil, err
		}
		for _, a := range accs {
			teachers = append(teachers, teacherFromAccount(a, dept))
		}
	}
	if len(teachers) == 0 {
		return nil, helper.ValidationError(helper.CodeNoTeachersConfigured, "teachers",
			"no teachers configured for department").WithMeta("department", dept)
	}

	// subjects per tahun, diratakan menjadi unit
	asm := &Assembly{Department: dept, MissingCodes: map[string][]string{}}
	yearPayloads := make(map[string]model.YearPayload, len(req.Years))
	for _, name := range sortedYears(req.Years) {
		yr := req.Years[name]
		codes := yr.Codes()
		found, err := p.Subjects.ForCodes(ctx, dept, name, codes, yr.Semester)
		if err != nil {
			return nil, err
		}
		subjects := onePerCode(found)
		if len(subjects) == 0 {
			return nil, helper.ValidationError(helper.CodeNoSubjectsConfigured, name,
				fmt.Sprintf("no subjects configured for year %s", name)).
				WithMeta("department", dept).
				WithMeta("year", name)
		}
		if missing := missingCodes(codes, subjects); len(missing) > 0 {
			asm.MissingCodes[name] = missing
		}
		divisions := yr.Divisions
		if divisions == nil {
			divisions = []string{}
		}
		yearPayloads[name] = model.YearPayload{
			Semester:  yr.Semester,
			Divisions: divisions,
			Options:   yr.Options,
			Subjects:  subjectModel.FlattenAll(subjects),
		}
	}

	// konteks regenerasi
	recent, err := p.Timetables.Recent(ctx, dept)
	if err != nil {
		return nil, err
	}

	mappings := req.RoomMappings
	if mappings == nil {
		mappings = map[string]any{}
	}
	asm.Payload = model.SchedulingPayload{
		Years:           yearPayloads,
		Rooms:           roomsPayload(rooms),
		Teachers:        teachers,
		SavedTimetables: savedPayload(recent),
		RoomMappings:    mappings,
	}
	return asm, nil
}

// Generate: Build → solver → Adapt. Kegagalan solver tidak di-retry.
func (p *Pipeline) Generate(ctx context.Context, principal helperAuth.Principal, req dto.GenerateRequest) (*model.Result, error) {
	asm, err := p.Build(ctx, principal, req)
	if err != nil {
		return nil, err
	}
	units := 0
	for _, y := range asm.Payload.Years {
		units += len(y.Subjects)
	}
	log.Printf("[GENERATE] department=%q years=%d units=%d rooms=%d teachers=%d saved=%d by=%s",
		asm.Department, len(asm.Payload.Years), units, len(asm.Payload.Rooms),
		len(asm.Payload.Teachers), len(asm.Payload.SavedTimetables), principal.AccountID)

	raw, err := p.Solver.Generate(ctx, asm.Payload)
	if err != nil {
		return nil, err
	}
	res, err := model.Adapt(raw)
	if err != nil {
		log.Printf("[GENERATE] undecodable scheduler response: %v", err)
		return nil, helper.UpstreamError(helper.CodeSchedulerRejected, "scheduler returned a malformed response")
	}
	for _, year := range sortedKeys(asm.MissingCodes) {
		res.Warnings = append(res.Warnings, fmt.Sprintf("year %s: subject codes not found in department: %s",
			year, strings.Join(asm.MissingCodes[year], ", ")))
	}
	return &res, nil
}

func teacherFromAccount(a accountModel.AccountModel, department string) model.TeacherPayload {
	subs := make([]model.TeacherSubject, 0, len(a.Subjects))
	for _, q := range a.Subjects {
		subs = append(subs, model.TeacherSubject{Code: subjectModel.NormalizeCode(q.Code), Name: q.Name})
	}
	return model.TeacherPayload{
		ID:         a.ID.String(),
		Name:       a.Name,
		Email:      a.Email,
		Department: department,
		Subjects:   subs,
	}
}

func roomsPayload(rooms []roomModel.RoomModel) []model.RoomPayload {
	out := make([]model.RoomPayload, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, model.RoomPayload{
			ID:          r.ID.String(),
			Name:        r.Name,
			Type:        r.Type,
			Capacity:    r.Capacity,
			LabCategory: r.LabCategory,
			PrimaryYear: r.PrimaryYear,
		})
	}
	return out
}

func savedPayload(list []timetableModel.TimetableModel) []model.SavedTimetable {
	out := make([]model.SavedTimetable, 0, len(list))
	for _, t := range list {
		out = append(out, model.SavedTimetable{
			Year:          t.Year,
			Division:      t.Division,
			TimetableData: t.TimetableData,
			TimeConfig:    t.TimeConfig,
			CreatedAt:     t.CreatedAt,
		})
	}
	return out
}

// onePerCode: tanpa filter semester satu code bisa muncul di beberapa semester.
// Yang dipakai semester terkecil, supaya unit tidak terkirim dua kali ke solver.
func onePerCode(found []subjectModel.SubjectModel) []subjectModel.SubjectModel {
	sorted := append([]subjectModel.SubjectModel(nil), found...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Code != sorted[j].Code {
			return sorted[i].Code < sorted[j].Code
		}
		return sorted[i].Semester < sorted[j].Semester
	})
	out := make([]subjectModel.SubjectModel, 0, len(sorted))
	for _, s := range sorted {
		if len(out) > 0 && out[len(out)-1].Code == s.Code {
			continue
		}
		out = append(out, s)
	}
	return out
}

func missingCodes(codes []string, found []subjectModel.SubjectModel) []string {
	have := make(map[string]bool, len(found))
	for _, s := range found {
		have[s.Code] = true
	}
	var out []string
	for _, c := range codes {
		if !have[c] {
			out = append(out, c)
		}
	}
	return out
}

func sortedYears(m map[string]dto.YearRequest) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
