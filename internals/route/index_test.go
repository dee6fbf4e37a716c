package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable_backend/internals/constants"
	"timetable_backend/internals/features/timetables/generation/solver"
	accountModel "timetable_backend/internals/features/users/accounts/model"
	helper "timetable_backend/internals/helpers"
)

type testEnv struct {
	app         *fiber.App
	deps        Deps
	solverCalls *int32
}

func newTestEnv(t *testing.T, solverBody string) *testEnv {
	t.Helper()
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(solverBody))
	}))
	t.Cleanup(server.Close)

	deps := NewMemoryDeps("route-test-secret")
	deps.Solver = solver.NewClient(server.URL)
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	SetupRoutes(app, deps)
	return &testEnv{app: app, deps: deps, solverCalls: &calls}
}

func (e *testEnv) seed(t *testing.T, email, role, dept string) {
	t.Helper()
	acc := &accountModel.AccountModel{Name: email, Email: email, Role: role, IsActive: true}
	if dept != "" {
		acc.Department = &dept
	}
	if role == constants.RoleStudent {
		div := "A"
		acc.Division = &div
	}
	require.NoError(t, acc.SetPassword("password123"))
	require.NoError(t, e.deps.Accounts.Create(context.Background(), acc))
}

func (e *testEnv) call(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func (e *testEnv) login(t *testing.T, path, email string) string {
	t.Helper()
	status, body := e.call(t, http.MethodPost, path, "", fiber.Map{"email": email, "password": "password123"})
	require.Equal(t, http.StatusOK, status, body)
	data := body["data"].(map[string]any)
	return data["access_token"].(string)
}

func errorCode(body map[string]any) string {
	e, ok := body["error"].(map[string]any)
	if !ok {
		return ""
	}
	code, _ := e["code"].(string)
	return code
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, `{}`)
	status, body := env.call(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "memory", body["database"])
}

func TestAdminRoutes_RequireCredential(t *testing.T) {
	env := newTestEnv(t, `{}`)
	status, body := env.call(t, http.MethodGet, "/api/a/rooms", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, helper.CodeUnauthorizedMissing, errorCode(body))
}

func TestRooms_B101OverHTTP(t *testing.T) {
	env := newTestEnv(t, `{}`)
	env.seed(t, "admin.ce@example.edu", constants.RoleAdmin, "Computer Engineering")
	env.seed(t, "admin.it@example.edu", constants.RoleAdmin, "IT Engineering")
	ceToken := env.login(t, "/api/auth/admin/login", "admin.ce@example.edu")
	itToken := env.login(t, "/api/auth/admin/login", "admin.it@example.edu")

	room := fiber.Map{"name": "B101", "type": "Classroom", "capacity": 60}
	status, body := env.call(t, http.MethodPost, "/api/a/rooms", ceToken, room)
	require.Equal(t, http.StatusCreated, status, body)
	ceRoomID := body["data"].(map[string]any)["id"].(string)

	status, body = env.call(t, http.MethodPost, "/api/a/rooms", ceToken, room)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, helper.CodeDuplicateName, errorCode(body))

	status, _ = env.call(t, http.MethodPost, "/api/a/rooms", itToken, room)
	assert.Equal(t, http.StatusCreated, status)

	// IT admin tidak bisa membaca room CE, dan list-nya hanya berisi room IT
	status, body = env.call(t, http.MethodGet, "/api/a/rooms/"+ceRoomID, itToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, helper.CodeCrossTenantAccess, errorCode(body))

	status, body = env.call(t, http.MethodGet, "/api/a/rooms?department=Computer%20Engineering", itToken, nil)
	require.Equal(t, http.StatusOK, status)
	list := body["data"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "IT Engineering", list[0].(map[string]any)["department"])
}

func TestGenerate_NoRoomsOverHTTP(t *testing.T) {
	env := newTestEnv(t, `{}`)
	env.seed(t, "admin.ce@example.edu", constants.RoleAdmin, "Computer Engineering")
	token := env.login(t, "/api/auth/admin/login", "admin.ce@example.edu")

	status, body := env.call(t, http.MethodPost, "/api/a/timetables/generate", token, fiber.Map{
		"years": fiber.Map{"1st": fiber.Map{"subjects": []string{"CS101"}}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, helper.CodeNoRoomsConfigured, errorCode(body))
	assert.Zero(t, atomic.LoadInt32(env.solverCalls))
}

func TestGenerate_SuperadminForbiddenOverHTTP(t *testing.T) {
	env := newTestEnv(t, `{}`)
	env.seed(t, "root@example.edu", constants.RoleSuperAdmin, "")
	token := env.login(t, "/api/auth/admin/login", "root@example.edu")

	status, body := env.call(t, http.MethodPost, "/api/a/timetables/generate", token, fiber.Map{})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, helper.CodeSuperadminGenerate, errorCode(body))
	assert.Zero(t, atomic.LoadInt32(env.solverCalls))
}

func TestGenerateSaveAndRead_EndToEnd(t *testing.T) {
	env := newTestEnv(t, `{"status":"success","class_timetable":{"1st":{}}}`)
	env.seed(t, "admin.ce@example.edu", constants.RoleAdmin, "Computer Engineering")
	env.seed(t, "rao@example.edu", constants.RoleTeacher, "Computer Engineering")
	env.seed(t, "asha@example.edu", constants.RoleStudent, "Computer Engineering")
	admin := env.login(t, "/api/auth/admin/login", "admin.ce@example.edu")

	status, body := env.call(t, http.MethodPost, "/api/a/rooms", admin, fiber.Map{"name": "B101", "type": "Classroom", "capacity": 60})
	require.Equal(t, http.StatusCreated, status, body)
	status, body = env.call(t, http.MethodPost, "/api/a/subjects", admin, fiber.Map{
		"code": "cs101", "name": "Programming Fundamentals", "year": "1st", "semester": 1,
		"components": []fiber.Map{
			{"type": "Theory", "hours": 4},
			{"type": "Lab", "hours": 2, "batches": 2, "labDuration": 2},
		},
	})
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, "CS101", body["data"].(map[string]any)["code"])

	status, body = env.call(t, http.MethodPost, "/api/a/timetables/generate", admin, fiber.Map{
		"years": fiber.Map{"1st": fiber.Map{"subjects": []string{"CS101"}, "divisions": []string{"A"}}},
	})
	require.Equal(t, http.StatusOK, status, body)
	res := body["data"].(map[string]any)
	assert.Equal(t, "success", res["status"])
	for _, key := range []string{"conflicts", "room_conflicts", "unallocated", "recommendations", "warnings", "critical_issues", "lab_conflicts", "teacher_timetable"} {
		assert.Contains(t, res, key)
	}
	assert.EqualValues(t, 1, atomic.LoadInt32(env.solverCalls))

	// generate tidak menulis timetable
	status, body = env.call(t, http.MethodGet, "/api/a/timetables", admin, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["data"])

	save := fiber.Map{"year": "1st", "division": "A", "timetableData": fiber.Map{"Monday": []string{"CS101"}}}
	status, body = env.call(t, http.MethodPost, "/api/a/timetables/save", admin, save)
	require.Equal(t, http.StatusOK, status, body)
	firstID := body["data"].(map[string]any)["id"]
	status, body = env.call(t, http.MethodPost, "/api/a/timetables/save", admin, save)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, firstID, body["data"].(map[string]any)["id"])

	student := env.login(t, "/api/auth/login", "asha@example.edu")
	status, body = env.call(t, http.MethodGet, "/api/u/timetables", student, nil)
	require.Equal(t, http.StatusOK, status, body)
	require.Len(t, body["data"], 1)

	// token end-user tidak berlaku di group admin
	status, body = env.call(t, http.MethodGet, "/api/a/timetables", student, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, helper.CodeForbiddenRole, errorCode(body))
}

func TestLogout_RevokesToken(t *testing.T) {
	env := newTestEnv(t, `{}`)
	env.seed(t, "rao@example.edu", constants.RoleTeacher, "Computer Engineering")
	token := env.login(t, "/api/auth/login", "rao@example.edu")

	status, _ := env.call(t, http.MethodGet, "/api/auth/u/me", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = env.call(t, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, body := env.call(t, http.MethodGet, "/api/auth/u/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, helper.CodeUnauthorizedRevoked, errorCode(body))
}

func TestLogin_WrongPasswordAndRole(t *testing.T) {
	env := newTestEnv(t, `{}`)
	env.seed(t, "rao@example.edu", constants.RoleTeacher, "Computer Engineering")

	status, body := env.call(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"email": "rao@example.edu", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, helper.CodeInvalidCredentials, errorCode(body))

	status, body = env.call(t, http.MethodPost, "/api/auth/admin/login", "", fiber.Map{"email": "rao@example.edu", "password": "password123"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, helper.CodeForbiddenRole, errorCode(body))
}
