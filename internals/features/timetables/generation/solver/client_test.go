package solver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable_backend/internals/features/timetables/generation/model"
	helper "timetable_backend/internals/helpers"
)

func samplePayload() model.SchedulingPayload {
	return model.SchedulingPayload{
		Years:           map[string]model.YearPayload{"1st": {Divisions: []string{"A"}}},
		Rooms:           []model.RoomPayload{{Name: "B101", Type: "Classroom", Capacity: 60}},
		Teachers:        []model.TeacherPayload{{Name: "Dr. Rao"}},
		SavedTimetables: []model.SavedTimetable{},
		RoomMappings:    map[string]any{},
	}
}

func TestClient_Generate_OK(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL + "/")
	body, err := c.Generate(context.Background(), samplePayload())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success"}`, string(body))

	for _, key := range []string{"years", "rooms", "teachers", "saved_timetables", "roomMappings"} {
		assert.Contains(t, got, key)
	}
}

func TestClient_Generate_NonSuccessIsRejected(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`solver exploded`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Generate(context.Background(), samplePayload())
	require.Error(t, err)
	ae, ok := helper.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, helper.KindUpstream, ae.Kind)
	assert.Equal(t, helper.CodeSchedulerRejected, ae.Code)
	assert.Contains(t, ae.Detail, "500")
	assert.Contains(t, ae.Detail, "solver exploded")
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "no retry")
}

func TestClient_Generate_TimeoutIsUnavailable(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	start := time.Now()
	_, err := NewClient(server.URL, WithTimeout(100*time.Millisecond)).Generate(context.Background(), samplePayload())
	require.Error(t, err)
	assert.True(t, helper.IsCode(err, helper.CodeSchedulerUnavailable))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestClient_Generate_UnreachableIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url).Generate(context.Background(), samplePayload())
	require.Error(t, err)
	assert.True(t, helper.IsCode(err, helper.CodeSchedulerUnavailable))
	ae, _ := helper.AsAppError(err)
	assert.Equal(t, 504, ae.Status())
}

func TestWithTimeout_FallsBackToDefault(t *testing.T) {
	c := NewClient("http://example.invalid", WithTimeout(0))
	assert.Equal(t, DefaultTimeout, c.client.Timeout)
	assert.Equal(t, "http://example.invalid", c.BaseURL())
}
