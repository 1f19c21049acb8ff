package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/logging"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/simulation"
)

func newTestApp(defaults schedulers.Options) *fiber.App {
	logger := logging.Discard()
	service := simulation.NewService(defaults, logger, nil)
	return NewApp(NewSchedulerHandlerImpl(service, logger))
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestHealth(t *testing.T) {
	app := newTestApp(schedulers.Options{})
	status, body := do(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestAlgorithms(t *testing.T) {
	app := newTestApp(schedulers.Options{})
	status, body := do(t, app, http.MethodGet, "/api/v1/algorithms", "")
	require.Equal(t, http.StatusOK, status)

	var got struct {
		Algorithms []struct {
			Id   string `json:"id"`
			Name string `json:"name"`
		} `json:"algorithms"`
		DefaultTimeQuantum int `json:"default_time_quantum"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got.Algorithms, 5)
	assert.Equal(t, "sjf-no-arrival", got.Algorithms[2].Id)
	assert.Equal(t, "SJF without AT", got.Algorithms[2].Name)
	assert.Equal(t, 2, got.DefaultTimeQuantum)
}

func TestAlgorithmRoutes(t *testing.T) {
	app := newTestApp(schedulers.Options{TimeQuantum: 2})
	body := `{"process_count":3,"burst":"5,3,8","arrival":"0,1,2","priority":"2,0,1"}`

	tests := []struct {
		path          string
		wantAlgorithm string
		wantTotal     int
	}{
		{path: "/api/v1/fcfs", wantAlgorithm: "fcfs", wantTotal: 16},
		{path: "/api/v1/sjf", wantAlgorithm: "sjf", wantTotal: 16},
		{path: "/api/v1/sjf-no-arrival", wantAlgorithm: "sjf-no-arrival", wantTotal: 16},
		{path: "/api/v1/priority", wantAlgorithm: "priority", wantTotal: 16},
		{path: "/api/v1/rr", wantAlgorithm: "rr", wantTotal: 16},
	}
	for _, tt := range tests {
		t.Run(tt.wantAlgorithm, func(t *testing.T) {
			status, data := do(t, app, http.MethodPost, tt.path, body)
			require.Equal(t, http.StatusOK, status, string(data))

			var resp responses.ScheduleResponse
			require.NoError(t, json.Unmarshal(data, &resp))
			assert.Equal(t, tt.wantAlgorithm, resp.Algorithm)
			assert.Equal(t, tt.wantTotal, resp.TotalTime)
			assert.Len(t, resp.Details, 3)
			assert.NotEmpty(t, resp.RunId)
		})
	}
}

func TestSchedule_BodyAlgorithm(t *testing.T) {
	app := newTestApp(schedulers.Options{TimeQuantum: 2})
	status, data := do(t, app, http.MethodPost, "/api/v1/schedule",
		`{"algorithm":"Round Robin","process_count":3,"burst":"5,3,8","arrival":"0,1,2","time_quantum":2}`)
	require.Equal(t, http.StatusOK, status, string(data))

	var resp responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.Equal(t, "rr", resp.Algorithm)
	assert.Equal(t, 2, resp.TimeQuantum)
	completions := make([]int, len(resp.Details))
	for i, d := range resp.Details {
		completions[i] = d.CompletionTime
	}
	assert.Equal(t, []int{12, 9, 16}, completions)
	assert.Len(t, resp.Intervals, 9)
}

func TestAllAlgorithms(t *testing.T) {
	app := newTestApp(schedulers.Options{TimeQuantum: 2})
	status, data := do(t, app, http.MethodPost, "/api/v1/all",
		`{"process_count":3,"burst":"5,3,8","arrival":"0,1,2","priority":"2,0,1"}`)
	require.Equal(t, http.StatusOK, status, string(data))

	var resp responses.CompareResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	require.Len(t, resp.Schedules, 5)
	for i, a := range schedulers.Algorithms {
		assert.Equal(t, string(a), resp.Schedules[i].Algorithm)
		assert.Equal(t, resp.RunId, resp.Schedules[i].RunId)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name       string
		defaults   schedulers.Options
		path       string
		body       string
		wantStatus int
		wantField  string
	}{
		{
			name:       "malformed body",
			path:       "/api/v1/fcfs",
			body:       `{"process_count":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad burst element",
			path:       "/api/v1/fcfs",
			body:       `{"process_count":2,"burst":"3,x"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "burst",
		},
		{
			name:       "count mismatch",
			path:       "/api/v1/sjf",
			body:       `{"process_count":3,"burst":"3,4"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "burst",
		},
		{
			name:       "unknown algorithm",
			path:       "/api/v1/schedule",
			body:       `{"algorithm":"lottery","process_count":1,"burst":"3"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "algorithm",
		},
		{
			name:       "zero quantum",
			path:       "/api/v1/rr",
			body:       `{"process_count":1,"burst":"3","time_quantum":0}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "time_quantum",
		},
		{
			name:       "budget exhausted",
			defaults:   schedulers.Options{TimeQuantum: 1, MaxIterations: 5},
			path:       "/api/v1/rr",
			body:       `{"process_count":2,"burst":"50,50"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(tt.defaults)
			status, data := do(t, app, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, status, string(data))

			var body map[string]string
			require.NoError(t, json.Unmarshal(data, &body))
			assert.NotEmpty(t, body["error"])
			assert.Equal(t, tt.wantField, body["field"])
		})
	}
}
