package simulation

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"cpu-scheduler/internal/logging"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/telemetry"
)

func newTestService(t *testing.T, defaults schedulers.Options) (*Service, *tracetest.SpanRecorder, *bytes.Buffer) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	var logs bytes.Buffer
	s := NewService(defaults, logging.New(&logs, "cpusched", "debug"), telemetry.NewTracer(provider))
	s.newRunId = func() string { return "run-1" }
	return s, recorder, &logs
}

func TestService_Run(t *testing.T) {
	s, recorder, logs := newTestService(t, schedulers.Options{TimeQuantum: 2})

	resp, err := s.Run(context.Background(), requests.ScheduleRequest{
		Algorithm:    "FCFS",
		ProcessCount: 3,
		Burst:        "5,3,8",
		Arrival:      "0,1,2",
	})
	require.NoError(t, err)
	assert.Equal(t, "run-1", resp.RunId)
	assert.Equal(t, "fcfs", resp.Algorithm)
	assert.Equal(t, 16, resp.TotalTime)
	assert.InDelta(t, 10.0/3, resp.AverageWaitingTime, 1e-9)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "simulate fcfs", spans[0].Name())
	assert.Contains(t, logs.String(), "simulation finished")
	assert.Contains(t, logs.String(), "run_id=run-1")
}

func TestService_RunRejectsInput(t *testing.T) {
	s, recorder, logs := newTestService(t, schedulers.Options{TimeQuantum: 2})

	_, err := s.Run(context.Background(), requests.ScheduleRequest{
		Algorithm:    "rr",
		ProcessCount: 2,
		Burst:        "1,x",
	})
	assert.ErrorIs(t, err, schedulers.ErrInvalidInput)
	assert.Empty(t, recorder.Ended())
	assert.Contains(t, logs.String(), "rejected request")
}

func TestService_RunBudget(t *testing.T) {
	s, recorder, _ := newTestService(t, schedulers.Options{TimeQuantum: 1, MaxIterations: 3})

	_, err := s.Run(context.Background(), requests.ScheduleRequest{
		Algorithm:    "rr",
		ProcessCount: 2,
		Burst:        "10,10",
	})
	assert.ErrorIs(t, err, schedulers.ErrIterationBudgetExceeded)
	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "Error", spans[0].Status().Code.String())
}

func TestService_Compare(t *testing.T) {
	s, recorder, _ := newTestService(t, schedulers.Options{})

	resp, err := s.Compare(context.Background(), requests.ScheduleRequest{
		Algorithm:    "unknown algorithms are ignored here",
		ProcessCount: 3,
		Burst:        "5,3,8",
		Arrival:      "0,1,2",
		Priority:     "2,0,1",
	})
	require.NoError(t, err)
	assert.Equal(t, "run-1", resp.RunId)
	require.Len(t, resp.Schedules, len(schedulers.Algorithms))
	for i, a := range schedulers.Algorithms {
		assert.Equal(t, string(a), resp.Schedules[i].Algorithm)
	}
	assert.Equal(t, schedulers.DefaultTimeQuantum, resp.Schedules[4].TimeQuantum)
	assert.Len(t, recorder.Ended(), len(schedulers.Algorithms))
}

func TestService_CompareRejectsQuantum(t *testing.T) {
	s, _, _ := newTestService(t, schedulers.Options{TimeQuantum: 2})
	zero := 0

	_, err := s.Compare(context.Background(), requests.ScheduleRequest{
		ProcessCount: 1,
		Burst:        "4",
		TimeQuantum:  &zero,
	})
	assert.ErrorIs(t, err, schedulers.ErrInvalidInput)
}
