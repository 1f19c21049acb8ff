// Package simulation runs validated requests through the schedulers with a run
// id, a trace span and a log line per run. The API and the CLI both use it.
package simulation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/telemetry"
)

type Service struct {
	defaults schedulers.Options
	logger   *slog.Logger
	tracer   *telemetry.Tracer
	newRunId func() string
}

func NewService(defaults schedulers.Options, logger *slog.Logger, tracer *telemetry.Tracer) *Service {
	if tracer == nil {
		tracer = telemetry.NewTracer(nil)
	}
	return &Service{
		defaults: defaults,
		logger:   logger,
		tracer:   tracer,
		newRunId: func() string { return uuid.New().String() },
	}
}

// Run parses request and simulates the algorithm it names.
func (s *Service) Run(ctx context.Context, request requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	simulation, err := request.Parse(s.defaults)
	if err != nil {
		s.logger.Warn("rejected request", "algorithm", request.Algorithm, "error", err)
		return responses.ScheduleResponse{}, err
	}
	return s.simulate(ctx, s.newRunId(), simulation)
}

// Compare runs every algorithm over the same process set concurrently. The
// algorithm named in request, if any, is ignored. Schedules come back in
// schedulers.Algorithms order.
func (s *Service) Compare(ctx context.Context, request requests.ScheduleRequest) (responses.CompareResponse, error) {
	request.Algorithm = string(schedulers.AlgorithmRoundRobin)
	base, err := request.Parse(s.defaults)
	if err != nil {
		s.logger.Warn("rejected request", "algorithm", "all", "error", err)
		return responses.CompareResponse{}, err
	}

	runId := s.newRunId()
	schedules := make([]responses.ScheduleResponse, len(schedulers.Algorithms))
	g, ctx := errgroup.WithContext(ctx)
	for i, a := range schedulers.Algorithms {
		i, a := i, a
		g.Go(func() error {
			simulation := base
			simulation.Algorithm = a
			resp, err := s.simulate(ctx, runId, simulation)
			if err != nil {
				return err
			}
			schedules[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return responses.CompareResponse{}, err
	}
	return responses.CompareResponse{RunId: runId, Schedules: schedules}, nil
}

func (s *Service) simulate(ctx context.Context, runId string, simulation requests.Simulation) (responses.ScheduleResponse, error) {
	_, span := s.tracer.StartSimulation(ctx, runId, simulation.Algorithm, len(simulation.Processes))
	started := time.Now()
	schedule, err := schedulers.Simulate(simulation.Algorithm, simulation.Processes, simulation.Options)
	telemetry.EndSimulation(span, schedule, err)

	logger := s.logger.With("run_id", runId, "algorithm", simulation.Algorithm, "processes", len(simulation.Processes))
	if err != nil {
		logger.Error("simulation failed", "error", err)
		return responses.ScheduleResponse{}, err
	}
	logger.Info("simulation finished",
		"makespan", schedule.Metrics.Makespan,
		"intervals", len(schedule.Intervals),
		"avg_waiting", schedule.Metrics.AverageWaitingTime,
		"duration", time.Since(started),
	)
	return responses.NewScheduleResponse(runId, schedule), nil
}
