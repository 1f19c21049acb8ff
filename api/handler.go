package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/simulation"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestJobFirstNoArrival(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	service *simulation.Service
	logger  *slog.Logger
}

func NewSchedulerHandlerImpl(service *simulation.Service, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{service: service, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.AlgorithmFCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.AlgorithmSJF)
}

func (s *SchedulerHandlerImpl) ShortestJobFirstNoArrival(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.AlgorithmSJFNoArrival)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.AlgorithmPriority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.AlgorithmRoundRobin)
}

// Schedule runs the algorithm named in the request body.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	return s.run(ctx, "")
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return invalidFormat(ctx)
	}
	response, err := s.service.Compare(ctx.UserContext(), request)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(response)
}

type algorithmResponse struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	list := make([]algorithmResponse, len(schedulers.Algorithms))
	for i, a := range schedulers.Algorithms {
		list[i] = algorithmResponse{Id: string(a), Name: a.DisplayName()}
	}
	return ctx.JSON(fiber.Map{
		"algorithms":           list,
		"default_time_quantum": schedulers.DefaultTimeQuantum,
	})
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

// run simulates algorithm, or the body's algorithm when it is empty.
func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return invalidFormat(ctx)
	}
	if algorithm != "" {
		request.Algorithm = string(algorithm)
	}
	response, err := s.service.Run(ctx.UserContext(), request)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(response)
}

func invalidFormat(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request format",
	})
}

// fail maps engine errors to status codes: 400 for rejected input, 422 for a
// run that ran out of budget, 500 for anything else.
func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	var verr *schedulers.ValidationError
	switch {
	case errors.As(err, &verr):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": verr.Error(),
			"field": verr.Field,
		})
	case errors.Is(err, schedulers.ErrIterationBudgetExceeded):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	default:
		s.logger.Error("can not process request", "path", ctx.Path(), "error", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}
}
