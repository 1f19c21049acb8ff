package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber application with every route registered.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpusched",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	Register(app, handler)
	return app
}

func Register(app *fiber.App, handler SchedulerHandler) {
	app.Get("/health", handler.Health)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Get("/algorithms", handler.Algorithms)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/sjf-no-arrival", handler.ShortestJobFirstNoArrival)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/schedule", handler.Schedule)
		v1.Post("/all", handler.AllAlgorithms)
	}
}
