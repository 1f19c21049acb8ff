package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"cpu-scheduler/api"
)

func (c *cli) serveCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API.

Routes:
  GET  /health
  GET  /api/v1/algorithms
  POST /api/v1/{fcfs,sjf,sjf-no-arrival,priority,rr}
  POST /api/v1/schedule   algorithm taken from the body
  POST /api/v1/all        every algorithm over the same processes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("port") {
				port = c.config.Port
			}
			return c.serve(cmd.Context(), port)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (default from config)")
	return cmd
}

func (c *cli) serve(ctx context.Context, port int) error {
	app := api.NewApp(api.NewSchedulerHandlerImpl(c.service, c.logger))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- app.Listen(fmt.Sprintf(":%d", port))
	}()
	c.logger.Info("listening", "port", port)

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		c.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	}
}
