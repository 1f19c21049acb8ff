package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/logging"
	"cpu-scheduler/internal/render"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/simulation"
	"cpu-scheduler/internal/telemetry"
)

// cli holds what PersistentPreRunE builds for the subcommands.
type cli struct {
	configPath string
	logLevel   string

	config   *config.SchedulerConfig
	logger   *slog.Logger
	service  *simulation.Service
	shutdown func(context.Context) error
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "cpusched",
		Short: "Simulate CPU scheduling algorithms",
		Long: `cpusched runs FCFS, SJF (with and without arrival times), non-preemptive
Priority and Round Robin over a process set and reports per-process times,
averages and an execution timeline.`,
		Version:            version,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.teardown,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(
		c.runCmd(),
		c.compareCmd(),
		c.algorithmsCmd(),
		c.serveCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if c.configPath == "" {
		c.config = config.GetSchedulerConfig()
	} else if c.config, err = config.Load(c.configPath); err != nil {
		return err
	}

	level := c.config.LogLevel
	if c.logLevel != "" {
		level = c.logLevel
	}
	c.logger = logging.New(cmd.ErrOrStderr(), "cpusched", level)

	c.shutdown, err = telemetry.Init(cmd.Context(), telemetry.Config{
		Enabled:        c.config.Telemetry.Enabled,
		Endpoint:       c.config.Telemetry.Endpoint,
		ServiceName:    c.config.Telemetry.ServiceName,
		ServiceVersion: version,
		SamplingRatio:  c.config.Telemetry.SamplingRatio,
	})
	if err != nil {
		return err
	}
	c.service = simulation.NewService(c.config.Options(), c.logger, telemetry.NewTracer(nil))
	return nil
}

func (c *cli) teardown(cmd *cobra.Command, _ []string) error {
	if c.shutdown == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.shutdown(ctx)
}

// processFlags are shared by run and compare.
type processFlags struct {
	count       int
	burst       string
	arrival     string
	priority    string
	timeQuantum int
	output      string
}

func (f *processFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.count, "processes", "n", 0, "Number of processes (required)")
	cmd.Flags().StringVarP(&f.burst, "burst", "b", "", "Comma-separated burst times (required)")
	cmd.Flags().StringVarP(&f.arrival, "arrival", "t", "", "Comma-separated arrival times (default all 0)")
	cmd.Flags().StringVarP(&f.priority, "priority", "p", "", "Comma-separated priorities, lower is more urgent (default all 0)")
	cmd.Flags().IntVarP(&f.timeQuantum, "quantum", "q", 0, "Round Robin time quantum (default from config)")
	cmd.Flags().StringVarP(&f.output, "output", "o", string(render.FormatTable), "Output format (table, json, yaml)")
	_ = cmd.MarkFlagRequired("processes")
	_ = cmd.MarkFlagRequired("burst")
}

func (f *processFlags) request(cmd *cobra.Command, algorithm string) requests.ScheduleRequest {
	request := requests.ScheduleRequest{
		Algorithm:    algorithm,
		ProcessCount: f.count,
		Burst:        f.burst,
		Arrival:      f.arrival,
		Priority:     f.priority,
	}
	if cmd.Flags().Changed("quantum") {
		q := f.timeQuantum
		request.TimeQuantum = &q
	}
	return request
}

func (c *cli) runCmd() *cobra.Command {
	var flags processFlags
	var algorithm string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate one algorithm",
		Long: `Simulate one algorithm and print its timeline and per-process table.

Examples:
  cpusched run -a fcfs -n 3 -b 5,3,8
  cpusched run -a rr -n 3 -b 5,3,8 -t 0,1,2 -q 2
  cpusched run -a "SJF without AT" -n 3 -b 5,3,8 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := render.ParseFormat(flags.output)
			if err != nil {
				return err
			}
			response, err := c.service.Run(cmd.Context(), flags.request(cmd, algorithm))
			if err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), format, response)
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(schedulers.AlgorithmFCFS), "Algorithm id or name (see 'cpusched algorithms')")
	flags.register(cmd)
	return cmd
}

func (c *cli) compareCmd() *cobra.Command {
	var flags processFlags
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Simulate every algorithm over the same processes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := render.ParseFormat(flags.output)
			if err != nil {
				return err
			}
			response, err := c.service.Compare(cmd.Context(), flags.request(cmd, ""))
			if err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), format, response)
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *cli) algorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Id", "Name"})
			for _, a := range schedulers.Algorithms {
				table.Append([]string{string(a), a.DisplayName()})
			}
			table.Render()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Round Robin default time quantum: %d\n", c.config.RoundRobinTimeQuantum)
			return err
		},
	}
}
