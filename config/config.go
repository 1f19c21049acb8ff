package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

type TelemetryConfig struct {
	Enabled       bool
	Endpoint      string
	ServiceName   string
	SamplingRatio float64
}

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	RoundRobinTimeQuantum int
	MaxIterations         int
	Telemetry             TelemetryConfig
}

// Options returns the engine defaults carried by the config.
func (c *SchedulerConfig) Options() schedulers.Options {
	return schedulers.Options{
		TimeQuantum:   c.RoundRobinTimeQuantum,
		MaxIterations: c.MaxIterations,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.round_robin.time_quantum", schedulers.DefaultTimeQuantum)
	v.SetDefault("scheduler.max_iterations", core.DefaultBudget)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "localhost:4317")
	v.SetDefault("telemetry.service_name", "cpusched")
	v.SetDefault("telemetry.sampling_ratio", 1.0)
}

// Load reads configuration from path, or from ./config.yaml when path is empty.
// A missing default file is not an error; environment variables prefixed with
// CPUSCHED_ override file values (CPUSCHED_SCHEDULER_MAX_ITERATIONS, ...).
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("cpusched")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log_level"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MaxIterations:         v.GetInt("scheduler.max_iterations"),
		Telemetry: TelemetryConfig{
			Enabled:       v.GetBool("telemetry.enabled"),
			Endpoint:      v.GetString("telemetry.endpoint"),
			ServiceName:   v.GetString("telemetry.service_name"),
			SamplingRatio: v.GetFloat64("telemetry.sampling_ratio"),
		},
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *SchedulerConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("config: scheduler.round_robin.time_quantum must be positive, got %d", c.RoundRobinTimeQuantum)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("config: scheduler.max_iterations must be positive, got %d", c.MaxIterations)
	}
	return nil
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once and exits on a broken file.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = Load("")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}
