package requests

import "cpu-scheduler/internal/schedulers"

// ScheduleRequest is the raw simulation input as the API and CLI receive it.
// Burst, Arrival and Priority are comma-separated integer lists; Arrival and
// Priority may be blank.
type ScheduleRequest struct {
	Algorithm    string `json:"algorithm"`
	ProcessCount int    `json:"process_count"`
	Burst        string `json:"burst"`
	Arrival      string `json:"arrival"`
	Priority     string `json:"priority"`
	TimeQuantum  *int   `json:"time_quantum"`
}

// Simulation is a fully validated request, ready for schedulers.Simulate.
type Simulation struct {
	Algorithm schedulers.Algorithm
	Processes schedulers.ProcessSet
	Options   schedulers.Options
}

// ProcessSet validates the process lists.
func (r ScheduleRequest) ProcessSet() (schedulers.ProcessSet, error) {
	burst, err := schedulers.ParseList("burst", r.Burst)
	if err != nil {
		return nil, err
	}
	arrival, err := schedulers.ParseList("arrival", r.Arrival)
	if err != nil {
		return nil, err
	}
	priority, err := schedulers.ParseList("priority", r.Priority)
	if err != nil {
		return nil, err
	}
	return schedulers.NewProcessSet(r.ProcessCount, burst, arrival, priority)
}

// Options applies the request's time quantum over defaults.
func (r ScheduleRequest) Options(defaults schedulers.Options) schedulers.Options {
	options := defaults
	if options.TimeQuantum == 0 {
		options.TimeQuantum = schedulers.DefaultTimeQuantum
	}
	if r.TimeQuantum != nil {
		options.TimeQuantum = *r.TimeQuantum
	}
	return options
}

// Parse validates the whole request. The time quantum is only checked when
// Round Robin is selected.
func (r ScheduleRequest) Parse(defaults schedulers.Options) (Simulation, error) {
	algorithm, err := schedulers.ParseAlgorithm(r.Algorithm)
	if err != nil {
		return Simulation{}, err
	}
	processes, err := r.ProcessSet()
	if err != nil {
		return Simulation{}, err
	}
	options := r.Options(defaults)
	if algorithm == schedulers.AlgorithmRoundRobin {
		if err := schedulers.ValidateTimeQuantum(options.TimeQuantum); err != nil {
			return Simulation{}, err
		}
	}
	return Simulation{Algorithm: algorithm, Processes: processes, Options: options}, nil
}
