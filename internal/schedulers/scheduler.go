package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

// Scheduler is one scheduling discipline. Implementations drive the given cpu
// and return one result per process, indexed by process id.
type Scheduler interface {
	Algorithm() Algorithm
	Schedule(processes ProcessSet, cpu *core.Cpu, options Options) ([]ProcessResult, error)
}

var registry = map[Algorithm]Scheduler{
	AlgorithmFCFS:         firstComeFirstServe{},
	AlgorithmSJF:          shortestJobFirst{},
	AlgorithmSJFNoArrival: shortestJobFirstNoArrival{},
	AlgorithmPriority:     priorityScheduling{},
	AlgorithmRoundRobin:   roundRobin{},
}

// Lookup returns the discipline registered for a.
func Lookup(a Algorithm) (Scheduler, error) {
	s, ok := registry[a]
	if !ok {
		return nil, &ValidationError{Field: "algorithm", Index: -1, Value: string(a), Reason: "unknown algorithm"}
	}
	return s, nil
}

// Simulate runs one discipline over processes. It is a pure function of its
// arguments: the same input always yields the same Schedule.
func Simulate(a Algorithm, processes ProcessSet, options Options) (*Schedule, error) {
	scheduler, err := Lookup(a)
	if err != nil {
		return nil, err
	}
	if err := processes.Validate(); err != nil {
		return nil, err
	}
	if a == AlgorithmRoundRobin {
		if err := ValidateTimeQuantum(options.TimeQuantum); err != nil {
			return nil, err
		}
	}

	cpu := core.NewCpu(options.MaxIterations)
	results, err := scheduler.Schedule(processes, cpu, options)
	if err != nil {
		return nil, err
	}

	schedule := generateSchedule(a, results, cpu)
	if a == AlgorithmRoundRobin {
		schedule.TimeQuantum = options.TimeQuantum
	}
	return schedule, nil
}

// step charges one decision to the cpu budget.
func step(cpu *core.Cpu) error {
	if err := cpu.Step(); err != nil {
		return fmt.Errorf("%w after %d steps: %w", ErrIterationBudgetExceeded, cpu.Steps(), err)
	}
	return nil
}

// complete fills the derived times using the general definitions.
func complete(p Process, start, completion int) ProcessResult {
	turnAround := completion - p.Arrival
	return ProcessResult{
		Process:    p,
		Start:      start,
		Completion: completion,
		TurnAround: turnAround,
		Waiting:    turnAround - p.Burst,
		Response:   start - p.Arrival,
	}
}
