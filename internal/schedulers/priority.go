package schedulers

import "cpu-scheduler/internal/core"

// priorityScheduling is non-preemptive; a lower priority value is more urgent.
type priorityScheduling struct{}

func (priorityScheduling) Algorithm() Algorithm { return AlgorithmPriority }

func (priorityScheduling) Schedule(processes ProcessSet, cpu *core.Cpu, _ Options) ([]ProcessResult, error) {
	return scheduleNonPreemptive(processes, cpu, func(p Process) int { return p.Priority })
}
