package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
)

type shortestJobFirst struct{}

func (shortestJobFirst) Algorithm() Algorithm { return AlgorithmSJF }

func (shortestJobFirst) Schedule(processes ProcessSet, cpu *core.Cpu, _ Options) ([]ProcessResult, error) {
	return scheduleNonPreemptive(processes, cpu, func(p Process) int { return p.Burst })
}

// scheduleNonPreemptive repeatedly picks, among arrived and unfinished
// processes, the one with the smallest key (lowest id on ties) and runs it to
// completion. When nothing has arrived the clock jumps to the next arrival.
func scheduleNonPreemptive(processes ProcessSet, cpu *core.Cpu, key func(Process) int) ([]ProcessResult, error) {
	results := make([]ProcessResult, len(processes))
	done := make([]bool, len(processes))

	for completed := 0; completed < len(processes); {
		if err := step(cpu); err != nil {
			return nil, err
		}

		selected := -1
		nextArrival := -1
		for i, p := range processes {
			if done[i] {
				continue
			}
			if p.Arrival > cpu.Now() {
				if nextArrival == -1 || p.Arrival < nextArrival {
					nextArrival = p.Arrival
				}
				continue
			}
			if selected == -1 || key(p) < key(processes[selected]) {
				selected = i
			}
		}

		if selected == -1 {
			cpu.IdleUntil(nextArrival)
			continue
		}

		p := processes[selected]
		st := cpu.Execute(p.Id, p.Burst)
		results[selected] = complete(p, st.Execution, st.Complete)
		done[selected] = true
		completed++
	}
	return results, nil
}

type shortestJobFirstNoArrival struct{}

func (shortestJobFirstNoArrival) Algorithm() Algorithm { return AlgorithmSJFNoArrival }

// Schedule runs every process back to back from t=0 in ascending burst order.
// Arrival times are ignored entirely, so waiting is the start time and
// turnaround is the completion time.
func (shortestJobFirstNoArrival) Schedule(processes ProcessSet, cpu *core.Cpu, _ Options) ([]ProcessResult, error) {
	order := make([]int, len(processes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return processes[order[i]].Burst < processes[order[j]].Burst
	})

	results := make([]ProcessResult, len(processes))
	for _, idx := range order {
		if err := step(cpu); err != nil {
			return nil, err
		}
		p := processes[idx]
		st := cpu.Execute(p.Id, p.Burst)
		results[idx] = ProcessResult{
			Process:    p,
			Start:      st.Execution,
			Completion: st.Complete,
			Waiting:    st.Execution,
			TurnAround: st.Complete,
			Response:   st.Execution,
		}
	}
	return results, nil
}
