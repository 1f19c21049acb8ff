package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
)

type firstComeFirstServe struct{}

func (firstComeFirstServe) Algorithm() Algorithm { return AlgorithmFCFS }

func (firstComeFirstServe) Schedule(processes ProcessSet, cpu *core.Cpu, _ Options) ([]ProcessResult, error) {
	results := make([]ProcessResult, len(processes))
	for _, idx := range arrivalOrder(processes) {
		if err := step(cpu); err != nil {
			return nil, err
		}
		p := processes[idx]
		cpu.IdleUntil(p.Arrival)
		st := cpu.Execute(p.Id, p.Burst)
		results[idx] = complete(p, st.Execution, st.Complete)
	}
	return results, nil
}

// arrivalOrder returns process indexes sorted by arrival; ties keep input order.
func arrivalOrder(processes ProcessSet) []int {
	order := make([]int, len(processes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return processes[order[i]].Arrival < processes[order[j]].Arrival
	})
	return order
}
