package schedulers

import "cpu-scheduler/internal/core"

// processQueue is the FIFO ready queue of process indexes.
type processQueue struct {
	queue []int
}

func (p *processQueue) AddToEnd(idx int) {
	p.queue = append(p.queue, idx)
}

func (p *processQueue) RemoveFromTop() (int, bool) {
	if len(p.queue) == 0 {
		return 0, false
	}
	idx := p.queue[0]
	p.queue = p.queue[1:]
	return idx, true
}

type roundRobin struct{}

func (roundRobin) Algorithm() Algorithm { return AlgorithmRoundRobin }

func (roundRobin) Schedule(processes ProcessSet, cpu *core.Cpu, options Options) ([]ProcessResult, error) {
	timeQuantum := options.TimeQuantum
	if err := ValidateTimeQuantum(timeQuantum); err != nil {
		return nil, err
	}

	n := len(processes)
	order := arrivalOrder(processes)
	remaining := make([]int, n)
	start := make([]int, n)
	for i, p := range processes {
		remaining[i] = p.Burst
		start[i] = -1
	}

	var readyQueue processQueue
	// order[:admitted] have entered the ready queue, each exactly once.
	admitted := 0
	admit := func() {
		for admitted < n && processes[order[admitted]].Arrival <= cpu.Now() {
			readyQueue.AddToEnd(order[admitted])
			admitted++
		}
	}

	results := make([]ProcessResult, n)
	for finished := 0; finished < n; {
		if err := step(cpu); err != nil {
			return nil, err
		}

		admit()
		idx, ok := readyQueue.RemoveFromTop()
		if !ok {
			cpu.IdleUntil(processes[order[admitted]].Arrival)
			continue
		}

		if start[idx] == -1 {
			start[idx] = cpu.Now()
		}

		if remaining[idx] > timeQuantum {
			cpu.Execute(idx, timeQuantum)
			remaining[idx] -= timeQuantum
			// arrivals during the slice queue up ahead of the preempted process
			admit()
			readyQueue.AddToEnd(idx)
			continue
		}

		st := cpu.Execute(idx, remaining[idx])
		remaining[idx] = 0
		results[idx] = complete(processes[idx], start[idx], st.Complete)
		finished++
	}
	return results, nil
}
