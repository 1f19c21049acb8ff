package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

func generateSchedule(a Algorithm, results []ProcessResult, cpu *core.Cpu) *Schedule {
	return &Schedule{
		Algorithm:      a,
		ArrivalIgnored: a == AlgorithmSJFNoArrival,
		Processes:      results,
		Intervals:      generateIntervals(cpu.ScheduleTimes()),
		Metrics:        generateMetrics(results),
		Cpu:            cpu.Metric(),
	}
}

// generateMetrics derives the aggregate figures from per-process results.
func generateMetrics(results []ProcessResult) Metrics {
	waiting := make([]int, len(results))
	turnAround := make([]int, len(results))
	response := make([]int, len(results))
	var makespan int
	for i, r := range results {
		waiting[i] = r.Waiting
		turnAround[i] = r.TurnAround
		response[i] = r.Response
		if r.Completion > makespan {
			makespan = r.Completion
		}
	}

	averageWaitingTime, averageTurnAroundTime := util.CalculateAverage(waiting, turnAround)
	var throughput float64
	if makespan > 0 {
		throughput = float64(len(results)) / float64(makespan)
	}
	return Metrics{
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		AverageResponseTime:   util.Mean(response),
		Throughput:            throughput,
		Makespan:              makespan,
	}
}

// generateIntervals converts the cpu dispatch log into timeline intervals. The
// log is already in execution order, which is also start order.
func generateIntervals(scheduleTimes []core.ScheduleTime) []Interval {
	intervals := make([]Interval, 0, len(scheduleTimes))
	for _, st := range scheduleTimes {
		intervals = append(intervals, Interval{
			ProcessId: st.ProcessId,
			Start:     st.Execution,
			End:       st.Complete,
		})
	}
	return intervals
}
