package util

// CalculateAverage returns the mean waiting and turnaround times of a run.
// Both slices are indexed by process; empty input averages to zero.
func CalculateAverage(waitingTimes, turnAroundTimes []int) (averageWaitingTime, averageTurnAroundTime float64) {
	averageWaitingTime = Mean(waitingTimes)
	averageTurnAroundTime = Mean(turnAroundTimes)
	return
}

func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}
