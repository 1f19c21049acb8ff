package responses

import (
	"fmt"

	"cpu-scheduler/internal/schedulers"
)

type ProcessResponse struct {
	ProcessId      int    `json:"process_id" yaml:"process_id"`
	Name           string `json:"name" yaml:"name"`
	ArrivalTime    int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime      int    `json:"burst_time" yaml:"burst_time"`
	Priority       int    `json:"priority" yaml:"priority"`
	StartTime      int    `json:"start_time" yaml:"start_time"`
	CompletionTime int    `json:"completion_time" yaml:"completion_time"`
	WaitingTime    int    `json:"waiting_time" yaml:"waiting_time"`
	TurnAroundTime int    `json:"turn_around_time" yaml:"turn_around_time"`
	ResponseTime   int    `json:"response_time" yaml:"response_time"`
}

type IntervalResponse struct {
	ProcessId int    `json:"process_id" yaml:"process_id"`
	Name      string `json:"name" yaml:"name"`
	Start     int    `json:"start" yaml:"start"`
	End       int    `json:"end" yaml:"end"`
}

type ScheduleResponse struct {
	RunId                 string             `json:"run_id" yaml:"run_id"`
	Algorithm             string             `json:"algorithm" yaml:"algorithm"`
	AlgorithmName         string             `json:"algorithm_name" yaml:"algorithm_name"`
	TimeQuantum           int                `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	ArrivalIgnored        bool               `json:"arrival_ignored,omitempty" yaml:"arrival_ignored,omitempty"`
	TotalTime             int                `json:"total_time" yaml:"total_time"`
	IdleTime              int                `json:"idle_time" yaml:"idle_time"`
	AverageWaitingTime    float64            `json:"average_waiting_time" yaml:"average_waiting_time"`
	AverageResponseTime   float64            `json:"average_response_time" yaml:"average_response_time"`
	AverageTurnAroundTime float64            `json:"average_turn_around_time" yaml:"average_turn_around_time"`
	CpuUtilization        float64            `json:"cpu_utilization" yaml:"cpu_utilization"`
	CpuThroughput         float64            `json:"cpu_throughput" yaml:"cpu_throughput"`
	Details               []ProcessResponse  `json:"details" yaml:"details"`
	Intervals             []IntervalResponse `json:"intervals" yaml:"intervals"`
}

// CompareResponse holds one schedule per algorithm for the same process set.
type CompareResponse struct {
	RunId     string             `json:"run_id" yaml:"run_id"`
	Schedules []ScheduleResponse `json:"schedules" yaml:"schedules"`
}

// ProcessName is the 1-based label used for process id in tables and charts.
func ProcessName(id int) string {
	return fmt.Sprintf("P%d", id+1)
}

func NewScheduleResponse(runId string, s *schedulers.Schedule) ScheduleResponse {
	details := make([]ProcessResponse, len(s.Processes))
	for i, p := range s.Processes {
		details[i] = ProcessResponse{
			ProcessId:      p.Id,
			Name:           ProcessName(p.Id),
			ArrivalTime:    p.Arrival,
			BurstTime:      p.Burst,
			Priority:       p.Priority,
			StartTime:      p.Start,
			CompletionTime: p.Completion,
			WaitingTime:    p.Waiting,
			TurnAroundTime: p.TurnAround,
			ResponseTime:   p.Response,
		}
	}

	intervals := make([]IntervalResponse, len(s.Intervals))
	for i, iv := range s.Intervals {
		intervals[i] = IntervalResponse{
			ProcessId: iv.ProcessId,
			Name:      ProcessName(iv.ProcessId),
			Start:     iv.Start,
			End:       iv.End,
		}
	}

	return ScheduleResponse{
		RunId:                 runId,
		Algorithm:             string(s.Algorithm),
		AlgorithmName:         s.Algorithm.DisplayName(),
		TimeQuantum:           s.TimeQuantum,
		ArrivalIgnored:        s.ArrivalIgnored,
		TotalTime:             s.Cpu.TotalTime,
		IdleTime:              s.Cpu.IdleTime,
		AverageWaitingTime:    s.Metrics.AverageWaitingTime,
		AverageResponseTime:   s.Metrics.AverageResponseTime,
		AverageTurnAroundTime: s.Metrics.AverageTurnAroundTime,
		CpuUtilization:        s.Cpu.Utilization(),
		CpuThroughput:         s.Metrics.Throughput,
		Details:               details,
		Intervals:             intervals,
	}
}
