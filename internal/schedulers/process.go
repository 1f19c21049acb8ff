package schedulers

import (
	"strings"

	"cpu-scheduler/internal/core"
)

// Algorithm identifies a scheduling discipline.
type Algorithm string

const (
	AlgorithmFCFS         Algorithm = "fcfs"
	AlgorithmSJF          Algorithm = "sjf"
	AlgorithmSJFNoArrival Algorithm = "sjf-no-arrival"
	AlgorithmPriority     Algorithm = "priority"
	AlgorithmRoundRobin   Algorithm = "rr"
)

// DefaultTimeQuantum is the Round Robin slice used when the caller gives none.
const DefaultTimeQuantum = 2

// Algorithms lists every supported discipline in presentation order.
var Algorithms = []Algorithm{
	AlgorithmFCFS,
	AlgorithmSJF,
	AlgorithmSJFNoArrival,
	AlgorithmPriority,
	AlgorithmRoundRobin,
}

var displayNames = map[Algorithm]string{
	AlgorithmFCFS:         "FCFS",
	AlgorithmSJF:          "SJF with AT",
	AlgorithmSJFNoArrival: "SJF without AT",
	AlgorithmPriority:     "Priority Scheduling",
	AlgorithmRoundRobin:   "Round Robin",
}

var aliases = map[string]Algorithm{
	"fcfs":                AlgorithmFCFS,
	"sjf":                 AlgorithmSJF,
	"sjf with at":         AlgorithmSJF,
	"sjf-with-arrival":    AlgorithmSJF,
	"sjf-no-arrival":      AlgorithmSJFNoArrival,
	"sjf without at":      AlgorithmSJFNoArrival,
	"sjf-without-arrival": AlgorithmSJFNoArrival,
	"priority":            AlgorithmPriority,
	"priority scheduling": AlgorithmPriority,
	"rr":                  AlgorithmRoundRobin,
	"round robin":         AlgorithmRoundRobin,
	"round-robin":         AlgorithmRoundRobin,
}

// ParseAlgorithm resolves a canonical id or one of its display aliases, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}
	return "", &ValidationError{Field: "algorithm", Index: -1, Value: name, Reason: "unknown algorithm"}
}

func (a Algorithm) DisplayName() string {
	if name, ok := displayNames[a]; ok {
		return name
	}
	return string(a)
}

// Process is one process of a simulation. Id is its position in the input.
type Process struct {
	Id       int
	Arrival  int
	Burst    int
	Priority int
}

// ProcessSet is ordered by Id.
type ProcessSet []Process

// Options carries the per-run parameters that are not part of the process set.
type Options struct {
	TimeQuantum   int
	MaxIterations int
}

// ProcessResult is the outcome for one process.
type ProcessResult struct {
	Process
	Start      int
	Completion int
	Waiting    int
	TurnAround int
	// Response is the delay until first dispatch.
	Response int
}

// Interval is one contiguous stretch of CPU time given to a process.
type Interval struct {
	ProcessId int
	Start     int
	End       int
}

func (i Interval) Duration() int {
	return i.End - i.Start
}

type Metrics struct {
	AverageWaitingTime    float64
	AverageTurnAroundTime float64
	AverageResponseTime   float64
	Throughput            float64
	Makespan              int
}

// Schedule is the full result of one simulation run.
type Schedule struct {
	Algorithm Algorithm
	// TimeQuantum is only set for Round Robin.
	TimeQuantum int
	// ArrivalIgnored marks the SJF variant whose waiting and turnaround
	// times are measured from t=0 instead of from each arrival.
	ArrivalIgnored bool
	Processes      []ProcessResult
	Intervals      []Interval
	Metrics        Metrics
	Cpu            core.CpuMetric
}
