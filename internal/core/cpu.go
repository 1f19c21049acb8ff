package core

import "errors"

// ErrBudgetExhausted is returned by Step once a run has used all of its iterations.
var ErrBudgetExhausted = errors.New("cpu: iteration budget exhausted")

// DefaultBudget bounds the number of scheduling decisions a single run may take.
const DefaultBudget = 1_000_000

// ScheduleTime is one dispatch of a process on the simulated CPU.
type ScheduleTime struct {
	ProcessId int
	Execution int
	Complete  int
}

func (s ScheduleTime) Duration() int {
	return s.Complete - s.Execution
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization is the busy share of the total simulated time, 0 for an empty run.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Cpu is a single simulated core driven by a scheduling discipline. It keeps the
// clock, the dispatch log and the idle accounting for one run and is not safe for
// concurrent use; every run builds its own.
type Cpu struct {
	clock         int
	budget        int
	steps         int
	scheduleTimes []ScheduleTime
	metric        CpuMetric
}

func NewCpu(budget int) *Cpu {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Cpu{budget: budget}
}

// Now returns the current simulated time.
func (c *Cpu) Now() int {
	return c.clock
}

// Steps returns how many scheduling decisions have been taken so far.
func (c *Cpu) Steps() int {
	return c.steps
}

// Step charges one scheduling decision against the budget.
func (c *Cpu) Step() error {
	if c.steps >= c.budget {
		return ErrBudgetExhausted
	}
	c.steps++
	return nil
}

// IdleUntil advances the clock to t, counting the gap as idle time. Times in the
// past are ignored.
func (c *Cpu) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	c.metric.IdleTime += t - c.clock
	c.clock = t
}

// Execute runs pid for duration time units starting now and records the slice.
func (c *Cpu) Execute(pid, duration int) ScheduleTime {
	st := ScheduleTime{
		ProcessId: pid,
		Execution: c.clock,
		Complete:  c.clock + duration,
	}
	c.clock = st.Complete
	c.metric.UtilizationTime += duration
	c.scheduleTimes = append(c.scheduleTimes, st)
	return st
}

// ScheduleTimes returns a copy of the dispatch log in execution order.
func (c *Cpu) ScheduleTimes() []ScheduleTime {
	out := make([]ScheduleTime, len(c.scheduleTimes))
	copy(out, c.scheduleTimes)
	return out
}

func (c *Cpu) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock
	return m
}
