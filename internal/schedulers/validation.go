package schedulers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseList splits a comma-separated list of integers. A blank list yields nil so
// callers can tell an omitted optional list from an explicit one.
func ParseList(field, raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	values := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, &ValidationError{Field: field, Index: i, Value: strings.TrimSpace(part), Reason: "not an integer"}
		}
		values[i] = v
	}
	return values, nil
}

// NewProcessSet builds a validated set of n processes from parallel lists. Nil
// arrival or priority lists default to all zeros.
func NewProcessSet(n int, burst, arrival, priority []int) (ProcessSet, error) {
	if n < 1 {
		return nil, &ValidationError{Field: "process_count", Index: -1, Value: strconv.Itoa(n), Reason: "must be at least 1"}
	}
	if err := checkLength("burst", burst, n); err != nil {
		return nil, err
	}
	if arrival != nil {
		if err := checkLength("arrival", arrival, n); err != nil {
			return nil, err
		}
	}
	if priority != nil {
		if err := checkLength("priority", priority, n); err != nil {
			return nil, err
		}
	}

	set := make(ProcessSet, n)
	for i := range set {
		set[i] = Process{Id: i, Burst: burst[i]}
		if arrival != nil {
			set[i].Arrival = arrival[i]
		}
		if priority != nil {
			set[i].Priority = priority[i]
		}
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

func checkLength(field string, values []int, n int) error {
	if len(values) != n {
		return &ValidationError{
			Field:  field,
			Index:  -1,
			Reason: fmt.Sprintf("has %d values, want %d", len(values), n),
		}
	}
	return nil
}

// Validate checks the invariants every discipline relies on.
func (s ProcessSet) Validate() error {
	if len(s) == 0 {
		return &ValidationError{Field: "process_count", Index: -1, Value: "0", Reason: "must be at least 1"}
	}
	for i, p := range s {
		if p.Id != i {
			return &ValidationError{Field: "id", Index: i, Value: strconv.Itoa(p.Id), Reason: "ids must follow input order"}
		}
		if p.Burst <= 0 {
			return &ValidationError{Field: "burst", Index: i, Value: strconv.Itoa(p.Burst), Reason: "must be positive"}
		}
		if p.Arrival < 0 {
			return &ValidationError{Field: "arrival", Index: i, Value: strconv.Itoa(p.Arrival), Reason: "must not be negative"}
		}
	}

	// The clock never passes the latest arrival plus every burst.
	total := 0
	for _, p := range s {
		total = max(total, p.Arrival)
	}
	for _, p := range s {
		if total > math.MaxInt-p.Burst {
			return &ValidationError{Field: "burst", Index: -1, Reason: "total simulated time overflows"}
		}
		total += p.Burst
	}
	return nil
}

// ValidateTimeQuantum rejects non-positive Round Robin slices.
func ValidateTimeQuantum(q int) error {
	if q <= 0 {
		return &ValidationError{Field: "time_quantum", Index: -1, Value: strconv.Itoa(q), Reason: "must be positive"}
	}
	return nil
}
