package timing

import (
	"context"
	"sync"
	"time"
)

type timingKey struct{}

type timingInfo struct {
	operation string
	start     time.Time
}

// Sample is one completed measurement.
type Sample struct {
	Operation string
	Duration  time.Duration
}

// Tracker records operation durations in completion order.
type Tracker struct {
	samples []Sample
	mu      sync.RWMutex
	now     func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{now: time.Now}
}

// StartTimingContext returns parent carrying the start of operation.
func (tt *Tracker) StartTimingContext(parent context.Context, operation string) context.Context {
	return context.WithValue(parent, timingKey{}, timingInfo{
		operation: operation,
		start:     tt.now(),
	})
}

// EndTiming stores and returns the elapsed time since the matching
// StartTimingContext. A context without timing information yields zero
// and records nothing.
func (tt *Tracker) EndTiming(ctx context.Context) time.Duration {
	info, ok := ctx.Value(timingKey{}).(timingInfo)
	if !ok {
		return 0
	}

	duration := tt.now().Sub(info.start)

	tt.mu.Lock()
	tt.samples = append(tt.samples, Sample{Operation: info.operation, Duration: duration})
	tt.mu.Unlock()

	return duration
}

// Latest returns the most recent duration recorded for operation.
func (tt *Tracker) Latest(operation string) (time.Duration, bool) {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	for i := len(tt.samples) - 1; i >= 0; i-- {
		if tt.samples[i].Operation == operation {
			return tt.samples[i].Duration, true
		}
	}
	return 0, false
}

// Samples returns a copy of every measurement in completion order.
func (tt *Tracker) Samples() []Sample {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	result := make([]Sample, len(tt.samples))
	copy(result, tt.samples)
	return result
}

// Total sums every recorded duration.
func (tt *Tracker) Total() time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	var total time.Duration
	for _, s := range tt.samples {
		total += s.Duration
	}
	return total
}
