// internal/infrastructure/mock/latency.go
package mock

import (
	"context"
	"math/rand"
	"time"
)

// Latency simulates a remote backend by sleeping a random duration in [Min, Max]
type Latency struct {
	Min time.Duration
	Max time.Duration
}

// NoLatency returns immediately
var NoLatency = Latency{}

// Wait blocks for the simulated delay or until ctx is done
func (l Latency) Wait(ctx context.Context) error {
	d := l.Min
	if l.Max > l.Min {
		d += time.Duration(rand.Int63n(int64(l.Max - l.Min + 1)))
	}
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
