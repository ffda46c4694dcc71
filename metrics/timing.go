package metrics

import "time"

type OnDuration func(duration time.Duration)

// NewTimeRecorder starts a clock; calling the result stops it and hands the
// elapsed time to every callback.
func NewTimeRecorder(callbacks ...OnDuration) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		duration := time.Since(start)
		for _, cb := range callbacks {
			cb(duration)
		}
		return duration
	}
}
