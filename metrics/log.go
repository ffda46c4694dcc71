package metrics

import (
	"context"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"
)

// LogEvery writes every metric in r to logger each interval until ctx is done.
// Timings are reported in scale units (eg time.Millisecond) rather than nanos.
func LogEvery(ctx context.Context, r metrics.Registry, interval, scale time.Duration, logger log.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			LogSnapshot(r, scale, logger)
		case <-ctx.Done():
			return
		}
	}
}

func LogSnapshot(r metrics.Registry, scale time.Duration, logger log.Logger) {
	var names []string
	r.Each(func(name string, _ interface{}) {
		names = append(names, name)
	})
	sort.Strings(names)
	for _, name := range names {
		switch m := r.Get(name).(type) {
		case metrics.Counter:
			logger.Info("Counter", "name", name, "count", m.Count())
		case metrics.Gauge:
			logger.Info("Gauge", "name", name, "value", m.Value())
		case metrics.Meter:
			s := m.Snapshot()
			logger.Info("Meter", "name", name, "count", s.Count(), "rate1", s.Rate1(), "mean", s.RateMean())
		case metrics.Timer:
			s := m.Snapshot()
			ps := s.Percentiles([]float64{0.5, 0.99})
			logger.Info("Timer", "name", name, "count", s.Count(),
				"mean", time.Duration(s.Mean())/scale,
				"p50", time.Duration(ps[0])/scale,
				"p99", time.Duration(ps[1])/scale)
		}
	}
}
