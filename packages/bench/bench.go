// Package bench measures the latency of repeatedly evaluating one toolbox
// expression.
//
// Evaluations run sequentially. Latencies are recorded in nanoseconds in an
// HDR histogram, and an optional rate limit paces evaluations to a fixed
// number per second.
package bench

import (
	"context"
	"errors"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/abdul-hamid-achik/toolbox/packages/builtin"
	"golang.org/x/time/rate"
)

const (
	minLatencyNs = 1
	maxLatencyNs = 10_000_000_000 // 10s
)

// Config holds the benchmark settings
type Config struct {
	Iterations int     // evaluations to measure
	Warmup     int     // evaluations run before measuring
	Rate       float64 // evaluations per second; 0 means unlimited
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Iterations: 10000,
		Warmup:     100,
	}
}

// Report summarizes one benchmark run
type Report struct {
	Expr       string
	Iterations int64
	Errors     int64
	Min        time.Duration
	Mean       time.Duration
	P50        time.Duration
	P95        time.Duration
	P99        time.Duration
	Max        time.Duration
	Total      time.Duration
	LastValue  any
	LastErr    error
	Canceled   bool
}

// PerSecond returns the achieved evaluation throughput.
func (r *Report) PerSecond() float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.Iterations) / r.Total.Seconds()
}

// Run evaluates expr according to cfg. Cancelling ctx ends the run early
// with the partial report and Canceled set.
func Run(ctx context.Context, reg *builtin.Registry, expr string, cfg *Config) (*Report, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Iterations < 1 {
		return nil, errors.New("iterations must be at least 1")
	}

	// parse failures would repeat on every iteration
	if _, _, err := builtin.ParseCall(expr); err != nil {
		return nil, err
	}

	for i := 0; i < cfg.Warmup; i++ {
		_, _ = reg.Call(expr)
	}

	var limiter *rate.Limiter
	if cfg.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Rate), 1)
	}

	hist := hdrhistogram.New(minLatencyNs, maxLatencyNs, 3)
	report := &Report{Expr: expr}
	start := time.Now()

	for i := 0; i < cfg.Iterations; i++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				report.Canceled = true
				break
			}
		} else if ctx.Err() != nil {
			report.Canceled = true
			break
		}

		t0 := time.Now()
		value, err := reg.Call(expr)
		record(hist, time.Since(t0))

		report.Iterations++
		report.LastValue = value
		report.LastErr = err
		if err != nil {
			report.Errors++
		}
	}

	report.Total = time.Since(start)
	if report.Iterations > 0 {
		report.Min = time.Duration(hist.Min())
		report.Mean = time.Duration(hist.Mean())
		report.P50 = time.Duration(hist.ValueAtQuantile(50))
		report.P95 = time.Duration(hist.ValueAtQuantile(95))
		report.P99 = time.Duration(hist.ValueAtQuantile(99))
		report.Max = time.Duration(hist.Max())
	}
	return report, nil
}

func record(hist *hdrhistogram.Histogram, d time.Duration) {
	ns := d.Nanoseconds()
	if ns < minLatencyNs {
		ns = minLatencyNs
	}
	if ns > maxLatencyNs {
		ns = maxLatencyNs
	}
	_ = hist.RecordValue(ns)
}
