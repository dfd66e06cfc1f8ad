// Package bench implements concurrent throughput benchmarks of the precompiles.
package bench

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/oasisprotocol/oasis-core/go/common/logging"

	"github.com/ZigaMr/sapphire-precompiles/precompile"
)

const metricsPrefix = "precompile_oracle_benchmark_"

var benchmarkMap = make(map[string]Benchmark)

// Config is a benchmark run configuration.
type Config struct {
	Logger     *logging.Logger
	Dispatcher *precompile.Dispatcher
	// Registerer receives the result gauges, nil disables them.
	Registerer prometheus.Registerer

	Concurrency int
	Duration    time.Duration
	// Rate is the maximum number of iterations per second per goroutine, 0 means unlimited.
	Rate uint
}

// Result is the outcome of a benchmark run, measured over the middle 80% of the duration.
type Result struct {
	Name       string
	Calls      uint64
	Duration   time.Duration
	Throughput float64
}

// RunBenchmark runs the benchmark with the provided configuration.
func (cfg *Config) RunBenchmark(ctx context.Context, benchmark Benchmark) (*Result, error) {
	logger := cfg.Logger.With("benchmark", benchmark.Name())
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	logger.Info("starting benchmark")

	// Prepare each benchmark go routine's state.
	states := make([]*State, 0, concurrency)
	for i := 0; i < concurrency; i++ {
		state := &State{
			ID:         uint64(i),
			Dispatcher: cfg.Dispatcher,
			Logger:     logger.With("goroutine", i),
		}
		if prepareable, ok := benchmark.(Prepareable); ok {
			if err := prepareable.Prepare(ctx, state); err != nil {
				return nil, fmt.Errorf("bench: failed to prepare %s: %w", benchmark.Name(), err)
			}
		}
		states = append(states, state)
	}
	logger.Info("preparation done")

	// Spawn each benchmark go routine.
	errCh := make(chan error, concurrency)
	stopCh := make(chan struct{})
	var (
		counter atomic.Uint64
		wg      sync.WaitGroup
		once    sync.Once
	)
	doHalt := func() {
		once.Do(func() {
			close(stopCh)
			wg.Wait()
		})
	}
	defer doHalt()

	var interval int64
	if cfg.Rate != 0 {
		interval = time.Second.Nanoseconds() / int64(cfg.Rate)
	}

	wg.Add(concurrency)
	for _, state := range states {
		go func(state *State) {
			defer wg.Done()

			began, count := time.Now(), int64(0)
			for {
				select {
				case <-ctx.Done():
					return
				case <-stopCh:
					return
				default:
				}

				iters, err := benchmark.Scenario(ctx, state)
				if err != nil {
					if errors.Is(err, context.Canceled) {
						return
					}
					state.Logger.Error("iteration failed",
						"err", err,
					)
					errCh <- err
					return
				}
				counter.Add(iters)

				if interval != 0 {
					now, next := time.Now(), began.Add(time.Duration(count*interval))
					time.Sleep(next.Sub(now))
					count++
				}
			}
		}(state)
	}
	logger.Info("threads started")

	doSleep := func(sleepDuration time.Duration, descr string) (time.Time, uint64, error) {
		logger.Debug("begin " + descr)
		select {
		case <-ctx.Done():
			return time.Time{}, 0, ctx.Err()
		case err := <-errCh:
			return time.Time{}, 0, err
		case <-time.After(sleepDuration):
		}
		return time.Now(), counter.Load(), nil
	}

	// First 10% of time will be discarded.
	timeMidBefore, countMidBefore, err := doSleep(cfg.Duration/10, "first 10%")
	if err != nil {
		return nil, err
	}
	// Middle 80% of time will be counted.
	timeMidAfter, countMidAfter, err := doSleep(cfg.Duration/10*8, "middle 80%")
	if err != nil {
		return nil, err
	}
	// Last 10% of time will be discarded.
	if _, _, err = doSleep(cfg.Duration/10, "last 10%"); err != nil {
		return nil, err
	}

	doHalt()
	logger.Info("threads joined")

	result := &Result{
		Name:     benchmark.Name(),
		Calls:    countMidAfter - countMidBefore,
		Duration: timeMidAfter.Sub(timeMidBefore),
	}
	if secs := result.Duration.Seconds(); secs > 0 {
		result.Throughput = float64(result.Calls) / secs
	}

	logger.Info("middle 80%",
		"calls", result.Calls,
		"duration", result.Duration,
		"calls_per_sec", result.Throughput,
	)
	if cfg.Registerer != nil {
		if err = registerResult(cfg.Registerer, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func registerResult(reg prometheus.Registerer, result *Result) error {
	for name, value := range map[string]float64{
		"_mid_count":  float64(result.Calls),
		"_mid_dur_ms": float64(result.Duration / time.Millisecond),
		"_throughput": result.Throughput,
	} {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricsPrefix + result.Name + name,
		})
		if err := reg.Register(g); err != nil {
			return fmt.Errorf("bench: failed to register gauge: %w", err)
		}
		g.Set(value)
	}
	return nil
}

// Benchmark is the interface exposed by each benchmark.
type Benchmark interface {
	Name() string
	Scenario(context.Context, *State) (uint64, error)
}

// Prepareable is the interface exposed by benchmarks requiring a
// pre-flight prepare step.
type Prepareable interface {
	Prepare(context.Context, *State) error
}

// State is the per-goroutine benchmark state.
type State struct {
	ID         uint64
	Dispatcher *precompile.Dispatcher
	Logger     *logging.Logger

	State interface{}
}

// RegisterBenchmark registers a new benchmark.
func RegisterBenchmark(bench Benchmark) {
	name := bench.Name()
	if _, ok := benchmarkMap[name]; ok {
		panic("benchmark already registered: " + name)
	}
	benchmarkMap[name] = bench
}

// Benchmarks returns a map of all registered benchmarks.
func Benchmarks() map[string]Benchmark {
	return benchmarkMap
}

// Names returns the sorted names of all registered benchmarks.
func Names() []string {
	names := make([]string, 0, len(benchmarkMap))
	for name := range benchmarkMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
