package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/oasisprotocol/oasis-core/go/common/logging"

	"github.com/ZigaMr/sapphire-precompiles/bench"
	"github.com/ZigaMr/sapphire-precompiles/precompile"
)

const (
	cfgBenchmarks            = "benchmarks"
	cfgBenchmarksConcurrency = "benchmarks.concurrency"
	cfgBenchmarksDuration    = "benchmarks.duration"
	cfgBenchmarksRate        = "benchmarks.rate"

	cfgPrometheusPushAddr          = "prometheus.push.addr"
	cfgPrometheusPushJobName       = "prometheus.push.job_name"
	cfgPrometheusPushInstanceLabel = "prometheus.push.instance_label"
)

var (
	flagBenchmarks benchmarkValues

	// pushFlags are the Prometheus push gateway flags.
	pushFlags *flag.FlagSet

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Benchmark precompile throughput",
		Args:  cobra.NoArgs,
		RunE:  benchmarkMain,
	}
)

func benchmarkMain(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("benchmarks")

	flagBenchmarks.deduplicate()
	if len(flagBenchmarks.benchmarks) == 0 {
		return fmt.Errorf("insufficient benchmarks requested, available: %s", strings.Join(bench.Names(), ","))
	}

	// Each run collects into its own registry, which is what gets pushed.
	registry := prometheus.NewRegistry()
	d, err := newDispatcher(precompile.WithMetrics(precompile.NewMetrics(registry)))
	if err != nil {
		return err
	}

	// Build the config.
	cfg := bench.Config{
		Logger:     logger,
		Dispatcher: d,
		Registerer: registry,
	}
	cfg.Duration, _ = cmd.Flags().GetDuration(cfgBenchmarksDuration)
	concurrency, _ := cmd.Flags().GetUint(cfgBenchmarksConcurrency)
	cfg.Concurrency = int(concurrency)
	cfg.Rate, _ = cmd.Flags().GetUint(cfgBenchmarksRate)

	ctx, cancelFn := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancelFn()

	for _, benchmark := range flagBenchmarks.benchmarks {
		result, err := cfg.RunBenchmark(ctx, benchmark)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Error("user requested interrupt")
				break
			}
			return fmt.Errorf("failed to run benchmark %s: %w", benchmark.Name(), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d calls in %s (%.1f calls/s)\n",
			result.Name, result.Calls, result.Duration.Round(time.Millisecond), result.Throughput)
	}

	if err := pushMetrics(cmd, registry); err != nil {
		logger.Error("failed to push metrics",
			"err", err,
		)
	}
	return nil
}

func pushMetrics(cmd *cobra.Command, gatherer prometheus.Gatherer) error {
	addr, _ := cmd.Flags().GetString(cfgPrometheusPushAddr)
	if addr == "" {
		return nil
	}

	jobName, _ := cmd.Flags().GetString(cfgPrometheusPushJobName)
	if jobName == "" {
		return fmt.Errorf("metrics: %v required for metrics push mode", cfgPrometheusPushJobName)
	}
	instanceLabel, _ := cmd.Flags().GetString(cfgPrometheusPushInstanceLabel)
	if instanceLabel == "" {
		return fmt.Errorf("metrics: %v required for metrics push mode", cfgPrometheusPushInstanceLabel)
	}

	pusher := push.New(addr, jobName).Grouping("instance", instanceLabel).Gatherer(gatherer)
	return pusher.Push()
}

type benchmarkValues struct {
	benchmarks []bench.Benchmark
}

func (v *benchmarkValues) deduplicate() {
	var benchmarks []bench.Benchmark
	seen := make(map[string]bool)
	for _, b := range v.benchmarks {
		name := b.Name()
		if !seen[name] {
			benchmarks = append(benchmarks, b)
			seen[name] = true
		}
	}

	v.benchmarks = benchmarks
}

func (v *benchmarkValues) String() string {
	var names []string
	for _, b := range v.benchmarks {
		names = append(names, b.Name())
	}

	return strings.Join(names, ",")
}

func (v *benchmarkValues) Set(sVec string) error {
	registeredBenchmarks := bench.Benchmarks()

	for _, s := range strings.Split(sVec, ",") {
		if s == "all" {
			for _, name := range bench.Names() {
				v.benchmarks = append(v.benchmarks, registeredBenchmarks[name])
			}
			continue
		}

		b, ok := registeredBenchmarks[s]
		if !ok {
			return fmt.Errorf("unknown benchmark: '%v'", s)
		}
		v.benchmarks = append(v.benchmarks, b)
	}

	return nil
}

func (v *benchmarkValues) Type() string {
	return "benchmarks"
}

func init() {
	benchCmd.Flags().VarP(&flagBenchmarks, cfgBenchmarks, "b", "benchmarks to run (all, "+strings.Join(bench.Names(), ", ")+")")
	benchCmd.Flags().Uint(cfgBenchmarksConcurrency, 1, "benchmark concurrency")
	benchCmd.Flags().Duration(cfgBenchmarksDuration, 10*time.Second, "benchmark duration")
	benchCmd.Flags().Uint(cfgBenchmarksRate, 0, "benchmark maximum per second rate per goroutine (0 is unlimited)")

	pushFlags = flag.NewFlagSet("", flag.ContinueOnError)
	pushFlags.String(cfgPrometheusPushAddr, "", "Prometheus push gateway address")
	pushFlags.String(cfgPrometheusPushJobName, "", "Prometheus push `job` name")
	pushFlags.String(cfgPrometheusPushInstanceLabel, "", "Prometheus push `instance` label")
	benchCmd.Flags().AddFlagSet(pushFlags)
}
