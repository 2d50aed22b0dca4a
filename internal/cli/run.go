package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/memtree-bench/internal/logging"
	"github.com/aretw0/memtree-bench/internal/metrics"
	"github.com/aretw0/memtree-bench/internal/presentation/tui"
	"github.com/aretw0/memtree-bench/pkg/adapters/process"
	"github.com/aretw0/memtree-bench/pkg/adapters/redis"
	"github.com/aretw0/memtree-bench/pkg/adapters/vw"
	"github.com/aretw0/memtree-bench/pkg/dataset"
	"github.com/aretw0/memtree-bench/pkg/domain"
	"github.com/aretw0/memtree-bench/pkg/harness"
	"github.com/aretw0/memtree-bench/pkg/ports"
	"golang.org/x/term"
)

// Streams are the operator-facing outputs of a command.
type Streams struct {
	Out io.Writer // report
	Err io.Writer // logs, banners and learner output
}

// DefaultStreams writes to the process stdout and stderr.
func DefaultStreams() Streams {
	return Streams{Out: os.Stdout, Err: os.Stderr}
}

// Execute runs one benchmark and writes its report.
func Execute(ctx context.Context, opts RunOptions, streams Streams) error {
	format, err := resolveFormat(opts.Format, streams.Out)
	if err != nil {
		return err
	}
	exp, err := LoadExperiment(opts)
	if err != nil {
		return err
	}
	logger, err := createLogger(opts.LogLevel, streams.Err)
	if err != nil {
		return err
	}

	collector := metrics.New()
	if opts.MetricsAddr != "" {
		stop, err := collector.Serve(ctx, opts.MetricsAddr, logger)
		if err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer stop()
	}

	hooks := []domain.LifecycleHooks{collector.Hooks(), createDebugHooks(logger)}
	if !opts.Quiet {
		tui.PrintHeader(streams.Err, exp)
		hooks = append(hooks, domain.LifecycleHooks{
			OnStageStart: func(_ context.Context, e *domain.StageEvent) {
				fmt.Fprintln(streams.Err, tui.StageBanner(e.Stage))
			},
		})
	}

	driverOpts := []harness.Option{
		harness.WithLogger(logger),
		harness.WithLifecycleHooks(metrics.Chain(hooks...)),
	}
	if opts.RedisURL != "" {
		rec, err := redis.New(opts.RedisURL)
		if err != nil {
			return err
		}
		defer rec.Close()
		driverOpts = append(driverOpts, harness.WithRecorder(rec))
	}

	runner := process.NewRunner(
		process.WithStrict(exp.Strict),
		process.WithOutput(streams.Err, streams.Err),
		process.WithLogger(logger),
	)
	learner := vw.New(runner, vw.WithLogger(logger))
	provisioner := dataset.NewProvisioner(dataset.NewHTTPFetcher(opts.HTTPTimeout), dataset.WithLogger(logger))

	driver := harness.New(exp, provisioner, learner, learner, driverOpts...)
	rec, err := driver.Run(ctx)
	if rec.Nodes > 0 {
		collector.ObserveNodes(exp.Name, rec.Nodes)
	}
	if err != nil {
		return err
	}

	return tui.WriteReport(streams.Out, rec, format, tui.NewRenderer())
}

// History lists recorded runs of the configured experiment from Redis.
func History(ctx context.Context, opts RunOptions, limit int, streams Streams) error {
	if opts.RedisURL == "" {
		return fmt.Errorf("--redis-url is required to read run history")
	}
	exp, err := LoadExperiment(opts)
	if err != nil {
		return err
	}
	rec, err := redis.New(opts.RedisURL)
	if err != nil {
		return err
	}
	defer rec.Close()

	return writeHistory(ctx, rec, exp.Name, limit, streams.Out)
}

func writeHistory(ctx context.Context, rec ports.RunRecorder, experiment string, limit int, w io.Writer) error {
	runs, err := rec.List(ctx, experiment, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintf(w, "no recorded runs for %s\n", experiment)
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(w, "%s  nodes=%d  train=%.3fs  test=%.3fs\n",
			r.FinishedAt.Format("2006-01-02 15:04:05"), r.Nodes, r.Train.Seconds(), r.Evaluate.Seconds())
	}
	return nil
}

func createLogger(level string, w io.Writer) (*slog.Logger, error) {
	if level == "" {
		level = "info"
	}
	l, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, l), nil
}

// resolveFormat picks markdown for terminals and plain text otherwise unless set.
func resolveFormat(flag string, out io.Writer) (tui.Format, error) {
	if flag != "" {
		return tui.ParseFormat(flag)
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return tui.FormatMarkdown, nil
	}
	return tui.FormatText, nil
}
