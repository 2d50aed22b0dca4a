package harness

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/memtree-bench/internal/logging"
	"github.com/aretw0/memtree-bench/pkg/domain"
	"github.com/aretw0/memtree-bench/pkg/ports"
	"github.com/aretw0/memtree-bench/pkg/sizing"
)

// Driver runs the provision, train, evaluate pipeline for one experiment.
type Driver struct {
	exp         domain.Experiment
	provisioner ports.Provisioner
	trainer     ports.Trainer
	evaluator   ports.Evaluator
	recorder    ports.RunRecorder
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	now         func() time.Time
}

// Option defines a functional option for configuring the Driver.
type Option func(*Driver)

// WithRecorder stores every completed run.
func WithRecorder(rec ports.RunRecorder) Option {
	return func(d *Driver) {
		d.recorder = rec
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(d *Driver) {
		d.hooks = hooks
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithClock overrides the wall clock used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) {
		d.now = now
	}
}

// New creates a driver for exp.
func New(exp domain.Experiment, provisioner ports.Provisioner, trainer ports.Trainer, evaluator ports.Evaluator, opts ...Option) *Driver {
	d := &Driver{
		exp:         exp,
		provisioner: provisioner,
		trainer:     trainer,
		evaluator:   evaluator,
		logger:      logging.NewNop(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run executes the pipeline once.
func (d *Driver) Run(ctx context.Context) (domain.RunRecord, error) {
	rec := domain.RunRecord{Experiment: d.exp.Name}

	if err := d.exp.Validate(); err != nil {
		return rec, err
	}
	nodes, err := sizing.ForExperiment(d.exp)
	if err != nil {
		return rec, fmt.Errorf("failed to size memory tree: %w", err)
	}
	rec.Nodes = nodes
	d.logger.Info("memory tree sized", "nodes", nodes, "num_examples", d.exp.NumExamples,
		"leaf_example_multiplier", d.exp.LeafExampleMultiplier)

	train, test := d.exp.TrainSet(), d.exp.TestSet()

	_, err = d.stage(ctx, domain.StageProvision, func() (domain.Timing, error) {
		start := d.now()
		err := d.provisioner.Ensure(ctx, train, test)
		return domain.Timing{Stage: domain.StageProvision, Start: start, Elapsed: d.now().Sub(start)}, err
	})
	if err != nil {
		return rec, err
	}

	var model domain.ModelRef
	rec.Train, err = d.stage(ctx, domain.StageTrain, func() (t domain.Timing, err error) {
		model, t, err = d.trainer.Train(ctx, d.exp, train, nodes)
		return t, err
	})
	if err != nil {
		return rec, err
	}
	rec.Model = model

	rec.Evaluate, err = d.stage(ctx, domain.StageEvaluate, func() (domain.Timing, error) {
		return d.evaluator.Evaluate(ctx, d.exp, test, model)
	})
	if err != nil {
		return rec, err
	}

	rec.FinishedAt = d.now()
	d.logger.Info("benchmark finished",
		"train_seconds", rec.Train.Seconds(),
		"evaluate_seconds", rec.Evaluate.Seconds())

	if d.recorder != nil {
		if err := d.recorder.Record(ctx, rec); err != nil {
			// History is best effort; the measurements stand.
			d.logger.Warn("failed to record run", "err", err)
		}
	}
	return rec, nil
}

func (d *Driver) stage(ctx context.Context, stage domain.Stage, fn func() (domain.Timing, error)) (domain.Timing, error) {
	if d.hooks.OnStageStart != nil {
		d.hooks.OnStageStart(ctx, &domain.StageEvent{
			Timestamp:  d.now(),
			Type:       domain.EventStageStart,
			Experiment: d.exp.Name,
			Stage:      stage,
		})
	}

	t, err := fn()
	t.Stage = stage

	if d.hooks.OnStageEnd != nil {
		d.hooks.OnStageEnd(ctx, &domain.StageEvent{
			Timestamp:  d.now(),
			Type:       domain.EventStageEnd,
			Experiment: d.exp.Name,
			Stage:      stage,
			Timing:     t,
			Err:        err,
		})
	}
	if err != nil {
		return t, fmt.Errorf("%s failed: %w", stage, err)
	}
	return t, nil
}
