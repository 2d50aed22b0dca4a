// Package vw adapts the external learner executable to ports.Trainer and ports.Evaluator.
package vw

import (
	"context"
	"log/slog"

	"github.com/aretw0/memtree-bench/internal/logging"
	"github.com/aretw0/memtree-bench/pkg/domain"
	"github.com/aretw0/memtree-bench/pkg/invocation"
	"github.com/aretw0/memtree-bench/pkg/ports"
)

// Adapter runs training and evaluation as blocking processes through an Executor.
// Dataset and model paths are passed as given, so they resolve against the harness's
// own working directory.
type Adapter struct {
	exec   ports.Executor
	logger *slog.Logger
}

// Option configures the adapter.
type Option func(*Adapter)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

// New creates an adapter over exec.
func New(exec ports.Executor, opts ...Option) *Adapter {
	a := &Adapter{
		exec:   exec,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Train runs the learner in training mode and returns the model artifact it writes.
func (a *Adapter) Train(ctx context.Context, exp domain.Experiment, train domain.DatasetRef, nodes int) (domain.ModelRef, domain.Timing, error) {
	model := domain.ModelFor(train)
	inv := invocation.Train(exp, train, model, nodes)

	a.logger.Info("training", "cmd", inv.String())
	timing, err := a.exec.Run(ctx, inv)
	return model, timing, err
}

// Evaluate runs the learner in test mode against model.
func (a *Adapter) Evaluate(ctx context.Context, exp domain.Experiment, test domain.DatasetRef, model domain.ModelRef) (domain.Timing, error) {
	inv := invocation.Evaluate(exp, test, model)

	a.logger.Info("evaluating", "cmd", inv.String())
	return a.exec.Run(ctx, inv)
}
