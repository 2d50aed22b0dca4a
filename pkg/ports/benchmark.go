package ports

import (
	"context"
	"io"

	"github.com/aretw0/memtree-bench/pkg/domain"
)

// Fetcher retrieves a remote file.
type Fetcher interface {
	// Fetch returns the body of the resource at url. The caller closes it.
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// Provisioner guarantees that corpus files exist locally.
type Provisioner interface {
	// Ensure makes every referenced dataset available at its local path.
	// Returns an error wrapping domain.ErrProvision if any file is still missing.
	Ensure(ctx context.Context, refs ...domain.DatasetRef) error
}

// Executor runs an invocation to completion and reports its wall-clock time.
type Executor interface {
	Run(ctx context.Context, inv domain.Invocation) (domain.Timing, error)
}

// Trainer fits a model on a training corpus.
type Trainer interface {
	// Train blocks until the external trainer returns and reports the artifact it wrote.
	// nodes is the memory-tree size computed once for the run.
	Train(ctx context.Context, exp domain.Experiment, train domain.DatasetRef, nodes int) (domain.ModelRef, domain.Timing, error)
}

// Evaluator scores a trained model against a held-out corpus.
type Evaluator interface {
	Evaluate(ctx context.Context, exp domain.Experiment, test domain.DatasetRef, model domain.ModelRef) (domain.Timing, error)
}

// RunRecorder keeps the history of completed runs.
type RunRecorder interface {
	Record(ctx context.Context, rec domain.RunRecord) error

	// List returns up to limit records for an experiment, most recent first.
	// A limit of zero or less returns all of them.
	List(ctx context.Context, experiment string, limit int) ([]domain.RunRecord, error)
}
