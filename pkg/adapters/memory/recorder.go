package memory

import (
	"context"
	"sync"

	"github.com/aretw0/memtree-bench/pkg/domain"
)

// Recorder implements ports.RunRecorder in memory.
// Safe for concurrent use.
type Recorder struct {
	runs map[string][]domain.RunRecord
	mu   sync.RWMutex
}

// NewRecorder creates a new in-memory recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		runs: make(map[string][]domain.RunRecord),
	}
}

// Record appends rec to its experiment's history.
func (r *Recorder) Record(ctx context.Context, rec domain.RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[rec.Experiment] = append(r.runs[rec.Experiment], rec)
	return nil
}

// List returns the most recent runs first.
func (r *Recorder) List(ctx context.Context, experiment string, limit int) ([]domain.RunRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.runs[experiment]
	n := len(history)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]domain.RunRecord, 0, n)
	for i := len(history) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, history[i])
	}
	return out, nil
}
