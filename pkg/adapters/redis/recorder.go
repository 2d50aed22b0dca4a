package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/memtree-bench/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the recorder.
const DefaultPrefix = "memtree-bench:"

// Recorder implements ports.RunRecorder using one Redis list per experiment.
type Recorder struct {
	client  *backend.Client
	prefix  string
	maxRuns int64
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(r *Recorder) {
		r.prefix = prefix
	}
}

// WithMaxRuns caps the history kept per experiment. Zero keeps everything.
func WithMaxRuns(n int) Option {
	return func(r *Recorder) {
		r.maxRuns = int64(n)
	}
}

// New creates a recorder connected to the Redis server described by url
// (redis://[user:password@]host:port/db).
func New(url string, opts ...Option) (*Recorder, error) {
	options, err := backend.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewFromClient(backend.NewClient(options), opts...), nil
}

// NewFromClient creates a recorder from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Recorder {
	r := &Recorder{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recorder) key(experiment string) string {
	return r.prefix + "runs:" + experiment
}

// Record pushes rec onto the head of its experiment's list.
func (r *Recorder) Record(ctx context.Context, rec domain.RunRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, r.key(rec.Experiment), data)
	if r.maxRuns > 0 {
		pipe.LTrim(ctx, r.key(rec.Experiment), 0, r.maxRuns-1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record run in redis: %w", err)
	}
	return nil
}

// List returns the most recent runs first.
func (r *Recorder) List(ctx context.Context, experiment string, limit int) ([]domain.RunRecord, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	vals, err := r.client.LRange(ctx, r.key(experiment), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list runs from redis: %w", err)
	}

	out := make([]domain.RunRecord, 0, len(vals))
	for _, v := range vals {
		var rec domain.RunRecord
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal run: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Close releases the underlying client.
func (r *Recorder) Close() error {
	return r.client.Close()
}
