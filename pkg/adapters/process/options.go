package process

import (
	"io"
	"log/slog"
	"time"
)

// DefaultGracePeriod is how long an interrupted process may take to exit before it is killed.
const DefaultGracePeriod = 5 * time.Second

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithStrict makes a non-zero exit status an error (domain.ErrNonZeroExit).
// Without it the exit status is only logged and recorded on the timing.
func WithStrict(strict bool) RunnerOption {
	return func(r *Runner) {
		r.strict = strict
	}
}

// WithOutput sets where the child's stdout and stderr go.
// Output is passed through, never captured. Nil discards the stream.
func WithOutput(stdout, stderr io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithEnv appends KEY=VALUE pairs to the inherited environment.
func WithEnv(env ...string) RunnerOption {
	return func(r *Runner) {
		r.env = append(r.env, env...)
	}
}

// WithGracePeriod sets the delay between interrupting a cancelled process and killing it.
func WithGracePeriod(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.grace = d
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}
