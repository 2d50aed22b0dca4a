package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/aretw0/memtree-bench/internal/logging"
	"github.com/aretw0/memtree-bench/pkg/domain"
)

// Runner implements ports.Executor by running invocations as blocking child processes.
// No timeout is applied; only cancellation of the context stops a child early.
type Runner struct {
	strict bool
	stdout io.Writer
	stderr io.Writer
	env    []string
	grace  time.Duration
	logger *slog.Logger
}

// NewRunner creates a new process runner. By default child output goes to the
// operator's stdout and stderr.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		stdout: os.Stdout,
		stderr: os.Stderr,
		grace:  DefaultGracePeriod,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes inv to completion and returns the elapsed wall-clock time.
//
// A process that cannot be started yields domain.ErrLaunch. A process that runs and
// exits non-zero is reported as completed unless the runner is strict, in which case
// domain.ErrNonZeroExit is returned along with the timing.
func (r *Runner) Run(ctx context.Context, inv domain.Invocation) (domain.Timing, error) {
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Stdin = nil
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if len(r.env) > 0 {
		cmd.Env = append(cmd.Environ(), r.env...)
	}

	// Interrupt first so the learner can flush, then kill after the grace period.
	cmd.Cancel = func() error {
		if err := cmd.Process.Signal(os.Interrupt); err != nil {
			return cmd.Process.Kill()
		}
		return nil
	}
	cmd.WaitDelay = r.grace

	timing := domain.Timing{Stage: inv.Stage}
	r.logger.Debug("starting process", "stage", inv.Stage, "cmd", inv.String())

	timing.Start = time.Now()
	if err := cmd.Start(); err != nil {
		return timing, fmt.Errorf("%w: %s: %w", domain.ErrLaunch, inv.Path, err)
	}
	err := cmd.Wait()
	timing.Elapsed = time.Since(timing.Start)
	timing.ExitCode = cmd.ProcessState.ExitCode()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return timing, fmt.Errorf("%s interrupted: %w", inv.Stage, ctxErr)
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		if r.strict {
			return timing, fmt.Errorf("%w: %s exited with %d", domain.ErrNonZeroExit, inv.Stage, timing.ExitCode)
		}
		r.logger.Warn("process exited with non-zero status; timing may not reflect a successful run",
			"stage", inv.Stage, "exit_code", timing.ExitCode)
	default:
		return timing, fmt.Errorf("%s: %w", inv.Stage, err)
	}

	r.logger.Debug("process finished", "stage", inv.Stage, "elapsed", timing.Elapsed, "exit_code", timing.ExitCode)
	return timing, nil
}
