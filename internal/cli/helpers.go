package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/memtree-bench/pkg/domain"
)

// SignalContext is a context cancelled on SIGINT or SIGTERM that remembers which
// signal arrived.
type SignalContext struct {
	context.Context
	Cancel func()

	mu  sync.Mutex
	sig os.Signal
}

// NewSignalContext starts watching for SIGINT and SIGTERM until the context ends.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{Context: ctx, Cancel: cancel}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(ch)
		select {
		case sig := <-ch:
			sc.mu.Lock()
			sc.sig = sig
			sc.mu.Unlock()
			cancel()
		case <-ctx.Done():
		}
	}()
	return sc
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sig
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStageStart: func(ctx context.Context, e *domain.StageEvent) {
			logger.Debug("Stage Start", "stage", e.Stage)
		},
		OnStageEnd: func(ctx context.Context, e *domain.StageEvent) {
			if e.Err != nil {
				logger.Debug("Stage End (Error)", "stage", e.Stage, "err", e.Err)
			} else {
				logger.Debug("Stage End", "stage", e.Stage, "elapsed", e.Timing.Elapsed, "exit_code", e.Timing.ExitCode)
			}
		},
	}
}
