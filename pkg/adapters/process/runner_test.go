package process_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/aretw0/memtree-bench/pkg/adapters/process"
	"github.com/aretw0/memtree-bench/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("process tests rely on /bin/sh")
	}
}

func shell(stage domain.Stage, script string) domain.Invocation {
	return domain.Invocation{Stage: stage, Path: "sh", Args: []string{"-c", script}}
}

func TestRunner_Run(t *testing.T) {
	requireShell(t)
	ctx := context.Background()

	t.Run("Times Successful Process", func(t *testing.T) {
		var out bytes.Buffer
		r := process.NewRunner(process.WithOutput(&out, &out))

		before := time.Now()
		timing, err := r.Run(ctx, shell(domain.StageTrain, "sleep 0.1; echo done"))
		require.NoError(t, err)

		assert.Equal(t, domain.StageTrain, timing.Stage)
		assert.GreaterOrEqual(t, timing.Elapsed, 100*time.Millisecond)
		assert.False(t, timing.Start.Before(before))
		assert.Equal(t, 0, timing.ExitCode)
		assert.Equal(t, "done\n", out.String())
	})

	t.Run("Passes Arguments Verbatim", func(t *testing.T) {
		var out bytes.Buffer
		r := process.NewRunner(process.WithOutput(&out, nil))

		inv := domain.Invocation{Path: "sh", Args: []string{"-c", `printf '%s|' "$@"`, "sh", "--oas", "true", "a b"}}
		_, err := r.Run(ctx, inv)
		require.NoError(t, err)
		assert.Equal(t, "--oas|true|a b|", out.String())
	})

	t.Run("Runs In Invocation Dir With Extra Env", func(t *testing.T) {
		dir := t.TempDir()
		r := process.NewRunner(process.WithOutput(nil, nil), process.WithEnv("MODEL_NAME=m.vw"))

		inv := shell(domain.StageTrain, `touch "$MODEL_NAME"`)
		inv.Dir = dir
		_, err := r.Run(ctx, inv)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "m.vw"))
	})

	t.Run("Non-Zero Exit Is Tolerated By Default", func(t *testing.T) {
		r := process.NewRunner(process.WithOutput(nil, nil))
		timing, err := r.Run(ctx, shell(domain.StageEvaluate, "exit 3"))
		require.NoError(t, err)
		assert.Equal(t, 3, timing.ExitCode)
		assert.GreaterOrEqual(t, timing.Elapsed, time.Duration(0))
	})

	t.Run("Non-Zero Exit Fails In Strict Mode", func(t *testing.T) {
		r := process.NewRunner(process.WithOutput(nil, nil), process.WithStrict(true))
		timing, err := r.Run(ctx, shell(domain.StageEvaluate, "exit 3"))
		assert.ErrorIs(t, err, domain.ErrNonZeroExit)
		assert.Equal(t, 3, timing.ExitCode)
	})

	t.Run("Missing Executable Is A Launch Failure", func(t *testing.T) {
		r := process.NewRunner()
		_, err := r.Run(ctx, domain.Invocation{Path: filepath.Join(t.TempDir(), "no-such-vw")})
		assert.ErrorIs(t, err, domain.ErrLaunch)
	})

	t.Run("Non-Executable File Is A Launch Failure", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vw")
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o644))

		r := process.NewRunner()
		_, err := r.Run(ctx, domain.Invocation{Path: path})
		assert.ErrorIs(t, err, domain.ErrLaunch)
	})
}

func TestRunner_Cancel(t *testing.T) {
	requireShell(t)

	r := process.NewRunner(process.WithOutput(nil, nil), process.WithGracePeriod(time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := r.Run(ctx, shell(domain.StageTrain, "sleep 30"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}
