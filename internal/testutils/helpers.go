package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// StubLearner writes an executable shell script into dir that stands in for the real
// learner: it appends its arguments to callLog, creates the file named by -f (the model
// artifact) and prints a line to stdout. Tests using it are skipped on Windows.
func StubLearner(t *testing.T, dir string) (exe, callLog string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub learner is a shell script")
	}

	callLog = filepath.Join(dir, "calls.log")
	exe = filepath.Join(dir, "vw")
	script := fmt.Sprintf(`#!/bin/sh
echo "$*" >> '%s'
while [ $# -gt 0 ]; do
  if [ "$1" = "-f" ]; then : > "$2"; fi
  shift
done
echo "learner output"
`, callLog)
	require.NoError(t, os.WriteFile(exe, []byte(script), 0o755), "Failed to write stub learner")
	return exe, callLog
}

// WriteCorpora creates small placeholder corpus files in dir.
func WriteCorpora(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("1 | x\n"), 0o644))
	}
}
