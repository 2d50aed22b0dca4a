package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/memtree-bench/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRecorderContract runs a suite of tests to verify that a RunRecorder implementation
// adheres to the defined interface contract.
func RunRecorderContract(t *testing.T, recorder RunRecorder) {
	ctx := context.Background()
	experiment := "contract-" + time.Now().Format("20060102150405")

	record := func(i int) domain.RunRecord {
		return domain.RunRecord{
			Experiment: experiment,
			Nodes:      100 + i,
			Model:      domain.ModelRef{Path: "train.txt.vw"},
			Train:      domain.Timing{Stage: domain.StageTrain, Elapsed: time.Duration(i) * time.Second},
			Evaluate:   domain.Timing{Stage: domain.StageEvaluate, Elapsed: time.Duration(i) * time.Millisecond},
			FinishedAt: time.Date(2024, 1, 1, 0, 0, i, 0, time.UTC),
		}
	}

	t.Run("Empty History", func(t *testing.T) {
		runs, err := recorder.List(ctx, "never-ran-"+experiment, 0)
		require.NoError(t, err)
		assert.Empty(t, runs)
	})

	t.Run("Record and List Most Recent First", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			require.NoError(t, recorder.Record(ctx, record(i)))
		}

		runs, err := recorder.List(ctx, experiment, 0)
		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.Equal(t, 103, runs[0].Nodes)
		assert.Equal(t, 101, runs[2].Nodes)
		assert.Equal(t, 3*time.Second, runs[0].Train.Elapsed)
		assert.Equal(t, domain.StageEvaluate, runs[0].Evaluate.Stage)
		assert.True(t, runs[0].FinishedAt.Equal(record(3).FinishedAt))
	})

	t.Run("Limit", func(t *testing.T) {
		runs, err := recorder.List(ctx, experiment, 2)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, 103, runs[0].Nodes)
	})

	t.Run("Experiments Are Isolated", func(t *testing.T) {
		other := record(9)
		other.Experiment = "other-" + experiment
		require.NoError(t, recorder.Record(ctx, other))

		runs, err := recorder.List(ctx, experiment, 0)
		require.NoError(t, err)
		assert.Len(t, runs, 3)
	})
}
