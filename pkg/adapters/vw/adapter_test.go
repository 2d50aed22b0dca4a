package vw_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/memtree-bench/pkg/adapters/vw"
	"github.com/aretw0/memtree-bench/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockExecutor struct {
	mock.Mock
}

func (m *mockExecutor) Run(ctx context.Context, inv domain.Invocation) (domain.Timing, error) {
	args := m.Called(ctx, inv)
	return args.Get(0).(domain.Timing), args.Error(1)
}

func experiment() domain.Experiment {
	return domain.Experiment{
		Executable:            "vw",
		BaseURL:               "http://h",
		TrainFile:             "train.txt",
		TestFile:              "test.txt",
		LeafExampleMultiplier: 2,
		LearningRate:          1,
		Alpha:                 0.1,
		UseOAS:                true,
		Loss:                  "squared",
	}
}

func TestAdapter_TrainThenEvaluate(t *testing.T) {
	ctx := context.Background()
	exp := experiment()
	exec := new(mockExecutor)

	exec.On("Run", ctx, mock.MatchedBy(func(inv domain.Invocation) bool {
		return inv.Stage == domain.StageTrain
	})).Return(domain.Timing{Stage: domain.StageTrain, Elapsed: time.Second}, nil).Once()

	exec.On("Run", ctx, mock.MatchedBy(func(inv domain.Invocation) bool {
		return inv.Stage == domain.StageEvaluate
	})).Return(domain.Timing{Stage: domain.StageEvaluate, Elapsed: time.Millisecond}, nil).Once()

	a := vw.New(exec)

	model, timing, err := a.Train(ctx, exp, exp.TrainSet(), 77)
	require.NoError(t, err)
	assert.Equal(t, "train.txt.vw", model.Path)
	assert.Equal(t, time.Second, timing.Elapsed)

	_, err = a.Evaluate(ctx, exp, exp.TestSet(), model)
	require.NoError(t, err)

	exec.AssertExpectations(t)

	trainInv := exec.Calls[0].Arguments.Get(1).(domain.Invocation)
	evalInv := exec.Calls[1].Arguments.Get(1).(domain.Invocation)
	assert.Empty(t, trainInv.Dir)
	assert.Contains(t, trainInv.Args, "77")
	assert.Equal(t, []string{"test.txt", "--oas", "true", "-i", "train.txt.vw"}, evalInv.Args)
}
