package invocation_test

import (
	"testing"

	"github.com/aretw0/memtree-bench/pkg/domain"
	"github.com/aretw0/memtree-bench/pkg/invocation"
	"github.com/stretchr/testify/assert"
)

func amazonCat() domain.Experiment {
	return domain.Experiment{
		Name:                  "amazoncat-13k",
		Executable:            "../../build/vowpalwabbit/cli/vw",
		BaseURL:               "http://kalman.ml.cmu.edu/wen_datasets",
		TrainFile:             "amazoncat_train.mat.mult_label.vw.txt",
		TestFile:              "amazoncat_test.mat.mult_label.vw.txt",
		NumExamples:           1186239,
		MaxNumLabels:          13330,
		LeafExampleMultiplier: 2,
		LearningRate:          1,
		Bits:                  30,
		Alpha:                 0.1,
		Passes:                4,
		LearnAtLeaf:           true,
		UseOAS:                true,
		DreamAtUpdate:         1,
		DreamRepeats:          3,
		Loss:                  "squared",
	}
}

func count(args []string, flag string) int {
	n := 0
	for _, a := range args {
		if a == flag {
			n++
		}
	}
	return n
}

func TestTrainArgs(t *testing.T) {
	exp := amazonCat()
	train := exp.TrainSet()
	got := invocation.TrainArgs(exp, train, exp.Model(), 29394)

	want := []string{
		"-d", "amazoncat_train.mat.mult_label.vw.txt",
		"--memory_tree", "29394",
		"--learn_at_leaf",
		"--dream_at_update", "1",
		"--max_number_of_labels", "13330",
		"--dream_repeats", "3",
		"--oas",
		"--leaf_example_multiplier", "2",
		"--alpha", "0.1",
		"-l", "1",
		"-b", "30",
		"-c",
		"--passes", "4",
		"--loss_function", "squared",
		"--holdout_off",
		"-f", "amazoncat_train.mat.mult_label.vw.txt.vw",
	}
	assert.Equal(t, want, got)
}

func TestTrainArgs_PresenceFlags(t *testing.T) {
	exp := amazonCat()

	on := invocation.TrainArgs(exp, exp.TrainSet(), exp.Model(), 10)
	assert.Equal(t, 1, count(on, "--learn_at_leaf"))
	assert.Equal(t, 1, count(on, "--oas"))

	exp.LearnAtLeaf = false
	exp.UseOAS = false
	off := invocation.TrainArgs(exp, exp.TrainSet(), exp.Model(), 10)
	assert.Zero(t, count(off, "--learn_at_leaf"))
	assert.Zero(t, count(off, "--oas"))
	assert.NotContains(t, off, "false")
	assert.Len(t, off, len(on)-2)

	// always-present switches
	assert.Equal(t, 1, count(off, "-c"))
	assert.Equal(t, 1, count(off, "--holdout_off"))
}

func TestBuilder_Deterministic(t *testing.T) {
	exp := amazonCat()
	first := invocation.Train(exp, exp.TrainSet(), exp.Model(), 42)
	second := invocation.Train(exp, exp.TrainSet(), exp.Model(), 42)
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, first, second)

	e1 := invocation.Evaluate(exp, exp.TestSet(), exp.Model())
	e2 := invocation.Evaluate(exp, exp.TestSet(), exp.Model())
	assert.Equal(t, e1.String(), e2.String())
}

func TestEvaluateArgs(t *testing.T) {
	exp := amazonCat()
	model := exp.Model()

	got := invocation.EvaluateArgs(exp, exp.TestSet(), model)
	assert.Equal(t, []string{
		"amazoncat_test.mat.mult_label.vw.txt",
		"--oas", "true",
		"-i", "amazoncat_train.mat.mult_label.vw.txt.vw",
	}, got)

	exp.UseOAS = false
	got = invocation.EvaluateArgs(exp, exp.TestSet(), model)
	assert.Equal(t, []string{"--oas", "false"}, got[1:3])
}

func TestOASAsymmetry(t *testing.T) {
	exp := amazonCat()
	model := exp.Model()

	train := invocation.Train(exp, exp.TrainSet(), model, 10)
	eval := invocation.Evaluate(exp, exp.TestSet(), model)

	i := indexOf(train.Args, "--oas")
	if assert.GreaterOrEqual(t, i, 0) {
		assert.Equal(t, "--leaf_example_multiplier", train.Args[i+1], "train --oas must be bare")
	}

	j := indexOf(eval.Args, "--oas")
	if assert.GreaterOrEqual(t, j, 0) {
		assert.Equal(t, "true", eval.Args[j+1], "evaluate --oas must carry a value")
	}
}

func TestEvaluate_ReferencesTrainOutput(t *testing.T) {
	exp := amazonCat()
	model := exp.Model()

	train := invocation.Train(exp, exp.TrainSet(), model, 10)
	eval := invocation.Evaluate(exp, exp.TestSet(), model)

	out := train.Args[indexOf(train.Args, "-f")+1]
	in := eval.Args[indexOf(eval.Args, "-i")+1]
	assert.Equal(t, out, in)
	assert.Equal(t, domain.StageTrain, train.Stage)
	assert.Equal(t, domain.StageEvaluate, eval.Stage)
	assert.Equal(t, exp.Executable, eval.Path)
}

func indexOf(args []string, flag string) int {
	for i, a := range args {
		if a == flag {
			return i
		}
	}
	return -1
}
