// Package invocation turns an experiment into command lines for the external learner.
//
// Construction is pure: it never touches the filesystem and returns identical argument
// lists for identical inputs. All boolean encodings live here. Training takes
// presence-only switches (--learn_at_leaf, --oas), while evaluation passes --oas with an
// explicit value; the asymmetry is kept on purpose and confined to oasEvaluate.
package invocation

import (
	"strconv"

	"github.com/aretw0/memtree-bench/pkg/domain"
)

// Train builds the training invocation. nodes is the memory-tree size computed for the run.
func Train(exp domain.Experiment, train domain.DatasetRef, model domain.ModelRef, nodes int) domain.Invocation {
	return domain.Invocation{
		Stage: domain.StageTrain,
		Path:  exp.Executable,
		Args:  TrainArgs(exp, train, model, nodes),
	}
}

// Evaluate builds the evaluation invocation against model.
func Evaluate(exp domain.Experiment, test domain.DatasetRef, model domain.ModelRef) domain.Invocation {
	return domain.Invocation{
		Stage: domain.StageEvaluate,
		Path:  exp.Executable,
		Args:  EvaluateArgs(exp, test, model),
	}
}

// TrainArgs returns the training flags in the order the learner documents them.
func TrainArgs(exp domain.Experiment, train domain.DatasetRef, model domain.ModelRef, nodes int) []string {
	var a args
	a.value("-d", train.Path)
	a.value("--memory_tree", itoa(nodes))
	a.flag("--learn_at_leaf", exp.LearnAtLeaf)
	a.value("--dream_at_update", itoa(exp.DreamAtUpdate))
	a.value("--max_number_of_labels", itoa(exp.MaxNumLabels))
	a.value("--dream_repeats", itoa(exp.DreamRepeats))
	a.flag("--oas", exp.UseOAS)
	a.value("--leaf_example_multiplier", ftoa(exp.LeafExampleMultiplier))
	a.value("--alpha", ftoa(exp.Alpha))
	a.value("-l", ftoa(exp.LearningRate))
	a.value("-b", itoa(exp.Bits))
	a.flag("-c", true)
	a.value("--passes", itoa(exp.Passes))
	a.value("--loss_function", exp.Loss)
	a.flag("--holdout_off", true)
	a.value("-f", model.Path)
	return a
}

// EvaluateArgs returns the evaluation flags. The test corpus is positional.
func EvaluateArgs(exp domain.Experiment, test domain.DatasetRef, model domain.ModelRef) []string {
	a := args{test.Path}
	a.value("--oas", oasEvaluate(exp.UseOAS))
	a.value("-i", model.Path)
	return a
}

// oasEvaluate encodes the one-against-some setting as a value-bearing flag.
func oasEvaluate(on bool) string {
	return strconv.FormatBool(on)
}

type args []string

// flag appends a presence-encoded switch; false means the switch is omitted.
func (a *args) flag(name string, on bool) {
	if on {
		*a = append(*a, name)
	}
}

func (a *args) value(name, v string) {
	*a = append(*a, name, v)
}

func itoa(n int) string { return strconv.Itoa(n) }

// ftoa uses the shortest representation that round-trips, so 0.1 stays "0.1" and 1 is "1".
func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
