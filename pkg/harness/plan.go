package harness

import (
	"github.com/aretw0/memtree-bench/pkg/domain"
	"github.com/aretw0/memtree-bench/pkg/invocation"
	"github.com/aretw0/memtree-bench/pkg/sizing"
)

// Plan is the pair of invocations a run would execute.
type Plan struct {
	Nodes    int               `json:"nodes" yaml:"nodes"`
	Train    domain.Invocation `json:"train" yaml:"train"`
	Evaluate domain.Invocation `json:"evaluate" yaml:"evaluate"`
}

// NewPlan builds both invocations for exp without touching the filesystem.
func NewPlan(exp domain.Experiment) (Plan, error) {
	if err := exp.Validate(); err != nil {
		return Plan{}, err
	}
	nodes, err := sizing.ForExperiment(exp)
	if err != nil {
		return Plan{}, err
	}
	model := exp.Model()
	return Plan{
		Nodes:    nodes,
		Train:    invocation.Train(exp, exp.TrainSet(), model, nodes),
		Evaluate: invocation.Evaluate(exp, exp.TestSet(), model),
	}, nil
}
