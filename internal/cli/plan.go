package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/memtree-bench/internal/config"
	"github.com/aretw0/memtree-bench/pkg/harness"
	"github.com/aretw0/memtree-bench/pkg/sizing"
)

// PrintPlan writes both learner command lines without running anything.
func PrintPlan(opts RunOptions, asJSON bool, w io.Writer) error {
	exp, err := LoadExperiment(opts)
	if err != nil {
		return err
	}
	plan, err := harness.NewPlan(exp)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}
	fmt.Fprintf(w, "# memory tree nodes: %d\n", plan.Nodes)
	fmt.Fprintln(w, plan.Train.String())
	fmt.Fprintln(w, plan.Evaluate.String())
	return nil
}

// PrintConfig writes the effective experiment as YAML.
func PrintConfig(opts RunOptions, w io.Writer) error {
	exp, err := LoadExperiment(opts)
	if err != nil {
		return err
	}
	data, err := config.Marshal(exp)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// PrintSize writes the memory tree size for the effective experiment.
func PrintSize(opts RunOptions, w io.Writer) error {
	exp, err := LoadExperiment(opts)
	if err != nil {
		return err
	}
	nodes, err := sizing.ForExperiment(exp)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, nodes)
	return nil
}
