// Package sizing derives the memory-tree node count from the expected data volume.
package sizing

import (
	"fmt"
	"math"

	"github.com/aretw0/memtree-bench/pkg/domain"
)

// NodeCount returns floor(n / (log2(n) * multiplier)).
//
// n is the assumed number of training examples and multiplier the leaf example
// multiplier. n must be greater than 1 so that log2(n) is positive, and multiplier must
// be a positive finite number.
func NodeCount(n int, multiplier float64) (int, error) {
	if n <= 1 {
		return 0, fmt.Errorf("%w: got %d", domain.ErrInvalidCardinality, n)
	}
	if !(multiplier > 0) || math.IsInf(multiplier, 0) {
		return 0, fmt.Errorf("%w: got %v", domain.ErrInvalidMultiplier, multiplier)
	}
	x := float64(n)
	nodes := math.Floor(x / (math.Log2(x) * multiplier))
	if math.IsInf(nodes, 0) || nodes >= math.MaxInt {
		return 0, fmt.Errorf("%w: %v yields more nodes than an int holds", domain.ErrInvalidMultiplier, multiplier)
	}
	return int(nodes), nil
}

// ForExperiment sizes the memory tree from the experiment's assumed example count.
func ForExperiment(exp domain.Experiment) (int, error) {
	return NodeCount(exp.NumExamples, exp.LeafExampleMultiplier)
}
