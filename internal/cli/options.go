package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/memtree-bench/internal/config"
	"github.com/aretw0/memtree-bench/pkg/domain"
)

// RunOptions contains all the configuration for the run-related commands.
type RunOptions struct {
	ConfigPath string
	// Sets are key=value overrides applied after the config file, e.g. "passes=1".
	Sets []string

	Executable string
	WorkDir    string
	BaseURL    string
	Strict     bool
	StrictSet  bool

	LogLevel    string
	Format      string
	MetricsAddr string
	RedisURL    string
	HTTPTimeout time.Duration
	Quiet       bool
}

// LoadExperiment resolves the effective experiment: defaults, then the config file,
// then --set pairs, then the dedicated flags.
func LoadExperiment(opts RunOptions) (domain.Experiment, error) {
	exp, err := config.Load(opts.ConfigPath)
	if err != nil {
		return exp, err
	}

	if len(opts.Sets) > 0 {
		values, err := parseSets(opts.Sets)
		if err != nil {
			return exp, err
		}
		if err := config.Overlay(&exp, values); err != nil {
			return exp, err
		}
	}

	if opts.Executable != "" {
		exp.Executable = opts.Executable
	}
	if opts.WorkDir != "" {
		exp.WorkDir = opts.WorkDir
	}
	if opts.BaseURL != "" {
		exp.BaseURL = opts.BaseURL
	}
	if opts.StrictSet {
		exp.Strict = opts.Strict
	}
	return exp, nil
}

func parseSets(sets []string) (map[string]any, error) {
	values := make(map[string]any, len(sets))
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q, want key=value", s)
		}
		values[key] = value
	}
	return values, nil
}
