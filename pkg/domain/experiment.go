package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Experiment is the complete configuration of one benchmark run.
// It is built once at startup and passed by value; nothing mutates it afterwards.
type Experiment struct {
	Name       string `yaml:"name" json:"name" mapstructure:"name"`
	Executable string `yaml:"executable" json:"executable" mapstructure:"executable"`
	WorkDir    string `yaml:"work_dir" json:"work_dir" mapstructure:"work_dir"`
	BaseURL    string `yaml:"base_url" json:"base_url" mapstructure:"base_url"`
	TrainFile  string `yaml:"train_file" json:"train_file" mapstructure:"train_file"`
	TestFile   string `yaml:"test_file" json:"test_file" mapstructure:"test_file"`

	// NumExamples is the assumed size of the training set. The memory tree is sized from
	// this value, never from the corpus on disk.
	NumExamples  int `yaml:"num_examples" json:"num_examples" mapstructure:"num_examples"`
	MaxNumLabels int `yaml:"max_num_labels" json:"max_num_labels" mapstructure:"max_num_labels"`

	LeafExampleMultiplier float64 `yaml:"leaf_example_multiplier" json:"leaf_example_multiplier" mapstructure:"leaf_example_multiplier"`
	LearningRate          float64 `yaml:"learning_rate" json:"learning_rate" mapstructure:"learning_rate"`
	Bits                  int     `yaml:"bits" json:"bits" mapstructure:"bits"`
	Alpha                 float64 `yaml:"alpha" json:"alpha" mapstructure:"alpha"`
	Passes                int     `yaml:"passes" json:"passes" mapstructure:"passes"`
	LearnAtLeaf           bool    `yaml:"learn_at_leaf" json:"learn_at_leaf" mapstructure:"learn_at_leaf"`
	UseOAS                bool    `yaml:"use_oas" json:"use_oas" mapstructure:"use_oas"`
	DreamAtUpdate         int     `yaml:"dream_at_update" json:"dream_at_update" mapstructure:"dream_at_update"`
	DreamRepeats          int     `yaml:"dream_repeats" json:"dream_repeats" mapstructure:"dream_repeats"`
	Loss                  string  `yaml:"loss" json:"loss" mapstructure:"loss"`

	// Strict turns a non-zero exit of the learner into a pipeline failure.
	Strict bool `yaml:"strict" json:"strict" mapstructure:"strict"`
}

// Validate checks the fields that cannot be defaulted.
// Numeric ranges of the sizing inputs are checked by the sizing function itself.
func (e Experiment) Validate() error {
	required := []struct{ key, value string }{
		{"executable", e.Executable},
		{"base_url", e.BaseURL},
		{"train_file", e.TrainFile},
		{"test_file", e.TestFile},
		{"loss", e.Loss},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidExperiment, f.key)
		}
	}
	if e.TrainFile == e.TestFile {
		return fmt.Errorf("%w: train_file and test_file must differ", ErrInvalidExperiment)
	}
	return nil
}

// TrainSet returns the reference to the training corpus.
func (e Experiment) TrainSet() DatasetRef {
	return NewDatasetRef(e.WorkDir, e.BaseURL, e.TrainFile)
}

// TestSet returns the reference to the held-out corpus.
func (e Experiment) TestSet() DatasetRef {
	return NewDatasetRef(e.WorkDir, e.BaseURL, e.TestFile)
}

// Model returns the artifact the trainer writes for this experiment.
func (e Experiment) Model() ModelRef {
	return ModelFor(e.TrainSet())
}

// DatasetRef points at a corpus file both locally and on the remote host.
type DatasetRef struct {
	Name string `json:"name"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

// NewDatasetRef derives a reference from the static naming convention:
// the file lives under dir with its own name and is served at baseURL/name.
func NewDatasetRef(dir, baseURL, name string) DatasetRef {
	path := name
	if dir != "" && dir != "." {
		path = filepath.Join(dir, name)
	}
	return DatasetRef{
		Name: name,
		Path: path,
		URL:  strings.TrimSuffix(baseURL, "/") + "/" + name,
	}
}

// ModelSuffix is appended to the training corpus path to name the model artifact.
const ModelSuffix = ".vw"

// ModelRef points at a model artifact produced by the external trainer.
type ModelRef struct {
	Path string `json:"path"`
}

// ModelFor returns the model artifact path for a training corpus.
func ModelFor(train DatasetRef) ModelRef {
	return ModelRef{Path: train.Path + ModelSuffix}
}
