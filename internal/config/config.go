// Package config assembles the experiment configuration from built-in defaults and an
// optional YAML or JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/aretw0/memtree-bench/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Defaults reproduces the AmazonCat-13K memory-tree experiment.
func Defaults() domain.Experiment {
	return domain.Experiment{
		Name:                  "amazoncat-13k",
		Executable:            "vw",
		WorkDir:               ".",
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

// Load returns the defaults overlaid with the keys present in the file at path.
// An empty path returns the defaults unchanged. Unknown keys are an error.
func Load(path string) (domain.Experiment, error) {
	exp := Defaults()
	if path == "" {
		return exp, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return exp, fmt.Errorf("experiment file not found: %s", path)
		}
		return exp, fmt.Errorf("failed to read experiment file: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return exp, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return exp, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := Overlay(&exp, raw); err != nil {
		return exp, fmt.Errorf("%s: %w", path, err)
	}
	return exp, nil
}

// Overlay decodes values onto exp, leaving fields without a key untouched.
// Scalars are converted loosely, so "0.5" and 1 both decode into a float field.
// A fractional number is rejected for an integer field rather than truncated.
func Overlay(exp *domain.Experiment, values map[string]any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           exp,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       rejectFractionalInts,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(values); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidExperiment, err)
	}
	return nil
}

func rejectFractionalInts(from, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}
	var f float64
	switch v := data.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return data, nil
	}
	if math.Trunc(f) != f {
		return nil, fmt.Errorf("%v is not a whole number", f)
	}
	return data, nil
}

// Marshal renders exp as YAML in the same shape Load accepts.
func Marshal(exp domain.Experiment) ([]byte, error) {
	return yaml.Marshal(exp)
}
