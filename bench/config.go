// Copyright 2025 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"math"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Output formats understood by Report.Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultConfigFile is where the CLI looks for a config when none is given.
const DefaultConfigFile = "~/.sortbench.yml"

// Config controls one benchmark run.
type Config struct {
	// Size is the number of elements in the dataset.
	Size int `yaml:"size" json:"size"`

	// Values are drawn uniformly from [MinValue, MaxValue).
	MinValue int `yaml:"min_value" json:"min_value"`
	MaxValue int `yaml:"max_value" json:"max_value"`

	// Seed fixes the dataset and quicksort pivots. Zero picks one from the clock.
	Seed uint64 `yaml:"seed" json:"seed"`

	// Sample is how many leading elements the report shows.
	Sample int `yaml:"sample" json:"sample"`

	// Runs is how many times each algorithm sorts a fresh copy.
	Runs int `yaml:"runs" json:"runs"`

	// Algorithms holds glob patterns matched against algorithm names.
	Algorithms []string `yaml:"algorithms" json:"algorithms"`

	Verify bool   `yaml:"verify" json:"verify"`
	Format string `yaml:"format" json:"format"`
}

// DefaultConfig returns 100,000 values in [0, 100000) sorted once by every
// algorithm.
func DefaultConfig() Config {
	return Config{
		Size:       100000,
		MinValue:   0,
		MaxValue:   100000,
		Sample:     10,
		Runs:       1,
		Algorithms: AlgorithmNames(),
		Verify:     true,
		Format:     FormatText,
	}
}

// LoadConfig reads a YAML config from path on top of DefaultConfig. Keys
// absent from the file keep their defaults; unknown keys are an error.
// When optional is set a missing file yields the defaults.
func LoadConfig(path string, optional bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "expand config path %s", path)
	}

	data, err := os.ReadFile(expanded)
	if os.IsNotExist(err) && optional {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", expanded)
	}
	return cfg, nil
}

// Validate checks the config for values no run could honour.
func (c Config) Validate() error {
	switch {
	case c.Size < 0:
		return errors.Errorf("size must not be negative: %d", c.Size)
	case c.MaxValue <= c.MinValue:
		return errors.Errorf("max_value (%d) must be greater than min_value (%d)", c.MaxValue, c.MinValue)
	case c.MinValue < 0 && c.MaxValue > math.MaxInt+c.MinValue:
		return errors.Errorf("value range [%d, %d) is wider than an int can hold", c.MinValue, c.MaxValue)
	case c.Runs < 1:
		return errors.Errorf("runs must be at least 1: %d", c.Runs)
	case c.Sample < 0:
		return errors.Errorf("sample must not be negative: %d", c.Sample)
	case len(c.Algorithms) == 0:
		return errors.New("no algorithms selected")
	}

	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Errorf("unknown format %q", c.Format)
	}

	_, err := SelectAlgorithms(c.Algorithms)
	return err
}
