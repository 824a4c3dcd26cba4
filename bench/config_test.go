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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100000, cfg.Size)
	assert.Equal(t, 0, cfg.MinValue)
	assert.Equal(t, 100000, cfg.MaxValue)
	assert.Equal(t, 10, cfg.Sample)
	assert.Equal(t, []string{"quicksort", "selection", "insertion", "bubble", "shell"}, cfg.Algorithms)
	assert.True(t, cfg.Verify)
}

func TestConfigValidate(t *testing.T) {
	tests := map[string]struct {
		mutate func(*Config)
		err    string
	}{
		"negative size":       {func(c *Config) { c.Size = -1 }, "size must not be negative"},
		"empty range":         {func(c *Config) { c.MaxValue = c.MinValue }, "must be greater than"},
		"zero runs":           {func(c *Config) { c.Runs = 0 }, "runs must be at least 1"},
		"negative sample":     {func(c *Config) { c.Sample = -2 }, "sample must not be negative"},
		"no algorithms":       {func(c *Config) { c.Algorithms = nil }, "no algorithms selected"},
		"bad format":          {func(c *Config) { c.Format = "xml" }, `unknown format "xml"`},
		"bad pattern":         {func(c *Config) { c.Algorithms = []string{"heap"} }, `no algorithm matches "heap"`},
		"range overflows int": {func(c *Config) { c.MinValue, c.MaxValue = math.MinInt, math.MaxInt }, "wider than an int can hold"},
		"widest range ok":     {func(c *Config) { c.MinValue, c.MaxValue = math.MinInt+1, 0 }, ""},
		"zero size ok":        {func(c *Config) { c.Size = 0 }, ""},
		"negative range":      {func(c *Config) { c.MinValue, c.MaxValue = -1000000, 1000001 }, ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.err == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sortbench.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "size: 2500\nseed: 99\nalgorithms: [\"quick*\", shell]\nformat: json\n")

	cfg, err := LoadConfig(path, false)
	require.NoError(t, err)

	assert.Equal(t, 2500, cfg.Size)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, []string{"quick*", "shell"}, cfg.Algorithms)
	assert.Equal(t, FormatJSON, cfg.Format)

	// untouched keys keep their defaults
	assert.Equal(t, 100000, cfg.MaxValue)
	assert.Equal(t, 1, cfg.Runs)
	assert.True(t, cfg.Verify)
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := writeConfig(t, "sise: 10\n")

	_, err := LoadConfig(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadConfigMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yml")

	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = LoadConfig(path, false)
	assert.Error(t, err)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("", false)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
