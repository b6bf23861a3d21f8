// Copyright 2026 Google LLC
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

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// FileName is the name of the optional config file in the root directory.
const FileName = ".spdxheaders.yaml"

// Config holds the settings that may be tuned per tree. The header text and
// the recognized extensions are compiled in and deliberately absent here.
type Config struct {
	// Skip lists gitignore-style patterns excluded from the walk.
	Skip []string `json:"skip"`
	// Quiet suppresses the per-file status lines.
	Quiet *bool `json:"quiet"`
}

// Load loads the configuration from .spdxheaders.yaml in root.
// A missing file yields an empty Config.
func Load(root string) (*Config, error) {
	configFile := filepath.Join(root, FileName)

	var config Config
	if _, err := os.Stat(configFile); err == nil {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", configFile, err)
		}

		if err := yaml.UnmarshalStrict(data, &config); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error checking %s: %w", configFile, err)
	}

	return &config, nil
}

// IsQuiet returns true if status lines are suppressed (defaulting to false).
func (c *Config) IsQuiet() bool {
	if c.Quiet != nil {
		return *c.Quiet
	}
	return false
}
