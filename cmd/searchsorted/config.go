// Copyright 2025 go-highway Authors
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

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-searchsorted/hwy"
	"github.com/ajroetker/go-searchsorted/hwy/contrib/workerpool"
)

// fileConfig is the on-disk configuration. Missing keys keep their defaults.
type fileConfig struct {
	Backend           hwy.DispatchLevel `yaml:"backend"`
	workerpool.Config `yaml:",inline"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Backend: hwy.CurrentLevel(),
		Config:  workerpool.DefaultConfig(),
	}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
