// This file is part of aoc19 - https://github.com/peterall/aoc19
//
// Copyright 2019 The aoc19 Authors
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
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/peterall/aoc19/vm"
)

// Config holds the settings that can be read from a configuration file. Command
// line flags override them.
type Config struct {
	Program     string    `yaml:"program"`
	Input       []vm.Cell `yaml:"input"`
	ASCII       bool      `yaml:"ascii"`
	LogLevel    string    `yaml:"log_level"`
	MemoryLimit int       `yaml:"memory_limit"`
	Chain       struct {
		Phases   []vm.Cell `yaml:"phases"`
		Feedback bool      `yaml:"feedback"`
		Seed     vm.Cell   `yaml:"seed"`
	} `yaml:"chain"`
}

func loadConfig(fileName string) (*Config, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	var cfg Config
	if err = yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "config %s", fileName)
	}
	if cfg.MemoryLimit < 0 {
		return nil, errors.Errorf("config %s: negative memory limit", fileName)
	}
	return &cfg, nil
}
