// Copyright 2026 The JSComp Authors
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

package cmd

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"jscomp.dev/go/compiler"
)

// defaultConfigFile is read, if present, when no configuration file is
// given on the command line.
const defaultConfigFile = "jscomp.yaml"

// A config holds the settings of a jscomp.yaml file.
type config struct {
	// J2CL selects whether J2CL passes run: auto, on or off.
	J2CL compiler.Mode `yaml:"j2cl"`

	// ClinitSuffixes overrides the name suffixes of J2CL class
	// initializers.
	ClinitSuffixes []string `yaml:"clinit_suffixes"`

	// OutDir is the default output directory of prune.
	OutDir string `yaml:"outdir"`
}

// loadConfig reads the configuration file selected by the --config flag.
func loadConfig(cmd *Command) (*config, error) {
	cfg := &config{}
	name := flagConfig.String(cmd)
	explicit := name != ""
	if !explicit {
		name = defaultConfigFile
	}
	b, err := os.ReadFile(name)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := parseConfig(b, cfg); err != nil {
		return nil, errorf("%s: %v", name, err)
	}
	return cfg, nil
}

func parseConfig(b []byte, cfg *config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		// An empty file.
		return nil
	}
	return err
}
