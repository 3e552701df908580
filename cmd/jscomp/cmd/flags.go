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
	"fmt"

	"github.com/spf13/pflag"
)

// Common flags
const (
	flagCompact  flagName = "compact"
	flagConfig   flagName = "config"
	flagJ2CL     flagName = "j2cl"
	flagOutDir   flagName = "outdir"
	flagSimplify flagName = "simplify"
	flagStats    flagName = "stats"
	flagSuffix   flagName = "suffix"
	flagVerbose  flagName = "verbose"
	flagWrite    flagName = "write"
)

func addGlobalFlags(f *pflag.FlagSet) {
	f.BoolP(string(flagVerbose), "v", false,
		"print information about progress")
	f.String(string(flagConfig), "",
		"configuration file (default jscomp.yaml, if present)")
}

func addOutFlags(f *pflag.FlagSet) {
	f.StringP(string(flagOutDir), "o", "",
		"write output files to this directory")
	f.BoolP(string(flagWrite), "w", false,
		"rewrite input files in place")
}

// A flagName names a flag shared by several commands. Accessing a flag
// that the running command did not add is a programming error and panics.
type flagName string

func (f flagName) lookup(cmd *Command) *pflag.Flag {
	fl := cmd.Flags().Lookup(string(f))
	if fl == nil {
		panic(fmt.Sprintf("command %q uses flag %q without adding it", cmd.Name(), f))
	}
	return fl
}

func (f flagName) Bool(cmd *Command) bool {
	f.lookup(cmd)
	v, _ := cmd.Flags().GetBool(string(f))
	return v
}

func (f flagName) String(cmd *Command) string {
	return f.lookup(cmd).Value.String()
}

func (f flagName) StringArray(cmd *Command) []string {
	f.lookup(cmd)
	v, _ := cmd.Flags().GetStringArray(string(f))
	return v
}

// Changed reports whether the flag was set on the command line.
func (f flagName) Changed(cmd *Command) bool {
	return f.lookup(cmd).Changed
}
