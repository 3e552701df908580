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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/mod/module"
)

func newVersionCmd(c *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print jscomp version",
		Args:  cobra.NoArgs,
		RunE:  mkRunE(c, runVersion),
	}
}

const develVersion = "(devel)"

// version is set by release builds with
// -ldflags='-X jscomp.dev/go/cmd/jscomp/cmd.version=<version>'.
var version = develVersion

func runVersion(cmd *Command, args []string) error {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("no build information embedded in binary")
	}
	// JSCOMP_VERSION_TEST_CFG adds build settings, as a JSON list, so that
	// tests can pin the VCS information.
	if cfg := os.Getenv("JSCOMP_VERSION_TEST_CFG"); cfg != "" {
		var extra []debug.BuildSetting
		if err := json.Unmarshal([]byte(cfg), &extra); err != nil {
			return fmt.Errorf("invalid JSCOMP_VERSION_TEST_CFG: %v", err)
		}
		bi.Settings = append(bi.Settings, extra...)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "jscomp version %s\n\n", mainVersion(bi))
	fmt.Fprintf(w, "go version %s\n", runtime.Version())
	for _, s := range bi.Settings {
		if s.Value != "" {
			fmt.Fprintf(w, "%16s %s\n", s.Key, s.Value)
		}
	}
	return nil
}

// mainVersion picks, in order, the linker-provided version, the module
// version recorded by go install, or a pseudo-version derived from the
// VCS stamp.
func mainVersion(bi *debug.BuildInfo) string {
	if version != develVersion {
		return version
	}
	if v := bi.Main.Version; v != "" && v != develVersion {
		return v
	}
	var (
		rev string
		at  time.Time
	)
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.time":
			at, _ = time.Parse(time.RFC3339Nano, s.Value)
		}
	}
	if rev == "" {
		return develVersion
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	return module.PseudoVersion("", "", at, rev)
}
