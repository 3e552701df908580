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
	"os"

	"github.com/spf13/cobra"

	"jscomp.dev/go/internal/source"
	"jscomp.dev/go/js/format"
	"jscomp.dev/go/js/parser"
)

func newFmtCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [-s] [-w] files...",
		Short: "formats JavaScript files",
		Long: `Fmt reprints the given files in canonical form. The result is written to
standard output unless --write is given. The file name - stands for
standard input.
`,
		RunE: mkRunE(c, runFmt),
	}
	cmd.Flags().BoolP(string(flagSimplify), "s", false,
		"simplify output")
	cmd.Flags().BoolP(string(flagWrite), "w", false,
		"rewrite input files in place")
	return cmd
}

func runFmt(cmd *Command, args []string) error {
	if len(args) == 0 {
		exitOnErr(cmd, errorf("no input files"), true)
	}
	var opts []format.Option
	if flagSimplify.Bool(cmd) {
		opts = append(opts, format.Simplify())
	}
	for _, name := range args {
		src, err := source.ReadAll(name, nil)
		exitOnErr(cmd, err, true)

		f, err := parser.ParseFile(name, src)
		if err != nil {
			exitOnErr(cmd, err, false)
			continue
		}
		b, err := format.Node(f, opts...)
		exitOnErr(cmd, err, true)

		if flagWrite.Bool(cmd) && name != source.Stdin {
			err = os.WriteFile(name, b, 0o666)
			exitOnErr(cmd, err, true)
			continue
		}
		_, err = cmd.OutOrStdout().Write(b)
		exitOnErr(cmd, err, true)
	}
	return nil
}
