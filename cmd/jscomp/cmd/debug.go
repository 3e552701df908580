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
	"reflect"

	"github.com/spf13/cobra"

	"jscomp.dev/go/internal/astinternal"
	"jscomp.dev/go/js/token"
)

func newDebugCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:    "debug",
		Short:  "commands for inspecting jscomp internals",
		Hidden: true,
	}
	cmd.AddCommand(newDebugASTCmd(c))
	return cmd
}

func newDebugASTCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast [--compact] files...",
		Short: "print the syntax tree of JavaScript files",
		Long: `Ast prints the syntax tree of each given file. By default every node is
printed with its type and fields, omitting empty fields and positions.
With --compact, each file is printed on a single line with expressions
fully parenthesized.
`,
		RunE: mkRunE(c, runDebugAST),
	}
	cmd.Flags().Bool(string(flagCompact), false,
		"print a compact single-line form")
	return cmd
}

var posType = reflect.TypeOf(token.NoPos)

func runDebugAST(cmd *Command, args []string) error {
	files := parseFiles(cmd, args)
	w := cmd.OutOrStdout()
	for _, f := range files {
		if flagCompact.Bool(cmd) {
			fmt.Fprintf(w, "%s: %s\n", f.Filename, astinternal.DebugStr(f))
			continue
		}
		b := astinternal.AppendDebug(nil, f, astinternal.DebugConfig{
			OmitEmpty: true,
			Filter: func(v reflect.Value) bool {
				return v.Type() != posType
			},
		})
		_, err := w.Write(b)
		exitOnErr(cmd, err, true)
	}
	return nil
}
