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
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"jscomp.dev/go/compiler"
	"jscomp.dev/go/internal/jsdebug"
	"jscomp.dev/go/internal/source"
	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/format"
)

func newPruneCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune [flags] files...",
		Short: "remove redundant J2CL class initializer calls",
		Long: `Prune removes calls to J2CL class initializers that cannot have an
effect. A call is removed if

  - the same initializer was called before on every path leading to it,
  - it is directly followed by a call of a function that starts by
    calling the same initializer, or
  - the initializer does nothing but replace itself with an empty
    function, in which case the initializer body is removed as well.

All files are analyzed together. The result is written to standard
output, preceded by a "// file:" line per file if there is more than one,
or to the directory given by --outdir, or back to the input files with
--write. The file name - stands for standard input.
`,
		RunE: mkRunE(c, runPrune),
	}
	cmd.Flags().String(string(flagJ2CL), "",
		"run J2CL passes: auto, on or off (default auto)")
	cmd.Flags().StringArray(string(flagSuffix), nil,
		"name suffix identifying a class initializer; may be repeated")
	cmd.Flags().Bool(string(flagStats), false,
		"print a summary of the removed calls")
	addOutFlags(cmd.Flags())
	return cmd
}

func runPrune(cmd *Command, args []string) error {
	cfg, err := loadConfig(cmd)
	exitOnErr(cmd, err, true)

	opts := compiler.Options{
		J2CL:           cfg.J2CL,
		ClinitSuffixes: cfg.ClinitSuffixes,
		Logger:         newLogger(cmd),
		Debug:          jsdebug.Flags,
	}
	if flagJ2CL.Changed(cmd) {
		opts.J2CL, err = compiler.ParseMode(flagJ2CL.String(cmd))
		exitOnErr(cmd, err, true)
	}
	if flagSuffix.Changed(cmd) {
		opts.ClinitSuffixes = flagSuffix.StringArray(cmd)
	}
	outDir := cfg.OutDir
	if flagOutDir.Changed(cmd) {
		outDir = flagOutDir.String(cmd)
	}

	files := parseFiles(cmd, args)
	c := compiler.New(files, opts)
	r := c.RunClinitPruning(nil)

	if flagStats.Bool(cmd) {
		p := message.NewPrinter(getLang())
		p.Fprintf(cmd.OutOrStderr(),
			"pruned %d redundant and %d look-ahead clinit calls; emptied %d clinits; removed %d references in %d iterations\n",
			r.Redundant, r.Lookahead, len(r.Emptied), r.References, r.Iterations)
	}

	writeFiles(cmd, files, outDir, flagWrite.Bool(cmd))
	return nil
}

// writeFiles prints files to outDir, back to their source with inPlace,
// or to standard output otherwise.
func writeFiles(cmd *Command, files []*ast.File, outDir string, inPlace bool) {
	if outDir != "" {
		err := os.MkdirAll(outDir, 0o777)
		exitOnErr(cmd, err, true)
	}
	w := cmd.OutOrStdout()
	for _, f := range files {
		b, err := format.Node(f)
		exitOnErr(cmd, err, true)

		switch {
		case outDir != "":
			err = os.WriteFile(filepath.Join(outDir, filepath.Base(f.Filename)), b, 0o666)
		case inPlace && f.Filename != source.Stdin:
			err = os.WriteFile(f.Filename, b, 0o666)
		default:
			if len(files) > 1 {
				fmt.Fprintf(w, "// file: %s\n", f.Filename)
			}
			_, err = w.Write(b)
		}
		exitOnErr(cmd, err, true)
	}
}
