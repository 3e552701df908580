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
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"jscomp.dev/go/internal/jsdebug"
	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/errors"
	"jscomp.dev/go/js/parser"
	"jscomp.dev/go/js/token"
)

var inTest = false

func getLang() language.Tag {
	loc := os.Getenv("LC_ALL")
	if loc == "" {
		loc = os.Getenv("LANG")
	}
	loc = strings.Split(loc, ".")[0]
	return language.Make(loc)
}

func errorf(format string, args ...interface{}) error {
	return errors.Newf(token.NoPos, format, args...)
}

func exitOnErr(cmd *Command, err error, fatal bool) {
	if err == nil {
		return
	}

	// Link x/text as our localizer.
	p := message.NewPrinter(getLang())
	format := func(w io.Writer, format string, args ...interface{}) {
		p.Fprintf(w, format, args...)
	}

	cwd, _ := os.Getwd()

	w := &bytes.Buffer{}
	errors.Print(w, err, &errors.Config{
		Format:  format,
		Cwd:     cwd,
		ToSlash: inTest,
	})

	b := w.Bytes()
	_, _ = cmd.Stderr().Write(b)
	if fatal {
		exit()
	}
}

// parseFiles parses the named files as a single program. Syntax errors
// are fatal.
func parseFiles(cmd *Command, args []string) []*ast.File {
	if len(args) == 0 {
		exitOnErr(cmd, errorf("no input files"), true)
	}
	prog, err := parser.ParseProgram(args, nil)
	exitOnErr(cmd, err, true)
	return prog.Files
}

// newLogger returns the logger for pass diagnostics. Debug records are
// only shown in verbose mode or with JSCOMP_DEBUG=logpasses.
func newLogger(cmd *Command) *slog.Logger {
	level := slog.LevelInfo
	if flagVerbose.Bool(cmd) || jsdebug.Flags.LogPasses {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.OutOrStderr(), &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Output must be reproducible.
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
