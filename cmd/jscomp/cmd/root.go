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
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"jscomp.dev/go/internal/jsdebug"
)

const rootHelp = `jscomp reads JavaScript files produced by the J2CL Java to JavaScript
compiler and removes calls to class initializers that are known to have
run already.

Files whose name ends in .java.js are considered J2CL output. Use the
--j2cl flag or the j2cl setting of the configuration file to override
this detection.

The JSCOMP_FLAGS environment variable holds extra flags that are added to
every command line. The JSCOMP_DEBUG environment variable holds a comma
separated list of debug options:

	logpasses    log a summary of every optimization pass
	strict       verify internal consistency after every pass
	nolookahead  disable pruning of initializer calls based on the
	             function called next
`

// A Command is the jscomp command tree together with the subcommand that
// is currently running.
type Command struct {
	*cobra.Command

	root *cobra.Command

	// failed records whether anything was written to Stderr.
	failed bool
}

// ErrPrintedError is returned when errors were already reported on
// stderr and only the exit code remains to be set.
var ErrPrintedError = errors.New("terminating because of errors")

// abort unwinds a running command after its errors have been reported.
type abort struct{ err error }

func exit() { panic(abort{ErrPrintedError}) }

func catchAbort(err *error) {
	r := recover()
	if r == nil {
		return
	}
	a, ok := r.(abort)
	if !ok {
		panic(r)
	}
	*err = a.err
}

type runFunction func(cmd *Command, args []string) error

// mkRunE adapts f to cobra, making the running subcommand current and
// loading JSCOMP_DEBUG first.
func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c.Command = cmd
		if err := jsdebug.Init(); err != nil {
			return err
		}
		return f(c, args)
	}
}

// New returns the jscomp command tree for the given arguments, not
// including the program name.
func New(args []string) (*Command, error) {
	root := &cobra.Command{
		Use:          "jscomp",
		Short:        "jscomp optimizes JavaScript produced by J2CL.",
		Long:         rootHelp,
		SilenceUsage: true,
	}
	c := &Command{Command: root, root: root}
	addGlobalFlags(root.PersistentFlags())
	root.AddCommand(
		newPruneCmd(c),
		newFmtCmd(c),
		newDebugCmd(c),
		newVersionCmd(c),
	)
	root.SetArgs(args)
	return c, nil
}

// Run executes the command. It returns ErrPrintedError if any errors were
// reported on Stderr, even if the command itself succeeded.
func (c *Command) Run(ctx context.Context) (err error) {
	defer catchAbort(&err)
	if err := c.root.ExecuteContext(ctx); err != nil {
		return err
	}
	if c.failed {
		return ErrPrintedError
	}
	return nil
}

// Stderr returns the writer for error messages. Writing to it makes the
// command exit with a non-zero code. Diagnostics that must not affect the
// exit code go to OutOrStderr instead.
func (c *Command) Stderr() io.Writer { return stderr{c} }

type stderr struct{ c *Command }

func (w stderr) Write(b []byte) (int, error) {
	w.c.failed = true
	return w.c.OutOrStderr().Write(b)
}

// Main runs the jscomp tool and returns the code for passing to os.Exit.
func Main() int {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		if err != ErrPrintedError {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}

// MainTest is Main with output normalized for tests.
func MainTest() int {
	inTest = true
	return Main()
}

func run(ctx context.Context, args []string) error {
	args, err := withEnvFlags(args)
	if err != nil {
		return err
	}
	c, err := New(args)
	if err != nil {
		return err
	}
	return c.Run(ctx)
}

// withEnvFlags inserts the flags of JSCOMP_FLAGS after the command name.
func withEnvFlags(args []string) ([]string, error) {
	env := os.Getenv("JSCOMP_FLAGS")
	if env == "" || len(args) == 0 {
		return args, nil
	}
	extra, err := shlex.Split(env)
	if err != nil {
		return nil, fmt.Errorf("cannot parse JSCOMP_FLAGS: %v", err)
	}
	out := make([]string, 0, len(args)+len(extra))
	out = append(out, args[0])
	out = append(out, extra...)
	return append(out, args[1:]...), nil
}
