// Package cli implements the command-line driver: argument parsing, signal
// handling, and dispatch to the tokenize, parse, resolve and run
// sub-commands, all built on github.com/mna/mainer the same way the wider
// nenuphar lineage's own driver is.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "lumen"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> [<path>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> [<path>...]
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the %[1]s programming language.

The <command> can be one of:
       run                       Scan, parse, resolve and interpret the
                                 given source files.
       tokenize                  Execute the scanner phase and print the
                                 resulting tokens.
       parse                     Execute the scanner and parser phases and
                                 print the number of top-level statements.
       resolve                   Execute the scanner, parser and resolver
                                 phases and print the number of resolved
                                 bindings.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.

More information on the %[1]s repository:
       https://github.com/lumen-lang/lumen
`, binName)
)

// Cmd is the root command, populated from argv by mainer.Parser and
// dispatched by method name via buildCmds.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args  []string
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]
	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", cmdName)
	}
	if len(c.args[1:]) == 0 {
		return fmt.Errorf("%s: at least one file must be provided", cmdName)
	}
	return nil
}

// Main is the mainer.Cmd entry point: parses args, handles -h/-v, and
// otherwise dispatches to the resolved sub-command under a context
// cancelled on SIGINT.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: strings.ToUpper(binName) + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		return mainer.Failure
	}
	return mainer.Success
}

// buildCmds reflects over v's methods to find the sub-command handlers:
// those taking (context.Context, mainer.Stdio, []string) and returning a
// single error, keyed by their lower-cased method name.
func buildCmds(v any) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type
		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}

func printError(stdio mainer.Stdio, err error) error {
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
	}
	return err
}
