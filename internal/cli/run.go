package cli

import (
	"context"
	"fmt"
	"go/scanner"
	"os"
	"strings"

	"github.com/mna/mainer"

	"github.com/lumen-lang/lumen/lang/interp"
)

// stdoutSink prints each call to print as one line, its values joined
// with a single space, mirroring interp.MemorySink's join rule.
type stdoutSink struct{ stdio mainer.Stdio }

func (s stdoutSink) Print(values []string) {
	fmt.Fprintln(s.stdio.Stdout, strings.Join(values, " "))
}

// Run scans, parses, resolves and interprets each file in turn.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	var errs scanner.ErrorList
	sink := stdoutSink{stdio: stdio}

	for _, file := range args {
		src, err := os.ReadFile(file)
		if err != nil {
			errs.Add(scannerPosition(file, 0), err.Error())
			continue
		}
		if err := interp.FromCode(file, src, sink); err != nil {
			fmt.Fprintf(stdio.Stderr, "%s: %s\n", file, err)
			errs.Add(scannerPosition(file, 0), err.Error())
		}
	}
	if err := errs.Err(); err != nil {
		return err
	}
	return nil
}
