package cli

import (
	"context"
	"fmt"
	"go/scanner"
	"os"

	"github.com/mna/mainer"

	"github.com/lumen-lang/lumen/lang/parser"
	lumscanner "github.com/lumen-lang/lumen/lang/scanner"
)

// Parse scans and parses each file, printing the number of top-level
// statements in its AST. A full pretty-printer is out of scope for this command; this is
// enough to smoke-test a source file from the command line.
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	var errs scanner.ErrorList
	for _, file := range args {
		src, err := os.ReadFile(file)
		if err != nil {
			errs.Add(scannerPosition(file, 0), err.Error())
			continue
		}
		toks := lumscanner.New(file, src, &errs).Scan()
		if errs.Err() != nil {
			continue
		}
		prog := parser.New(file, toks, &errs).ParseProgram()
		fmt.Fprintf(stdio.Stdout, "%s: %d top-level statements\n", file, len(prog.Stmts))
	}
	if err := errs.Err(); err != nil {
		return printError(stdio, err)
	}
	return nil
}
