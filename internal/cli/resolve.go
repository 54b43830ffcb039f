package cli

import (
	"context"
	"fmt"
	"go/scanner"
	"os"

	"github.com/mna/mainer"

	"github.com/lumen-lang/lumen/lang/parser"
	"github.com/lumen-lang/lumen/lang/resolver"
	lumscanner "github.com/lumen-lang/lumen/lang/scanner"
)

// Resolve scans, parses and resolves each file, printing the number of
// variable-reference bindings the resolver recorded.
func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, args []string) error {
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
		if errs.Err() != nil {
			continue
		}
		bindings, err := resolver.New(file).Resolve(prog)
		if err != nil {
			errs.Add(scannerPosition(file, 0), err.Error())
			continue
		}
		fmt.Fprintf(stdio.Stdout, "%s: %d bindings resolved\n", file, len(bindings))
	}
	if err := errs.Err(); err != nil {
		return printError(stdio, err)
	}
	return nil
}
