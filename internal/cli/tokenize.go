package cli

import (
	"context"
	"fmt"
	"go/scanner"
	"os"

	"github.com/mna/mainer"
	lumscanner "github.com/lumen-lang/lumen/lang/scanner"
)

// Tokenize scans each file and prints its token stream, one token per
// line, accumulating scan errors across all files before reporting them.
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	var errs scanner.ErrorList
	for _, file := range args {
		src, err := os.ReadFile(file)
		if err != nil {
			errs.Add(scannerPosition(file, 0), err.Error())
			continue
		}
		toks := lumscanner.New(file, src, &errs).Scan()
		for _, tok := range toks {
			fmt.Fprintf(stdio.Stdout, "%s:%d: %s", file, tok.Line, tok.Kind)
			if tok.Str != "" {
				fmt.Fprintf(stdio.Stdout, " %s", tok.Str)
			}
			fmt.Fprintln(stdio.Stdout)
		}
	}
	if err := errs.Err(); err != nil {
		return printError(stdio, err)
	}
	return nil
}
