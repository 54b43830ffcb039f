package interp

import (
	"go/scanner"

	"github.com/lumen-lang/lumen/lang/ast"
	"github.com/lumen-lang/lumen/lang/parser"
	lumscanner "github.com/lumen-lang/lumen/lang/scanner"
	"github.com/lumen-lang/lumen/lang/resolver"
)

// FromCode runs the full scan → parse → resolve → interpret pipeline over
// source, writing print output to sink. It is a convenience composer for
// test fixtures and simple embedders; a driver that needs to inspect each
// stage's own error set should call the stage packages directly.
func FromCode(filename string, source []byte, sink Sink) error {
	var errs scanner.ErrorList
	toks := lumscanner.New(filename, source, &errs).Scan()
	if err := errs.Err(); err != nil {
		return err
	}

	prog, err := parseProgram(filename, toks)
	if err != nil {
		return err
	}

	bindings, err := resolver.New(filename).Resolve(prog)
	if err != nil {
		return err
	}

	return New(sink).Interpret(prog, bindings)
}

// EvaluateExpression scans, parses and evaluates a single expression
// (no resolver pass, so closures over non-global scopes are not
// meaningful here), returning its runtime value.
func EvaluateExpression(source []byte) (Value, error) {
	var errs scanner.ErrorList
	toks := lumscanner.New("", source, &errs).Scan()
	if err := errs.Err(); err != nil {
		return nil, err
	}

	expr := parser.New("", toks, &errs).ParseExpr()
	if err := errs.Err(); err != nil {
		return nil, err
	}

	in := New(&MemorySink{})
	in.bindings = resolver.Bindings{}
	return in.evaluate(expr)
}

func parseProgram(filename string, toks []lumscanner.Token) (*ast.Program, error) {
	var errs scanner.ErrorList
	p := parser.New(filename, toks, &errs)
	prog := p.ParseProgram()
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return prog, nil
}
