package parser_test

import (
	"go/scanner"
	"testing"

	"github.com/lumen-lang/lumen/lang/ast"
	"github.com/lumen-lang/lumen/lang/parser"
	lumscanner "github.com/lumen-lang/lumen/lang/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, src string) (*ast.Program, *scanner.ErrorList) {
	t.Helper()
	var errs scanner.ErrorList
	toks := lumscanner.New("", []byte(src), &errs).Scan()
	require.NoError(t, errs.Err())
	return parser.New("", toks, &errs).ParseProgram(), &errs
}

func TestParseVarAndPrint(t *testing.T) {
	prog, errs := parseProgram(t, `var a = 1; print a;`)
	require.NoError(t, errs.Err())
	require.Len(t, prog.Stmts, 2)

	varStmt, ok := prog.Stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "a", varStmt.Name)

	printStmt, ok := prog.Stmts[1].(*ast.PrintStmt)
	require.True(t, ok)
	require.Len(t, printStmt.Exprs, 1)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	prog, errs := parseProgram(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.NoError(t, errs.Err())
	require.Len(t, prog.Stmts, 1)

	block, ok := prog.Stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Stmts, 2)
	_, ok = block.Stmts[0].(*ast.VarStmt)
	assert.True(t, ok)
	whileStmt, ok := block.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok)

	body, ok := whileStmt.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, body.Stmts, 2)
}

func TestParseClassWithSuperclass(t *testing.T) {
	prog, errs := parseProgram(t, `class Foo < Bar { init() { this.x = 1; } }`)
	require.NoError(t, errs.Err())
	require.Len(t, prog.Stmts, 1)

	class, ok := prog.Stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	assert.Equal(t, "Foo", class.Name)
	require.NotNil(t, class.Superclass)
	assert.Equal(t, "Bar", class.Superclass.Name)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "init", class.Methods[0].Name)
}

func TestParseTernaryAndLogical(t *testing.T) {
	prog, errs := parseProgram(t, `print true and false or 1 < 2 ? "y" : "n";`)
	require.NoError(t, errs.Err())
	printStmt := prog.Stmts[0].(*ast.PrintStmt)
	_, ok := printStmt.Exprs[0].(*ast.TernaryExpr)
	assert.True(t, ok)
}

func TestParseLambdaComposition(t *testing.T) {
	prog, errs := parseProgram(t, `var twice = \f -> \x -> f(f(x));`)
	require.NoError(t, errs.Err())
	varStmt := prog.Stmts[0].(*ast.VarStmt)
	outer, ok := varStmt.Init.(*ast.LambdaExpr)
	require.True(t, ok)
	assert.Equal(t, []string{"f"}, outer.Params)
	_, ok = outer.Body.(*ast.LambdaExpr)
	assert.True(t, ok)
}

func TestParseAssignmentToGetProducesSet(t *testing.T) {
	prog, errs := parseProgram(t, `a.b = 1;`)
	require.NoError(t, errs.Err())
	exprStmt := prog.Stmts[0].(*ast.ExpressionStmt)
	set, ok := exprStmt.Expr.(*ast.SetExpr)
	require.True(t, ok)
	assert.Equal(t, "b", set.Name)
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, errs := parseProgram(t, `1 = 2;`)
	require.Error(t, errs.Err())
	assert.Contains(t, errs.Err().Error(), "Invalid assignment target")
}

func TestParseSynchronizesAfterError(t *testing.T) {
	_, errs := parseProgram(t, `var ; var b = 2;`)
	require.Error(t, errs.Err())
}

func TestParseExprEntryPoint(t *testing.T) {
	var errs scanner.ErrorList
	toks := lumscanner.New("", []byte("1 + 2"), &errs).Scan()
	require.NoError(t, errs.Err())
	expr := parser.New("", toks, &errs).ParseExpr()
	require.NoError(t, errs.Err())
	_, ok := expr.(*ast.BinaryExpr)
	assert.True(t, ok)
}

func TestParseTooManyArguments(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ","
		}
		src += "1"
	}
	src += ");"

	_, errs := parseProgram(t, src)
	require.Error(t, errs.Err())
	assert.Contains(t, errs.Err().Error(), "Can't have more than 255 arguments")
}
