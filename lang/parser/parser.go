// Package parser implements the recursive-descent parser that turns a
// lumen token stream into an abstract syntax tree.
package parser

import (
	"errors"
	"fmt"
	"go/scanner"
	gotoken "go/token"

	"github.com/lumen-lang/lumen/lang/ast"
	lumscanner "github.com/lumen-lang/lumen/lang/scanner"
	"github.com/lumen-lang/lumen/lang/token"
)

type (
	// Error is a single positioned parse error.
	Error = scanner.Error
	// ErrorList accumulates Error values across an entire parse.
	ErrorList = scanner.ErrorList
)

const maxArgs = 255

// errPanicMode is the sentinel recovered at the statement boundary to
// implement panic-mode error recovery, the same strategy the scanner's
// wider lineage of recursive-descent parsers uses.
var errPanicMode = errors.New("panic")

// Parser turns a token stream into an AST, accumulating syntax errors into
// an ErrorList rather than stopping at the first one.
type Parser struct {
	filename string
	toks     []lumscanner.Token
	pos      int
	errs     *ErrorList
	nextID   ast.NodeID
}

// New creates a Parser over toks, a token stream produced by the scanner
// (including its terminating EOF token). Errors are reported into errs.
func New(filename string, toks []lumscanner.Token, errs *ErrorList) *Parser {
	return &Parser{filename: filename, toks: toks, errs: errs}
}

// ParseProgram parses a full program: a sequence of declarations followed
// by EOF.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.atEnd() {
		if stmt := p.declarationSync(); stmt != nil {
			prog.Stmts = append(prog.Stmts, stmt)
		}
	}
	return prog
}

// ParseExpr parses a single expression and requires it to be followed by
// EOF. It is used by evaluate-expression style test fixtures.
func (p *Parser) ParseExpr() ast.Expr {
	expr := p.expression()
	if !p.check(token.EOF) {
		p.errorExpected("end of expression")
	}
	return expr
}

func (p *Parser) declarationSync() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()
	return p.declaration()
}

func (p *Parser) declaration() ast.Stmt {
	switch {
	case p.matchTok(token.CLASS):
		return p.classDecl()
	case p.matchTok(token.FUN):
		return p.funDecl()
	case p.matchTok(token.VAR):
		return p.varDecl()
	default:
		return p.statement()
	}
}

func (p *Parser) classDecl() ast.Stmt {
	line := p.prevLine()
	name := p.expect(token.IDENT, "class name").Str

	var super *ast.VariableExpr
	if p.matchTok(token.LT) {
		superName := p.expect(token.IDENT, "superclass name")
		super = &ast.VariableExpr{Name: superName.Str, ID: p.allocID(), LineNo: superName.Line}
	}

	p.expect(token.LBRACE, "'{' before class body")
	var methods []*ast.FunctionStmt
	for !p.check(token.RBRACE) && !p.atEnd() {
		methods = append(methods, p.function("method"))
	}
	p.expect(token.RBRACE, "'}' after class body")

	return &ast.ClassStmt{Name: name, Superclass: super, Methods: methods, LineNo: line}
}

func (p *Parser) funDecl() ast.Stmt {
	return p.function("function")
}

// function parses `IDENT "(" params? ")" block`, used for both top-level
// function declarations and class methods.
func (p *Parser) function(kind string) *ast.FunctionStmt {
	line := p.peek().Line
	name := p.expect(token.IDENT, kind+" name")
	params := p.paramList()
	p.expect(token.LBRACE, "'{' before "+kind+" body")
	body := p.block()
	return &ast.FunctionStmt{Name: name.Str, Params: params, Body: body, LineNo: line}
}

func (p *Parser) paramList() []string {
	p.expect(token.LPAREN, "'(' after name")
	var params []string
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorf("Can't have more than %d parameters", maxArgs)
			}
			params = append(params, p.expect(token.IDENT, "parameter name").Str)
			if !p.matchTok(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN, "')' after parameters")
	return params
}

func (p *Parser) varDecl() ast.Stmt {
	line := p.prevLine()
	name := p.expect(token.IDENT, "variable name")
	var init ast.Expr
	if p.matchTok(token.EQ) {
		init = p.expression()
	}
	p.expect(token.SEMICOLON, "';' after variable declaration")
	return &ast.VarStmt{Name: name.Str, Init: init, LineNo: line}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.matchTok(token.PRINT):
		return p.printStmt()
	case p.matchTok(token.LBRACE):
		line := p.prevLine()
		return &ast.Block{Stmts: p.block(), LineNo: line}
	case p.matchTok(token.IF):
		return p.ifStmt()
	case p.matchTok(token.WHILE):
		return p.whileStmt()
	case p.matchTok(token.FOR):
		return p.forStmt()
	case p.matchTok(token.RETURN):
		return p.returnStmt()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.atEnd() {
		if stmt := p.declarationSync(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.expect(token.RBRACE, "'}' after block")
	return stmts
}

func (p *Parser) printStmt() ast.Stmt {
	line := p.prevLine()
	exprs := []ast.Expr{p.expression()}
	for p.matchTok(token.COMMA) {
		exprs = append(exprs, p.expression())
	}
	p.expect(token.SEMICOLON, "';' after value")
	return &ast.PrintStmt{Exprs: exprs, LineNo: line}
}

func (p *Parser) ifStmt() ast.Stmt {
	line := p.prevLine()
	p.expect(token.LPAREN, "'(' after 'if'")
	cond := p.expression()
	p.expect(token.RPAREN, "')' after if condition")
	then := p.statement()
	var els ast.Stmt
	if p.matchTok(token.ELSE) {
		els = p.statement()
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: els, LineNo: line}
}

func (p *Parser) whileStmt() ast.Stmt {
	line := p.prevLine()
	p.expect(token.LPAREN, "'(' after 'while'")
	cond := p.expression()
	p.expect(token.RPAREN, "')' after while condition")
	body := p.statement()
	return &ast.WhileStmt{Cond: cond, Body: body, LineNo: line}
}

// forStmt desugars the C-style for loop into a Block wrapping an optional
// initializer and a WhileStmt whose body appends the increment expression.
func (p *Parser) forStmt() ast.Stmt {
	line := p.prevLine()
	p.expect(token.LPAREN, "'(' after 'for'")

	var init ast.Stmt
	switch {
	case p.matchTok(token.SEMICOLON):
		// no initializer
	case p.matchTok(token.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.expect(token.SEMICOLON, "';' after loop condition")

	var incr ast.Expr
	if !p.check(token.RPAREN) {
		incr = p.expression()
	}
	p.expect(token.RPAREN, "')' after for clauses")

	body := p.statement()
	if incr != nil {
		body = &ast.Block{
			Stmts:  []ast.Stmt{body, &ast.ExpressionStmt{Expr: incr, LineNo: line}},
			LineNo: line,
		}
	}
	if cond == nil {
		cond = &ast.LiteralExpr{Value: true, LineNo: line}
	}
	loop := ast.Stmt(&ast.WhileStmt{Cond: cond, Body: body, LineNo: line})

	if init == nil {
		return loop
	}
	return &ast.Block{Stmts: []ast.Stmt{init, loop}, LineNo: line}
}

func (p *Parser) returnStmt() ast.Stmt {
	line := p.prevLine()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.expect(token.SEMICOLON, "';' after return value")
	return &ast.ReturnStmt{Value: value, LineNo: line}
}

func (p *Parser) exprStmt() ast.Stmt {
	line := p.peek().Line
	expr := p.expression()
	p.expect(token.SEMICOLON, "';' after expression")
	return &ast.ExpressionStmt{Expr: expr, LineNo: line}
}

// ====================
// EXPRESSIONS
// ====================

func (p *Parser) expression() ast.Expr {
	switch {
	case p.check(token.FUN):
		return p.functionExpr()
	case p.check(token.BACKSLASH):
		return p.lambda()
	default:
		return p.assignment()
	}
}

func (p *Parser) functionExpr() ast.Expr {
	line := p.peek().Line
	p.advance() // 'fun'
	params := p.paramList()
	p.expect(token.LBRACE, "'{' before function body")
	body := p.block()
	return &ast.FunctionExpr{Params: params, Body: body, LineNo: line}
}

func (p *Parser) lambda() ast.Expr {
	line := p.peek().Line
	p.advance() // backslash
	var params []string
	if !p.check(token.ARROW) {
		for {
			if len(params) >= maxArgs {
				p.errorf("Can't have more than %d parameters", maxArgs)
			}
			params = append(params, p.expect(token.IDENT, "parameter name").Str)
			if !p.matchTok(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.ARROW, "'->' after lambda parameters")
	body := p.expression()
	return &ast.LambdaExpr{Params: params, Body: body, LineNo: line}
}

func (p *Parser) assignment() ast.Expr {
	expr := p.ternary()
	if p.matchTok(token.EQ) {
		eqLine := p.prevLine()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: target.Name, Value: value, ID: p.allocID(), LineNo: eqLine}
		case *ast.GetExpr:
			return &ast.SetExpr{Obj: target.Obj, Name: target.Name, Value: value, LineNo: eqLine}
		default:
			p.error(eqLine, "Invalid assignment target")
			return expr
		}
	}
	return expr
}

func (p *Parser) ternary() ast.Expr {
	expr := p.logicOr()
	for p.matchTok(token.QUESTION) {
		line := p.prevLine()
		then := p.logicOr()
		p.expect(token.COLON, "':' in ternary expression")
		els := p.ternary()
		expr = &ast.TernaryExpr{Cond: expr, Then: then, Else: els, LineNo: line}
	}
	return expr
}

func (p *Parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.matchTok(token.OR) {
		op, line := token.OR, p.prevLine()
		right := p.logicAnd()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right, LineNo: line}
	}
	return expr
}

func (p *Parser) logicAnd() ast.Expr {
	expr := p.equality()
	for p.matchTok(token.AND) {
		op, line := token.AND, p.prevLine()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right, LineNo: line}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.matchTok(token.EQ_EQ, token.BANG_EQ) {
		op, line := p.prevTok(), p.prevLine()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right, LineNo: line}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.matchTok(token.LT, token.LT_EQ, token.GT, token.GT_EQ) {
		op, line := p.prevTok(), p.prevLine()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right, LineNo: line}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.matchTok(token.PLUS, token.MINUS) {
		op, line := p.prevTok(), p.prevLine()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right, LineNo: line}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.matchTok(token.STAR, token.SLASH) {
		op, line := p.prevTok(), p.prevLine()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right, LineNo: line}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.matchTok(token.BANG, token.MINUS) {
		op, line := p.prevTok(), p.prevLine()
		right := p.unary()
		return &ast.UnaryExpr{Op: op, Right: right, LineNo: line}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.matchTok(token.LPAREN):
			expr = p.finishCall(expr)
		case p.matchTok(token.DOT):
			name := p.expect(token.IDENT, "property name after '.'")
			expr = &ast.GetExpr{Obj: expr, Name: name.Str, LineNo: name.Line}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	line := p.prevLine()
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorf("Can't have more than %d arguments", maxArgs)
			}
			args = append(args, p.expression())
			if !p.matchTok(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN, "')' after arguments")
	return &ast.CallExpr{Callee: callee, Args: args, LineNo: line}
}

func (p *Parser) primary() ast.Expr {
	tok := p.peek()
	switch {
	case p.matchTok(token.FALSE):
		return &ast.LiteralExpr{Value: false, LineNo: tok.Line}
	case p.matchTok(token.TRUE):
		return &ast.LiteralExpr{Value: true, LineNo: tok.Line}
	case p.matchTok(token.NIL):
		return &ast.LiteralExpr{Value: nil, LineNo: tok.Line}
	case p.matchTok(token.NUMBER):
		if tok.IsFloat {
			return &ast.LiteralExpr{Value: tok.Float, LineNo: tok.Line}
		}
		return &ast.LiteralExpr{Value: tok.Int, LineNo: tok.Line}
	case p.matchTok(token.STRING):
		return &ast.LiteralExpr{Value: tok.Str, LineNo: tok.Line}
	case p.matchTok(token.THIS):
		return &ast.ThisExpr{ID: p.allocID(), LineNo: tok.Line}
	case p.matchTok(token.SUPER):
		p.expect(token.DOT, "'.' after 'super'")
		method := p.expect(token.IDENT, "superclass method name")
		return &ast.SuperExpr{Method: method.Str, ID: p.allocID(), LineNo: tok.Line}
	case p.matchTok(token.IDENT):
		return &ast.VariableExpr{Name: tok.Str, ID: p.allocID(), LineNo: tok.Line}
	case p.matchTok(token.LPAREN):
		expr := p.expression()
		p.expect(token.RPAREN, "')' after expression")
		return &ast.GroupingExpr{Expr: expr, LineNo: tok.Line}
	default:
		p.errorExpected("expression")
		panic(errPanicMode)
	}
}

// ====================
// TOKEN STREAM HELPERS
// ====================

func (p *Parser) allocID() ast.NodeID {
	id := p.nextID
	p.nextID++
	return id
}

func (p *Parser) peek() lumscanner.Token { return p.toks[p.pos] }

func (p *Parser) prevTok() token.Token { return p.toks[p.pos-1].Kind }
func (p *Parser) prevLine() int        { return p.toks[p.pos-1].Line }

func (p *Parser) atEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) check(kind token.Token) bool { return p.peek().Kind == kind }

func (p *Parser) advance() lumscanner.Token {
	tok := p.toks[p.pos]
	if !p.atEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) matchTok(kinds ...token.Token) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes and returns the current token if it matches kind,
// otherwise it records an error and panics with errPanicMode, recovered at
// the nearest statement boundary.
func (p *Parser) expect(kind token.Token, what string) lumscanner.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.errorExpected(what)
	panic(errPanicMode)
}

func (p *Parser) errorExpected(what string) {
	tok := p.peek()
	if tok.Kind == token.EOF {
		p.error(tok.Line, "expected "+what+", found end of file")
		return
	}
	p.error(tok.Line, fmt.Sprintf("expected %s, found %s", what, tok.Kind))
}

func (p *Parser) errorf(format string, args ...any) {
	p.error(p.peek().Line, fmt.Sprintf(format, args...))
}

func (p *Parser) error(line int, msg string) {
	p.errs.Add(gotoken.Position{Filename: p.filename, Line: line}, msg)
}

// synchronize discards tokens until it reaches a likely statement boundary,
// used to recover from a parse error and keep accumulating further errors.
func (p *Parser) synchronize() {
	for !p.atEnd() {
		if p.prevKindIsSemicolon() {
			return
		}
		if token.Synchronizing(p.peek().Kind) {
			return
		}
		p.advance()
	}
}

func (p *Parser) prevKindIsSemicolon() bool {
	return p.pos > 0 && p.toks[p.pos-1].Kind == token.SEMICOLON
}
