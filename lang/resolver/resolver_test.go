package resolver_test

import (
	"go/scanner"
	"testing"

	"github.com/lumen-lang/lumen/lang/parser"
	"github.com/lumen-lang/lumen/lang/resolver"
	lumscanner "github.com/lumen-lang/lumen/lang/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, src string) (resolver.Bindings, error) {
	t.Helper()
	var errs scanner.ErrorList
	toks := lumscanner.New("", []byte(src), &errs).Scan()
	require.NoError(t, errs.Err())
	prog := parser.New("", toks, &errs).ParseProgram()
	require.NoError(t, errs.Err())
	return resolver.New("").Resolve(prog)
}

func TestResolveSelfInitializationError(t *testing.T) {
	_, err := resolve(t, `{ var a = a; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Variable [a] accessed inside its own initializer")
}

func TestResolveDuplicateDeclarationError(t *testing.T) {
	_, err := resolve(t, `{ var a = 1; var a = 2; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Variable [a] is already defined")
}

func TestResolveDuplicateParamErrorUsesFunctionLine(t *testing.T) {
	_, err := resolve(t, "\n\nfun f(a, a) {}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3: Variable [a] is already defined")
}

func TestResolveTopLevelReturnError(t *testing.T) {
	_, err := resolve(t, `return 4;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot return from top-level code")
}

func TestResolveInitializerReturnValueError(t *testing.T) {
	_, err := resolve(t, `class Foo { init() { return 3; } }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot return a value from an initializer")
}

func TestResolveSelfInheritanceError(t *testing.T) {
	_, err := resolve(t, `class Foo < Foo {}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A class cannot inherit from itself")
}

func TestResolveSuperWithoutSuperclassError(t *testing.T) {
	_, err := resolve(t, `class Foo { bar() { return super.f(); } }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot use 'super' in a class with no superclass")
}

func TestResolveSuperOutsideClassError(t *testing.T) {
	_, err := resolve(t, `fun f() { return super.f(); }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot use 'super' outside of a class")
}

func TestResolveThisOutsideClassError(t *testing.T) {
	_, err := resolve(t, `fun f() { return this; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot use 'this' outside of a class")
}

func TestResolveShadowingBindsOuterReference(t *testing.T) {
	bindings, err := resolve(t, `
		var a = "global";
		{
			fun showA() { print a; }
			showA();
			var a = "block";
			showA();
		}
	`)
	require.NoError(t, err)
	assert.NotEmpty(t, bindings)
}

func TestResolveValidReturnsNoError(t *testing.T) {
	_, err := resolve(t, `
		class Bar { boo() { return 21; } }
		class Foo < Bar { boo() { return super.boo() * 2; } }
		print Foo().boo();
	`)
	require.NoError(t, err)
}
