package interp_test

import (
	"testing"

	"github.com/lumen-lang/lumen/lang/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (*interp.MemorySink, error) {
	t.Helper()
	sink := &interp.MemorySink{}
	err := interp.FromCode("test.lum", []byte(src), sink)
	return sink, err
}

func TestClosureOverMutableCounter(t *testing.T) {
	sink, err := run(t, `
		fun factory() { var i = 0; fun step() { i = i + 1; return i; } return step; }
		var s = factory(); print s(); print s(); print s();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, sink.Entries)
}

func TestShadowingRespectedByResolver(t *testing.T) {
	sink, err := run(t, `
		var a = "global";
		{
			fun showA() { print a; }
			showA();
			var a = "block";
			showA();
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"global", "global"}, sink.Entries)
}

func TestRecursion(t *testing.T) {
	sink, err := run(t, `
		fun foo(n) { if (n == 0) { return n; } return n + foo(n - 1); }
		print foo(3);
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"6"}, sink.Entries)
}

func TestClassWithInitializerAndMethod(t *testing.T) {
	sink, err := run(t, `
		class Foo { init(baz) { this.baz = baz; } bar() { return "hey " + this.baz; } }
		print Foo("qux").bar();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"hey qux"}, sink.Entries)
}

func TestInheritanceAndSuper(t *testing.T) {
	sink, err := run(t, `
		class Bar { boo() { return 21; } }
		class Foo < Bar { boo() { return super.boo() * 2; } }
		print Foo().boo();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"42"}, sink.Entries)
}

func TestLambdaComposition(t *testing.T) {
	sink, err := run(t, `
		var twice = \f -> \x -> f(f(x));
		var inc  = \x -> x + 1;
		print twice(inc)(1);
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, sink.Entries)
}

func TestUninitializedVariableAccess(t *testing.T) {
	_, err := run(t, `var a; a;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Uninitialized variable [a]")
}

func TestUnaryTypeError(t *testing.T) {
	_, err := run(t, `-nil;`)
	require.Error(t, err)
	assert.Equal(t, "Operand of (-) must be of type number, nil given", err.Error())
}

func TestBinaryTypeMismatchError(t *testing.T) {
	_, err := run(t, `1 + "foo";`)
	require.Error(t, err)
	assert.Equal(t, "Operands of (+) must be of the same type. number and string given", err.Error())
}

func TestSelfInheritanceIsCompileError(t *testing.T) {
	_, err := run(t, `class Foo < Foo {}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A class cannot inherit from itself")
}

func TestTopLevelReturnIsCompileError(t *testing.T) {
	_, err := run(t, `return 4;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot return from top-level code")
}

func TestInitializerReturnValueIsCompileError(t *testing.T) {
	_, err := run(t, `class Foo { init() { return 3; } }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot return a value from an initializer")
}

func TestSuperWithoutSuperclassIsCompileError(t *testing.T) {
	_, err := run(t, `class Foo { bar() { return super.f(); } }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot use 'super' in a class with no superclass")
}

func TestEqualityNeverRaises(t *testing.T) {
	sink, err := run(t, `print 1 == "1"; print nil == nil; print nil == false;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"false", "true", "false"}, sink.Entries)
}

func TestStringSubtractionRemovesAllOccurrences(t *testing.T) {
	sink, err := run(t, `print "banana" - "a";`)
	require.NoError(t, err)
	assert.Equal(t, []string{"bnn"}, sink.Entries)
}

func TestMultiValuePrintJoinsWithSpace(t *testing.T) {
	sink, err := run(t, `print 1, 2;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1 2"}, sink.Entries)
}

func TestEvaluateExpression(t *testing.T) {
	v, err := interp.EvaluateExpression([]byte(`1 + 2 * 3`))
	require.NoError(t, err)
	assert.Equal(t, "7", v.String())
}
