package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyck/tyck/frontend/tyerr"
	"github.com/tyck/tyck/frontend/value"
	"github.com/tyck/tyck/parser"
)

func compile(t *testing.T, expr string) *Predicate {
	t.Helper()
	node, err := parser.ParseType(expr)
	require.NoError(t, err)
	pred, err := Compile(node, nil)
	require.NoError(t, err)
	return pred
}

func compileErr(t *testing.T, expr string) error {
	t.Helper()
	node, err := parser.ParseType(expr)
	require.NoError(t, err)
	_, err = Compile(node, nil)
	require.Error(t, err)
	return err
}

func TestCompilePrimitives(t *testing.T) {
	values := []any{"a", 1, 1.5, true, nil, value.Absent, []any{}, map[string]any{}}
	isKind := map[string]func(any) bool{
		"string": value.IsString,
		"number": value.IsNumber,
		"bool":   value.IsBool,
	}
	for expr, is := range isKind {
		pred := compile(t, expr)
		for _, v := range values {
			assert.Equal(t, is(v), pred.Check(v), "%s against %#v", expr, v)
		}
	}
}

func TestCompileLiterals(t *testing.T) {
	hello := compile(t, `"hello"`)
	assert.True(t, hello.Check("hello"))
	assert.False(t, hello.Check("world"))
	assert.False(t, hello.Check(5))

	two := compile(t, "2")
	assert.True(t, two.Check(2))
	assert.True(t, two.Check(2.0))
	assert.False(t, two.Check(3))
	assert.False(t, two.Check("2"))

	yes := compile(t, "true")
	assert.True(t, yes.Check(true))
	assert.False(t, yes.Check(false))
	assert.False(t, yes.Check(1))
}

func TestCompileNullVoidAny(t *testing.T) {
	null := compile(t, "null")
	assert.True(t, null.Check(nil))
	assert.False(t, null.Check(value.Absent))
	assert.False(t, null.Check(0))

	void := compile(t, "void")
	assert.True(t, void.Check(value.Absent))
	assert.False(t, void.Check(nil))

	anyT := compile(t, "any")
	for _, v := range []any{nil, value.Absent, 1, "a", []any{}, map[string]any{}} {
		assert.True(t, anyT.Check(v))
	}
}

func TestCompileNullableAcceptsNullAndAbsent(t *testing.T) {
	for _, expr := range []string{"?string", "?number[]", "?{ x: number }", "?any"} {
		pred := compile(t, expr)
		assert.True(t, pred.Check(nil), expr)
		assert.True(t, pred.Check(value.Absent), expr)
	}
	pred := compile(t, "?string")
	assert.True(t, pred.Check("a"))
	assert.False(t, pred.Check(1))
}

func TestCompileList(t *testing.T) {
	pred := compile(t, "number[]")
	assert.True(t, pred.Check([]any{1, 2, 3}))
	assert.True(t, pred.Check([]any{}))
	assert.True(t, pred.Check([]int{1, 2}))
	assert.False(t, pred.Check([]any{1, "a"}))
	assert.False(t, pred.Check("not an array"))
	assert.False(t, pred.Check(nil))
}

func TestCompileTuple(t *testing.T) {
	pred := compile(t, "[string, number]")
	assert.True(t, pred.Check([]any{"a", 1}))
	assert.False(t, pred.Check([]any{"a"}))
	assert.False(t, pred.Check([]any{"a", 1, 2}))
	assert.False(t, pred.Check([]any{1, "a"}))
	assert.False(t, pred.Check(map[string]any{}))

	empty := compile(t, "[]")
	assert.True(t, empty.Check([]any{}))
	assert.False(t, empty.Check([]any{1}))
}

func TestCompileRecord(t *testing.T) {
	pred := compile(t, "{ x: number }")
	// undeclared keys are ignored
	assert.True(t, pred.Check(map[string]any{"x": 1, "y": "extra"}))
	assert.False(t, pred.Check(map[string]any{"x": "s"}))
	// a missing key reads as absent, and number does not accept absent
	assert.False(t, pred.Check(map[string]any{}))
	assert.False(t, pred.Check(nil))
	assert.False(t, pred.Check([]any{}))
}

func TestCompileRecordNullableFieldAcceptsMissingKey(t *testing.T) {
	pred := compile(t, "{ message: ?string }")
	assert.True(t, pred.Check(map[string]any{"message": nil}))
	assert.True(t, pred.Check(map[string]any{"message": "hi"}))
	assert.True(t, pred.Check(map[string]any{}))
	assert.False(t, pred.Check(map[string]any{"message": 7}))
}

func TestCompileRecordOnStructs(t *testing.T) {
	type point struct {
		X float64
		Y float64
	}
	pred := compile(t, "{ X: number, Y: number }")
	assert.True(t, pred.Check(point{1, 2}))
	assert.True(t, pred.Check(&point{1, 2}))

	named := compile(t, "{ X: string }")
	assert.False(t, named.Check(point{1, 2}))
}

func TestCompileUnionAndIntersection(t *testing.T) {
	union := compile(t, "string | number")
	left, right := compile(t, "string"), compile(t, "number")
	for _, v := range []any{"a", 1, true, nil, []any{}} {
		assert.Equal(t, left.Check(v) || right.Check(v), union.Check(v), "%#v", v)
	}

	inter := compile(t, "Object & { name: string }")
	assert.True(t, inter.Check(map[string]any{"name": "a"}))
	assert.False(t, inter.Check(map[string]any{"name": 1}))
	assert.False(t, inter.Check("a"))
}

func TestCompileReservedNames(t *testing.T) {
	isFn := compile(t, "Function")
	assert.True(t, isFn.Check(func() {}))
	assert.False(t, isFn.Check("f"))

	isObj := compile(t, "Object")
	assert.True(t, isObj.Check(map[string]any{}))
	assert.False(t, isObj.Check(nil))
	assert.False(t, isObj.Check(1))
}

func TestCompileNominalTypeName(t *testing.T) {
	type invoice struct{ Total float64 }
	pred := compile(t, "invoice")
	assert.True(t, pred.Check(invoice{Total: 9}))
	assert.True(t, pred.Check(&invoice{}))
	assert.False(t, pred.Check(map[string]any{"Total": 9}))
	assert.False(t, pred.Check(nil))
}

func TestCompileOptionalFieldFails(t *testing.T) {
	err := compileErr(t, "{ x?: number }")
	assert.Equal(t, tyerr.DefinitionError, tyerr.CategoryOf(err))
	var featErr tyerr.NewUnsupportedFeature
	assert.ErrorAs(t, err, &featErr)
}

func TestCompileSignatureNodeFails(t *testing.T) {
	err := compileErr(t, "(number) => number")
	assert.Equal(t, tyerr.DefinitionError, tyerr.CategoryOf(err))
	var typeErr tyerr.NewUnsupportedType
	assert.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "function signature", typeErr.Kind)
}

func TestCompileNestedDefinitionErrorSurfacesEagerly(t *testing.T) {
	// the bad field is deep inside a composite; compiling still fails
	// upfront, before any value is checked
	err := compileErr(t, "{ outer: { inner?: string }[] } | number")
	assert.Equal(t, tyerr.DefinitionError, tyerr.CategoryOf(err))
}

func TestPredicateStringRendersType(t *testing.T) {
	assert.Equal(t, "number[]", compile(t, "number [ ]").String())
	assert.Equal(t, "{ message: ?string }", compile(t, "{message:?string}").String())
}
