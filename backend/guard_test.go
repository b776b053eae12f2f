package backend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traefik/yaegi/interp"
	"github.com/tyck/tyck/frontend"
	"github.com/tyck/tyck/frontend/tyerr"
	"github.com/tyck/tyck/frontend/value"
	"github.com/tyck/tyck/parser"
)

func sigPredicates(t *testing.T, expr string) (params []*frontend.Predicate, ret *frontend.Predicate) {
	t.Helper()
	node, err := parser.ParseType(expr)
	require.NoError(t, err)
	paramNodes, retNode, err := frontend.ExtractSignature(node)
	require.NoError(t, err)
	for _, paramNode := range paramNodes {
		p, err := frontend.Compile(paramNode, nil)
		require.NoError(t, err)
		params = append(params, p)
	}
	ret, err = frontend.Compile(retNode, nil)
	require.NoError(t, err)
	return params, ret
}

func guard(t *testing.T, expr string, callable any) *Guarded {
	t.Helper()
	params, ret := sigPredicates(t, expr)
	g, err := NewGuarded(params, ret, callable)
	require.NoError(t, err)
	return g
}

func TestGuardCallsThrough(t *testing.T) {
	g := guard(t, "(string, number) => string", func(s string, n float64) string {
		return fmt.Sprintf("%s%v", s, n)
	})

	result, err := g.Call("x", 1)
	require.NoError(t, err)
	assert.Equal(t, "x1", result)
}

func TestGuardArityMismatchAtConstruction(t *testing.T) {
	params, ret := sigPredicates(t, "(string, number) => string")
	_, err := NewGuarded(params, ret, func(a, b, c string) string { return a })
	require.Error(t, err)

	var arityErr tyerr.NewArityMismatch
	require.ErrorAs(t, err, &arityErr)
	assert.Equal(t, 3, arityErr.Declared)
	assert.Equal(t, 2, arityErr.Want)
	assert.Equal(t, tyerr.ValidationError, tyerr.CategoryOf(err))
}

func TestGuardRejectsNonCallables(t *testing.T) {
	params, ret := sigPredicates(t, "(string) => string")
	for _, callable := range []any{nil, "not a func", 4, (func(string) string)(nil)} {
		_, err := NewGuarded(params, ret, callable)
		require.Error(t, err, "%#v", callable)
		var callErr tyerr.NewNotCallable
		assert.ErrorAs(t, err, &callErr)
	}
}

func TestGuardRejectsMultipleResults(t *testing.T) {
	params, ret := sigPredicates(t, "(string) => string")
	_, err := NewGuarded(params, ret, func(s string) (string, error) { return s, nil })
	require.Error(t, err)
	var callErr tyerr.NewNotCallable
	assert.ErrorAs(t, err, &callErr)
}

func TestGuardArgumentCount(t *testing.T) {
	called := false
	g := guard(t, "(number, number) => number", func(a, b float64) float64 {
		called = true
		return a + b
	})

	_, err := g.Call(2)
	require.Error(t, err)
	var countErr tyerr.NewArgumentCount
	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, 1, countErr.Got)
	assert.Equal(t, 2, countErr.Want)
	assert.False(t, called, "callable must not run when the argument count is wrong")
}

func TestGuardArgumentTypeFirstFailureWins(t *testing.T) {
	called := false
	g := guard(t, "(string, number) => string", func(s string, n float64) string {
		called = true
		return s
	})

	_, err := g.Call("x", "y")
	require.Error(t, err)
	var argErr tyerr.NewArgumentType
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, 2, argErr.Index)
	assert.Equal(t, "number", argErr.Want)
	assert.False(t, called, "callable must not run when an argument fails")

	// both arguments are wrong here; only the first is reported
	_, err = g.Call(1, true)
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, 1, argErr.Index)
	assert.Equal(t, "string", argErr.Want)
}

func TestGuardReturnCheckRunsAfterTheCallable(t *testing.T) {
	calls := 0
	g := guard(t, "(string) => string", func(s string) any {
		calls++
		return nil
	})

	_, err := g.Call("x")
	require.Error(t, err)
	var retErr tyerr.NewReturnType
	require.ErrorAs(t, err, &retErr)
	assert.Equal(t, "string", retErr.Want)
	assert.Equal(t, 1, calls, "the callable runs before the return check; its effects stay")
}

func TestGuardSideEffectsHappenExactlyOnce(t *testing.T) {
	calls := 0
	g := guard(t, "(number) => number", func(n float64) float64 {
		calls++
		return n * 2
	})

	result, err := g.Call(21)
	require.NoError(t, err)
	assert.Equal(t, 42.0, result)
	assert.Equal(t, 1, calls)
}

func TestGuardStaysReusableAfterCallErrors(t *testing.T) {
	g := guard(t, "(number) => number", func(n float64) float64 { return n })

	_, err := g.Call("not a number")
	require.Error(t, err)

	result, err := g.Call(7)
	require.NoError(t, err)
	assert.Equal(t, 7.0, result)
}

func TestGuardVoidReturn(t *testing.T) {
	g := guard(t, "(string) => void", func(s string) {})

	result, err := g.Call("x")
	require.NoError(t, err)
	assert.True(t, value.IsAbsent(result))
}

func TestGuardNullableParamAcceptsNil(t *testing.T) {
	g := guard(t, "(?string) => null", func(s any) any { return nil })

	result, err := g.Call(nil)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGuardInterpretedCallable(t *testing.T) {
	i := interp.New(interp.Options{})
	v, err := i.Eval("func(a, b float64) float64 { return a + b }")
	require.NoError(t, err)

	g := guard(t, "(number, number) => number", v.Interface())
	result, err := g.Call(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5.0, result)
}
