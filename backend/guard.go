// Package backend enforces compiled signatures around concrete Go
// callables at call time.
package backend

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/tyck/tyck/frontend"
	"github.com/tyck/tyck/frontend/ast"
	"github.com/tyck/tyck/frontend/tyerr"
	"github.com/tyck/tyck/frontend/value"
)

// Guarded wraps one callable with arity, argument, and return
// enforcement. It is constructed once and is immutable afterwards, so a
// single Guarded may be called concurrently.
type Guarded struct {
	params []*frontend.Predicate
	ret    *frontend.Predicate
	fn     reflect.Value
}

// NewGuarded builds a guard around callable.
//
// The callable must be a non-nil func with at most one result, and its
// declared parameter count must equal len(params). The count check
// happens here, once, not per call; it counts a variadic slot as one
// parameter and does not inspect variadic behaviour further.
func NewGuarded(params []*frontend.Predicate, ret *frontend.Predicate, callable any) (*Guarded, error) {
	fn := reflect.ValueOf(callable)
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, tyerr.New(tyerr.NewNotCallable{
			Positioner: ast.Range{},
			Reason:     fmt.Sprintf("expected a function, got %T", callable),
		})
	}
	if fn.Type().NumOut() > 1 {
		return nil, tyerr.New(tyerr.NewNotCallable{
			Positioner: ast.Range{},
			Reason:     fmt.Sprintf("function declares %d results, want at most one", fn.Type().NumOut()),
		})
	}
	if declared := fn.Type().NumIn(); declared != len(params) {
		return nil, tyerr.New(tyerr.NewArityMismatch{
			Positioner: ast.Range{},
			Declared:   declared,
			Want:       len(params),
		})
	}
	return &Guarded{params: params, ret: ret, fn: fn}, nil
}

// Call checks args against the parameter predicates in order, invokes
// the callable exactly once if they all pass, checks the result against
// the return predicate, and hands the result back unchanged.
//
// A failing pre-call check means the callable never ran. A failing
// return check means it already did: its side effects have happened and
// are not undone. A call-time error aborts only that invocation; the
// guard stays reusable.
func (g *Guarded) Call(args ...any) (any, error) {
	if len(args) != len(g.params) {
		return nil, tyerr.New(tyerr.NewArgumentCount{
			Positioner: ast.Range{},
			Got:        len(args),
			Want:       len(g.params),
		})
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		// first failing index wins; later arguments stay unchecked
		if !g.params[i].Check(arg) {
			return nil, g.argumentTypeErr(i)
		}
		converted, ok := convertArg(arg, g.fn.Type().In(i))
		if !ok {
			return nil, g.argumentTypeErr(i)
		}
		in[i] = converted
	}

	out := g.fn.Call(in)

	var result any = value.Absent
	if len(out) == 1 {
		result = out[0].Interface()
	}
	if !g.ret.Check(result) {
		return nil, tyerr.New(tyerr.NewReturnType{
			Positioner: ast.RangeOf(g.ret.Type()),
			Want:       g.ret.String(),
		})
	}
	return result, nil
}

func (g *Guarded) argumentTypeErr(i int) error {
	slog.With("section", "backend").Debug("argument rejected",
		"index", i+1, "want", ast.Slog(g.params[i].Type()))
	return tyerr.New(tyerr.NewArgumentType{
		Positioner: ast.RangeOf(g.params[i].Type()),
		Index:      i + 1,
		Want:       g.params[i].String(),
	})
}

// convertArg adapts a dynamic argument to the callable's declared
// parameter type. Predicates have already vetted the value's shape;
// this only bridges Go's numeric kinds and interface parameters.
func convertArg(arg any, want reflect.Type) (reflect.Value, bool) {
	if arg == nil {
		switch want.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(want), true
		default:
			return reflect.Value{}, false
		}
	}
	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(want) {
		return v, true
	}
	if v.Type().ConvertibleTo(want) {
		return v.Convert(want), true
	}
	return reflect.Value{}, false
}
