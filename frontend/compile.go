package frontend

import (
	"log/slog"

	"github.com/tyck/tyck/frontend/ast"
	"github.com/tyck/tyck/frontend/tyerr"
	"github.com/tyck/tyck/frontend/value"
)

// Compile turns a type-expression tree into a Predicate. refs may be
// nil; when present, type names found in it delegate to the predicates
// compiled earlier.
//
// Compilation is eager: every child of node is compiled before Compile
// returns, so definition errors surface here and Check never fails.
func Compile(node ast.Type, refs *RefEnv) (*Predicate, error) {
	if name, ok := node.(*ast.TypeName); ok && refs != nil {
		// a bare placeholder compiles to the referenced predicate
		// itself, which keeps its own node for diagnostics
		if p, found := refs.Lookup(name.Name); found {
			return p, nil
		}
	}
	check, err := compileCheck(node, refs)
	if err != nil {
		return nil, err
	}
	slog.With("section", "frontend").Debug("compiled predicate", "type", ast.Slog(node))
	return &Predicate{node: node, check: check}, nil
}

// compileCheck builds the checking function for every node kind the
// compiler supports. The switch is the closed counterpart of the ast
// variant set: a kind missing here is an UnsupportedType error, never a
// silent pass.
func compileCheck(node ast.Type, refs *RefEnv) (func(any) bool, error) {
	switch node := node.(type) {
	case *ast.Literal:
		want := node.Value
		return func(v any) bool { return value.Equal(v, want) }, nil

	case *ast.Primitive:
		switch node.Kind {
		case ast.KindString:
			return value.IsString, nil
		case ast.KindNumber:
			return value.IsNumber, nil
		case ast.KindBool:
			return value.IsBool, nil
		default:
			return nil, tyerr.New(tyerr.NewUnsupportedType{Positioner: ast.RangeOf(node), Kind: "primitive kind"})
		}

	case *ast.Null:
		return value.IsNull, nil

	case *ast.Void:
		return value.IsAbsent, nil

	case *ast.Any:
		return func(any) bool { return true }, nil

	case *ast.Nullable:
		inner, err := compileCheck(node.Inner, refs)
		if err != nil {
			return nil, err
		}
		return func(v any) bool {
			return value.IsNull(v) || value.IsAbsent(v) || inner(v)
		}, nil

	case *ast.List:
		elem, err := compileCheck(node.Elem, refs)
		if err != nil {
			return nil, err
		}
		return func(v any) bool {
			elems, ok := value.Elems(v)
			if !ok {
				return false
			}
			for _, e := range elems {
				if !elem(e) {
					return false
				}
			}
			return true
		}, nil

	case *ast.Tuple:
		checks := make([]func(any) bool, len(node.Elems))
		for i, elemNode := range node.Elems {
			check, err := compileCheck(elemNode, refs)
			if err != nil {
				return nil, err
			}
			checks[i] = check
		}
		return func(v any) bool {
			elems, ok := value.Elems(v)
			if !ok || len(elems) != len(checks) {
				return false
			}
			for i, check := range checks {
				if !check(elems[i]) {
					return false
				}
			}
			return true
		}, nil

	case *ast.Record:
		keys := make([]string, len(node.Fields))
		checks := make([]func(any) bool, len(node.Fields))
		for i, field := range node.Fields {
			if field.Optional {
				return nil, tyerr.New(tyerr.NewUnsupportedFeature{
					Positioner: field.Range,
					Feature:    "optional object field",
				})
			}
			check, err := compileCheck(field.Value, refs)
			if err != nil {
				return nil, err
			}
			keys[i], checks[i] = field.Key, check
		}
		// a key the object does not carry reads as the absent value, so
		// a nullable field accepts a missing key; undeclared keys are
		// ignored
		return func(v any) bool {
			if !value.IsObject(v) {
				return false
			}
			for i, key := range keys {
				if !checks[i](value.Field(v, key)) {
					return false
				}
			}
			return true
		}, nil

	case *ast.Union:
		checks, err := compileMembers(node.Members, refs)
		if err != nil {
			return nil, err
		}
		return func(v any) bool {
			for _, check := range checks {
				if check(v) {
					return true
				}
			}
			return false
		}, nil

	case *ast.Inter:
		checks, err := compileMembers(node.Members, refs)
		if err != nil {
			return nil, err
		}
		return func(v any) bool {
			for _, check := range checks {
				if !check(v) {
					return false
				}
			}
			return true
		}, nil

	case *ast.TypeName:
		switch node.Name {
		case ast.NameFunction:
			return value.IsCallable, nil
		case ast.NameObject:
			return value.IsObject, nil
		}
		if refs != nil {
			if p, found := refs.Lookup(node.Name); found {
				return p.check, nil
			}
		}
		// nominal fallback: match by reflected type name, so the check
		// does not survive renaming the Go type
		name := node.Name
		return func(v any) bool {
			return value.IsObject(v) && value.TypeNameOf(v) == name
		}, nil

	case *ast.FnType:
		// only the signature extractor may consume these
		return nil, tyerr.New(tyerr.NewUnsupportedType{Positioner: ast.RangeOf(node), Kind: node.Describe()})

	default:
		return nil, tyerr.New(tyerr.NewUnsupportedType{Positioner: ast.RangeOf(node), Kind: node.Describe()})
	}
}

func compileMembers(members []ast.Type, refs *RefEnv) ([]func(any) bool, error) {
	checks := make([]func(any) bool, len(members))
	for i, member := range members {
		check, err := compileCheck(member, refs)
		if err != nil {
			return nil, err
		}
		checks[i] = check
	}
	return checks, nil
}
