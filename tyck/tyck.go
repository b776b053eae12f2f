// Package tyck compiles textual type expressions into runtime
// predicates and guards function calls with them.
//
// A type expression describes a value shape:
//
//	number[]
//	{ name: string, age: ?number }
//	"get" | "put"
//	(string, number) => string
//
// Compile turns one into a Predicate; CompileSignature turns a
// function-shaped one into a Signature whose Wrap enforces it around a
// concrete Go func. The template variants splice previously compiled
// predicates into new expression text by generated placeholder.
package tyck

import (
	"github.com/tyck/tyck/backend"
	"github.com/tyck/tyck/frontend"
	"github.com/tyck/tyck/frontend/ast"
	"github.com/tyck/tyck/frontend/value"
	"github.com/tyck/tyck/parser"
)

// Absent is the undefined-equivalent sentinel: the value of a missing
// object key and the result of a niladic-result callable.
var Absent = value.Absent

// Compile parses expr and compiles it into a Predicate.
func Compile(expr string) (*frontend.Predicate, error) {
	return compileWith(expr, nil)
}

// CompileTemplate is Compile over interleaved literal fragments and
// embedded predicates: len(fragments) must be len(embeds)+1, and
// embeds[i] is spliced between fragments[i] and fragments[i+1].
func CompileTemplate(fragments []string, embeds ...*frontend.Predicate) (*frontend.Predicate, error) {
	expr, refs, err := frontend.BuildTemplate(fragments, embeds)
	if err != nil {
		return nil, err
	}
	return compileWith(expr, refs)
}

func compileWith(expr string, refs *frontend.RefEnv) (*frontend.Predicate, error) {
	node, err := parser.ParseType(expr)
	if err != nil {
		return nil, err
	}
	return frontend.Compile(node, refs)
}

// Signature holds the compiled parameter and return predicates of a
// function-type expression. Its parameter count is fixed at
// construction.
type Signature struct {
	node   *ast.FnType
	params []*frontend.Predicate
	ret    *frontend.Predicate
}

// CompileSignature parses expr, which must be a function signature, and
// compiles each parameter and the return type.
func CompileSignature(expr string) (*Signature, error) {
	return compileSignatureWith(expr, nil)
}

// CompileSignatureTemplate is CompileSignature with embedded
// predicates, in the same fragment shape as CompileTemplate.
func CompileSignatureTemplate(fragments []string, embeds ...*frontend.Predicate) (*Signature, error) {
	expr, refs, err := frontend.BuildTemplate(fragments, embeds)
	if err != nil {
		return nil, err
	}
	return compileSignatureWith(expr, refs)
}

func compileSignatureWith(expr string, refs *frontend.RefEnv) (*Signature, error) {
	node, err := parser.ParseType(expr)
	if err != nil {
		return nil, err
	}
	paramNodes, retNode, err := frontend.ExtractSignature(node)
	if err != nil {
		return nil, err
	}
	params := make([]*frontend.Predicate, len(paramNodes))
	for i, paramNode := range paramNodes {
		if params[i], err = frontend.Compile(paramNode, refs); err != nil {
			return nil, err
		}
	}
	ret, err := frontend.Compile(retNode, refs)
	if err != nil {
		return nil, err
	}
	return &Signature{node: node.(*ast.FnType), params: params, ret: ret}, nil
}

// NumParams returns the signature's declared parameter count.
func (s *Signature) NumParams() int { return len(s.params) }

// String renders the signature, for diagnostics.
func (s *Signature) String() string { return ast.TypeString(s.node) }

// Wrap builds the invocation guard enforcing s around callable. The
// callable's declared parameter count is checked here, eagerly.
func (s *Signature) Wrap(callable any) (*backend.Guarded, error) {
	return backend.NewGuarded(s.params, s.ret, callable)
}
