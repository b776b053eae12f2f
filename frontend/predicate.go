package frontend

import (
	"github.com/tyck/tyck/frontend/ast"
)

// Predicate decides whether a runtime value satisfies a type expression.
// It carries the originating node so guard failures can render the
// expected type. Predicates are stateless and safe for concurrent use.
type Predicate struct {
	node  ast.Type
	check func(v any) bool
}

// Check reports whether v satisfies the predicate. It never mutates v.
func (p *Predicate) Check(v any) bool {
	return p.check(v)
}

// Type returns the node this predicate was compiled from.
func (p *Predicate) Type() ast.Type {
	return p.node
}

// String renders the originating type expression, for diagnostics.
func (p *Predicate) String() string {
	return ast.TypeString(p.node)
}
