package ast

import (
	"go/token"
	"strings"
)

// Type is a node of a parsed type expression.
// It is produced once by the parser and never mutated afterwards.
type Type interface {
	// ShowIn renders the node in its compact diagnostic form.
	// outerPrecedence is the binding power of the surrounding context;
	// nodes parenthesise themselves when they bind looser than it.
	ShowIn(outerPrecedence uint16) string
	// Describe names the node kind, for diagnostics only
	Describe() string
	Positioner
}

// NullaryType is a Type with no child types
type NullaryType interface {
	Type
	isNullaryType()
}

var (
	_ Type = (*Union)(nil)
	_ Type = (*Inter)(nil)
	_ Type = (*Nullable)(nil)
	_ Type = (*List)(nil)
	_ Type = (*Tuple)(nil)
	_ Type = (*Record)(nil)
	_ Type = (*FnType)(nil)

	_ NullaryType = (*Literal)(nil)
	_ NullaryType = (*Primitive)(nil)
	_ NullaryType = (*Null)(nil)
	_ NullaryType = (*Void)(nil)
	_ NullaryType = (*Any)(nil)
	_ NullaryType = (*TypeName)(nil)
)

// binding powers, loosest first
const (
	precFn       uint16 = 10
	precUnion    uint16 = 20
	precInter    uint16 = 25
	precNullable uint16 = 30
	precList     uint16 = 40
)

// TypeString renders t on its own, with minimal parenthesisation.
func TypeString(t Type) string {
	return t.ShowIn(0)
}

func maybeParen(shown string, thisPrecedence, outerPrecedence uint16) string {
	if outerPrecedence > thisPrecedence {
		return "(" + shown + ")"
	}
	return shown
}

// PrimitiveKind is one of the runtime type tags a Primitive checks for.
type PrimitiveKind uint8

const (
	_ PrimitiveKind = iota
	KindString
	KindNumber
	KindBool
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Literal is a boolean, number, or string literal used as a type.
// Value holds the decoded literal (bool, float64, or string);
// Syntax holds it as written, for rendering.
type Literal struct {
	Kind   token.Token // token.IDENT for booleans, token.INT/FLOAT, token.STRING
	Syntax string
	Value  any
	Range
}

func (t *Literal) ShowIn(uint16) string {
	if t.Kind == token.STRING {
		return "\"" + t.Syntax + "\""
	}
	return t.Syntax
}
func (t *Literal) Describe() string { return "literal" }
func (*Literal) isNullaryType()     {}

// Primitive is one of the `bool`, `number`, `string` keywords.
type Primitive struct {
	Kind PrimitiveKind
	Range
}

func (t *Primitive) ShowIn(uint16) string { return t.Kind.String() }
func (t *Primitive) Describe() string     { return "primitive" }
func (*Primitive) isNullaryType()         {}

// Null is the `null` keyword.
type Null struct{ Range }

func (*Null) ShowIn(uint16) string { return "null" }
func (*Null) Describe() string     { return "null" }
func (*Null) isNullaryType()       {}

// Void is the `void` keyword, matching only the absent value.
type Void struct{ Range }

func (*Void) ShowIn(uint16) string { return "void" }
func (*Void) Describe() string     { return "void" }
func (*Void) isNullaryType()       {}

// Any is the `any` keyword, the top type.
type Any struct{ Range }

func (*Any) ShowIn(uint16) string { return "any" }
func (*Any) Describe() string     { return "any" }
func (*Any) isNullaryType()       {}

// Nullable is the prefix `?T`, accepting null, the absent value, or a T.
type Nullable struct {
	Inner Type
	Range
}

func (t *Nullable) ShowIn(outerPrecedence uint16) string {
	return maybeParen("?"+t.Inner.ShowIn(precNullable), precNullable, outerPrecedence)
}
func (t *Nullable) Describe() string { return "nullable" }

// List is the suffix `T[]`, a homogeneous array.
type List struct {
	Elem Type
	Range
}

func (t *List) ShowIn(uint16) string {
	return t.Elem.ShowIn(precList) + "[]"
}
func (t *List) Describe() string { return "array" }

// Tuple is `[T1, T2, ...]`: an array of exactly that length and shape.
type Tuple struct {
	Elems []Type
	Range
}

func (t *Tuple) ShowIn(uint16) string {
	sb := strings.Builder{}
	sb.WriteString("[")
	for i, elem := range t.Elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(elem.ShowIn(0))
	}
	sb.WriteString("]")
	return sb.String()
}
func (t *Tuple) Describe() string { return "tuple" }

// Field is a single `key: T` entry of a Record.
// Optional fields (`key?: T`) parse but are rejected at compile time.
type Field struct {
	Key      string
	Value    Type
	Optional bool
	Range
}

// Record is `{ key: T, ... }`: an object shape.
// Keys not declared in the shape are ignored when checking.
type Record struct {
	Fields []Field
	Range
}

func (t *Record) ShowIn(uint16) string {
	if len(t.Fields) == 0 {
		return "{}"
	}
	sb := strings.Builder{}
	sb.WriteString("{ ")
	for i, f := range t.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Key)
		if f.Optional {
			sb.WriteString("?")
		}
		sb.WriteString(": ")
		sb.WriteString(f.Value.ShowIn(0))
	}
	sb.WriteString(" }")
	return sb.String()
}
func (t *Record) Describe() string { return "object shape" }

// Union is `T1 | T2 | ...`; members are kept in written order.
type Union struct {
	Members []Type
	Range
}

func (t *Union) ShowIn(outerPrecedence uint16) string {
	shown := make([]string, len(t.Members))
	for i, m := range t.Members {
		shown[i] = m.ShowIn(precUnion)
	}
	return maybeParen(strings.Join(shown, " | "), precUnion, outerPrecedence)
}
func (t *Union) Describe() string { return "union" }

// Inter is `T1 & T2 & ...`; members are kept in written order.
type Inter struct {
	Members []Type
	Range
}

func (t *Inter) ShowIn(outerPrecedence uint16) string {
	shown := make([]string, len(t.Members))
	for i, m := range t.Members {
		shown[i] = m.ShowIn(precInter)
	}
	return maybeParen(strings.Join(shown, " & "), precInter, outerPrecedence)
}
func (t *Inter) Describe() string { return "intersection" }

// TypeName is a bare identifier: either one of the reserved names
// (see universe.go), a reference-environment placeholder, or a nominal
// type matched by its reflected name.
type TypeName struct {
	Name string
	Range
}

func (t *TypeName) ShowIn(uint16) string { return t.Name }
func (t *TypeName) Describe() string     { return "type name" }
func (*TypeName) isNullaryType()         {}

// FnType is a function signature `(T1, T2, ...) => R`.
// It is never compiled to a predicate directly; the signature extractor
// splits it into parameter and return nodes first.
type FnType struct {
	Args   []Type
	Return Type
	Range
}

func (t *FnType) ShowIn(outerPrecedence uint16) string {
	sb := strings.Builder{}
	sb.WriteString("(")
	for i, arg := range t.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.ShowIn(0))
	}
	sb.WriteString(") => ")
	sb.WriteString(t.Return.ShowIn(precFn))
	return maybeParen(sb.String(), precFn, outerPrecedence)
}
func (t *FnType) Describe() string { return "function signature" }
