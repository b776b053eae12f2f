package tyerr

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/tyck/tyck/frontend/ast"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Grammar
	UnsupportedFeature
	UnsupportedType
	NotASignature
	NotCallable
	TemplateShape
	ReservedIdent
	ArityMismatch
	ArgumentCount
	ArgumentType
	ReturnType
)

// Category groups ErrCodes into the three failure families:
// malformed text, unsupported-but-well-formed definitions, and
// construction/call-time validation.
type Category int

const (
	CategoryNone Category = iota
	GrammarError
	DefinitionError
	ValidationError
)

func (c Category) String() string {
	switch c {
	case GrammarError:
		return "grammar error"
	case DefinitionError:
		return "definition error"
	case ValidationError:
		return "validation error"
	default:
		return "unclassified error"
	}
}

func (c ErrCode) Category() Category {
	switch c {
	case Grammar:
		return GrammarError
	case UnsupportedFeature, UnsupportedType, NotASignature, NotCallable, TemplateShape, ReservedIdent:
		return DefinitionError
	case ArityMismatch, ArgumentCount, ArgumentType, ReturnType:
		return ValidationError
	default:
		return CategoryNone
	}
}

type Error interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) Error
	getStack() []byte
}

func FormatWithCode(e Error) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E Error](err E) Error {
	return err.withStack(debug.Stack())
}

// CategoryOf classifies any error: tyerr errors map through their code,
// everything else is CategoryNone.
func CategoryOf(err error) Category {
	if e, ok := err.(Error); ok {
		return e.Code().Category()
	}
	return CategoryNone
}

type Unclassified struct {
	From error
	ast.Positioner
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

// NewGrammar is raised by the grammar front end for malformed
// expression text, and propagated unchanged.
type NewGrammar struct {
	ast.Positioner
	ParserMessage string
	Hint          string
	stack         []byte
}

func (e NewGrammar) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s (%s)", e.ParserMessage, e.Hint)
	}
	return e.ParserMessage
}
func (e NewGrammar) Code() ErrCode    { return Grammar }
func (e NewGrammar) getStack() []byte { return e.stack }
func (e NewGrammar) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

// NewUnsupportedFeature is a well-formed construct the compiler
// refuses, such as an optional object field.
type NewUnsupportedFeature struct {
	ast.Positioner
	Feature string
	stack   []byte
}

func (e NewUnsupportedFeature) Error() string {
	return fmt.Sprintf("%s is not supported", e.Feature)
}
func (e NewUnsupportedFeature) Code() ErrCode    { return UnsupportedFeature }
func (e NewUnsupportedFeature) getStack() []byte { return e.stack }
func (e NewUnsupportedFeature) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

// NewUnsupportedType is a node kind the compiler has no predicate for.
type NewUnsupportedType struct {
	ast.Positioner
	Kind string
	stack []byte
}

func (e NewUnsupportedType) Error() string {
	return fmt.Sprintf("cannot compile a %s to a predicate", e.Kind)
}
func (e NewUnsupportedType) Code() ErrCode    { return UnsupportedType }
func (e NewUnsupportedType) getStack() []byte { return e.stack }
func (e NewUnsupportedType) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

type NewNotASignature struct {
	ast.Positioner
	Got ast.Type
	stack []byte
}

func (e NewNotASignature) Error() string {
	return fmt.Sprintf("expected a function signature, but '%s' is a %s", ast.TypeString(e.Got), e.Got.Describe())
}
func (e NewNotASignature) Code() ErrCode    { return NotASignature }
func (e NewNotASignature) getStack() []byte { return e.stack }
func (e NewNotASignature) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

// NewNotCallable reports a value that cannot be wrapped by a guard.
type NewNotCallable struct {
	ast.Positioner
	Reason string
	stack  []byte
}

func (e NewNotCallable) Error() string {
	return fmt.Sprintf("cannot guard callable: %s", e.Reason)
}
func (e NewNotCallable) Code() ErrCode    { return NotCallable }
func (e NewNotCallable) getStack() []byte { return e.stack }
func (e NewNotCallable) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

// NewTemplateShape reports a template whose fragment and embed counts
// do not interleave.
type NewTemplateShape struct {
	ast.Positioner
	Fragments int
	Embeds    int
	stack     []byte
}

func (e NewTemplateShape) Error() string {
	return fmt.Sprintf("template needs %d literal fragments for %d embedded predicates, got %d", e.Embeds+1, e.Embeds, e.Fragments)
}
func (e NewTemplateShape) Code() ErrCode    { return TemplateShape }
func (e NewTemplateShape) getStack() []byte { return e.stack }
func (e NewTemplateShape) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

// NewReservedIdent reports a user-written identifier that clashes with
// the reserved placeholder prefix.
type NewReservedIdent struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewReservedIdent) Error() string {
	return fmt.Sprintf("identifier '%s' uses a reserved prefix", e.Name)
}
func (e NewReservedIdent) Code() ErrCode    { return ReservedIdent }
func (e NewReservedIdent) getStack() []byte { return e.stack }
func (e NewReservedIdent) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

// NewArityMismatch reports a callable whose declared parameter count
// differs from its signature's. Raised once, at guard construction.
type NewArityMismatch struct {
	ast.Positioner
	Declared int
	Want     int
	stack    []byte
}

func (e NewArityMismatch) Error() string {
	return fmt.Sprintf("signature declares %d parameters, but the callable takes %d", e.Want, e.Declared)
}
func (e NewArityMismatch) Code() ErrCode    { return ArityMismatch }
func (e NewArityMismatch) getStack() []byte { return e.stack }
func (e NewArityMismatch) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

type NewArgumentCount struct {
	ast.Positioner
	Got  int
	Want int
	stack []byte
}

func (e NewArgumentCount) Error() string {
	return fmt.Sprintf("expected %d arguments, got %d", e.Want, e.Got)
}
func (e NewArgumentCount) Code() ErrCode    { return ArgumentCount }
func (e NewArgumentCount) getStack() []byte { return e.stack }
func (e NewArgumentCount) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

// NewArgumentType reports the first argument that failed its predicate.
// Index is 1-based.
type NewArgumentType struct {
	ast.Positioner
	Index int
	Want  string
	stack []byte
}

func (e NewArgumentType) Error() string {
	return fmt.Sprintf("argument %d is not a %s", e.Index, e.Want)
}
func (e NewArgumentType) Code() ErrCode    { return ArgumentType }
func (e NewArgumentType) getStack() []byte { return e.stack }
func (e NewArgumentType) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

// NewReturnType reports a result that failed the return predicate.
// The callable has already run when this is raised.
type NewReturnType struct {
	ast.Positioner
	Want  string
	stack []byte
}

func (e NewReturnType) Error() string {
	return fmt.Sprintf("return value is not a %s", e.Want)
}
func (e NewReturnType) Code() ErrCode    { return ReturnType }
func (e NewReturnType) getStack() []byte { return e.stack }
func (e NewReturnType) withStack(stack []byte) Error {
	e.stack = stack
	return e
}
