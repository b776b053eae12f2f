package ast

import (
	set "github.com/hashicorp/go-set/v3"
)

// ReservedNames are type names with built-in meaning: they are claimed by
// the compiler and never fall through to nominal matching.
var ReservedNames = set.From([]string{
	NameFunction,
	NameObject,
})

const (
	// NameFunction matches any callable value
	NameFunction = "Function"
	// NameObject matches any non-null object value
	NameObject = "Object"
)

// Keywords are the reserved words of the grammar. A type name can
// never take these spellings; the parser claims them first.
var Keywords = set.From([]string{
	"bool", "number", "string", "null", "void", "any", "true", "false",
})
