package parser

import (
	"log/slog"

	"github.com/tyck/tyck/frontend/ast"
)

// ParseType parses the given type-expression text and returns its tree.
// The returned error, if any, is a tyerr grammar error.
func ParseType(text string) (ast.Type, error) {
	logger := slog.With("section", "parser")

	toks, err := lex(text)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if trailing := p.peek(); trailing.kind != tokEOF {
		return nil, p.errUnexpected(trailing, "end of expression")
	}
	logger.Debug("parsed type expression", "type", ast.Slog(t))
	return t, nil
}
