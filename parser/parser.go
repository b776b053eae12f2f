package parser

import (
	"fmt"
	"go/token"
	"strconv"

	"github.com/tyck/tyck/frontend/ast"
	"github.com/tyck/tyck/frontend/tyerr"
)

// parser is a recursive-descent parser over the full token slice.
// Precedence climbs from union (loosest) through intersection to the
// postfix and primary forms.
type parser struct {
	toks []tok
	pos  int
}

func (p *parser) peek() tok { return p.toks[p.pos] }

func (p *parser) peekAt(n int) tok {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *parser) next() tok {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokKind) (tok, error) {
	t := p.peek()
	if t.kind != kind {
		return tok{}, p.errUnexpected(t, kind.String())
	}
	return p.next(), nil
}

func (p *parser) errUnexpected(t tok, wanted string) error {
	return tyerr.New(tyerr.NewGrammar{
		Positioner:    t.Range,
		ParserMessage: fmt.Sprintf("expected %s, found %s at offset %d", wanted, t.kind, t.Pos()),
	})
}

func spanOf(first, last ast.Positioner) ast.Range {
	return ast.Range{PosStart: first.Pos(), PosEnd: last.End()}
}

// parseType parses a full type expression: a union of intersections.
func (p *parser) parseType() (ast.Type, error) {
	first, err := p.parseInter()
	if err != nil {
		return nil, err
	}
	members := []ast.Type{first}
	for p.peek().kind == tokPipe {
		p.next()
		member, err := p.parseInter()
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	if len(members) == 1 {
		return first, nil
	}
	return &ast.Union{Members: members, Range: spanOf(first, members[len(members)-1])}, nil
}

func (p *parser) parseInter() (ast.Type, error) {
	first, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	members := []ast.Type{first}
	for p.peek().kind == tokAmp {
		p.next()
		member, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	if len(members) == 1 {
		return first, nil
	}
	return &ast.Inter{Members: members, Range: spanOf(first, members[len(members)-1])}, nil
}

// parsePostfix parses the nullable prefix and array suffixes.
// `?` binds the whole postfix chain after it: `?number[]` is a nullable
// array of numbers, and further suffixes stay inside the nullable.
func (p *parser) parsePostfix() (ast.Type, error) {
	if p.peek().kind == tokQuestion {
		q := p.next()
		inner, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		return &ast.Nullable{Inner: inner, Range: spanOf(q.Range, inner)}, nil
	}
	t, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokLBracket && p.peekAt(1).kind == tokRBracket {
		p.next()
		end := p.next()
		t = &ast.List{Elem: t, Range: spanOf(t, end.Range)}
	}
	return t, nil
}

func (p *parser) parsePrimary() (ast.Type, error) {
	t := p.peek()
	switch t.kind {
	case tokNumber:
		p.next()
		val, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, p.errUnexpected(t, "a number literal")
		}
		kind := token.INT
		for _, c := range t.text {
			if c == '.' {
				kind = token.FLOAT
			}
		}
		return &ast.Literal{Kind: kind, Syntax: t.text, Value: val, Range: t.Range}, nil
	case tokString:
		p.next()
		return &ast.Literal{Kind: token.STRING, Syntax: t.text, Value: t.text, Range: t.Range}, nil
	case tokWord:
		p.next()
		switch t.text {
		case "bool":
			return &ast.Primitive{Kind: ast.KindBool, Range: t.Range}, nil
		case "number":
			return &ast.Primitive{Kind: ast.KindNumber, Range: t.Range}, nil
		case "string":
			return &ast.Primitive{Kind: ast.KindString, Range: t.Range}, nil
		case "null":
			return &ast.Null{Range: t.Range}, nil
		case "void":
			return &ast.Void{Range: t.Range}, nil
		case "any":
			return &ast.Any{Range: t.Range}, nil
		case "true":
			return &ast.Literal{Kind: token.IDENT, Syntax: t.text, Value: true, Range: t.Range}, nil
		case "false":
			return &ast.Literal{Kind: token.IDENT, Syntax: t.text, Value: false, Range: t.Range}, nil
		default:
			return &ast.TypeName{Name: t.text, Range: t.Range}, nil
		}
	case tokLBracket:
		return p.parseTuple()
	case tokLBrace:
		return p.parseRecord()
	case tokLParen:
		if p.signatureAhead() {
			return p.parseSignature()
		}
		p.next()
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, p.errUnexpected(t, "a type")
	}
}

// signatureAhead reports whether the '(' at the cursor opens a function
// signature, which is the case exactly when its matching ')' is
// followed by '=>'. Otherwise the parens are grouping.
func (p *parser) signatureAhead() bool {
	depth := 0
	for i := p.pos; ; i++ {
		t := p.peekAt(i - p.pos)
		switch t.kind {
		case tokLParen:
			depth++
		case tokRParen:
			depth--
			if depth == 0 {
				return p.peekAt(i-p.pos+1).kind == tokArrow
			}
		case tokEOF:
			return false
		}
	}
}

func (p *parser) parseSignature() (ast.Type, error) {
	open, err := p.expect(tokLParen)
	if err != nil {
		return nil, err
	}
	var args []ast.Type
	for p.peek().kind != tokRParen {
		if len(args) > 0 {
			if _, err := p.expect(tokComma); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseType()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	p.next() // ')'
	if _, err := p.expect(tokArrow); err != nil {
		return nil, err
	}
	ret, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.FnType{Args: args, Return: ret, Range: spanOf(open.Range, ret)}, nil
}

func (p *parser) parseTuple() (ast.Type, error) {
	open, err := p.expect(tokLBracket)
	if err != nil {
		return nil, err
	}
	var elems []ast.Type
	for p.peek().kind != tokRBracket {
		if len(elems) > 0 {
			if _, err := p.expect(tokComma); err != nil {
				return nil, err
			}
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	end := p.next()
	return &ast.Tuple{Elems: elems, Range: spanOf(open.Range, end.Range)}, nil
}

func (p *parser) parseRecord() (ast.Type, error) {
	open, err := p.expect(tokLBrace)
	if err != nil {
		return nil, err
	}
	var fields []ast.Field
	for p.peek().kind != tokRBrace {
		if len(fields) > 0 {
			if _, err := p.expect(tokComma); err != nil {
				return nil, err
			}
		}
		key, err := p.expect(tokWord)
		if err != nil {
			return nil, err
		}
		optional := false
		if p.peek().kind == tokQuestion {
			p.next()
			optional = true
		}
		if _, err := p.expect(tokColon); err != nil {
			return nil, err
		}
		fieldType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.Field{
			Key:      key.text,
			Value:    fieldType,
			Optional: optional,
			Range:    spanOf(key.Range, fieldType),
		})
	}
	end := p.next()
	return &ast.Record{Fields: fields, Range: spanOf(open.Range, end.Range)}, nil
}
