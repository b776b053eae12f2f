package parser

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/tyck/tyck/frontend/ast"
	"github.com/tyck/tyck/frontend/tyerr"
)

type tokKind uint8

const (
	tokEOF tokKind = iota
	tokWord   // identifiers and keywords; keywords are contextual
	tokNumber // integer or float, optional leading '-'
	tokString // decoded string literal, single or double quoted
	tokQuestion
	tokLBracket
	tokRBracket
	tokLBrace
	tokRBrace
	tokLParen
	tokRParen
	tokComma
	tokColon
	tokPipe
	tokAmp
	tokArrow // "=>"
)

func (k tokKind) String() string {
	switch k {
	case tokEOF:
		return "end of expression"
	case tokWord:
		return "identifier"
	case tokNumber:
		return "number literal"
	case tokString:
		return "string literal"
	case tokQuestion:
		return "'?'"
	case tokLBracket:
		return "'['"
	case tokRBracket:
		return "']'"
	case tokLBrace:
		return "'{'"
	case tokRBrace:
		return "'}'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokComma:
		return "','"
	case tokColon:
		return "':'"
	case tokPipe:
		return "'|'"
	case tokAmp:
		return "'&'"
	case tokArrow:
		return "'=>'"
	default:
		return "invalid token"
	}
}

type tok struct {
	kind tokKind
	// text is the decoded token payload: the identifier spelling, the
	// number as written, or the unescaped string body
	text string
	ast.Range
}

// lex tokenises the whole expression upfront; the parser works over the
// resulting slice so it can look ahead freely.
func lex(src string) ([]tok, error) {
	var toks []tok
	i := 0
	emit := func(kind tokKind, text string, start int) {
		toks = append(toks, tok{kind: kind, text: text, Range: rangeAt(start, i)})
	}
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '?':
			i++
			emit(tokQuestion, "?", i-1)
		case c == '[':
			i++
			emit(tokLBracket, "[", i-1)
		case c == ']':
			i++
			emit(tokRBracket, "]", i-1)
		case c == '{':
			i++
			emit(tokLBrace, "{", i-1)
		case c == '}':
			i++
			emit(tokRBrace, "}", i-1)
		case c == '(':
			i++
			emit(tokLParen, "(", i-1)
		case c == ')':
			i++
			emit(tokRParen, ")", i-1)
		case c == ',':
			i++
			emit(tokComma, ",", i-1)
		case c == ':':
			i++
			emit(tokColon, ":", i-1)
		case c == '|':
			i++
			emit(tokPipe, "|", i-1)
		case c == '&':
			i++
			emit(tokAmp, "&", i-1)
		case c == '=':
			if i+1 >= len(src) || src[i+1] != '>' {
				return nil, lexErr(i, "expected '=>' after '='")
			}
			i += 2
			emit(tokArrow, "=>", i-2)
		case c == '"' || c == '\'':
			start := i
			body, next, err := lexString(src, i)
			if err != nil {
				return nil, err
			}
			i = next
			emit(tokString, body, start)
		case isDigit(c) || (c == '-' && i+1 < len(src) && isDigit(src[i+1])):
			start := i
			i++
			for i < len(src) && (isDigit(src[i]) || src[i] == '.') {
				i++
			}
			text := src[start:i]
			if strings.Count(text, ".") > 1 {
				return nil, lexErr(start, fmt.Sprintf("malformed number '%s'", text))
			}
			emit(tokNumber, text, start)
		case isWordStart(c):
			start := i
			for i < len(src) && isWordPart(src[i]) {
				i++
			}
			emit(tokWord, src[start:i], start)
		default:
			return nil, lexErr(i, fmt.Sprintf("unexpected character %q", c))
		}
	}
	toks = append(toks, tok{kind: tokEOF, Range: rangeAt(len(src), len(src))})
	return toks, nil
}

func lexString(src string, at int) (body string, next int, err error) {
	quote := src[at]
	sb := strings.Builder{}
	i := at + 1
	for i < len(src) {
		c := src[i]
		switch c {
		case quote:
			return sb.String(), i + 1, nil
		case '\\':
			if i+1 >= len(src) {
				return "", 0, lexErr(at, "unterminated string literal")
			}
			switch src[i+1] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(src[i+1])
			}
			i += 2
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return "", 0, lexErr(at, "unterminated string literal")
}

func lexErr(at int, msg string) error {
	return tyerr.New(tyerr.NewGrammar{
		Positioner:    rangeAt(at, at),
		ParserMessage: fmt.Sprintf("%s at offset %d", msg, at),
	})
}

func rangeAt(start, end int) ast.Range {
	return ast.Range{PosStart: token.Pos(start), PosEnd: token.Pos(end)}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isWordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordPart(c byte) bool { return isWordStart(c) || isDigit(c) }
