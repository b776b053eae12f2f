package frontend

import (
	"strconv"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/tyck/tyck/frontend/ast"
	"github.com/tyck/tyck/frontend/tyerr"
)

// RefPrefix starts every generated placeholder identifier. User-written
// identifiers may never use it, which is what makes placeholder names
// collision-free.
const RefPrefix = "__tyckRef"

// RefEnv maps placeholder identifiers to previously compiled
// predicates. It lives for a single compilation and is discarded
// afterwards; it is not global state.
type RefEnv struct {
	refs *immutable.Map[string, *Predicate]
}

// Lookup resolves a placeholder name, if it is one.
func (e *RefEnv) Lookup(name string) (*Predicate, bool) {
	if e == nil || e.refs == nil {
		return nil, false
	}
	return e.refs.Get(name)
}

// Len returns the number of placeholders in the environment.
func (e *RefEnv) Len() int {
	if e == nil || e.refs == nil {
		return 0
	}
	return e.refs.Len()
}

// BuildTemplate splices previously compiled predicates into new
// expression text. fragments and embeds interleave the way tagged
// template literals do: len(fragments) == len(embeds)+1, with embeds[i]
// sitting between fragments[i] and fragments[i+1]. Each embed becomes a
// generated placeholder identifier recorded in a fresh RefEnv.
func BuildTemplate(fragments []string, embeds []*Predicate) (string, *RefEnv, error) {
	if len(fragments) != len(embeds)+1 {
		return "", nil, tyerr.New(tyerr.NewTemplateShape{
			Positioner: ast.Range{},
			Fragments:  len(fragments),
			Embeds:     len(embeds),
		})
	}
	for _, fragment := range fragments {
		if at := strings.Index(fragment, RefPrefix); at >= 0 {
			return "", nil, tyerr.New(tyerr.NewReservedIdent{
				Positioner: ast.Range{},
				Name:       identAt(fragment, at),
			})
		}
	}

	sb := strings.Builder{}
	builder := immutable.NewMapBuilder[string, *Predicate](nil)
	sb.WriteString(fragments[0])
	for i, embed := range embeds {
		placeholder := RefPrefix + strconv.Itoa(i)
		builder.Set(placeholder, embed)
		sb.WriteString(placeholder)
		sb.WriteString(fragments[i+1])
	}
	return sb.String(), &RefEnv{refs: builder.Map()}, nil
}

// identAt extracts the identifier starting at offset at, for the error
// message only.
func identAt(s string, at int) string {
	end := at
	for end < len(s) && (s[end] == '_' || s[end] >= 'a' && s[end] <= 'z' || s[end] >= 'A' && s[end] <= 'Z' || s[end] >= '0' && s[end] <= '9') {
		end++
	}
	return s[at:end]
}
