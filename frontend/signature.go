package frontend

import (
	"github.com/tyck/tyck/frontend/ast"
	"github.com/tyck/tyck/frontend/tyerr"
)

// ExtractSignature checks that node is a function signature and splits
// it into its ordered parameter nodes and its return node, unchanged.
func ExtractSignature(node ast.Type) (params []ast.Type, ret ast.Type, err error) {
	fn, ok := node.(*ast.FnType)
	if !ok {
		return nil, nil, tyerr.New(tyerr.NewNotASignature{
			Positioner: ast.RangeOf(node),
			Got:        node,
		})
	}
	return fn.Args, fn.Return, nil
}
