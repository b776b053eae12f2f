//go:build js && wasm

package tyck

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/tyck/tyck/frontend/ast"
	"github.com/tyck/tyck/frontend/tyerr"
	"github.com/tyck/tyck/parser"
)

// CheckValue compiles a type expression and checks a JSON value
// against it, returning a printable verdict. Arguments: expression
// text, JSON-encoded value.
func CheckValue(_ js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = "tyck panicked: " + fmt.Sprint(r)
		}
	}()

	expr := args[0].String()
	pred, err := Compile(expr)
	if err != nil {
		return formatErr(err)
	}
	var v any
	if err := json.Unmarshal([]byte(args[1].String()), &v); err != nil {
		return fmt.Sprintf("malformed JSON value: %s", err)
	}
	if pred.Check(v) {
		return fmt.Sprintf("ok: value satisfies %s", pred)
	}
	return fmt.Sprintf("fail: value does not satisfy %s", pred)
}

// ShowType parses a type expression and returns its normalised
// rendering, or the grammar error it raises.
func ShowType(_ js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = "tyck panicked: " + fmt.Sprint(r)
		}
	}()

	node, err := parser.ParseType(args[0].String())
	if err != nil {
		return formatErr(err)
	}
	return ast.TypeString(node)
}

func formatErr(err error) string {
	if tErr, ok := err.(tyerr.Error); ok {
		return tyerr.FormatWithCode(tErr)
	}
	return err.Error()
}
