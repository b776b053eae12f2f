//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/tyck/tyck/tyck"
)

func main() {
	js.Global().Set("TyckCheckValue", js.FuncOf(tyck.CheckValue))
	js.Global().Set("TyckShowType", js.FuncOf(tyck.ShowType))

	// wait indefinitely so that Go does not terminate execution
	// and the functions remain available
	<-make(chan struct{})
}
