//go:build js && wasm

package engine

import (
	"fmt"
	"syscall/js"
)

// LookupCanvas returns the <canvas> element with the given id. It fails with
// ErrCanvasNotFound when no element has that id and ErrNotCanvas when the
// element is something else.
func LookupCanvas(id string) (js.Value, error) {
	canvas := js.Global().Get("document").Call("getElementById", id)
	if canvas.IsNull() || canvas.IsUndefined() {
		return js.Undefined(), fmt.Errorf("%w: #%s", ErrCanvasNotFound, id)
	}
	if !canvas.InstanceOf(js.Global().Get("HTMLCanvasElement")) {
		return js.Undefined(), fmt.Errorf("%w: #%s is <%s>", ErrNotCanvas, id, canvas.Get("tagName").String())
	}
	return canvas, nil
}

// CanvasSize is the size of the canvas backing store
func CanvasSize(canvas js.Value) Size {
	return Size{Width: canvas.Get("width").Int(), Height: canvas.Get("height").Int()}
}
