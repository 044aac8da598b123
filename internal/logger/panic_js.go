//go:build js && wasm

package logger

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"syscall/js"
)

var panicHook atomic.Bool

// InstallPanicHook makes RecoverToConsole report panics to console.error
// before they propagate.
func InstallPanicHook() {
	panicHook.Store(true)
}

// RecoverToConsole must be deferred directly by every JS callback. It
// reports a panic with its stack to console.error and then re-panics.
func RecoverToConsole() {
	r := recover()
	if r == nil {
		return
	}
	if panicHook.Load() {
		js.Global().Get("console").Call("error", fmt.Sprintf("panic: %v\n\n%s", r, debug.Stack()))
	}
	panic(r)
}
