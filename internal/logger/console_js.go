//go:build js && wasm

package logger

import (
	"strings"
	"syscall/js"
)

// consoleWriter forwards each formatted line to the browser console.
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	js.Global().Get("console").Call("log", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// InitConsole configures the process-wide logger to write through
// console.log. Colors are off since the devtools console does not render
// ANSI escapes.
func InitConsole(level string) error {
	l := NewLogger(level)
	l.SetOutput(consoleWriter{})
	l.EnableColors(false)
	return adopt(l)
}
