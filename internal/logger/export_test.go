package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// resetDefault returns the process-wide logger to its discarding state.
func resetDefault() {
	stdMu.Lock()
	defer stdMu.Unlock()
	std.Close()
	std.mu.Lock()
	std.out = io.Discard
	std.level = zerolog.Disabled
	std.useColors = false
	std.rebuild()
	std.mu.Unlock()
	initialized = false
}
