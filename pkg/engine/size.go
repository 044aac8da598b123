package engine

import "fmt"

// Size is a physical size in pixels.
type Size struct {
	Width  int
	Height int
}

// Clamped returns the size with each dimension raised to at least 1.
// Surfaces cannot be configured with a zero extent, which platforms report
// while a window is minimized.
func (s Size) Clamped() Size {
	return Size{Width: max(s.Width, 1), Height: max(s.Height, 1)}
}

func (s Size) String() string {
	return fmt.Sprintf("(%d, %d)", s.Width, s.Height)
}
