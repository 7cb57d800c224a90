package anim

import "fmt"

// Frame identifies one grid cell of a sprite sheet by its zero-based
// column and row.
type Frame struct {
	Col int
	Row int
}

func (f Frame) String() string {
	return fmt.Sprintf("(%d,%d)", f.Col, f.Row)
}
