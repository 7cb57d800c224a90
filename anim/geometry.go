package anim

import "image"

// SheetGeometry describes how a sprite sheet's pixel area divides into a
// grid of fixed-size frames. Partial cells at the right and bottom edges
// are not part of the grid.
type SheetGeometry struct {
	SheetW int
	SheetH int
	FrameW int
	FrameH int
}

// NewSheetGeometry validates the frame size against the sheet size.
func NewSheetGeometry(sheetW, sheetH, frameW, frameH int) (SheetGeometry, error) {
	if frameW <= 0 || frameH <= 0 {
		return SheetGeometry{}, ErrInvalidFrameSize
	}
	return SheetGeometry{SheetW: sheetW, SheetH: sheetH, FrameW: frameW, FrameH: frameH}, nil
}

// Columns returns how many whole frames fit across the sheet.
func (g SheetGeometry) Columns() int {
	return g.SheetW / g.FrameW
}

// Rows returns how many whole frames fit down the sheet.
func (g SheetGeometry) Rows() int {
	return g.SheetH / g.FrameH
}

// Contains reports whether f addresses a cell inside the grid.
func (g SheetGeometry) Contains(f Frame) bool {
	return f.Col >= 0 && f.Row >= 0 && f.Col < g.Columns() && f.Row < g.Rows()
}

// Rect returns the pixel rectangle of f relative to the sheet origin.
func (g SheetGeometry) Rect(f Frame) image.Rectangle {
	x := f.Col * g.FrameW
	y := f.Row * g.FrameH
	return image.Rect(x, y, x+g.FrameW, y+g.FrameH)
}
