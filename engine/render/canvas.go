package render

import "image/color"

// Align selects horizontal text anchoring
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
)

// Canvas is the drawing surface the draw pass paints on. Coordinates are
// playfield units; the current offset is added to every primitive.
type Canvas interface {
	Clear(bg color.Color)
	SetOffset(dx, dy float64)
	FillCircle(x, y, r float64, clr color.Color)
	Line(x1, y1, x2, y2, width float64, clr color.Color)
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h float64, clr color.Color)
	Text(s string, x, y float64, align Align, clr color.Color)
	Blit(x, y float64, spr *Sprite)
}
