package render

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Terminal presents a Raster on a tcell screen. Each cell carries two
// vertically stacked pixels drawn with an upper half block.
type Terminal struct {
	Screen tcell.Screen

	buf *image.RGBA
}

func NewTerminal(s tcell.Screen) *Terminal {
	return &Terminal{Screen: s}
}

// Size returns the sub-cell resolution of the terminal
func (t *Terminal) Size() (int, int) {
	cols, rows := t.Screen.Size()
	return cols, rows * 2
}

// Present scales r to the terminal and shows it
func (t *Terminal) Present(r *Raster) {
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	if t.buf == nil || t.buf.Rect.Dx() != w || t.buf.Rect.Dy() != h {
		t.buf = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	r.ScaleTo(t.buf)

	for y := 0; y+1 < h; y += 2 {
		for x := 0; x < w; x++ {
			top := t.buf.RGBAAt(x, y)
			bot := t.buf.RGBAAt(x, y+1)
			st := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bot))
			t.Screen.SetContent(x, y/2, '▀', nil, st)
		}
	}
	t.Screen.Show()
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
