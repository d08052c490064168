package render

import (
	"image"
	"image/color"
	"testing"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func TestRaster_FillRect(t *testing.T) {
	r := NewRaster(20, 10)
	r.Clear(black)
	r.FillRect(2, 3, 4, 2, red)

	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			inside := x >= 2 && x < 6 && y >= 3 && y < 5
			got := r.Img.RGBAAt(x, y)
			if inside && got != red {
				t.Fatalf("(%d,%d) = %v, want red", x, y, got)
			}
			if !inside && got != black {
				t.Fatalf("(%d,%d) = %v, want background", x, y, got)
			}
		}
	}
}

func TestRaster_OffsetShiftsPrimitives(t *testing.T) {
	r := NewRaster(20, 10)
	r.SetOffset(2, 1)
	r.FillRect(0, 0, 1, 1, red)

	if r.Img.RGBAAt(2, 1) != red {
		t.Error("offset not applied")
	}
	if r.Img.RGBAAt(0, 0) == red {
		t.Error("pixel drawn at the unshifted position")
	}
}

func TestRaster_StrokeRectLeavesInteriorEmpty(t *testing.T) {
	r := NewRaster(20, 10)
	r.StrokeRect(1, 1, 6, 4, red)

	if r.Img.RGBAAt(1, 1) != red || r.Img.RGBAAt(6, 4) != red {
		t.Error("corners not drawn")
	}
	if r.Img.RGBAAt(3, 2).A != 0 {
		t.Error("interior filled")
	}
}

func TestRaster_BlitSkipsTransparent(t *testing.T) {
	r := NewRaster(10, 10)
	r.Clear(black)
	r.Blit(0, 0, SpritePlayer)

	if got := r.Img.RGBAAt(0, 0); got != black {
		t.Errorf("transparent pixel overwrote background: %v", got)
	}
	if got := r.Img.RGBAAt(3, 0); got != Palette['w'] {
		t.Errorf("(3,0) = %v, want white", got)
	}
}

func TestRaster_ClipsOffscreen(t *testing.T) {
	r := NewRaster(10, 10)
	r.Blit(-4, -4, SpriteEnemy)
	r.Blit(8, 8, SpriteEnemy)
	r.FillCircle(0, 0, 3, red)
	r.Line(-5, -5, 50, 50, 1, red)

	if r.Img.RGBAAt(0, 0) != red {
		t.Error("visible part of the circle missing")
	}
}

func TestRaster_Text(t *testing.T) {
	r := NewRaster(120, 20)
	r.Text("Wave: 1", 2, 14, AlignLeft, red)

	if count(r.Img, red) == 0 {
		t.Fatal("no glyph pixels drawn")
	}

	c := NewRaster(120, 20)
	c.Text("AB", 60, 14, AlignCenter, red)
	minX, maxX := 120, 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 120; x++ {
			if c.Img.RGBAAt(x, y).A != 0 {
				minX = min(minX, x)
				maxX = max(maxX, x)
			}
		}
	}
	if minX < 53 || maxX > 67 {
		t.Errorf("centered text spans %d..%d", minX, maxX)
	}
}

func TestRaster_ScaleTo(t *testing.T) {
	r := NewRaster(4, 4)
	r.FillRect(0, 0, 2, 2, red)
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	r.ScaleTo(dst)

	if dst.RGBAAt(3, 3) != red || dst.RGBAAt(4, 4) == red {
		t.Error("nearest-neighbour scaling misplaced the block")
	}
}

func count(img *image.RGBA, c color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}
