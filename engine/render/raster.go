package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster is a software Canvas backed by an RGBA image. The terminal
// frontend and the tests draw through it.
type Raster struct {
	Img    *image.RGBA
	Face   font.Face
	dx, dy float64
}

// NewRaster allocates a w×h surface
func NewRaster(w, h int) *Raster {
	return &Raster{
		Img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		Face: basicfont.Face7x13,
	}
}

func (r *Raster) Clear(bg color.Color) {
	draw.Draw(r.Img, r.Img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

func (r *Raster) SetOffset(dx, dy float64) {
	r.dx, r.dy = dx, dy
}

func (r *Raster) FillCircle(x, y, rad float64, clr color.Color) {
	x, y = x+r.dx, y+r.dy
	minX, maxX := int(math.Floor(x-rad)), int(math.Ceil(x+rad))
	minY, maxY := int(math.Floor(y-rad)), int(math.Ceil(y+rad))
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			cx, cy := float64(px)+0.5-x, float64(py)+0.5-y
			if cx*cx+cy*cy <= rad*rad {
				r.plot(px, py, clr)
			}
		}
	}
}

func (r *Raster) Line(x1, y1, x2, y2, width float64, clr color.Color) {
	x1, y1, x2, y2 = x1+r.dx, y1+r.dy, x2+r.dx, y2+r.dy
	steps := int(math.Ceil(math.Max(math.Abs(x2-x1), math.Abs(y2-y1))))
	if steps == 0 {
		steps = 1
	}
	half := int(math.Max(width, 1)) / 2
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := int(math.Floor(x1 + (x2-x1)*t))
		py := int(math.Floor(y1 + (y2-y1)*t))
		for oy := -half; oy <= half; oy++ {
			for ox := -half; ox <= half; ox++ {
				r.plot(px+ox, py+oy, clr)
			}
		}
	}
}

func (r *Raster) FillRect(x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x, y = x+r.dx, y+r.dy
	rect := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	)
	draw.Draw(r.Img, rect, image.NewUniform(clr), image.Point{}, draw.Over)
}

func (r *Raster) StrokeRect(x, y, w, h float64, clr color.Color) {
	r.FillRect(x, y, w, 1, clr)
	r.FillRect(x, y+h-1, w, 1, clr)
	r.FillRect(x, y, 1, h, clr)
	r.FillRect(x+w-1, y, 1, h, clr)
}

// Text draws s with its baseline at y
func (r *Raster) Text(s string, x, y float64, align Align, clr color.Color) {
	d := &font.Drawer{
		Dst:  r.Img,
		Src:  image.NewUniform(clr),
		Face: r.Face,
	}
	if align == AlignCenter {
		x -= float64(d.MeasureString(s).Ceil()) / 2
	}
	d.Dot = fixed.P(int(math.Round(x+r.dx)), int(math.Round(y+r.dy)))
	d.DrawString(s)
}

func (r *Raster) Blit(x, y float64, spr *Sprite) {
	ox := int(math.Round(x + r.dx))
	oy := int(math.Round(y + r.dy))
	for sy := 0; sy < spr.H; sy++ {
		for sx := 0; sx < spr.W; sx++ {
			if c := spr.At(sx, sy); c.A != 0 {
				r.plot(ox+sx, oy+sy, c)
			}
		}
	}
}

// ScaleTo resamples the surface into dst with nearest-neighbour filtering
func (r *Raster) ScaleTo(dst *image.RGBA) {
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), r.Img, r.Img.Bounds(), draw.Src, nil)
}

func (r *Raster) plot(x, y int, clr color.Color) {
	if !(image.Point{X: x, Y: y}).In(r.Img.Rect) {
		return
	}
	r.Img.Set(x, y, clr)
}
