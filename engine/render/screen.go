package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// ScreenCanvas draws onto an ebiten image, normally the low-resolution
// screen handed to Game.Draw
type ScreenCanvas struct {
	Target *ebiten.Image
	Face   font.Face

	sprites map[*Sprite]*ebiten.Image
	dx, dy  float64
}

func NewScreenCanvas() *ScreenCanvas {
	return &ScreenCanvas{
		Face:    basicfont.Face7x13,
		sprites: make(map[*Sprite]*ebiten.Image),
	}
}

func (c *ScreenCanvas) Clear(bg color.Color) {
	c.Target.Fill(bg)
}

func (c *ScreenCanvas) SetOffset(dx, dy float64) {
	c.dx, c.dy = dx, dy
}

func (c *ScreenCanvas) FillCircle(x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.Target, float32(x+c.dx), float32(y+c.dy), float32(r), clr, false)
}

func (c *ScreenCanvas) Line(x1, y1, x2, y2, width float64, clr color.Color) {
	vector.StrokeLine(c.Target, float32(x1+c.dx), float32(y1+c.dy), float32(x2+c.dx), float32(y2+c.dy), float32(width), clr, false)
}

func (c *ScreenCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(c.Target, float32(x+c.dx), float32(y+c.dy), float32(w), float32(h), clr, false)
}

func (c *ScreenCanvas) StrokeRect(x, y, w, h float64, clr color.Color) {
	vector.StrokeRect(c.Target, float32(x+c.dx), float32(y+c.dy), float32(w), float32(h), 1, clr, false)
}

func (c *ScreenCanvas) Text(s string, x, y float64, align Align, clr color.Color) {
	if align == AlignCenter {
		x -= float64(font.MeasureString(c.Face, s).Ceil()) / 2
	}
	text.Draw(c.Target, s, c.Face, int(math.Round(x+c.dx)), int(math.Round(y+c.dy)), clr)
}

func (c *ScreenCanvas) Blit(x, y float64, spr *Sprite) {
	img := c.image(spr)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(math.Round(x+c.dx), math.Round(y+c.dy))
	c.Target.DrawImage(img, op)
}

// image uploads a sprite once and caches the texture
func (c *ScreenCanvas) image(spr *Sprite) *ebiten.Image {
	if img, ok := c.sprites[spr]; ok {
		return img
	}
	img := ebiten.NewImage(spr.W, spr.H)
	pix := make([]byte, 0, len(spr.Pix)*4)
	for _, p := range spr.Pix {
		pix = append(pix, p.R, p.G, p.B, p.A)
	}
	img.WritePixels(pix)
	c.sprites[spr] = img
	return img
}
