package ui

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/1siamBot/pixel-rogue/engine/core"
	"github.com/1siamBot/pixel-rogue/engine/render"
)

// Bar pixel rates
const (
	HPBarRate    = 10.0
	AmmoBarRate  = 5.0
	FocusBarRate = 0.5
	BarHeight    = 4
	BarX         = 5
)

const GameOverText = "GAME OVER - SPACE TO RESTART"

var (
	ColorHP        = colornames.Red
	ColorAmmo      = colornames.Yellow
	ColorReloading = colornames.Gray
	ColorFocus     = colornames.Deepskyblue
	ColorOutline   = colornames.White
	ColorText      = colornames.White
	ColorDash      = colornames.Lime
	ColorCrosshair = colornames.White
)

// Bar is one resource gauge
type Bar struct {
	X, Y       float64
	Fill, Full float64 // widths in pixels
	Color      color.RGBA
}

// HUD is the overlay model built from the world each frame
type HUD struct {
	ScreenW, ScreenH int

	Bars      []Bar
	Lines     []string
	DashReady bool
	GameOver  bool
	Crosshair core.Pointer
}

func NewHUD(sw, sh int) *HUD {
	return &HUD{ScreenW: sw, ScreenH: sh}
}

// Update rebuilds the overlay from the world and the current pointer
func (h *HUD) Update(w *core.World, ptr core.Pointer) {
	h.Bars = h.Bars[:0]
	h.Lines = h.Lines[:0]
	h.Crosshair = ptr
	h.GameOver = w.GameOver
	h.DashReady = false

	if w.Player != nil {
		p := w.Player.Player
		ammo := ColorAmmo
		if p.Reloading() {
			ammo = ColorReloading
		}
		h.Bars = append(h.Bars,
			Bar{X: BarX, Y: 5, Fill: float64(p.HP) * HPBarRate, Full: float64(p.MaxHP) * HPBarRate, Color: ColorHP},
			Bar{X: BarX, Y: 11, Fill: float64(p.Ammo) * AmmoBarRate, Full: float64(p.MaxAmmo) * AmmoBarRate, Color: ammo},
			Bar{X: BarX, Y: 17, Fill: p.Focus * FocusBarRate, Full: p.MaxFocus * FocusBarRate, Color: ColorFocus},
		)
		h.DashReady = p.DashCharge >= 1 && p.DashCooldown <= 0
	}

	h.Lines = append(h.Lines,
		fmt.Sprintf("Wave: %d", w.Wave),
		fmt.Sprintf("Score: %d", w.Score),
		fmt.Sprintf("Combo: %d", w.Combo),
	)
}

// Draw paints the overlay. It ignores any shake offset on the canvas.
func (h *HUD) Draw(c render.Canvas) {
	c.SetOffset(0, 0)

	for _, b := range h.Bars {
		c.FillRect(b.X, b.Y, b.Fill, BarHeight, b.Color)
		c.StrokeRect(b.X-1, b.Y-1, b.Full+2, BarHeight+2, ColorOutline)
	}

	y := 36.0
	for _, l := range h.Lines {
		c.Text(l, BarX, y, render.AlignLeft, ColorText)
		y += 12
	}

	if h.DashReady {
		c.FillCircle(float64(h.ScreenW)-8, 8, 3, ColorDash)
	}

	// Crosshair
	x, cy := h.Crosshair.X, h.Crosshair.Y
	c.Line(x-4, cy, x-1, cy, 1, ColorCrosshair)
	c.Line(x+1, cy, x+4, cy, 1, ColorCrosshair)
	c.Line(x, cy-4, x, cy-1, 1, ColorCrosshair)
	c.Line(x, cy+1, x, cy+4, 1, ColorCrosshair)

	if h.GameOver {
		c.Text(GameOverText, float64(h.ScreenW)/2, float64(h.ScreenH)/2, render.AlignCenter, ColorText)
	}
}
