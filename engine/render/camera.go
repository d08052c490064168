package render

import (
	"math/rand"
)

// Camera maps the display onto the fixed playfield and owns the screen
// shake offset applied to each draw pass
type Camera struct {
	ScreenW, ScreenH int     // display size in pixels or terminal sub-cells
	Width, Height    float64 // playfield size

	ShakeTime  int     // frames of shake left
	ShakeRange float64 // max offset per axis

	rng *rand.Rand
}

// NewCamera creates a camera with default settings
func NewCamera(screenW, screenH int, width, height float64, rng *rand.Rand) *Camera {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Camera{
		ScreenW:    screenW,
		ScreenH:    screenH,
		Width:      width,
		Height:     height,
		ShakeRange: 2,
		rng:        rng,
	}
}

// Resize updates the display size
func (c *Camera) Resize(screenW, screenH int) {
	c.ScreenW = screenW
	c.ScreenH = screenH
}

// Shake extends the shake to at least amount frames
func (c *Camera) Shake(amount int) {
	if amount > c.ShakeTime {
		c.ShakeTime = amount
	}
}

// NextOffset consumes one frame of shake and returns the offset to draw at
func (c *Camera) NextOffset() (float64, float64) {
	if c.ShakeTime <= 0 {
		return 0, 0
	}
	c.ShakeTime--
	return c.jitter(), c.jitter()
}

func (c *Camera) jitter() float64 {
	return c.rng.Float64()*2*c.ShakeRange - c.ShakeRange
}

// ScreenToWorld converts display coordinates to playfield coordinates
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		return 0, 0
	}
	wx := float64(sx) / float64(c.ScreenW) * c.Width
	wy := float64(sy) / float64(c.ScreenH) * c.Height
	return wx, wy
}

// WorldToScreen converts playfield coordinates to display coordinates
func (c *Camera) WorldToScreen(wx, wy float64) (int, int) {
	sx := int(wx / c.Width * float64(c.ScreenW))
	sy := int(wy / c.Height * float64(c.ScreenH))
	return sx, sy
}
