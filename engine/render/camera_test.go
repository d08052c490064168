package render

import (
	"math/rand"
	"testing"
)

func TestCamera_ShakeTakesMax(t *testing.T) {
	c := NewCamera(240, 135, 240, 135, rand.New(rand.NewSource(1)))
	c.Shake(5)
	c.Shake(3)
	if c.ShakeTime != 5 {
		t.Errorf("ShakeTime = %d, want 5", c.ShakeTime)
	}
	c.Shake(10)
	if c.ShakeTime != 10 {
		t.Errorf("ShakeTime = %d, want 10", c.ShakeTime)
	}
}

func TestCamera_OffsetCountsDown(t *testing.T) {
	c := NewCamera(240, 135, 240, 135, rand.New(rand.NewSource(2)))
	c.Shake(4)
	for i := 0; i < 4; i++ {
		dx, dy := c.NextOffset()
		if dx < -2 || dx > 2 || dy < -2 || dy > 2 {
			t.Fatalf("frame %d: offset (%f,%f) out of range", i, dx, dy)
		}
	}
	if c.ShakeTime != 0 {
		t.Fatalf("ShakeTime = %d", c.ShakeTime)
	}
	if dx, dy := c.NextOffset(); dx != 0 || dy != 0 {
		t.Errorf("offset (%f,%f) after shake ended", dx, dy)
	}
}

func TestCamera_ScreenToWorld(t *testing.T) {
	c := NewCamera(480, 270, 240, 135, nil)
	x, y := c.ScreenToWorld(240, 135)
	if x != 120 || y != 67.5 {
		t.Errorf("ScreenToWorld = (%f,%f)", x, y)
	}
	sx, sy := c.WorldToScreen(120, 67.5)
	if sx != 240 || sy != 135 {
		t.Errorf("WorldToScreen = (%d,%d)", sx, sy)
	}

	c.Resize(0, 0)
	if x, y := c.ScreenToWorld(10, 10); x != 0 || y != 0 {
		t.Error("zero-size screen should map to the origin")
	}
}
