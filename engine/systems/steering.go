package systems

import "github.com/1siamBot/pixel-rogue/engine/core"

// seek moves e toward (tx, ty) by speed units. With standoff > 0 the entity
// holds position once it is within standoff of the target.
func seek(e *core.Entity, tx, ty, speed, standoff float64) {
	if standoff > 0 && core.Distance(e.X, e.Y, tx, ty) <= standoff {
		return
	}
	dir := core.Direction(e.X, e.Y, tx, ty)
	e.X += dir.X() * speed
	e.Y += dir.Y() * speed
}
