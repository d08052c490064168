package core

import "time"

// GameLoop turns variable frame callbacks into a whole number of fixed-size
// simulation steps followed by exactly one render pass.
type GameLoop struct {
	Step   func() // one fixed simulation step
	Render func() // one render pass per frame

	TickRate     float64 // fixed ticks per second
	MaxFrameTime float64 // seconds; 0 disables the clamp

	accumulator float64
	lastTime    time.Time
	started     bool
}

// NewGameLoop creates a game loop with fixed tick rate
func NewGameLoop(tickRate float64, step, render func()) *GameLoop {
	return &GameLoop{
		Step:         step,
		Render:       render,
		TickRate:     tickRate,
		MaxFrameTime: 0.25,
	}
}

// Update should be called every render frame. It measures wall-clock time
// since the previous call and feeds it to Advance.
func (gl *GameLoop) Update() int {
	now := time.Now()
	if !gl.started {
		gl.started = true
		gl.lastTime = now
	}
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now
	return gl.Advance(frameTime)
}

// Advance accumulates frameTime seconds, runs as many fixed steps as the
// accumulator holds, then renders once. It returns the number of steps run.
func (gl *GameLoop) Advance(frameTime float64) int {
	if frameTime < 0 {
		frameTime = 0
	}
	// Cap frame time to avoid spiral of death
	if gl.MaxFrameTime > 0 && frameTime > gl.MaxFrameTime {
		frameTime = gl.MaxFrameTime
	}

	dt := gl.Timestep()
	gl.accumulator += frameTime

	steps := 0
	for gl.accumulator > dt {
		if gl.Step != nil {
			gl.Step()
		}
		gl.accumulator -= dt
		steps++
	}

	if gl.Render != nil {
		gl.Render()
	}
	return steps
}

// Timestep returns the fixed step length in seconds
func (gl *GameLoop) Timestep() float64 {
	return 1.0 / gl.TickRate
}

// Alpha returns the interpolation fraction left in the accumulator
func (gl *GameLoop) Alpha() float64 {
	return gl.accumulator / gl.Timestep()
}

// Reset discards accumulated time, e.g. after the host was suspended
func (gl *GameLoop) Reset() {
	gl.accumulator = 0
	gl.started = false
}
