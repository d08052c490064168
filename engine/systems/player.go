package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/1siamBot/pixel-rogue/engine/audio"
	"github.com/1siamBot/pixel-rogue/engine/core"
)

func (s *Simulation) updatePlayer(e *core.Entity) {
	p := e.Player
	w := s.World
	in := s.Input
	if in == nil {
		in = &core.Snapshot{}
	}

	// Movement
	axis := mgl64.Vec2{
		held(in, core.ActRight) - held(in, core.ActLeft),
		held(in, core.ActDown) - held(in, core.ActUp),
	}
	l := axis.Len()
	if l == 0 {
		l = 1
	}
	axis = axis.Mul(1 / l)

	speed := p.Speed
	if p.Slow {
		speed *= SlowFactor
	}
	if p.Dashing > 0 {
		speed = DashSpeed
		axis = p.DashDir
		p.Dashing--
	}
	p.Vel = lerpVec(p.Vel, axis.Mul(speed), VelocityLerp)
	e.X += p.Vel.X()
	e.Y += p.Vel.Y()

	// Aiming
	ptr := in.Pointer()
	p.Facing = e.AngleTo(ptr.X, ptr.Y)

	// Shooting
	if ptr.Primary && p.Ammo > 0 && !p.Reloading() {
		s.shootBullet(e.X, e.Y, p.Facing, PlayerBulletSpeed, core.OwnerPlayer)
		p.Ammo--
		s.tone(ToneShot)
		w.Combo++
		w.ComboDecay = ComboDelay
		s.emit(core.EvtShotFired, p.Ammo)
	}

	// Reload
	if in.Held(core.ActReload) && p.Ammo < p.MaxAmmo && !p.Reloading() {
		p.ReloadTimer = ReloadSteps
	}
	if p.ReloadTimer > 0 {
		p.ReloadTimer--
		if p.ReloadTimer == 0 {
			p.Ammo = p.MaxAmmo
		}
	}

	// Dash
	if ptr.Secondary && p.DashCharge >= 1 && p.DashCooldown <= 0 {
		p.Dashing = DashSteps
		p.DashDir = mgl64.Vec2{math.Cos(p.Facing), math.Sin(p.Facing)}
		p.DashCharge = 0
		p.DashCooldown = DashCooldownSteps
		s.Audio.PlayTone(ToneDash, DashLength, audio.WaveSquare)
		s.emit(core.EvtDash, nil)
	}
	if p.DashCooldown > 0 {
		p.DashCooldown--
		if p.DashCooldown == 0 {
			p.DashCharge = 1
		}
	}

	// Slow motion only scales player speed
	slowHeld := in.Held(core.ActSlow)
	p.Slow = slowHeld && p.Focus > 0
	if p.Slow {
		p.Focus = math.Max(0, p.Focus-FocusDrain)
	} else if !slowHeld && p.Focus < p.MaxFocus {
		p.Focus = math.Min(p.MaxFocus, p.Focus+FocusRegen)
	}

	// Bounds
	e.X = clamp(e.X, PlayerMargin, w.Width-PlayerMargin)
	e.Y = clamp(e.Y, PlayerMargin, w.Height-PlayerMargin)
}

func held(in core.Input, a core.Action) float64 {
	if in.Held(a) {
		return 1
	}
	return 0
}

func lerpVec(a, b mgl64.Vec2, t float64) mgl64.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
