package systems

import (
	"math"

	"github.com/1siamBot/pixel-rogue/engine/core"
)

// shootBullet spawns a straight-line projectile
func (s *Simulation) shootBullet(x, y, angle, speed float64, owner core.Owner) *core.Entity {
	return s.World.Spawn(&core.Entity{
		Kind: core.KindBullet,
		X:    x,
		Y:    y,
		Bullet: &core.BulletState{
			Angle:  angle,
			Speed:  speed,
			Owner:  owner,
			Sprite: core.SprBullet,
		},
	})
}

func (s *Simulation) updateBullet(e *core.Entity) {
	b := e.Bullet
	w := s.World

	e.X += math.Cos(b.Angle) * b.Speed
	e.Y += math.Sin(b.Angle) * b.Speed

	if e.X <= 0 || e.X >= w.Width || e.Y <= 0 || e.Y >= w.Height {
		w.Destroy(e)
		return
	}

	switch b.Owner {
	case core.OwnerPlayer:
		// First hostile in registry order wins; one hit per bullet
		target := w.Find(func(o *core.Entity) bool {
			switch o.Kind {
			case core.KindEnemy:
				return e.DistanceTo(o) < HitRadius
			case core.KindBoss:
				return e.DistanceTo(o) < BossHitRadius
			}
			return false
		})
		if target != nil {
			w.Destroy(e)
			s.hitEnemy(target)
		}
	case core.OwnerEnemy:
		pl := w.Player
		if pl != nil && !pl.Removed() && e.DistanceTo(pl) < HitRadius {
			s.DamagePlayer(1)
			w.Destroy(e)
		}
	}
}
