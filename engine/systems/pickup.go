package systems

import "github.com/1siamBot/pixel-rogue/engine/core"

func (s *Simulation) spawnPickup(x, y float64) *core.Entity {
	return s.World.Spawn(&core.Entity{
		Kind: core.KindPickup,
		X:    x,
		Y:    y,
		Pickup: &core.PickupState{
			Kind: core.PickupKind(s.Rand.Intn(3)),
		},
	})
}

func (s *Simulation) updatePickup(e *core.Entity) {
	e.Pickup.Angle += PickupSpin

	pl := s.World.Player
	if pl == nil || e.DistanceTo(pl) >= PickupRadius {
		return
	}
	s.collect(e, pl.Player)
}

func (s *Simulation) collect(e *core.Entity, p *core.PlayerState) {
	w := s.World
	switch e.Pickup.Kind {
	case core.PickupAmmo:
		p.Ammo = p.MaxAmmo
	case core.PickupHealth:
		p.HP = min(p.MaxHP, p.HP+1)
	case core.PickupCoin:
		w.Score += CoinScore
	}
	s.tone(TonePickup)
	w.Destroy(e)
	s.emit(core.EvtPickupCollected, e.Pickup.Kind)
}
