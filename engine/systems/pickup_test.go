package systems

import (
	"testing"

	"github.com/1siamBot/pixel-rogue/engine/core"
)

func TestPickupCollect(t *testing.T) {
	tests := []struct {
		kind  core.PickupKind
		setup func(p *core.PlayerState)
		check func(t *testing.T, r *testRig)
	}{
		{core.PickupAmmo, func(p *core.PlayerState) { p.Ammo = 3 }, func(t *testing.T, r *testRig) {
			if r.player().Ammo != PlayerMaxAmmo {
				t.Errorf("ammo = %d", r.player().Ammo)
			}
		}},
		{core.PickupHealth, func(p *core.PlayerState) { p.HP = 3 }, func(t *testing.T, r *testRig) {
			if r.player().HP != 4 {
				t.Errorf("hp = %d", r.player().HP)
			}
		}},
		{core.PickupHealth, func(p *core.PlayerState) {}, func(t *testing.T, r *testRig) {
			if r.player().HP != PlayerMaxHP {
				t.Errorf("hp = %d, want capped", r.player().HP)
			}
		}},
		{core.PickupCoin, func(p *core.PlayerState) {}, func(t *testing.T, r *testRig) {
			if r.world.Score != CoinScore {
				t.Errorf("score = %d", r.world.Score)
			}
			if r.world.Combo != 0 {
				t.Errorf("coin changed combo to %d", r.world.Combo)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			r := newRig(t, 50)
			r.quiet()
			tt.setup(r.player())
			pl := r.world.Player
			pk := r.world.Spawn(&core.Entity{
				Kind:   core.KindPickup,
				X:      pl.X + 3,
				Y:      pl.Y,
				Pickup: &core.PickupState{Kind: tt.kind},
			})

			r.sim.Step()

			if !pk.Removed() {
				t.Fatal("pickup not collected")
			}
			if !r.tone.played(TonePickup) {
				t.Error("no pickup tone")
			}
			tt.check(t, r)
		})
	}
}

func TestPickupSpinsOutOfReach(t *testing.T) {
	r := newRig(t, 51)
	r.quiet()
	pk := r.sim.spawnPickup(200, 20)

	r.steps(3)

	if pk.Removed() {
		t.Fatal("distant pickup collected")
	}
	if d := pk.Pickup.Angle - 3*PickupSpin; d > 1e-9 || d < -1e-9 {
		t.Errorf("angle = %f", pk.Pickup.Angle)
	}
}
