package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/1siamBot/pixel-rogue/engine/audio"
	"github.com/1siamBot/pixel-rogue/engine/core"
)

type fakeTone struct {
	freqs []float64
}

func (f *fakeTone) PlayTone(freq float64, length time.Duration, wave audio.WaveType) {
	f.freqs = append(f.freqs, freq)
}

func (f *fakeTone) played(freq float64) bool {
	for _, v := range f.freqs {
		if v == freq {
			return true
		}
	}
	return false
}

type fakeShake struct {
	max int
}

func (f *fakeShake) Shake(amount int) {
	if amount > f.max {
		f.max = amount
	}
}

type testRig struct {
	sim   *Simulation
	world *core.World
	in    *core.Snapshot
	tone  *fakeTone
	shake *fakeShake
}

func newRig(t *testing.T, seed int64) *testRig {
	t.Helper()
	w := core.NewWorld(240, 135)
	in := &core.Snapshot{}
	sim := NewSimulation(w, in, rand.New(rand.NewSource(seed)))
	r := &testRig{
		sim:   sim,
		world: w,
		in:    in,
		tone:  &fakeTone{},
		shake: &fakeShake{},
	}
	sim.Audio = r.tone
	sim.Shake = r.shake
	return r
}

// quiet stops random spawns and parks one idle enemy in the far corner so
// the field never counts as cleared
func (r *testRig) quiet() *core.Entity {
	r.world.EnemiesToSpawn = 0
	return r.world.Spawn(&core.Entity{
		Kind:  core.KindEnemy,
		X:     20,
		Y:     125,
		Enemy: &core.EnemyState{HP: EnemyHP, Reload: 100000},
	})
}

func (r *testRig) enemy(x, y float64, hp int) *core.Entity {
	return r.world.Spawn(&core.Entity{
		Kind:  core.KindEnemy,
		X:     x,
		Y:     y,
		Enemy: &core.EnemyState{HP: hp, Reload: 100000},
	})
}

func (r *testRig) player() *core.PlayerState {
	return r.world.Player.Player
}

func (r *testRig) steps(n int) {
	for i := 0; i < n; i++ {
		r.sim.Step()
	}
}

func (r *testRig) count(kind core.EventType) int {
	n := 0
	r.sim.Bus.On(kind, func(core.Event) { n++ })
	r.sim.Bus.Dispatch()
	return n
}
