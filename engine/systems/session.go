package systems

import (
	"math/rand"
	"time"

	"github.com/1siamBot/pixel-rogue/engine/audio"
	"github.com/1siamBot/pixel-rogue/engine/core"
)

// TonePlayer is the audio collaborator. Calls are fire-and-forget.
type TonePlayer interface {
	PlayTone(freq float64, length time.Duration, wave audio.WaveType)
}

// Shaker is the visual feedback collaborator
type Shaker interface {
	Shake(amount int)
}

type nopTone struct{}

func (nopTone) PlayTone(float64, time.Duration, audio.WaveType) {}

type nopShake struct{}

func (nopShake) Shake(int) {}

// Simulation is the gameplay core: it owns the world and the collaborators
// the behaviors call into, and exposes the per-step entry point.
type Simulation struct {
	World *core.World
	Input core.Input
	Audio TonePlayer
	Shake Shaker
	Bus   *core.EventBus
	Rand  *rand.Rand
}

// NewSimulation wires the systems into w and resets the session. A nil rng
// is replaced by a clock-seeded one.
func NewSimulation(w *core.World, in core.Input, rng *rand.Rand) *Simulation {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Simulation{
		World: w,
		Input: in,
		Audio: nopTone{},
		Shake: nopShake{},
		Bus:   core.NewEventBus(),
		Rand:  rng,
	}
	w.AddSystem(&Director{sim: s})
	w.AddSystem(&EntitySystem{sim: s})
	w.AddSystem(&CooldownSystem{})
	s.Reset()
	return s
}

// Step runs one fixed simulation step. While the game is over nothing
// updates; holding restart resets the session instead.
func (s *Simulation) Step() {
	if s.World.GameOver {
		if s.Input != nil && s.Input.Held(core.ActRestart) {
			s.Reset()
		}
		return
	}
	s.World.Tick()
}

// Reset clears the registry, re-inserts a fresh player at the playfield
// center and restores the initial session counters.
func (s *Simulation) Reset() {
	w := s.World
	w.Clear()
	w.Player = w.Spawn(newPlayer(w.Width/2, float64(int(w.Height/2))))
	w.Score = 0
	w.Wave = 1
	w.EnemiesToSpawn = FirstWave
	w.Combo = 0
	w.ComboDecay = 0
	w.GameOver = false
	s.emit(core.EvtGameReset, nil)
}

// DamagePlayer is the only path that lowers player hp
func (s *Simulation) DamagePlayer(d int) {
	w := s.World
	if w.Player == nil || w.Player.Removed() {
		return
	}
	p := w.Player.Player
	if p.Invul > 0 {
		return
	}
	p.HP -= d
	if p.HP < 0 {
		p.HP = 0
	}
	p.Invul = InvulSteps
	s.Shake.Shake(DamageShake)
	s.Audio.PlayTone(ToneHurt, HurtLength, audio.WaveSaw)
	s.emit(core.EvtPlayerDamaged, p.HP)

	if p.HP <= 0 && !w.GameOver {
		w.GameOver = true
		s.emit(core.EvtGameOver, w.Score)
	}
}

func newPlayer(x, y float64) *core.Entity {
	return &core.Entity{
		Kind: core.KindPlayer,
		X:    x,
		Y:    y,
		Player: &core.PlayerState{
			Speed:      PlayerSpeed,
			HP:         PlayerMaxHP,
			MaxHP:      PlayerMaxHP,
			Ammo:       PlayerMaxAmmo,
			MaxAmmo:    PlayerMaxAmmo,
			DashCharge: 1,
			Focus:      PlayerMaxFocus,
			MaxFocus:   PlayerMaxFocus,
		},
	}
}

func (s *Simulation) emit(t core.EventType, payload interface{}) {
	if s.Bus == nil {
		return
	}
	s.Bus.Emit(core.Event{Type: t, Tick: s.World.TickCount, Payload: payload})
}

func (s *Simulation) tone(freq float64) {
	s.Audio.PlayTone(freq, ToneLength, audio.WaveSquare)
}

// randRange returns a uniform value in [min, max)
func (s *Simulation) randRange(min, max float64) float64 {
	return s.Rand.Float64()*(max-min) + min
}

// randInt returns a uniform integer in [min, max)
func (s *Simulation) randInt(min, max int) int {
	return min + s.Rand.Intn(max-min)
}

// ---- Systems ----

// EntitySystem dispatches each live entity to its per-kind behavior
type EntitySystem struct {
	sim *Simulation
}

func (s *EntitySystem) Priority() int { return 20 }

func (s *EntitySystem) Update(w *core.World) {
	w.Each(func(e *core.Entity) {
		switch e.Kind {
		case core.KindPlayer:
			s.sim.updatePlayer(e)
		case core.KindEnemy:
			s.sim.updateEnemy(e)
		case core.KindBoss:
			s.sim.updateBoss(e)
		case core.KindBullet:
			s.sim.updateBullet(e)
		case core.KindPickup:
			s.sim.updatePickup(e)
		}
	})
}

// CooldownSystem runs after every entity has updated. It holds the combo
// for ComboDelay steps after a scoring event, then bleeds it by one per step
// down to zero. Invulnerability also counts down here so a step that starts
// invulnerable stays invulnerable to its end.
type CooldownSystem struct{}

func (s *CooldownSystem) Priority() int { return 30 }

func (s *CooldownSystem) Update(w *core.World) {
	if w.ComboDecay > 0 {
		w.ComboDecay--
	} else if w.Combo > 0 {
		w.Combo--
	}

	if pl := w.Player; pl != nil && pl.Player.Invul > 0 {
		pl.Player.Invul--
	}
}
