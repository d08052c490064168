package systems

import "github.com/1siamBot/pixel-rogue/engine/core"

// Director paces enemy introduction and wave advances
type Director struct {
	sim *Simulation
}

func (d *Director) Priority() int { return 10 }

func (d *Director) Update(w *core.World) {
	if w.EnemiesToSpawn > 0 {
		if d.sim.Rand.Float64() < SpawnChance {
			d.sim.spawnEnemy()
			w.EnemiesToSpawn--
		}
		return
	}
	if !w.Any(core.KindEnemy, core.KindBoss) {
		d.sim.nextWave()
	}
}

// nextWave always leaves either a positive spawn counter or a live boss, so
// a cleared field advances exactly once
func (s *Simulation) nextWave() {
	w := s.World
	w.Wave++
	boss := w.Wave%BossWaveEvery == 0
	if boss {
		w.EnemiesToSpawn = 0
		s.spawnBoss()
	} else {
		w.EnemiesToSpawn = WaveSize(w.Wave)
	}
	s.emit(core.EvtWaveAdvanced, core.WavePayload{Wave: w.Wave, EnemiesToSpawn: w.EnemiesToSpawn, Boss: boss})
}

// WaveSize is the number of regular enemies a wave introduces
func WaveSize(wave int) int {
	return WaveBase + WaveGrowth*wave
}
