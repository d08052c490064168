package systems

import "github.com/1siamBot/pixel-rogue/engine/core"

// hitEnemy applies one point of bullet damage to an enemy or boss
func (s *Simulation) hitEnemy(target *core.Entity) {
	target.Enemy.HP--
	s.tone(ToneHit)
	s.emit(core.EvtEnemyHit, target.Enemy.HP)

	if target.Enemy.HP > 0 {
		return
	}
	if target.Kind == core.KindBoss {
		s.killBoss(target)
		return
	}
	s.killEnemy(target)
}

func (s *Simulation) killEnemy(e *core.Entity) {
	w := s.World
	w.Score += KillScore
	w.Combo += KillCombo
	w.ComboDecay = ComboDelay
	s.spawnPickup(e.X, e.Y)
	w.Destroy(e)
	s.Shake.Shake(KillShake)
	s.emit(core.EvtEnemyKilled, core.KillPayload{X: e.X, Y: e.Y, Score: w.Score})
}

// killBoss doubles as a wave-advance trigger outside the cleared-field rule
func (s *Simulation) killBoss(e *core.Entity) {
	w := s.World
	if e.Removed() {
		return
	}
	w.Destroy(e)
	w.Score += BossScore
	w.Wave++
	w.EnemiesToSpawn += BossBonusWave
	s.Shake.Shake(BossDeathShake)
	s.emit(core.EvtBossKilled, core.WavePayload{Wave: w.Wave, EnemiesToSpawn: w.EnemiesToSpawn})
}
