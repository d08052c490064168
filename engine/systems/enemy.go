package systems

import "github.com/1siamBot/pixel-rogue/engine/core"

// spawnEnemy drops a regular enemy at a random in-bounds position
func (s *Simulation) spawnEnemy() *core.Entity {
	w := s.World
	return w.Spawn(&core.Entity{
		Kind: core.KindEnemy,
		X:    s.randRange(EnemySpawnMargin, w.Width-EnemySpawnMargin),
		Y:    s.randRange(EnemySpawnMargin, w.Height-EnemySpawnMargin),
		Enemy: &core.EnemyState{
			HP:     EnemyHP,
			Reload: s.randInt(EnemyReloadMin, EnemyReloadMax),
		},
	})
}

func (s *Simulation) spawnBoss() *core.Entity {
	w := s.World
	b := w.Spawn(&core.Entity{
		Kind: core.KindBoss,
		X:    w.Width / 2,
		Y:    BossY,
		Enemy: &core.EnemyState{
			HP:     BossHP,
			Reload: BossReloadFirst,
		},
	})
	s.emit(core.EvtBossSpawned, core.WavePayload{Wave: w.Wave, Boss: true})
	return b
}

func (s *Simulation) updateEnemy(e *core.Entity) {
	pl := s.World.Player
	if pl == nil {
		return
	}
	aim := e.AngleTo(pl.X, pl.Y)
	seek(e, pl.X, pl.Y, EnemySpeed, 0)

	if e.Enemy.Reload > 0 {
		e.Enemy.Reload--
		return
	}
	s.shootBullet(e.X, e.Y, aim, EnemyBulletSpeed, core.OwnerEnemy)
	e.Enemy.Reload = EnemyReloadSteps
}

func (s *Simulation) updateBoss(e *core.Entity) {
	if e.Enemy.HP <= 0 {
		s.killBoss(e)
		return
	}
	pl := s.World.Player
	if pl == nil {
		return
	}
	seek(e, pl.X, pl.Y, EnemySpeed, BossStandoff)

	if e.Enemy.Reload > 0 {
		e.Enemy.Reload--
		return
	}
	for k := 0; k < BossBurst; k++ {
		s.shootBullet(e.X, e.Y, float64(k)*BossBurstStep, EnemyBulletSpeed, core.OwnerEnemy)
	}
	e.Enemy.Reload = BossReloadSteps
}
