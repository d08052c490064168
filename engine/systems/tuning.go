package systems

import (
	"math"
	"time"
)

// Player
const (
	PlayerSpeed       = 1.5
	PlayerMaxHP       = 6
	PlayerMaxAmmo     = 12
	PlayerMaxFocus    = 100.0
	PlayerMargin      = 8.0
	SlowFactor        = 0.4
	FocusDrain        = 1.0
	FocusRegen        = 0.2
	VelocityLerp      = 0.2
	DashSpeed         = 5.0
	DashSteps         = 10
	DashCooldownSteps = 120
	ReloadSteps       = 60
	InvulSteps        = 60
)

// Projectiles
const (
	PlayerBulletSpeed = 3.0
	EnemyBulletSpeed  = 2.0
	HitRadius         = 5.0
	BossHitRadius     = 10.0
)

// Enemies
const (
	EnemyHP          = 2
	EnemySpeed       = 0.5
	EnemyReloadMin   = 30
	EnemyReloadMax   = 90
	EnemyReloadSteps = 60
	EnemySpawnMargin = 20.0

	BossHP          = 100
	BossY           = 40.0
	BossStandoff    = 30.0
	BossReloadFirst = 60
	BossReloadSteps = 120
	BossBurst       = 16
	BossBurstStep   = 2 * math.Pi / BossBurst
)

// Scoring and pacing
const (
	KillScore      = 100
	BossScore      = 1000
	CoinScore      = 50
	KillCombo      = 2
	ComboDelay     = 120
	PickupRadius   = 6.0
	PickupSpin     = 0.1
	SpawnChance    = 0.02
	FirstWave      = 5
	WaveBase       = 5
	WaveGrowth     = 2
	BossWaveEvery  = 5
	BossBonusWave  = 10
	KillShake      = 5
	DamageShake    = 10
	BossDeathShake = 10
)

// Tones
const (
	ToneShot   = 440.0
	ToneHit    = 330.0
	ToneDash   = 220.0
	TonePickup = 660.0
	ToneHurt   = 120.0

	ToneLength = 100 * time.Millisecond
	DashLength = 200 * time.Millisecond
	HurtLength = 300 * time.Millisecond
)
