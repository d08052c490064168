package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// EntityID is a unique identifier for game entities
type EntityID uint64

// Kind tags which variant an entity is
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBoss
	KindBullet
	KindPickup
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	case KindBullet:
		return "bullet"
	case KindPickup:
		return "pickup"
	}
	return "unknown"
}

// Entity is a tagged union over the five entity kinds. Exactly one payload
// pointer matching Kind is non-nil (bosses use Enemy).
type Entity struct {
	ID   EntityID
	Kind Kind
	X, Y float64

	Player *PlayerState
	Enemy  *EnemyState
	Bullet *BulletState
	Pickup *PickupState

	removed bool
}

// Removed reports whether the entity was destroyed during the current step
func (e *Entity) Removed() bool { return e.removed }

// DistanceTo returns euclidean distance to another entity
func (e *Entity) DistanceTo(other *Entity) float64 {
	return Distance(e.X, e.Y, other.X, other.Y)
}

// AngleTo returns the angle from this entity to a point
func (e *Entity) AngleTo(x, y float64) float64 {
	return math.Atan2(y-e.Y, x-e.X)
}

// Distance returns the length of the segment between two points
func Distance(ax, ay, bx, by float64) float64 {
	return mgl64.Vec2{bx - ax, by - ay}.Len()
}

// Direction returns the unit vector from a to b. Coincident points yield the
// zero vector; the length is taken as 1 instead of dividing by zero.
func Direction(ax, ay, bx, by float64) mgl64.Vec2 {
	d := mgl64.Vec2{bx - ax, by - ay}
	l := d.Len()
	if l == 0 {
		l = 1
	}
	return d.Mul(1 / l)
}

// ---- Player ----

// PlayerState is the singleton player's per-step state
type PlayerState struct {
	Vel    mgl64.Vec2
	Facing float64 // radians, toward the pointer
	Speed  float64

	HP, MaxHP     int
	Ammo, MaxAmmo int
	ReloadTimer   int

	DashCharge   int // 0 or 1
	DashCooldown int
	Dashing      int
	DashDir      mgl64.Vec2

	Focus, MaxFocus float64
	Slow            bool
	Invul           int
}

// Reloading reports whether a reload is in progress
func (p *PlayerState) Reloading() bool { return p.ReloadTimer > 0 }

// ---- Enemy / Boss ----

// EnemyState is shared by regular enemies and the boss
type EnemyState struct {
	HP     int
	Reload int
}

// ---- Bullet ----

// Owner identifies who fired a bullet
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// SpriteID references a palette sprite without tying core to a renderer
type SpriteID uint8

const (
	SprPlayer SpriteID = iota
	SprEnemy
	SprBullet
)

// BulletState is a straight-line projectile
type BulletState struct {
	Angle  float64
	Speed  float64
	Owner  Owner
	Sprite SpriteID
}

// ---- Pickup ----

// PickupKind is what a pickup grants on collection
type PickupKind uint8

const (
	PickupAmmo PickupKind = iota
	PickupHealth
	PickupCoin
)

func (k PickupKind) String() string {
	switch k {
	case PickupAmmo:
		return "ammo"
	case PickupHealth:
		return "health"
	case PickupCoin:
		return "coin"
	}
	return "unknown"
}

// PickupState holds a dropped pickup
type PickupState struct {
	Kind  PickupKind
	Angle float64 // cosmetic spin
}
