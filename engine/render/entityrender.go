package render

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/1siamBot/pixel-rogue/engine/core"
)

var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorBoss       = colornames.Darkred
)

// PickupColor returns the fill for a pickup kind
func PickupColor(k core.PickupKind) color.RGBA {
	switch k {
	case core.PickupAmmo:
		return colornames.Yellow
	case core.PickupHealth:
		return colornames.Lime
	default:
		return colornames.Cyan
	}
}

// DrawWorld paints every live entity in registry order
func DrawWorld(c Canvas, w *core.World) {
	w.Each(func(e *core.Entity) {
		DrawEntity(c, e)
	})
}

// DrawEntity paints one entity according to its kind
func DrawEntity(c Canvas, e *core.Entity) {
	switch e.Kind {
	case core.KindPlayer:
		c.Blit(e.X-4, e.Y-4, SpritePlayer)
	case core.KindEnemy:
		c.Blit(e.X-4, e.Y-4, SpriteEnemy)
	case core.KindBoss:
		c.FillRect(e.X-10, e.Y-10, 20, 20, ColorBoss)
	case core.KindBullet:
		spr := SpriteFor(e.Bullet.Sprite)
		c.Blit(e.X-float64(spr.W)/2, e.Y-float64(spr.H)/2, spr)
	case core.KindPickup:
		c.FillRect(e.X-2, e.Y-2, 4, 4, PickupColor(e.Pickup.Kind))
	}
}
