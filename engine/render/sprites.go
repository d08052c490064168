package render

import (
	"image/color"
	"strings"

	"github.com/1siamBot/pixel-rogue/engine/core"
)

// Sprite is a fixed-palette pixel array. Pixels with zero alpha are
// transparent.
type Sprite struct {
	W, H int
	Pix  []color.RGBA
}

// At returns the pixel at (x, y)
func (s *Sprite) At(x, y int) color.RGBA {
	return s.Pix[y*s.W+x]
}

// Palette maps sprite art characters to colors. '.' is always transparent.
var Palette = map[byte]color.RGBA{
	'w': {0xff, 0xff, 0xff, 0xff},
	'c': {0x00, 0xff, 0xff, 0xff},
	'b': {0x00, 0x00, 0xff, 0xff},
	'r': {0xff, 0x00, 0x00, 0xff},
	'p': {0xff, 0xaa, 0xaa, 0xff},
	'm': {0xaa, 0x55, 0x55, 0xff},
	'd': {0x55, 0x00, 0x00, 0xff},
	'y': {0xff, 0xff, 0x00, 0xff},
}

// NewSprite builds a sprite from rows of palette characters. Rows are
// whitespace-trimmed and must share one width.
func NewSprite(art string) *Sprite {
	var rows []string
	for _, line := range strings.Split(art, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return &Sprite{}
	}
	s := &Sprite{W: len(rows[0]), H: len(rows)}
	s.Pix = make([]color.RGBA, s.W*s.H)
	for y, row := range rows {
		for x := 0; x < s.W && x < len(row); x++ {
			s.Pix[y*s.W+x] = Palette[row[x]]
		}
	}
	return s
}

var (
	SpritePlayer = NewSprite(`
		...ww...
		..cccc..
		.cbbbbc.
		cbwwwwbc
		cbwrrwbc
		.cbbbbc.
		..cccc..
		...cc...`)

	SpriteEnemy = NewSprite(`
		...pp...
		..mmmm..
		.mddddm.
		mdwwwwdm
		mdwrrwdm
		.mddddm.
		..mmmm..
		...mm...`)

	SpriteBullet = NewSprite(`
		yy
		yy`)
)

// SpriteFor resolves a core sprite reference
func SpriteFor(id core.SpriteID) *Sprite {
	switch id {
	case core.SprPlayer:
		return SpritePlayer
	case core.SprEnemy:
		return SpriteEnemy
	default:
		return SpriteBullet
	}
}
