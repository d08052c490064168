package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/pixel-rogue/engine/core"
)

// Bindings maps each action to the keys that trigger it
var Bindings = map[core.Action][]ebiten.Key{
	core.ActUp:      {ebiten.KeyW, ebiten.KeyUp},
	core.ActDown:    {ebiten.KeyS, ebiten.KeyDown},
	core.ActLeft:    {ebiten.KeyA, ebiten.KeyLeft},
	core.ActRight:   {ebiten.KeyD, ebiten.KeyRight},
	core.ActReload:  {ebiten.KeyR},
	core.ActSlow:    {ebiten.KeyShift},
	core.ActRestart: {ebiten.KeySpace},
}

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse, in layout coordinates
	MouseX, MouseY   int
	LeftPressed      bool
	RightPressed     bool
	LeftJustPressed  bool
	RightJustPressed bool

	// Keyboard
	Actions [core.ActMax]bool
}

func NewInputState() *InputState {
	return &InputState{}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.LeftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.RightPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.RightJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	for a, keys := range Bindings {
		down := false
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				down = true
				break
			}
		}
		s.Actions[a] = down
	}
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (s *InputState) Held(a core.Action) bool {
	if a >= core.ActMax {
		return false
	}
	return s.Actions[a]
}

func (s *InputState) Pointer() core.Pointer {
	return core.Pointer{
		X:         float64(s.MouseX),
		Y:         float64(s.MouseY),
		Primary:   s.LeftPressed,
		Secondary: s.RightPressed,
	}
}
