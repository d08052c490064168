package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/1siamBot/pixel-rogue/engine/core"
	"github.com/1siamBot/pixel-rogue/engine/render"
)

// HoldSteps is how long a terminal key press counts as held. Terminals
// report repeats, not releases.
const HoldSteps = 8

// TermInput turns tcell events into the held-action model. It is owned by
// the loop goroutine; events reach it through HandleEvent.
type TermInput struct {
	Camera *render.Camera

	hold  [core.ActMax]int
	mouse core.Pointer
}

func NewTermInput(cam *render.Camera) *TermInput {
	return &TermInput{Camera: cam}
}

var runeActions = map[rune]core.Action{
	'w': core.ActUp,
	'a': core.ActLeft,
	's': core.ActDown,
	'd': core.ActRight,
	'r': core.ActReload,
	'f': core.ActSlow,
	' ': core.ActRestart,
}

var keyActions = map[tcell.Key]core.Action{
	tcell.KeyUp:    core.ActUp,
	tcell.KeyDown:  core.ActDown,
	tcell.KeyLeft:  core.ActLeft,
	tcell.KeyRight: core.ActRight,
}

// HandleEvent applies one terminal event
func (t *TermInput) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			r := ev.Rune()
			// Shifted movement keys move slowly
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
				t.press(core.ActSlow)
			}
			if a, ok := runeActions[r]; ok {
				t.press(a)
			}
			return
		}
		if a, ok := keyActions[ev.Key()]; ok {
			t.press(a)
		}
		if ev.Modifiers()&tcell.ModShift != 0 {
			t.press(core.ActSlow)
		}
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		btn := ev.Buttons()
		if t.Camera != nil {
			t.mouse.X, t.mouse.Y = t.Camera.ScreenToWorld(cx, cy*2+1)
		}
		t.mouse.Primary = btn&tcell.Button1 != 0
		t.mouse.Secondary = btn&tcell.Button2 != 0
	}
}

func (t *TermInput) press(a core.Action) {
	t.hold[a] = HoldSteps
}

// Decay ages held keys by one step
func (t *TermInput) Decay() {
	for i := range t.hold {
		if t.hold[i] > 0 {
			t.hold[i]--
		}
	}
}

func (t *TermInput) Held(a core.Action) bool {
	if a >= core.ActMax {
		return false
	}
	return t.hold[a] > 0
}

func (t *TermInput) Pointer() core.Pointer {
	return t.mouse
}
