package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/1siamBot/pixel-rogue/engine/core"
	"github.com/1siamBot/pixel-rogue/engine/render"
)

func TestTermInput_KeyHoldDecays(t *testing.T) {
	ti := NewTermInput(nil)
	ti.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))

	if !ti.Held(core.ActUp) {
		t.Fatal("w should hold up")
	}
	for i := 0; i < HoldSteps-1; i++ {
		ti.Decay()
	}
	if !ti.Held(core.ActUp) {
		t.Fatal("released too early")
	}
	ti.Decay()
	if ti.Held(core.ActUp) {
		t.Error("hold never expired")
	}
}

func TestTermInput_Bindings(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want []core.Action
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), []core.Action{core.ActLeft}},
		{"reload", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), []core.Action{core.ActReload}},
		{"restart", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), []core.Action{core.ActRestart}},
		{"shifted", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift), []core.Action{core.ActRight, core.ActSlow}},
		{"shift arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModShift), []core.Action{core.ActDown, core.ActSlow}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ti := NewTermInput(nil)
			ti.HandleEvent(tt.ev)
			held := 0
			for a := core.Action(0); a < core.ActMax; a++ {
				if ti.Held(a) {
					held++
				}
			}
			if held != len(tt.want) {
				t.Errorf("%d actions held, want %d", held, len(tt.want))
			}
			for _, a := range tt.want {
				if !ti.Held(a) {
					t.Errorf("action %d not held", a)
				}
			}
		})
	}
}

func TestTermInput_Mouse(t *testing.T) {
	cam := render.NewCamera(240, 135, 240, 135, nil)
	ti := NewTermInput(cam)

	ti.HandleEvent(tcell.NewEventMouse(30, 10, tcell.Button1, tcell.ModNone))
	p := ti.Pointer()
	if p.X != 30 || p.Y != 21 {
		t.Errorf("pointer at (%f,%f), want (30,21)", p.X, p.Y)
	}
	if !p.Primary || p.Secondary {
		t.Errorf("buttons %+v", p)
	}

	ti.HandleEvent(tcell.NewEventMouse(30, 10, tcell.Button2, tcell.ModNone))
	if p := ti.Pointer(); p.Primary || !p.Secondary {
		t.Errorf("buttons %+v", p)
	}

	ti.HandleEvent(tcell.NewEventMouse(30, 10, tcell.ButtonNone, tcell.ModNone))
	if p := ti.Pointer(); p.Primary || p.Secondary {
		t.Error("release not applied")
	}
}

func TestTermInput_OutOfRangeAction(t *testing.T) {
	ti := NewTermInput(nil)
	if ti.Held(core.ActMax) {
		t.Error("ActMax is not an action")
	}
}
