package core

// Action is a logical control the simulation reads. Frontends map their
// keys onto actions.
type Action uint8

const (
	ActUp Action = iota
	ActDown
	ActLeft
	ActRight
	ActReload
	ActSlow
	ActRestart
	ActMax
)

// Pointer is the mouse state in playfield coordinates
type Pointer struct {
	X, Y      float64
	Primary   bool // fire
	Secondary bool // dash
}

// Input is the read-only input surface sampled every step
type Input interface {
	Held(a Action) bool
	Pointer() Pointer
}

// Snapshot is a plain Input value, used by tests and by frontends that
// hand input across goroutines
type Snapshot struct {
	Keys  [ActMax]bool
	Mouse Pointer
}

func (s *Snapshot) Held(a Action) bool {
	if a >= ActMax {
		return false
	}
	return s.Keys[a]
}

func (s *Snapshot) Pointer() Pointer { return s.Mouse }
