package core

// World owns every live entity plus the session counters the gameplay
// mutates. Entities keep insertion order; that order is the tie-break for
// first-match collision scans.
type World struct {
	Width, Height float64

	entities []*Entity
	systems  []System
	pending  int // destroyed entities awaiting compaction
	nextID   EntityID

	TickCount uint64

	// Session state
	Player         *Entity
	Score          int
	Wave           int
	Combo          int
	ComboDecay     int
	EnemiesToSpawn int
	GameOver       bool
}

// System processes the world once per simulation step
type System interface {
	Update(w *World)
	Priority() int
}

// NewWorld creates an empty world for a playfield of the given size
func NewWorld(width, height float64) *World {
	return &World{
		Width:  width,
		Height: height,
		Wave:   1,
	}
}

// Spawn registers an entity, assigns its ID and returns it
func (w *World) Spawn(e *Entity) *Entity {
	w.nextID++
	e.ID = w.nextID
	e.removed = false
	w.entities = append(w.entities, e)
	return e
}

// Destroy marks an entity for removal. It disappears from every scan at
// once; the backing slice is compacted at the end of the tick.
func (w *World) Destroy(e *Entity) {
	if e == nil || e.removed {
		return
	}
	e.removed = true
	w.pending++
}

// Each visits live entities in insertion order. Entities spawned during the
// walk are visited too; destroyed ones are skipped.
func (w *World) Each(fn func(e *Entity)) {
	for i := 0; i < len(w.entities); i++ {
		e := w.entities[i]
		if e.removed {
			continue
		}
		fn(e)
	}
}

// Find returns the first live entity matching pred, or nil
func (w *World) Find(pred func(e *Entity) bool) *Entity {
	for _, e := range w.entities {
		if !e.removed && pred(e) {
			return e
		}
	}
	return nil
}

// Any reports whether a live entity of one of the given kinds exists
func (w *World) Any(kinds ...Kind) bool {
	return w.Find(func(e *Entity) bool {
		for _, k := range kinds {
			if e.Kind == k {
				return true
			}
		}
		return false
	}) != nil
}

// Count returns the number of live entities of a kind
func (w *World) Count(k Kind) int {
	n := 0
	for _, e := range w.entities {
		if !e.removed && e.Kind == k {
			n++
		}
	}
	return n
}

// Entities returns a snapshot of the live entities in order
func (w *World) Entities() []*Entity {
	out := make([]*Entity, 0, len(w.entities)-w.pending)
	for _, e := range w.entities {
		if !e.removed {
			out = append(out, e)
		}
	}
	return out
}

// EntityCount returns the number of alive entities
func (w *World) EntityCount() int {
	return len(w.entities) - w.pending
}

// Clear drops every entity, including the player reference
func (w *World) Clear() {
	for _, e := range w.entities {
		e.removed = true
	}
	w.entities = w.entities[:0]
	w.pending = 0
	w.Player = nil
}

// AddSystem registers a system
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	// Sort by priority (simple insertion)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i].Priority() < w.systems[i-1].Priority() {
			w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
		}
	}
}

// Tick runs all systems once
func (w *World) Tick() {
	for _, s := range w.systems {
		s.Update(w)
	}
	w.compact()
	w.TickCount++
}

func (w *World) compact() {
	if w.pending == 0 {
		return
	}
	live := w.entities[:0]
	for _, e := range w.entities {
		if !e.removed {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = live
	w.pending = 0
}
