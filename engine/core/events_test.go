package core

import "testing"

func TestEventBus_DispatchInOrder(t *testing.T) {
	eb := NewEventBus()
	var got []EventType
	eb.On(EvtEnemyKilled, func(e Event) { got = append(got, e.Type) })
	eb.On(EvtWaveAdvanced, func(e Event) { got = append(got, e.Type) })

	eb.Emit(Event{Type: EvtEnemyKilled})
	eb.Emit(Event{Type: EvtShotFired})
	eb.Emit(Event{Type: EvtWaveAdvanced})

	if eb.Pending() != 3 {
		t.Fatalf("Pending = %d, want 3", eb.Pending())
	}
	eb.Dispatch()

	if len(got) != 2 || got[0] != EvtEnemyKilled || got[1] != EvtWaveAdvanced {
		t.Fatalf("dispatched %v", got)
	}
	if eb.Pending() != 0 {
		t.Errorf("queue not drained")
	}
}

func TestEventBus_EmitDuringDispatch(t *testing.T) {
	eb := NewEventBus()
	n := 0
	eb.On(EvtBossKilled, func(e Event) {
		eb.Emit(Event{Type: EvtWaveAdvanced})
	})
	eb.On(EvtWaveAdvanced, func(e Event) { n++ })

	eb.Emit(Event{Type: EvtBossKilled})
	eb.Dispatch()

	if n != 1 {
		t.Errorf("chained event handled %d times, want 1", n)
	}
}
