package core

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtShotFired EventType = iota
	EvtEnemyHit
	EvtEnemyKilled
	EvtBossSpawned
	EvtBossKilled
	EvtPickupCollected
	EvtPlayerDamaged
	EvtDash
	EvtWaveAdvanced
	EvtGameOver
	EvtGameReset
)

// WavePayload accompanies EvtWaveAdvanced and EvtBossKilled
type WavePayload struct {
	Wave           int
	EnemiesToSpawn int
	Boss           bool
}

// KillPayload accompanies EvtEnemyKilled
type KillPayload struct {
	X, Y  float64
	Score int
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

// Dispatch processes all queued events
func (eb *EventBus) Dispatch() {
	for i := 0; i < len(eb.queue); i++ {
		e := eb.queue[i]
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
	eb.queue = eb.queue[:0]
}
