package domain

import "fmt"

// EventType identifies a state transition worth writing to the game log.
type EventType uint8

const (
	EventUnknown EventType = iota
	EventGameStarted
	EventJoined
	EventWounded
	EventEquipped
	EventDied
	EventLeveledUp
	EventGameOver
)

var eventTypeToString = map[EventType]string{
	EventGameStarted: "GAME_STARTED",
	EventJoined:      "JOINED",
	EventWounded:     "WOUNDED",
	EventEquipped:    "EQUIPPED",
	EventDied:        "DIED",
	EventLeveledUp:   "LEVELED_UP",
	EventGameOver:    "GAME_OVER",
}

// String implements fmt.Stringer.
func (t EventType) String() string {
	if val, ok := eventTypeToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// Event is one transition. Detail carries the item name or level when the
// event type needs one.
type Event struct {
	Type   EventType
	Detail string
}

// Text renders the event the way it appears in the game log, without the source prefix.
func (ev Event) Text() string {
	switch ev.Type {
	case EventGameStarted:
		return "Game started"
	case EventJoined:
		return "Joined the game"
	case EventWounded:
		return "Took a wound"
	case EventEquipped:
		return fmt.Sprintf("Equipped %s", ev.Detail)
	case EventDied:
		return "Died"
	case EventLeveledUp:
		return fmt.Sprintf("Leveled up to %s", ev.Detail)
	case EventGameOver:
		return "Game over"
	}
	return ev.Detail
}

// Observer receives the events published by an entity.
type Observer interface {
	Observe(source *Entity, ev Event)
}
