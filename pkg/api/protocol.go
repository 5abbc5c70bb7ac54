package api

import "encoding/json"

// --- HOST -> ENGINE ---

// Command is one line of a session script.
//
//	{"action": "EQUIP", "payload": {"survivor": "Bob", "item": "Knife", "slot": "inHand"}}
type Command struct {
	// Action is the command name, e.g. "WOUND". Case-insensitive.
	Action string `json:"action"`

	// Payload is decoded by the handler registered for Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// SurvivorPayload targets a single survivor.
type SurvivorPayload struct {
	Survivor string `json:"survivor"`
}

// RosterPayload targets one survivor, or the whole roster when Survivor is empty.
type RosterPayload struct {
	Survivor string `json:"survivor,omitempty"`
}

// ItemPayload is used by EQUIP and UNEQUIP.
type ItemPayload struct {
	Survivor string `json:"survivor"`
	Item     string `json:"item"`
	Slot     string `json:"slot"` // "inHand" | "inReserve"
}

// GainPayload is used by GAIN.
type GainPayload struct {
	Survivor string `json:"survivor"`
	Amount   int    `json:"amount"`
}

// --- ENGINE -> HOST ---

// SurvivorView is a read-only snapshot of a survivor.
type SurvivorView struct {
	ID                uint64   `json:"id"`
	Name              string   `json:"name"`
	Alive             bool     `json:"alive"`
	Wounds            int      `json:"wounds"`
	MaxWounds         int      `json:"maxWounds"`
	ActionsRemaining  int      `json:"actionsRemaining"`
	InHand            []string `json:"inHand"`
	InReserve         []string `json:"inReserve"`
	InHandCapacity    int      `json:"inHandCapacity"`
	InReserveCapacity int      `json:"inReserveCapacity"`
	Experience        int      `json:"experience"`
	Level             string   `json:"level"`
}

// BuildView identifies the engine binary that produced a GameView.
type BuildView struct {
	Number int    `json:"number"`
	Date   string `json:"date"`
	Commit string `json:"commit,omitempty"`
}

// GameView is a read-only snapshot of a game.
type GameView struct {
	ID         string         `json:"id"`
	Build      *BuildView     `json:"build,omitempty"` // nil for dev builds
	Level      string         `json:"level"`
	Experience int            `json:"experience"`
	GameOver   bool           `json:"gameOver"`
	Survivors  []SurvivorView `json:"survivors"`
	Logs       []string       `json:"logs"`
}
