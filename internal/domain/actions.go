package domain

import "strings"

// ActionType - a command the host can send to a running game.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionJoin
	ActionWound
	ActionUpdate
	ActionEquip
	ActionUnequip
	ActionCapacity
	ActionStartTurn
	ActionAct
	ActionKill
	ActionGain
	ActionLevelUp
	ActionGameLevelUp
	ActionStatus
)

// JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"JOIN":          ActionJoin,
	"WOUND":         ActionWound,
	"UPDATE":        ActionUpdate,
	"EQUIP":         ActionEquip,
	"UNEQUIP":       ActionUnequip,
	"CAPACITY":      ActionCapacity,
	"START_TURN":    ActionStartTurn,
	"ACT":           ActionAct,
	"KILL":          ActionKill,
	"GAIN":          ActionGain,
	"LEVEL_UP":      ActionLevelUp,
	"GAME_LEVEL_UP": ActionGameLevelUp,
	"STATUS":        ActionStatus,
}

// Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionJoin:        "JOIN",
	ActionWound:       "WOUND",
	ActionUpdate:      "UPDATE",
	ActionEquip:       "EQUIP",
	ActionUnequip:     "UNEQUIP",
	ActionCapacity:    "CAPACITY",
	ActionStartTurn:   "START_TURN",
	ActionAct:         "ACT",
	ActionKill:        "KILL",
	ActionGain:        "GAIN",
	ActionLevelUp:     "LEVEL_UP",
	ActionGameLevelUp: "GAME_LEVEL_UP",
	ActionStatus:      "STATUS",
}

// ParseAction converts a command name to ActionType, ignoring case.
func ParseAction(s string) ActionType {
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String implements fmt.Stringer.
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
