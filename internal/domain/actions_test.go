package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"WOUND", ActionWound},
		{"wound", ActionWound},
		{"Wound", ActionWound},
		{"EQUIP", ActionEquip},
		{"game_level_up", ActionGameLevelUp},
		{"START_TURN", ActionStartTurn},
		{"UNKNOWN_ACTION", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionJoin, "JOIN"},
		{ActionKill, "KILL"},
		{ActionGameLevelUp, "GAME_LEVEL_UP"},
		{ActionUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestParseSlot(t *testing.T) {
	tests := []struct {
		input    string
		expected Slot
	}{
		{"inHand", SlotInHand},
		{"INRESERVE", SlotInReserve},
		{"inreserve", SlotInReserve},
		{"pocket", SlotUnknown},
	}

	for _, tt := range tests {
		if got := ParseSlot(tt.input); got != tt.expected {
			t.Errorf("ParseSlot(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
