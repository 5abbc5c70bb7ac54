package domain

import "testing"

func TestLevelFor(t *testing.T) {
	tests := []struct {
		value    int
		current  Level
		expected Level
	}{
		{0, LevelBlue, LevelBlue},
		{5, LevelBlue, LevelBlue},
		{6, LevelBlue, LevelYellow},
		{17, LevelBlue, LevelYellow},
		{18, LevelBlue, LevelOrange},
		{41, LevelYellow, LevelOrange},
		{42, LevelBlue, LevelRed},
		{0, LevelOrange, LevelOrange},
	}

	for _, tt := range tests {
		if got := LevelFor(tt.value, tt.current); got != tt.expected {
			t.Errorf("LevelFor(%d, %v) = %v, want %v", tt.value, tt.current, got, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, l := range []Level{LevelBlue, LevelYellow, LevelOrange, LevelRed} {
		got, ok := ParseLevel(l.String())
		if !ok || got != l {
			t.Errorf("ParseLevel(%q) = %v, %v", l.String(), got, ok)
		}
	}

	if _, ok := ParseLevel("purple"); ok {
		t.Error("Expected purple to be rejected")
	}
}
