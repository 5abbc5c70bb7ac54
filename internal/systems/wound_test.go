package systems

import (
	"testing"

	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"
)

func TestWound(t *testing.T) {
	tests := []struct {
		name      string
		wounds    int
		wantValue int
	}{
		{"starts with 0 wounds", 0, 0},
		{"can take a wound", 1, 1},
		{"can take multiple wounds", 2, 2},
		{"cannot take more wounds than max", 3, 2},
		{"stays at max", 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.NewSurvivor("Bob")
			for i := 0; i < tt.wounds; i++ {
				Wound(s.Entity)
			}

			wound, ok := s.Wound()
			if !ok {
				t.Fatal("Expected WoundComponent")
			}
			if wound.Value != tt.wantValue {
				t.Errorf("Expected %d wounds, got %d", tt.wantValue, wound.Value)
			}
			if wound.Value < 0 || wound.Value > wound.Max {
				t.Errorf("Wound value %d escaped [0, %d]", wound.Value, wound.Max)
			}
		})
	}
}

func TestWound_Results(t *testing.T) {
	s := domain.NewSurvivor("Bob")
	rec := observed(s)

	if res := Wound(s.Entity); res != domain.Applied {
		t.Errorf("Expected first wound applied, got %v", res)
	}
	Wound(s.Entity)
	if res := Wound(s.Entity); res != domain.IgnoredAtMax {
		t.Errorf("Expected wound past max to be ignored, got %v", res)
	}

	// Only the two applied wounds are published.
	if len(rec.events) != 2 {
		t.Fatalf("Expected 2 events, got %v", rec.texts())
	}
	if rec.events[0].Text() != "Took a wound" {
		t.Errorf("Expected 'Took a wound', got %q", rec.events[0].Text())
	}
}

func TestWound_MissingComponent(t *testing.T) {
	e := domain.NewEntity()

	if res := Wound(e); res != domain.IgnoredMissingComponent {
		t.Errorf("Expected IgnoredMissingComponent, got %v", res)
	}
}

func TestWound_DoesNotKill(t *testing.T) {
	s := domain.NewSurvivor("Bob")
	Wound(s.Entity)
	Wound(s.Entity)

	if !s.IsAlive() {
		t.Error("Wounds alone must not kill; UpdateSurvivor decides death")
	}
}
