package engine

import (
	"reflect"
	"testing"

	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/systems"
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/version"
	"github.com/adrocodes/Zombie-Survivors-Kata/pkg/api"
)

func TestBuildSurvivorView(t *testing.T) {
	bob := domain.NewSurvivor("Bob")
	systems.Equip(bob.Entity, "Knife", domain.SlotInHand)
	systems.Wound(bob.Entity)
	systems.GainExperience(bob.Entity, 7)
	systems.LevelUp(bob.Entity)
	systems.PerformAction(bob)

	view := BuildSurvivorView(bob)

	if view.ID != uint64(bob.ID) || view.Name != "Bob" || !view.Alive {
		t.Errorf("Unexpected identity: %+v", view)
	}
	if view.Wounds != 1 || view.MaxWounds != 2 {
		t.Errorf("Expected wounds 1/2, got %d/%d", view.Wounds, view.MaxWounds)
	}
	if !reflect.DeepEqual(view.InHand, []string{"Knife"}) || len(view.InReserve) != 0 {
		t.Errorf("Unexpected equipment: %v / %v", view.InHand, view.InReserve)
	}
	if view.InHandCapacity != 2 || view.InReserveCapacity != 3 {
		t.Errorf("Expected capacities 2/3, got %d/%d", view.InHandCapacity, view.InReserveCapacity)
	}
	if view.Experience != 7 || view.Level != "yellow" {
		t.Errorf("Expected 7 xp at yellow, got %d at %s", view.Experience, view.Level)
	}
	if view.ActionsRemaining != 2 {
		t.Errorf("Expected 2 actions left, got %d", view.ActionsRemaining)
	}

	// The view must not alias the component's slices.
	view.InHand[0] = "Spoon"
	if eq, _ := bob.Equipment(); eq.InHand[0] != "Knife" {
		t.Error("Survivor equipment changed through the view")
	}
}

func TestBuildGameView(t *testing.T) {
	g := NewGame()
	g.AddSurvivor(domain.NewSurvivor("Bob"))

	view := BuildGameView(g)

	if view.ID != g.ID().String() {
		t.Errorf("Expected id %s, got %s", g.ID(), view.ID)
	}
	if view.GameOver {
		t.Error("Bob is alive, the game is not over")
	}
	if view.Level != "blue" || view.Experience != 0 {
		t.Errorf("Expected blue with 0 xp, got %s with %d", view.Level, view.Experience)
	}
	if len(view.Survivors) != 1 || view.Survivors[0].Name != "Bob" {
		t.Errorf("Unexpected survivors: %+v", view.Survivors)
	}
	if len(view.Logs) != 2 {
		t.Errorf("Expected 2 log lines, got %v", view.Logs)
	}
}

func TestBuildGameView_Build(t *testing.T) {
	oldDate, oldCommit := version.Date, version.Commit
	defer func() { version.Date, version.Commit = oldDate, oldCommit }()

	version.Date, version.Commit = "", ""
	if view := BuildGameView(NewGame()); view.Build != nil {
		t.Errorf("Expected no build info for a dev build, got %+v", view.Build)
	}

	version.Date, version.Commit = "2026-02-01", "deadbeefcafe"
	view := BuildGameView(NewGame())
	if view.Build == nil {
		t.Fatal("Expected build info")
	}
	want := api.BuildView{Number: 31, Date: "2026-02-01", Commit: "deadbee"}
	if *view.Build != want {
		t.Errorf("Expected %+v, got %+v", want, *view.Build)
	}
}
