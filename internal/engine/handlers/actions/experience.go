package actions

import (
	"fmt"

	"github.com/adrocodes/Zombie-Survivors-Kata/internal/engine/handlers"
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/systems"
	"github.com/adrocodes/Zombie-Survivors-Kata/pkg/api"
)

// HandleGain adds experience to a survivor without recomputing the level.
func HandleGain(ctx handlers.Context, p api.GainPayload) (handlers.Result, error) {
	s, err := ctx.Survivor(p.Survivor)
	if err != nil {
		return handlers.Result{}, err
	}

	res := systems.GainExperience(s.Entity, p.Amount)
	return outcome(p.Survivor, res, fmt.Sprintf("%s gains %d experience.", p.Survivor, p.Amount)), nil
}

// HandleLevelUp recomputes a survivor's level.
func HandleLevelUp(ctx handlers.Context, p api.SurvivorPayload) (handlers.Result, error) {
	s, err := ctx.Survivor(p.Survivor)
	if err != nil {
		return handlers.Result{}, err
	}

	res := systems.LevelUp(s.Entity)
	if !res.IsApplied() {
		return outcome(p.Survivor, res, ""), nil
	}
	exp, _ := s.Experience()
	return outcome(p.Survivor, res, fmt.Sprintf("%s reaches %s.", p.Survivor, exp.Level)), nil
}

// HandleGameLevelUp raises the party level from the best survivor.
func HandleGameLevelUp(ctx handlers.Context) (handlers.Result, error) {
	res := ctx.Roster.LevelUp()
	return outcome("game", res, fmt.Sprintf("The party reaches %s.", ctx.Roster.Level())), nil
}
