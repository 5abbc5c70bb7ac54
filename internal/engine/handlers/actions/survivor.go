package actions

import (
	"fmt"

	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/engine/handlers"
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/systems"
	"github.com/adrocodes/Zombie-Survivors-Kata/pkg/api"
)

// HandleJoin creates a survivor and puts them on the roster.
func HandleJoin(ctx handlers.Context, p api.SurvivorPayload) (handlers.Result, error) {
	res := ctx.Roster.AddSurvivor(domain.NewSurvivor(p.Survivor))
	return outcome(p.Survivor, res, fmt.Sprintf("%s joins the game.", p.Survivor)), nil
}

// HandleWound gives a survivor one wound.
func HandleWound(ctx handlers.Context, p api.SurvivorPayload) (handlers.Result, error) {
	s, err := ctx.Survivor(p.Survivor)
	if err != nil {
		return handlers.Result{}, err
	}

	res := systems.Wound(s.Entity)
	if !res.IsApplied() {
		return outcome(p.Survivor, res, ""), nil
	}
	wound, _ := s.Wound()
	return outcome(p.Survivor, res, fmt.Sprintf("%s is wounded (%d/%d).", p.Survivor, wound.Value, wound.Max)), nil
}

// HandleUpdate runs the lifecycle check that turns lethal wounds into death.
func HandleUpdate(ctx handlers.Context, p api.SurvivorPayload) (handlers.Result, error) {
	s, err := ctx.Survivor(p.Survivor)
	if err != nil {
		return handlers.Result{}, err
	}

	res := systems.UpdateSurvivor(s.Entity)
	return outcome(p.Survivor, res, fmt.Sprintf("%s dies.", p.Survivor)), nil
}

// HandleCapacity applies the wound penalty to a survivor's equipment.
func HandleCapacity(ctx handlers.Context, p api.SurvivorPayload) (handlers.Result, error) {
	s, err := ctx.Survivor(p.Survivor)
	if err != nil {
		return handlers.Result{}, err
	}

	res := systems.UpdateEquipmentCapacity(s.Entity)
	if !res.IsApplied() {
		return outcome(p.Survivor, res, ""), nil
	}
	eq, _ := s.Equipment()
	return outcome(p.Survivor, res, fmt.Sprintf("%s can now carry %d in hand and %d in reserve.",
		p.Survivor, eq.InHandCapacity, eq.InReserveCapacity)), nil
}

// HandleStartTurn refills actions for one survivor, or for everyone when no name is given.
func HandleStartTurn(ctx handlers.Context, p api.RosterPayload) (handlers.Result, error) {
	if p.Survivor == "" {
		ctx.Roster.StartTurn()
		return handlers.Result{Msg: "A new turn begins.", Outcome: domain.Applied}, nil
	}

	s, err := ctx.Survivor(p.Survivor)
	if err != nil {
		return handlers.Result{}, err
	}
	res := systems.StartTurn(s)
	return outcome(p.Survivor, res, fmt.Sprintf("%s starts a turn.", p.Survivor)), nil
}

// HandleAct spends one of a survivor's actions.
func HandleAct(ctx handlers.Context, p api.SurvivorPayload) (handlers.Result, error) {
	s, err := ctx.Survivor(p.Survivor)
	if err != nil {
		return handlers.Result{}, err
	}

	res := systems.PerformAction(s)
	return outcome(p.Survivor, res, fmt.Sprintf("%s acts (%d left).", p.Survivor, s.ActionsRemaining)), nil
}

// HandleKill scores a zombie kill for a survivor.
func HandleKill(ctx handlers.Context, p api.SurvivorPayload) (handlers.Result, error) {
	s, err := ctx.Survivor(p.Survivor)
	if err != nil {
		return handlers.Result{}, err
	}

	res := s.Kill()
	return outcome(p.Survivor, res, fmt.Sprintf("%s kills a zombie.", p.Survivor)), nil
}
