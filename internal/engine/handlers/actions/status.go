package actions

import (
	"fmt"

	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/engine/handlers"
	"github.com/adrocodes/Zombie-Survivors-Kata/pkg/api"
)

// HandleStatus describes one survivor, or the whole game when no name is given.
// Asking for the game status is what notices that the game is over.
func HandleStatus(ctx handlers.Context, p api.RosterPayload) (handlers.Result, error) {
	if p.Survivor == "" {
		msg := fmt.Sprintf("Party level %s (%d xp), %d survivor(s), game over: %t.",
			ctx.Roster.Level(), ctx.Roster.ExperienceValue(), len(ctx.Roster.Survivors()), ctx.Roster.IsGameOver())
		return handlers.Result{Msg: msg, Outcome: domain.Applied}, nil
	}

	s, err := ctx.Survivor(p.Survivor)
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: DescribeSurvivor(s), Outcome: domain.Applied}, nil
}

// DescribeSurvivor renders a one-line summary of a survivor.
func DescribeSurvivor(s *domain.Survivor) string {
	state := "alive"
	if !s.IsAlive() {
		state = "dead"
	}

	msg := fmt.Sprintf("%s is %s, %d action(s) left", s.Name(), state, s.ActionsRemaining)
	if w, ok := s.Wound(); ok {
		msg += fmt.Sprintf(", wounds %d/%d", w.Value, w.Max)
	}
	if eq, ok := s.Equipment(); ok {
		msg += fmt.Sprintf(", in hand %v/%d, in reserve %v/%d",
			eq.InHand, eq.InHandCapacity, eq.InReserve, eq.InReserveCapacity)
	}
	if exp, ok := s.Experience(); ok {
		msg += fmt.Sprintf(", %d xp (%s)", exp.Value, exp.Level)
	}
	return msg + "."
}
