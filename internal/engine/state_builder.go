package engine

import (
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/version"
	"github.com/adrocodes/Zombie-Survivors-Kata/pkg/api"
)

// BuildGameView snapshots the game for the host. It checks for game over,
// so it can add that line to the log.
func BuildGameView(g *Game) api.GameView {
	view := api.GameView{
		ID:         g.ID().String(),
		Level:      g.Level().String(),
		Experience: g.ExperienceValue(),
		GameOver:   g.IsGameOver(),
		Survivors:  make([]api.SurvivorView, 0, len(g.survivors)),
	}

	for _, s := range g.survivors {
		view.Survivors = append(view.Survivors, BuildSurvivorView(s))
	}
	view.Logs = g.Logs()

	if b, err := version.Current(); err == nil {
		view.Build = &api.BuildView{Number: b.Number, Date: b.Date, Commit: b.Commit}
	}
	return view
}

// BuildSurvivorView snapshots one survivor. Missing components leave their fields zero.
func BuildSurvivorView(s *domain.Survivor) api.SurvivorView {
	view := api.SurvivorView{
		ID:               uint64(s.ID),
		Name:             s.Name(),
		Alive:            s.IsAlive(),
		ActionsRemaining: s.ActionsRemaining,
	}

	if w, ok := s.Wound(); ok {
		view.Wounds = w.Value
		view.MaxWounds = w.Max
	}
	if eq, ok := s.Equipment(); ok {
		view.InHand = append([]string{}, eq.InHand...)
		view.InReserve = append([]string{}, eq.InReserve...)
		view.InHandCapacity = eq.InHandCapacity
		view.InReserveCapacity = eq.InReserveCapacity
	}
	if exp, ok := s.Experience(); ok {
		view.Experience = exp.Value
		view.Level = exp.Level.String()
	}
	return view
}
