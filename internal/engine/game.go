package engine

import (
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/systems"

	"github.com/google/uuid"
)

// GameSource prefixes game-level lines in the log.
const GameSource = "Zombicide"

// Game is one play session: the roster, the party's experience and the event log.
type Game struct {
	*domain.Entity

	id        uuid.UUID
	survivors []*domain.Survivor
	logs      []string
	over      bool
}

// NewGame starts a session with an empty roster.
func NewGame() *Game {
	g := &Game{
		Entity: domain.NewEntity(),
		id:     uuid.New(),
		logs:   []string{},
	}
	g.Add(domain.NewExperienceComponent())
	g.SetObserver(g)

	g.AddLog(domain.Event{Type: domain.EventGameStarted}.Text())
	return g
}

// ID is the session id, used to correlate log lines.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// AddSurvivor puts s on the roster unless someone with the same name is
// already there. From then on s reports its transitions to this game.
// A survivor belongs to one game; joining a second one is refused.
func (g *Game) AddSurvivor(s *domain.Survivor) domain.Result {
	if s == nil {
		return domain.IgnoredMissingComponent
	}
	if o := s.Observer(); o != nil && o != domain.Observer(g) {
		g.logger().WithField("survivor", s.Name()).Debug("Survivor rejected: already on another roster.")
		return domain.IgnoredOtherGame
	}
	if _, exists := g.FindSurvivor(s.Name()); exists {
		g.logger().WithField("survivor", s.Name()).Debug("Survivor rejected: name already taken.")
		return domain.IgnoredDuplicateName
	}

	g.survivors = append(g.survivors, s)
	s.SetObserver(g)
	s.Publish(domain.Event{Type: domain.EventJoined})
	return domain.Applied
}

// FindSurvivor looks a roster member up by name.
func (g *Game) FindSurvivor(name string) (*domain.Survivor, bool) {
	for _, s := range g.survivors {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// Survivors returns the roster in join order.
func (g *Game) Survivors() []*domain.Survivor {
	out := make([]*domain.Survivor, len(g.survivors))
	copy(out, g.survivors)
	return out
}

// IsGameOver reports whether every survivor is dead. An empty roster counts
// as over. The first time it is observed, "Game over" goes to the log; that
// happens once per game, even if survivors join an empty game afterwards.
func (g *Game) IsGameOver() bool {
	for _, s := range g.survivors {
		if s.IsAlive() {
			return false
		}
	}

	if !g.over {
		g.over = true
		g.Publish(domain.Event{Type: domain.EventGameOver})
	}
	return true
}

// LevelUp adds the best survivor's experience to the game's own experience
// and recomputes the game level. The gain is cumulative: calling it twice
// adds the best value twice.
func (g *Game) LevelUp() domain.Result {
	highest := 0
	for _, s := range g.survivors {
		if exp, ok := s.Experience(); ok && exp.Value > highest {
			highest = exp.Value
		}
	}

	systems.GainExperience(g.Entity, highest)
	return systems.LevelUp(g.Entity)
}

// StartTurn refills the actions of every survivor on the roster.
func (g *Game) StartTurn() {
	for _, s := range g.survivors {
		systems.StartTurn(s)
	}
}

// Level is the party's current level.
func (g *Game) Level() domain.Level {
	if exp, ok := g.Experience(); ok {
		return exp.Level
	}
	return domain.LevelBlue
}

// ExperienceValue is the game's accumulated experience.
func (g *Game) ExperienceValue() int {
	if exp, ok := g.Experience(); ok {
		return exp.Value
	}
	return 0
}

// Observe implements domain.Observer: every event published by the game
// or a roster member becomes a log line.
func (g *Game) Observe(source *domain.Entity, ev domain.Event) {
	g.AddLog(formatLine(g.sourceName(source), ev))
}

func (g *Game) sourceName(source *domain.Entity) string {
	if source == g.Entity {
		return GameSource
	}
	if name := source.Name(); name != "" {
		return name
	}
	return source.ID.String()
}
