package domain

// Survivor rules.
const (
	ActionsPerTurn   = 3
	SurvivorWoundMax = 2
)

// Survivor is a player-controlled entity. It carries the per-turn action
// counter next to its components.
type Survivor struct {
	*Entity

	ActionsRemaining int `json:"actionsRemaining"`
}

// NewSurvivor returns a live, unwounded, empty-handed survivor.
func NewSurvivor(name string) *Survivor {
	s := &Survivor{
		Entity:           NewEntity(),
		ActionsRemaining: ActionsPerTurn,
	}
	s.Add(&NameComponent{Name: name}).
		Add(NewWoundComponent(0, SurvivorWoundMax)).
		Add(&AliveComponent{Alive: true}).
		Add(NewEquipmentComponent(nil, nil)).
		Add(NewExperienceComponent())
	return s
}

// IsAlive reports the AliveComponent state. A survivor without one is not alive.
func (s *Survivor) IsAlive() bool {
	alive, ok := s.Alive()
	return ok && alive.Alive
}

// Kill scores a zombie kill: one experience point, then a level check.
// The survivor's own life state is untouched.
func (s *Survivor) Kill() Result {
	exp, ok := s.Experience()
	if !ok {
		return IgnoredMissingComponent
	}
	exp.Gain(1)
	if level, changed := exp.Promote(); changed {
		s.Publish(Event{Type: EventLeveledUp, Detail: level.String()})
	}
	return Applied
}
