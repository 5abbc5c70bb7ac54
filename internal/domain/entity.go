package domain

import "sort"

// Entity is an identity plus at most one component of each kind.
type Entity struct {
	ID EntityID

	components map[ComponentKind]Component
	observer   Observer
}

// NewEntity creates an entity with the next process-wide id.
func NewEntity() *Entity {
	return NewEntityFrom(&processIDs)
}

// NewEntityFrom creates an entity with an id taken from ids.
func NewEntityFrom(ids *IDSource) *Entity {
	return &Entity{
		ID:         ids.Next(),
		components: make(map[ComponentKind]Component),
	}
}

// Add attaches c and returns the entity for chaining.
// A component of the same kind already attached is replaced.
func (e *Entity) Add(c Component) *Entity {
	if c == nil {
		return e
	}
	if e.components == nil {
		e.components = make(map[ComponentKind]Component)
	}
	e.components[c.Kind()] = c
	return e
}

// Remove detaches c if it is the attached instance of its kind.
func (e *Entity) Remove(c Component) {
	if e == nil || c == nil {
		return
	}
	if cur, ok := e.components[c.Kind()]; ok && cur == c {
		delete(e.components, c.Kind())
	}
}

// Has reports whether a component of the given kind is attached.
func (e *Entity) Has(kind ComponentKind) bool {
	if e == nil {
		return false
	}
	_, ok := e.components[kind]
	return ok
}

// Get returns the component of the given kind, if any.
func (e *Entity) Get(kind ComponentKind) (Component, bool) {
	if e == nil {
		return nil, false
	}
	c, ok := e.components[kind]
	return c, ok
}

// Components returns the attached components ordered by kind.
func (e *Entity) Components() []Component {
	if e == nil {
		return nil
	}
	out := make([]Component, 0, len(e.components))
	for _, c := range e.components {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind() < out[j].Kind() })
	return out
}

// Lookup returns the attached component of type T.
//
//	wound, ok := domain.Lookup[*domain.WoundComponent](e)
func Lookup[T Component](e *Entity) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	// An interface T has no kind to key on.
	if any(zero) == nil {
		for _, c := range e.Components() {
			if t, ok := c.(T); ok {
				return t, true
			}
		}
		return zero, false
	}
	c, ok := e.components[zero.Kind()]
	if !ok {
		return zero, false
	}
	t, ok := c.(T)
	return t, ok
}

func (e *Entity) Wound() (*WoundComponent, bool)           { return Lookup[*WoundComponent](e) }
func (e *Entity) Alive() (*AliveComponent, bool)           { return Lookup[*AliveComponent](e) }
func (e *Entity) Equipment() (*EquipmentComponent, bool)   { return Lookup[*EquipmentComponent](e) }
func (e *Entity) Experience() (*ExperienceComponent, bool) { return Lookup[*ExperienceComponent](e) }

// Name returns the NameComponent value, or "" when there is none.
func (e *Entity) Name() string {
	if n, ok := Lookup[*NameComponent](e); ok {
		return n.Name
	}
	return ""
}

// SetObserver routes the entity's events to o. A nil o silences the entity.
func (e *Entity) SetObserver(o Observer) {
	e.observer = o
}

// Observer returns whoever receives the entity's events, or nil.
func (e *Entity) Observer() Observer {
	if e == nil {
		return nil
	}
	return e.observer
}

// Publish hands ev to the observer, if one is set.
func (e *Entity) Publish(ev Event) {
	if e == nil || e.observer == nil {
		return
	}
	e.observer.Observe(e, ev)
}
