package domain

// ComponentKind identifies one of the closed set of component types.
type ComponentKind uint8

const (
	KindName ComponentKind = iota
	KindWound
	KindAlive
	KindEquipment
	KindExperience
)

var kindToString = map[ComponentKind]string{
	KindName:       "name",
	KindWound:      "wound",
	KindAlive:      "alive",
	KindEquipment:  "equipment",
	KindExperience: "experience",
}

// String implements fmt.Stringer.
func (k ComponentKind) String() string {
	if val, ok := kindToString[k]; ok {
		return val
	}
	return "unknown"
}

// Component is a plain data record attached to an Entity.
// The set of implementations is closed: only this package can add one.
type Component interface {
	Kind() ComponentKind
	component()
}

func (*NameComponent) Kind() ComponentKind       { return KindName }
func (*WoundComponent) Kind() ComponentKind      { return KindWound }
func (*AliveComponent) Kind() ComponentKind      { return KindAlive }
func (*EquipmentComponent) Kind() ComponentKind  { return KindEquipment }
func (*ExperienceComponent) Kind() ComponentKind { return KindExperience }

func (*NameComponent) component()       {}
func (*WoundComponent) component()      {}
func (*AliveComponent) component()      {}
func (*EquipmentComponent) component()  {}
func (*ExperienceComponent) component() {}
