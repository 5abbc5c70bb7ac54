package domain

// --- COMPONENTS ---

// NameComponent identifies a survivor. Names are unique within a game.
type NameComponent struct {
	Name string `json:"name"`
}

// WoundComponent counts wounds taken. Reaching Max kills the owner
// on the next lifecycle update.
type WoundComponent struct {
	Value int `json:"value"`
	Max   int `json:"max"`
}

// AliveComponent - life state. Once false it never goes back.
type AliveComponent struct {
	Alive bool `json:"alive"`
}

// Default equipment capacities.
const (
	DefaultInHandCapacity    = 2
	DefaultInReserveCapacity = 3
)

// EquipmentComponent holds item names carried in hand and in reserve.
// Capacities only ever go down.
type EquipmentComponent struct {
	InHand            []string `json:"inHand"`
	InReserve         []string `json:"inReserve"`
	InHandCapacity    int      `json:"inHandCapacity"`
	InReserveCapacity int      `json:"inReserveCapacity"`
}

// ExperienceComponent - accumulated experience and the cached level.
// Level is only recomputed by Promote.
type ExperienceComponent struct {
	Value int   `json:"value"`
	Level Level `json:"level"`
}

// NewWoundComponent returns a wound counter at value with threshold max.
func NewWoundComponent(value, max int) *WoundComponent {
	return &WoundComponent{Value: value, Max: max}
}

// NewEquipmentComponent returns equipment with the default capacities.
// The lists are copied; the caller keeps ownership of its slices.
func NewEquipmentComponent(inHand, inReserve []string) *EquipmentComponent {
	return &EquipmentComponent{
		InHand:            append([]string{}, inHand...),
		InReserve:         append([]string{}, inReserve...),
		InHandCapacity:    DefaultInHandCapacity,
		InReserveCapacity: DefaultInReserveCapacity,
	}
}

// NewExperienceComponent returns experience at 0, level blue.
func NewExperienceComponent() *ExperienceComponent {
	return &ExperienceComponent{Level: LevelBlue}
}
