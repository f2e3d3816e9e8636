package component

type HazardKind int

const (
	HazardLaser HazardKind = iota
	HazardBlackHole
)

func (k HazardKind) String() string {
	switch k {
	case HazardLaser:
		return "laser"
	case HazardBlackHole:
		return "black_hole"
	default:
		return "unknown"
	}
}

// Hazard is an area effect spawned by a boss. Lasers follow their source
// and damage the player on a fixed tick; black holes pull the player toward
// their center.
type Hazard struct {
	Kind      HazardKind
	Source    uint64
	ExpiresAt float64

	Damage       float64
	TickInterval float64
	NextTickAt   float64

	Radius float64
	Pull   float64
}

var HazardComponent = NewComponent[Hazard]()
