package component

type BossKind int

const (
	BossNone BossKind = iota
	Mothership
	QuantumShifter
	HiveMind
	TechnoTitan
	CosmicHydra
)

var BossKinds = []BossKind{Mothership, QuantumShifter, HiveMind, TechnoTitan, CosmicHydra}

func (k BossKind) String() string {
	switch k {
	case Mothership:
		return "mothership"
	case QuantumShifter:
		return "quantum_shifter"
	case HiveMind:
		return "hive_mind"
	case TechnoTitan:
		return "techno_titan"
	case CosmicHydra:
		return "cosmic_hydra"
	default:
		return "none"
	}
}

type AbilityKind int

const (
	AbilityDrones AbilityKind = iota
	AbilityLaser
	AbilityTeleport
	AbilityBlackHole
	AbilitySwarm
	AbilityMindControl
	AbilityEMP
	AbilityRegen
	AbilityMissiles
)

func (k AbilityKind) String() string {
	switch k {
	case AbilityDrones:
		return "drones"
	case AbilityLaser:
		return "laser"
	case AbilityTeleport:
		return "teleport"
	case AbilityBlackHole:
		return "black_hole"
	case AbilitySwarm:
		return "swarm"
	case AbilityMindControl:
		return "mind_control"
	case AbilityEMP:
		return "emp"
	case AbilityRegen:
		return "regen"
	case AbilityMissiles:
		return "missiles"
	default:
		return "unknown"
	}
}

// BossAbilities lists the abilities each boss owns.
func BossAbilities(kind BossKind) []AbilityKind {
	switch kind {
	case Mothership:
		return []AbilityKind{AbilityDrones, AbilityLaser}
	case QuantumShifter:
		return []AbilityKind{AbilityTeleport, AbilityBlackHole}
	case HiveMind:
		return []AbilityKind{AbilitySwarm, AbilityMindControl}
	case TechnoTitan:
		return []AbilityKind{AbilityEMP}
	case CosmicHydra:
		return []AbilityKind{AbilityRegen, AbilityMissiles}
	default:
		return nil
	}
}

// AbilityTimer gates one boss ability on its own interval.
type AbilityTimer struct {
	Ability  AbilityKind
	Interval float64
	LastAt   float64
}

func (t *AbilityTimer) Ready(now float64) bool {
	return now-t.LastAt >= t.Interval
}

// Boss holds the independent ability timers of a boss enemy.
type Boss struct {
	Kind      BossKind
	Abilities []AbilityTimer
}

var BossComponent = NewComponent[Boss]()
