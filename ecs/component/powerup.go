package component

type PowerUpKind int

const (
	RapidFire PowerUpKind = iota
	SpreadShot
	ShieldBubble
	PiercingShot
	HealthPack
	Bomb
	SidekickDrop
	Magnet
	UltimateCharge
	TimeWarp
)

var PowerUpKinds = []PowerUpKind{
	RapidFire, SpreadShot, ShieldBubble, PiercingShot, HealthPack,
	Bomb, SidekickDrop, Magnet, UltimateCharge, TimeWarp,
}

func (k PowerUpKind) String() string {
	switch k {
	case RapidFire:
		return "rapid_fire"
	case SpreadShot:
		return "spread_shot"
	case ShieldBubble:
		return "shield_bubble"
	case PiercingShot:
		return "piercing_shot"
	case HealthPack:
		return "health_pack"
	case Bomb:
		return "bomb"
	case SidekickDrop:
		return "sidekick"
	case Magnet:
		return "magnet"
	case UltimateCharge:
		return "ultimate_charge"
	case TimeWarp:
		return "time_warp"
	default:
		return "unknown"
	}
}

// Title is the pickup announcement text.
func (k PowerUpKind) Title() string {
	switch k {
	case RapidFire:
		return "Rapid Fire!"
	case SpreadShot:
		return "Spread Shot!"
	case ShieldBubble:
		return "Shield Bubble!"
	case PiercingShot:
		return "Piercing Shot!"
	case HealthPack:
		return "Health Pack!"
	case Bomb:
		return "Bomb!"
	case SidekickDrop:
		return "Sidekick!"
	case Magnet:
		return "Magnet!"
	case UltimateCharge:
		return "Ultimate Charged!"
	case TimeWarp:
		return "Time Warp!"
	default:
		return "Power-up!"
	}
}

// GameWide reports whether the effect is bound to the session rather than
// the player.
func (k PowerUpKind) GameWide() bool {
	return k == TimeWarp || k == Bomb
}

// PowerUp is a falling pickup. Duration is 0 for instant effects.
type PowerUp struct {
	Kind      PowerUpKind
	Duration  float64
	FallSpeed float64
}

var PowerUpComponent = NewComponent[PowerUp]()
