package component

import (
	"math"

	"github.com/milk9111/starblaster/combat"
)

type EnemyKind int

const (
	EnemyNone EnemyKind = iota
	BasicDrone
	SpeedyZapper
	ArmoredSaucer
	SplittingCube
	ShieldedOrb
)

var EnemyKinds = []EnemyKind{BasicDrone, SpeedyZapper, ArmoredSaucer, SplittingCube, ShieldedOrb}

func (k EnemyKind) String() string {
	switch k {
	case BasicDrone:
		return "basic_drone"
	case SpeedyZapper:
		return "speedy_zapper"
	case ArmoredSaucer:
		return "armored_saucer"
	case SplittingCube:
		return "splitting_cube"
	case ShieldedOrb:
		return "shielded_orb"
	default:
		return "none"
	}
}

type MotionPattern int

const (
	MotionStraight MotionPattern = iota
	MotionZigzag
)

// Motion drives the horizontal path. Zigzag enemies follow
// x = StartX + Amplitude*sin(Frequency*Age) with Age counted in frames.
type Motion struct {
	Pattern   MotionPattern
	StartX    float64
	Age       float64
	Amplitude float64
	Frequency float64
}

func (m *Motion) OffsetX() float64 {
	if m == nil || m.Pattern != MotionZigzag {
		return 0
	}
	return m.Amplitude * math.Sin(m.Frequency*m.Age)
}

// WeakPoint is a destructible sub-box offset horizontally from its owner.
type WeakPoint struct {
	OffsetX   float64
	Width     float64
	Height    float64
	Health    combat.Health
	Destroyed bool
}

// Enemy covers regular enemies and bosses. Exactly one of Kind and Boss is set.
type Enemy struct {
	Kind EnemyKind
	Boss BossKind
	Name string

	Health   combat.Health
	Damage   float64
	Speed    float64
	FireRate float64

	// DamageFactor scales incoming damage; the saucer's armor is 0.5.
	DamageFactor float64

	Motion Motion

	SpawnedAt  float64
	LastShotAt float64

	// Size is only meaningful for splitting cubes.
	Size float64

	ShieldUntil    float64
	NextShieldAt   float64
	ShieldCooldown float64
	ShieldDuration float64

	WeakPoints []WeakPoint
}

func (e *Enemy) IsBoss() bool {
	return e != nil && e.Boss != BossNone
}

// Key is the asset key of the enemy.
func (e *Enemy) Key() string {
	if e.IsBoss() {
		return "boss." + e.Boss.String()
	}
	return "enemy." + e.Kind.String()
}

func (e *Enemy) Shielded(now float64) bool {
	return e != nil && now < e.ShieldUntil
}

// Exposed reports whether every weak point is gone.
func (e *Enemy) Exposed() bool {
	for i := range e.WeakPoints {
		if !e.WeakPoints[i].Destroyed {
			return false
		}
	}
	return true
}

// ApplyDamage runs amount through the enemy's gate and returns the health
// actually lost. Shields and intact weak points block everything.
func (e *Enemy) ApplyDamage(amount, now float64) float64 {
	if e == nil || !e.Health.Alive() {
		return 0
	}
	if e.Shielded(now) || !e.Exposed() {
		return 0
	}
	factor := e.DamageFactor
	if factor <= 0 {
		factor = 1
	}
	return e.Health.Apply(amount * factor)
}

// HitWeakPoint damages the weak point at index i. Returns the damage dealt
// and whether that point broke.
func (e *Enemy) HitWeakPoint(i int, amount float64) (float64, bool) {
	if e == nil || i < 0 || i >= len(e.WeakPoints) {
		return 0, false
	}
	wp := &e.WeakPoints[i]
	if wp.Destroyed {
		return 0, false
	}
	dealt := wp.Health.Apply(amount)
	if !wp.Health.Alive() {
		wp.Destroyed = true
		return dealt, true
	}
	return dealt, false
}

func (e *Enemy) CanShoot(now float64) bool {
	if e == nil || e.FireRate <= 0 {
		return false
	}
	return now-e.LastShotAt >= 1000/e.FireRate
}

// ScoreValue is the base score for killing this enemy.
func (e *Enemy) ScoreValue() float64 {
	if e.IsBoss() {
		return 100
	}
	return 10
}

var EnemyComponent = NewComponent[Enemy]()
