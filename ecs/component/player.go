package component

import "github.com/milk9111/starblaster/combat"

type PlayerKind int

const (
	Speedster PlayerKind = iota
	Tank
	GlassCannon
	AllRounder
)

var PlayerKinds = []PlayerKind{Speedster, Tank, GlassCannon, AllRounder}

func (k PlayerKind) String() string {
	switch k {
	case Speedster:
		return "speedster"
	case Tank:
		return "tank"
	case GlassCannon:
		return "glass_cannon"
	case AllRounder:
		return "all_rounder"
	default:
		return "unknown"
	}
}

// ClampPlayerKind maps any selection index onto a valid archetype.
func ClampPlayerKind(index int) PlayerKind {
	if index < 0 {
		return PlayerKinds[0]
	}
	if index >= len(PlayerKinds) {
		return PlayerKinds[len(PlayerKinds)-1]
	}
	return PlayerKinds[index]
}

// ArchetypeStats is the fixed stat tuple of one archetype. Times are in
// milliseconds, FireRate in shots per second, Defense in percent.
type ArchetypeStats struct {
	Name            string
	Speed           float64
	FireRate        float64
	Damage          float64
	MaxHealth       float64
	Defense         float64
	SpecialName     string
	SpecialCooldown float64
	SpecialDuration float64

	// Dodge roll: lateral displacement is Speed*DodgeDistance.
	DodgeDistance float64
	// Fortify: extra reduction applied on top of Defense.
	FortifyReduction float64
	// Power surge: shot damage multiplier.
	SurgeMultiplier float64
	// Energy wave: flat damage to every enemy.
	WaveDamage float64
}

// HitResult describes what a single hit did to the player.
type HitResult struct {
	Absorbed bool
	Ignored  bool
	Dealt    float64
	Dead     bool
}

type Player struct {
	Kind   PlayerKind
	Stats  ArchetypeStats
	Health combat.Health

	ShieldCharges int

	LastShotAt        float64
	LastSpecialAt     float64
	SpecialUntil      float64
	InvulnerableUntil float64

	// Effects maps a timed power-up to its expiry deadline.
	Effects map[PowerUpKind]float64

	Sidekick uint64
}

// NewPlayer creates a player whose special is ready at now.
func NewPlayer(kind PlayerKind, stats ArchetypeStats, now float64) *Player {
	return &Player{
		Kind:          kind,
		Stats:         stats,
		Health:        combat.NewHealth(stats.MaxHealth),
		LastShotAt:    now - shotInterval(stats.FireRate),
		LastSpecialAt: now - stats.SpecialCooldown,
		Effects:       make(map[PowerUpKind]float64),
	}
}

func shotInterval(rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return 1000 / rate
}

func (p *Player) EffectActive(kind PowerUpKind, now float64) bool {
	if p == nil {
		return false
	}
	until, ok := p.Effects[kind]
	return ok && now < until
}

// Activate starts or extends a timed effect.
func (p *Player) Activate(kind PowerUpKind, now, duration float64) {
	if p.Effects == nil {
		p.Effects = make(map[PowerUpKind]float64)
	}
	p.Effects[kind] = now + duration
}

func (p *Player) Invulnerable(now float64) bool {
	return p != nil && now < p.InvulnerableUntil
}

func (p *Player) SpecialActive(now float64) bool {
	return p != nil && now < p.SpecialUntil
}

// SpecialReady reports whether the cooldown has elapsed. Global blockers such
// as EMP are checked by the caller.
func (p *Player) SpecialReady(now float64) bool {
	return p != nil && now-p.LastSpecialAt >= p.Stats.SpecialCooldown
}

// CooldownFraction is 0 right after use and 1 once the special is ready.
func (p *Player) CooldownFraction(now float64) float64 {
	if p == nil {
		return 0
	}
	if p.Stats.SpecialCooldown <= 0 {
		return 1
	}
	f := (now - p.LastSpecialAt) / p.Stats.SpecialCooldown
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// ChargeSpecial makes the special immediately usable.
func (p *Player) ChargeSpecial(now float64) {
	p.LastSpecialAt = now - p.Stats.SpecialCooldown
}

// FireRate is the current shots per second for the given combo level.
func (p *Player) FireRate(comboLevel int, now float64) float64 {
	rate := p.Stats.FireRate * combat.FireRateMultiplier(comboLevel)
	if p.EffectActive(RapidFire, now) {
		rate *= 2
	}
	return rate
}

// CanShoot reports whether a new shot is due.
func (p *Player) CanShoot(comboLevel int, now float64) bool {
	rate := p.FireRate(comboLevel, now)
	if rate <= 0 {
		return false
	}
	return now-p.LastShotAt >= 1000/rate
}

// ShotDamage is the damage of the next shot.
func (p *Player) ShotDamage(now float64) float64 {
	dmg := p.Stats.Damage
	if p.Kind == GlassCannon && p.SpecialActive(now) && p.Stats.SurgeMultiplier > 0 {
		dmg *= p.Stats.SurgeMultiplier
	}
	return dmg
}

// DamageBonus is the archetype reduction stacked with defense.
func (p *Player) DamageBonus(now float64) float64 {
	if p.Kind == Tank && p.SpecialActive(now) {
		return p.Stats.FortifyReduction
	}
	return 0
}

// TakeHit resolves one incoming hit: invulnerability ignores it, a shield
// charge absorbs it, otherwise mitigated damage comes off health.
func (p *Player) TakeHit(raw, now float64) HitResult {
	if p == nil {
		return HitResult{Ignored: true}
	}
	if p.Invulnerable(now) {
		return HitResult{Ignored: true}
	}
	if p.ShieldCharges > 0 {
		p.ShieldCharges--
		return HitResult{Absorbed: true}
	}
	dealt := p.Health.Apply(combat.Mitigate(raw, p.Stats.Defense, p.DamageBonus(now)))
	return HitResult{Dealt: dealt, Dead: !p.Health.Alive()}
}

var PlayerComponent = NewComponent[Player]()
