package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/starblaster/ecs/component"
)

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ShotSpec struct {
	Width            float64   `yaml:"width"`
	Height           float64   `yaml:"height"`
	Speed            float64   `yaml:"speed"`
	SpreadAngles     []float64 `yaml:"spread_angles"`
	SplashComboLevel int       `yaml:"splash_combo_level"`
	SplashRadius     float64   `yaml:"splash_radius"`
	SplashFactor     float64   `yaml:"splash_factor"`
	TimeWarpFactor   float64   `yaml:"time_warp_factor"`
}

type SplitSpec struct {
	Threshold float64 `yaml:"threshold"`
	Offset    float64 `yaml:"offset"`
}

type SidekickSpec struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	OffsetX      float64 `yaml:"offset_x"`
	OffsetY      float64 `yaml:"offset_y"`
	Radius       float64 `yaml:"radius"`
	AngularSpeed float64 `yaml:"angular_speed"`
	DamageFactor float64 `yaml:"damage_factor"`
}

type MagnetSpec struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// ArenaSpec is arena.yaml: playfield size and the shared combat rules.
type ArenaSpec struct {
	Width        float64      `yaml:"width"`
	Height       float64      `yaml:"height"`
	BreachMargin float64      `yaml:"breach_margin"`
	SpawnY       float64      `yaml:"spawn_y"`
	BossSpawnY   float64      `yaml:"boss_spawn_y"`
	DropChance   float64      `yaml:"drop_chance"`
	MaxFrameMs   float64      `yaml:"max_frame_ms"`
	Player       SizeSpec     `yaml:"player"`
	PlayerBottom float64      `yaml:"player_bottom_offset"`
	Shots        ShotSpec     `yaml:"shots"`
	EnemyShots   ShotSpec     `yaml:"enemy_shots"`
	Split        SplitSpec    `yaml:"split"`
	Sidekick     SidekickSpec `yaml:"sidekick"`
	Magnet       MagnetSpec   `yaml:"magnet"`
	Announcement float64      `yaml:"announcement_ms"`
}

type SpecialSpec struct {
	Name             string  `yaml:"name"`
	Cooldown         float64 `yaml:"cooldown"`
	Duration         float64 `yaml:"duration"`
	DodgeDistance    float64 `yaml:"dodge_distance"`
	FortifyReduction float64 `yaml:"fortify_reduction"`
	SurgeMultiplier  float64 `yaml:"surge_multiplier"`
	WaveDamage       float64 `yaml:"wave_damage"`
}

type ArchetypeSpec struct {
	Name      string      `yaml:"name"`
	Speed     float64     `yaml:"speed"`
	FireRate  float64     `yaml:"fire_rate"`
	Damage    float64     `yaml:"damage"`
	MaxHealth float64     `yaml:"max_health"`
	Defense   float64     `yaml:"defense"`
	Special   SpecialSpec `yaml:"special"`
}

// Stats converts the YAML record into the runtime stat tuple.
func (a ArchetypeSpec) Stats() component.ArchetypeStats {
	return component.ArchetypeStats{
		Name:             a.Name,
		Speed:            a.Speed,
		FireRate:         a.FireRate,
		Damage:           a.Damage,
		MaxHealth:        a.MaxHealth,
		Defense:          a.Defense,
		SpecialName:      a.Special.Name,
		SpecialCooldown:  a.Special.Cooldown,
		SpecialDuration:  a.Special.Duration,
		DodgeDistance:    a.Special.DodgeDistance,
		FortifyReduction: a.Special.FortifyReduction,
		SurgeMultiplier:  a.Special.SurgeMultiplier,
		WaveDamage:       a.Special.WaveDamage,
	}
}

type ZigzagSpec struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
}

type ShieldSpec struct {
	Cooldown float64 `yaml:"cooldown"`
	Duration float64 `yaml:"duration"`
}

type EnemySpec struct {
	Name         string      `yaml:"name"`
	Health       float64     `yaml:"health"`
	ChildHealth  float64     `yaml:"child_health"`
	Speed        float64     `yaml:"speed"`
	Damage       float64     `yaml:"damage"`
	FireRate     float64     `yaml:"fire_rate"`
	Width        float64     `yaml:"width"`
	Height       float64     `yaml:"height"`
	Size         float64     `yaml:"size"`
	DamageFactor float64     `yaml:"damage_factor"`
	Zigzag       *ZigzagSpec `yaml:"zigzag"`
	Shield       *ShieldSpec `yaml:"shield"`
}

// AbilitySpec carries the parameters of one boss ability. Fields that do not
// apply to an ability are left zero.
type AbilitySpec struct {
	Interval float64 `yaml:"interval"`
	Duration float64 `yaml:"duration"`
	Count    int     `yaml:"count"`
	Spread   float64 `yaml:"spread"`
	Width    float64 `yaml:"width"`
	Damage   float64 `yaml:"damage"`
	Tick     float64 `yaml:"tick"`
	Radius   float64 `yaml:"radius"`
	Pull     float64 `yaml:"pull"`
	Amount   float64 `yaml:"amount"`
	Speed    float64 `yaml:"speed"`
	Size     float64 `yaml:"size"`
	Lifetime float64 `yaml:"lifetime"`
}

type WeakPointSpec struct {
	Offset float64 `yaml:"offset"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Health float64 `yaml:"health"`
}

type BossSpec struct {
	Name       string                 `yaml:"name"`
	Health     float64                `yaml:"health"`
	Speed      float64                `yaml:"speed"`
	Damage     float64                `yaml:"damage"`
	FireRate   float64                `yaml:"fire_rate"`
	Width      float64                `yaml:"width"`
	Height     float64                `yaml:"height"`
	Abilities  map[string]AbilitySpec `yaml:"abilities"`
	WeakPoints *WeakPointSpec         `yaml:"weak_points"`
}

func (b BossSpec) Ability(kind component.AbilityKind) (AbilitySpec, bool) {
	a, ok := b.Abilities[kind.String()]
	return a, ok
}

type PowerUpSpec struct {
	Weight   float64 `yaml:"weight"`
	Duration float64 `yaml:"duration"`
	Amount   float64 `yaml:"amount"`
	Charges  int     `yaml:"charges"`
	Score    float64 `yaml:"score"`
}

type PowerUpTableSpec struct {
	Size      float64                `yaml:"size"`
	FallSpeed float64                `yaml:"fall_speed"`
	Kinds     map[string]PowerUpSpec `yaml:"kinds"`
}

type IntervalSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type SpecialSpawnSpec struct {
	Kind         string  `yaml:"kind"`
	AfterMinutes float64 `yaml:"after_minutes"`
	Chance       float64 `yaml:"chance"`
}

type SpawnSpec struct {
	Regular       string             `yaml:"regular"`
	BaseInterval  float64            `yaml:"base_interval"`
	PerMinute     float64            `yaml:"per_minute"`
	MinInterval   float64            `yaml:"min_interval"`
	Specials      []SpecialSpawnSpec `yaml:"specials"`
	BossAfter     float64            `yaml:"boss_after_minutes"`
	BossInterval  IntervalSpec       `yaml:"boss_interval"`
	PowerUpPeriod IntervalSpec       `yaml:"power_up_interval"`
}

// Tuning aggregates every table the simulation reads.
type Tuning struct {
	Arena      ArenaSpec
	Archetypes map[string]ArchetypeSpec
	Enemies    map[string]EnemySpec
	Bosses     map[string]BossSpec
	PowerUps   PowerUpTableSpec
	Spawn      SpawnSpec
}

// LoadTuning reads and validates all tuning tables.
func LoadTuning() (*Tuning, error) {
	var t Tuning
	var err error
	if t.Arena, err = LoadSpec[ArenaSpec]("arena.yaml"); err != nil {
		return nil, err
	}
	if t.Archetypes, err = LoadSpec[map[string]ArchetypeSpec]("archetypes.yaml"); err != nil {
		return nil, err
	}
	if t.Enemies, err = LoadSpec[map[string]EnemySpec]("enemies.yaml"); err != nil {
		return nil, err
	}
	if t.Bosses, err = LoadSpec[map[string]BossSpec]("bosses.yaml"); err != nil {
		return nil, err
	}
	if t.PowerUps, err = LoadSpec[PowerUpTableSpec]("powerups.yaml"); err != nil {
		return nil, err
	}
	if t.Spawn, err = LoadSpec[SpawnSpec]("spawn.yaml"); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: invalid tuning: %w", err)
	}
	return &t, nil
}

func (t *Tuning) Archetype(kind component.PlayerKind) component.ArchetypeStats {
	return t.Archetypes[kind.String()].Stats()
}

func (t *Tuning) Enemy(kind component.EnemyKind) EnemySpec {
	return t.Enemies[kind.String()]
}

func (t *Tuning) Boss(kind component.BossKind) BossSpec {
	return t.Bosses[kind.String()]
}

func (t *Tuning) PowerUp(kind component.PowerUpKind) PowerUpSpec {
	return t.PowerUps.Kinds[kind.String()]
}

// Validate checks that every enumerated kind has a record and that sizes and
// rates are usable. All problems are reported together.
func (t *Tuning) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if t.Arena.Width <= 0 || t.Arena.Height <= 0 {
		add("arena: size %gx%g must be positive", t.Arena.Width, t.Arena.Height)
	}
	if t.Arena.Player.Width <= 0 || t.Arena.Player.Height <= 0 {
		add("arena: player size must be positive")
	}
	if t.Arena.Shots.Speed <= 0 || t.Arena.EnemyShots.Speed <= 0 {
		add("arena: shot speeds must be positive")
	}
	if t.Arena.DropChance < 0 || t.Arena.DropChance > 1 {
		add("arena: drop_chance %g outside [0,1]", t.Arena.DropChance)
	}

	for _, kind := range component.PlayerKinds {
		a, ok := t.Archetypes[kind.String()]
		if !ok {
			add("archetypes: missing %s", kind)
			continue
		}
		if a.MaxHealth <= 0 || a.Speed <= 0 {
			add("archetypes: %s needs positive max_health and speed", kind)
		}
		if a.Special.Cooldown < 0 {
			add("archetypes: %s has negative cooldown", kind)
		}
	}

	for _, kind := range component.EnemyKinds {
		e, ok := t.Enemies[kind.String()]
		if !ok {
			add("enemies: missing %s", kind)
			continue
		}
		if e.Health <= 0 {
			add("enemies: %s needs positive health", kind)
		}
		if kind != component.SplittingCube && (e.Width <= 0 || e.Height <= 0) {
			add("enemies: %s needs a positive size", kind)
		}
		if kind == component.SplittingCube && e.Size <= 0 {
			add("enemies: %s needs a positive size", kind)
		}
		if e.FireRate < 0 {
			add("enemies: %s has negative fire_rate", kind)
		}
	}

	for _, kind := range component.BossKinds {
		b, ok := t.Bosses[kind.String()]
		if !ok {
			add("bosses: missing %s", kind)
			continue
		}
		if b.Health <= 0 || b.Width <= 0 || b.Height <= 0 {
			add("bosses: %s needs positive health and size", kind)
		}
		for _, ability := range component.BossAbilities(kind) {
			a, ok := b.Ability(ability)
			if !ok {
				add("bosses: %s missing ability %s", kind, ability)
				continue
			}
			if a.Interval <= 0 {
				add("bosses: %s ability %s needs a positive interval", kind, ability)
			}
		}
		if kind == component.TechnoTitan && b.WeakPoints == nil {
			add("bosses: %s needs weak_points", kind)
		}
	}

	total := 0.0
	for _, kind := range component.PowerUpKinds {
		p, ok := t.PowerUps.Kinds[kind.String()]
		if !ok {
			add("powerups: missing %s", kind)
			continue
		}
		if p.Weight < 0 {
			add("powerups: %s has negative weight", kind)
		}
		total += p.Weight
	}
	if total <= 0 {
		add("powerups: weights sum to zero")
	}

	if _, ok := t.Enemies[t.Spawn.Regular]; !ok {
		add("spawn: unknown regular enemy %q", t.Spawn.Regular)
	}
	for _, s := range t.Spawn.Specials {
		if _, ok := t.Enemies[s.Kind]; !ok {
			add("spawn: unknown special enemy %q", s.Kind)
		}
	}
	if t.Spawn.MinInterval <= 0 {
		add("spawn: min_interval must be positive")
	}
	if t.Spawn.BossInterval.Max < t.Spawn.BossInterval.Min || t.Spawn.PowerUpPeriod.Max < t.Spawn.PowerUpPeriod.Min {
		add("spawn: interval max below min")
	}

	return errors.Join(errs...)
}

// EnemyKindByName resolves a YAML enemy key.
func EnemyKindByName(name string) (component.EnemyKind, bool) {
	for _, kind := range component.EnemyKinds {
		if kind.String() == name {
			return kind, true
		}
	}
	return component.EnemyNone, false
}
