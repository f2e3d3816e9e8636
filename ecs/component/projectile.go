package component

// Projectile is a player shot or a hostile shot. Player shots travel along
// Angle (0 is straight up); hostile shots fall straight down unless Homing.
type Projectile struct {
	Damage   float64
	Speed    float64
	Angle    float64
	Hostile  bool
	Piercing bool
	Splash   bool
	Homing   bool

	// ExpiresAt is 0 for shots that only die off-screen.
	ExpiresAt float64

	// Struck lists the enemies a piercing shot already damaged, so it hits
	// each one once while passing through.
	Struck []uint64
}

func (p *Projectile) Key() string {
	switch {
	case p.Homing:
		return "projectile.missile"
	case p.Hostile:
		return "projectile.enemy"
	default:
		return "projectile.player"
	}
}

// AlreadyStruck reports whether the shot has damaged target before.
func (p *Projectile) AlreadyStruck(target uint64) bool {
	for _, e := range p.Struck {
		if e == target {
			return true
		}
	}
	return false
}

var ProjectileComponent = NewComponent[Projectile]()
