package component

// Sidekick is a weaker clone that orbits an anchor point next to its owner
// and co-fires with it.
type Sidekick struct {
	Owner        uint64
	Angle        float64
	AngularSpeed float64
	OffsetX      float64
	OffsetY      float64
	Radius       float64
}

var SidekickComponent = NewComponent[Sidekick]()
