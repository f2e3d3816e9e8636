package component

import "github.com/milk9111/starblaster/combat"

// Session is the world-wide run state: the frame clock, score, combo and the
// global status deadlines. One entity carries it per world.
type Session struct {
	Now       float64
	StartedAt float64

	Width  float64
	Height float64

	Score int
	Kills int
	Combo combat.Combo

	EMPUntil         float64
	MindControlUntil float64
	TimeWarpUntil    float64

	PlayerDead bool
}

func (s *Session) Elapsed() float64 {
	return s.Now - s.StartedAt
}

func (s *Session) ElapsedMinutes() float64 {
	return s.Elapsed() / 60000
}

func (s *Session) EMP() bool {
	return s.Now < s.EMPUntil
}

func (s *Session) MindControl() bool {
	return s.Now < s.MindControlUntil
}

func (s *Session) TimeWarp() bool {
	return s.Now < s.TimeWarpUntil
}

// AddScore credits base*multiplier and returns the amount added.
func (s *Session) AddScore(base float64) int {
	gained := int(base*s.Combo.ScoreMultiplier() + 0.5)
	s.Score += gained
	return gained
}

var SessionComponent = NewComponent[Session]()
