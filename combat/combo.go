package combat

// ComboTimeout is the kill window in milliseconds. A kill inside the window
// extends the streak, anything later starts over.
const ComboTimeout = 5000.0

const MaxComboLevel = 5

var (
	comboThresholds  = [MaxComboLevel]int{0, 11, 21, 31, 41}
	scoreMultipliers = [MaxComboLevel]float64{1, 1.5, 2, 3, 4}
)

// ComboLevel maps a streak length to its tier.
func ComboLevel(count int) int {
	level := 1
	for i, threshold := range comboThresholds {
		if count >= threshold {
			level = i + 1
		}
	}
	return level
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > MaxComboLevel {
		return MaxComboLevel
	}
	return level
}

// FireRateMultiplier is 1 + 0.2 per tier above the first.
func FireRateMultiplier(level int) float64 {
	return 1 + 0.2*float64(clampLevel(level)-1)
}

func ScoreMultiplier(level int) float64 {
	return scoreMultipliers[clampLevel(level)-1]
}

// Combo tracks the consecutive-kill streak.
type Combo struct {
	Count      int
	Level      int
	LastKillAt float64
	Timeout    float64
}

func NewCombo() Combo {
	return Combo{Level: 1, Timeout: ComboTimeout}
}

func (c *Combo) timeout() float64 {
	if c.Timeout <= 0 {
		return ComboTimeout
	}
	return c.Timeout
}

// Increment registers a kill at now. It returns true when the tier went up.
func (c *Combo) Increment(now float64) bool {
	before := c.level()
	if now-c.LastKillAt <= c.timeout() {
		c.Count++
	} else {
		c.Count = 1
	}
	c.LastKillAt = now
	c.Level = ComboLevel(c.Count)
	return c.Level > before
}

// Reset drops the streak. Calling it repeatedly is harmless.
func (c *Combo) Reset() {
	c.Count = 0
	c.Level = 1
}

// Tick expires a streak whose last kill is older than the window. Returns
// true if a live streak was dropped.
func (c *Combo) Tick(now float64) bool {
	if c.Count == 0 || now-c.LastKillAt <= c.timeout() {
		return false
	}
	c.Reset()
	return true
}

// Remaining is the fraction of the kill window left, 0 when no streak is live.
func (c *Combo) Remaining(now float64) float64 {
	if c.Count == 0 {
		return 0
	}
	left := 1 - (now-c.LastKillAt)/c.timeout()
	if left < 0 {
		return 0
	}
	if left > 1 {
		return 1
	}
	return left
}

func (c *Combo) FireRateMultiplier() float64 {
	return FireRateMultiplier(c.level())
}

func (c *Combo) ScoreMultiplier() float64 {
	return ScoreMultiplier(c.level())
}

func (c *Combo) level() int {
	if c.Level < 1 {
		return 1
	}
	return c.Level
}
