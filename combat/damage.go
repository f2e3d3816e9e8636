package combat

import "github.com/milk9111/starblaster/common"

// Mitigate applies percentage defense and an additional archetype reduction
// (0..1) to raw damage. The result is never negative.
func Mitigate(raw, defensePct, bonus float64) float64 {
	raw = common.Finite(raw)
	if raw <= 0 {
		return 0
	}
	defense := common.ClampFinite(defensePct, 0, 100)
	extra := common.ClampFinite(bonus, 0, 1)
	dealt := raw * (1 - defense/100) * (1 - extra)
	if dealt < 0 {
		return 0
	}
	return dealt
}
