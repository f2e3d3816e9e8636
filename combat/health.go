package combat

import "github.com/milk9111/starblaster/common"

// Health is a reusable health pool. Current always stays in [0, Max].
type Health struct {
	Current float64
	Max     float64
}

// NewHealth creates a full pool. A non-positive max becomes 1.
func NewHealth(max float64) Health {
	max = common.Finite(max)
	if max <= 0 {
		max = 1
	}
	return Health{Current: max, Max: max}
}

func (h *Health) Alive() bool {
	return h != nil && h.Current > 0
}

// Apply subtracts amount and returns how much health was actually lost.
func (h *Health) Apply(amount float64) float64 {
	amount = common.Finite(amount)
	if h == nil || amount <= 0 || h.Current <= 0 {
		return 0
	}
	before := h.Current
	h.Set(h.Current - amount)
	return before - h.Current
}

// Heal restores up to Max and returns how much was restored.
func (h *Health) Heal(amount float64) float64 {
	amount = common.Finite(amount)
	if h == nil || amount <= 0 {
		return 0
	}
	before := h.Current
	h.Set(h.Current + amount)
	return h.Current - before
}

// Set assigns a clamped value.
func (h *Health) Set(v float64) {
	if h == nil {
		return
	}
	h.Current = common.ClampFinite(v, 0, h.Max)
}

// Ratio is Current/Max, 0 for an empty pool.
func (h *Health) Ratio() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}
