package simulation

import (
	"math"

	"github.com/osse101/GrowPot_Go/internal/utils"
)

// stepModel integrates water, growth and deficit over one advance in closed
// form. Water falls linearly at k until it reaches zero and the water boost
// is integrated against that curve, so the result of one long step equals
// the result of any split of it into shorter steps.
type stepModel struct {
	water0    float64 // water at the start of the step
	decay     float64 // k, water lost per second
	baseRate  float64 // growth per second independent of water
	boostRate float64 // growth per second at saturating water
	threshold float64 // water level below which deficit accrues
}

// waterAt returns the water level tau seconds into the step.
func (m stepModel) waterAt(tau float64) float64 {
	return math.Max(0, m.water0-m.decay*tau)
}

// dryAt returns the offset at which water reaches zero, or +Inf.
func (m stepModel) dryAt() float64 {
	if m.water0 <= 0 {
		return 0
	}
	if m.decay <= 0 {
		return math.Inf(1)
	}
	return m.water0 / m.decay
}

// boostIntegral is the integral of 1-e^-w(s) over [0, tau].
func (m stepModel) boostIntegral(tau float64) float64 {
	if tau <= 0 || m.water0 <= 0 {
		return 0
	}
	if m.decay <= 0 {
		return tau * utils.SaturatingBoost(m.water0)
	}
	t := math.Min(tau, m.dryAt())
	// e^-(w0 - k s) integrated over [0, t], written to stay below 1.
	wet := (math.Exp(m.decay*t-m.water0) - math.Exp(-m.water0)) / m.decay
	return t - wet
}

// growthAt is growth accrued in the first tau seconds of the step.
func (m stepModel) growthAt(tau float64) float64 {
	return m.baseRate*tau + m.boostRate*m.boostIntegral(tau)
}

// deficitAt is the integral of max(0, threshold - w(s)) over [0, tau].
func (m stepModel) deficitAt(tau float64) float64 {
	if tau <= 0 || m.threshold <= 0 {
		return 0
	}
	if m.decay <= 0 {
		return tau * math.Max(0, m.threshold-m.water0)
	}
	start := math.Max(0, (m.water0-m.threshold)/m.decay)
	if tau <= start {
		return 0
	}
	dry := m.dryAt()
	end := math.Min(tau, dry)
	d := 0.0
	if end > start {
		// threshold - (w0 - k s) over [start, end]
		d += (m.threshold-m.water0)*(end-start) + m.decay*(end*end-start*start)/2
	}
	if tau > dry {
		d += m.threshold * (tau - math.Max(dry, start))
	}
	return d
}

// timeToGrowth finds the offset at which accrued growth first reaches target.
// target must lie within [0, growthAt(span)].
func (m stepModel) timeToGrowth(target, span float64) float64 {
	lo, hi := 0.0, span
	for i := 0; i < readyBisectIterations; i++ {
		mid := (lo + hi) / 2
		if m.growthAt(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}
