package engine

import "math"

// Fixed economy rules.
const (
	serveScore         = 10
	misservePenalty    = 5 // money and hygiene
	expiryPenalty      = 5 // money and hygiene, per expired order
	burnedClearPenalty = 10
	cleanBonus         = 20
	nextDayHygiene     = 20
	hygieneDecayScale  = 0.1
	fullPatience       = 100.0
	fullCook           = 100.0
)

// CalculateTip returns the tip earned for serving an order with the given
// remaining patience.
func CalculateTip(patienceRemaining float64, basePrice int) int {
	switch {
	case patienceRemaining > 50:
		return int(math.Floor(float64(basePrice) * 0.25))
	case patienceRemaining > 20:
		return int(math.Floor(float64(basePrice) * 0.10))
	default:
		return 0
	}
}

// NextTarget is the daily target after finishing the given day.
func NextTarget(cfg Config, target, day int) int {
	return target + cfg.TargetIncreasePerDay + day*cfg.TargetDayScale
}

func floorInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampHygiene(v, limit float64) float64 {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
