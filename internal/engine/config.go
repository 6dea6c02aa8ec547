package engine

import "time"

// Config holds the simulation tuning knobs.
type Config struct {
	TickRate             time.Duration
	DayDuration          int // seconds
	InitialMoney         int
	InitialTarget        int
	TargetIncreasePerDay int
	TargetDayScale       int // extra target per elapsed day
	MaxHygiene           float64
	HygieneDecayRate     float64 // scaled by hygieneDecayScale each tick
	PatienceDecayRate    float64 // per tick
	OrderSpawnRate       float64 // probability per tick
	MaxActiveOrders      int
	StationCount         int
	BurnAfter            time.Duration // 0 disables overcooking
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		TickRate:             100 * time.Millisecond,
		DayDuration:          90,
		InitialMoney:         0,
		InitialTarget:        100,
		TargetIncreasePerDay: 120,
		TargetDayScale:       20,
		MaxHygiene:           100,
		HygieneDecayRate:     0.3,
		PatienceDecayRate:    0.6,
		OrderSpawnRate:       0.008,
		MaxActiveOrders:      3,
		StationCount:         3,
	}
}

// sanitize replaces unusable values with defaults.
func (c Config) sanitize() Config {
	d := DefaultConfig()
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	if c.DayDuration <= 0 {
		c.DayDuration = d.DayDuration
	}
	if c.MaxHygiene <= 0 {
		c.MaxHygiene = d.MaxHygiene
	}
	if c.MaxActiveOrders < 0 {
		c.MaxActiveOrders = 0
	}
	if c.StationCount <= 0 {
		c.StationCount = d.StationCount
	}
	if c.BurnAfter < 0 {
		c.BurnAfter = 0
	}
	return c
}
