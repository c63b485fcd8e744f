package focus

import (
	"math"
	"time"
)

// Accumulator integrates presence and posture quality over wall-clock
// time into a bounded focus score. Accrual is proportional to elapsed
// real time and the posture multiplier; decay while away is a fixed
// rate, since posture is undefined when nobody is there.
type Accumulator struct {
	points float64 // accrual per second while present
	decay  float64 // loss per second while away
	max    float64

	score      float64
	lastUpdate time.Time
}

// NewAccumulator creates an accumulator with the config's scoring rates
func NewAccumulator(cfg Config) *Accumulator {
	return &Accumulator{
		points: cfg.PointsPerSecond,
		decay:  cfg.DecayPerSecond,
		max:    cfg.MaxScore,
	}
}

// Tick advances the score by the time elapsed since the previous tick.
// The first tick after Arm or Reset only stamps the clock.
func (a *Accumulator) Tick(now time.Time, present bool, multiplier float64) {
	if a.lastUpdate.IsZero() {
		a.lastUpdate = now
		return
	}

	dt := now.Sub(a.lastUpdate).Seconds()
	a.lastUpdate = now
	if dt <= 0 {
		return
	}

	if present {
		a.score = math.Min(a.max, a.score+a.points*dt*multiplier)
	} else {
		a.score = math.Max(0, a.score-a.decay*dt)
	}
}

// Score returns the current focus score
func (a *Accumulator) Score() float64 {
	return a.score
}

// Arm stamps the tick clock without moving the score. Called when a
// session starts or resumes so paused time never accrues.
func (a *Accumulator) Arm(now time.Time) {
	a.lastUpdate = now
}

// Reset zeroes the score and disarms the clock
func (a *Accumulator) Reset() {
	a.score = 0
	a.lastUpdate = time.Time{}
}
