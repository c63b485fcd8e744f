package focus

import (
	"math"
	"testing"
	"time"
)

func TestAccumulator_AccrualIsProportionalToTime(t *testing.T) {
	cfg := DefaultConfig() // 0.5 points/s
	a := NewAccumulator(cfg)

	start := time.Now()
	a.Arm(start)
	a.Tick(start.Add(10*time.Second), true, 1.0)

	if math.Abs(a.Score()-5.0) > 1e-9 {
		t.Errorf("score = %v, want 5.0", a.Score())
	}
}

func TestAccumulator_MultiplierScalesAccrual(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAccumulator(cfg)

	start := time.Now()
	a.Arm(start)
	a.Tick(start.Add(10*time.Second), true, 1.5)

	if math.Abs(a.Score()-7.5) > 1e-9 {
		t.Errorf("score = %v, want 7.5", a.Score())
	}
}

func TestAccumulator_SaturatesAtMaxScore(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAccumulator(cfg)

	start := time.Now()
	a.Arm(start)

	// One enormous tick saturates in a single step
	a.Tick(start.Add(24*time.Hour), true, 1.5)
	if a.Score() != cfg.MaxScore {
		t.Errorf("score = %v, want max %v", a.Score(), cfg.MaxScore)
	}

	// Further ticks never exceed the ceiling
	a.Tick(start.Add(25*time.Hour), true, 1.5)
	if a.Score() != cfg.MaxScore {
		t.Errorf("score exceeded max: %v", a.Score())
	}
}

func TestAccumulator_DecayClampsAtZero(t *testing.T) {
	cfg := DefaultConfig() // decay 0.1/s
	a := NewAccumulator(cfg)

	start := time.Now()
	a.Arm(start)
	a.Tick(start.Add(100*time.Second), true, 1.0) // 0.5 * 100 = 50
	if math.Abs(a.Score()-50) > 1e-9 {
		t.Fatalf("setup score = %v, want 50", a.Score())
	}

	// 100s of absence would cost 10 points; 10000s must clamp at 0
	a.Tick(start.Add(100*time.Second+10000*time.Second), false, 1.0)
	if a.Score() != 0 {
		t.Errorf("score = %v, want 0", a.Score())
	}
}

func TestAccumulator_FirstTickOnlyArmsClock(t *testing.T) {
	a := NewAccumulator(DefaultConfig())

	a.Tick(time.Now(), true, 1.5)
	if a.Score() != 0 {
		t.Errorf("score moved on first tick: %v", a.Score())
	}
}

func TestAccumulator_NonPositiveDeltaIsIgnored(t *testing.T) {
	a := NewAccumulator(DefaultConfig())

	now := time.Now()
	a.Arm(now)
	a.Tick(now.Add(-time.Second), true, 1.0)
	if a.Score() != 0 {
		t.Errorf("score moved on backwards clock: %v", a.Score())
	}
}
