package focus

import (
	"math"
	"testing"

	"github.com/focusframe/focusframe/pkg/detect"
)

func TestCalibrator_IdenticalSamplesYieldExactBaseline(t *testing.T) {
	const frames = 30
	box := detect.Box{X: 100, Y: 80, W: 120, H: 140} // size 16800, centerY 150

	c := NewCalibrator(frames)
	for i := 0; i < frames-1; i++ {
		c.Observe(box)
	}
	if c.Done() {
		t.Fatalf("calibration complete after %d frames, want incomplete", frames-1)
	}

	c.Observe(box)
	if !c.Done() {
		t.Fatal("calibration incomplete after target frame count")
	}

	baseline, ok := c.Baseline()
	if !ok {
		t.Fatal("Baseline() not ok after completion")
	}
	if baseline.Size != float64(box.Area()) {
		t.Errorf("baseline size = %v, want %v", baseline.Size, box.Area())
	}
	if baseline.CenterY != box.CenterY() {
		t.Errorf("baseline centerY = %v, want %v", baseline.CenterY, box.CenterY())
	}
}

func TestCalibrator_RunningMean(t *testing.T) {
	c := NewCalibrator(2)
	c.Observe(detect.Box{W: 10, H: 10, Y: 0})  // size 100, centerY 5
	c.Observe(detect.Box{W: 20, H: 10, Y: 10}) // size 200, centerY 15

	baseline, ok := c.Baseline()
	if !ok {
		t.Fatal("expected calibration complete")
	}
	if math.Abs(baseline.Size-150) > 1e-9 {
		t.Errorf("size = %v, want 150", baseline.Size)
	}
	if math.Abs(baseline.CenterY-10) > 1e-9 {
		t.Errorf("centerY = %v, want 10", baseline.CenterY)
	}
}

func TestCalibrator_FrozenBaselineIgnoresUpdates(t *testing.T) {
	c := NewCalibrator(1)
	c.Observe(detect.Box{W: 10, H: 10, Y: 0})
	before, _ := c.Baseline()

	c.Observe(detect.Box{W: 99, H: 99, Y: 50})
	after, _ := c.Baseline()

	if before != after {
		t.Errorf("frozen baseline mutated: %+v -> %+v", before, after)
	}
}

func TestCalibrator_StateTransitions(t *testing.T) {
	c := NewCalibrator(2)
	if c.State() != Uncalibrated {
		t.Errorf("initial state = %v, want uncalibrated", c.State())
	}

	c.Observe(detect.Box{W: 10, H: 10})
	if c.State() != Calibrating {
		t.Errorf("state after first sample = %v, want calibrating", c.State())
	}

	c.Observe(detect.Box{W: 10, H: 10})
	if c.State() != Calibrated {
		t.Errorf("state after target count = %v, want calibrated", c.State())
	}

	c.Reset()
	if c.State() != Uncalibrated || c.Frames() != 0 {
		t.Errorf("reset left state %v with %d frames", c.State(), c.Frames())
	}
	if _, ok := c.Baseline(); ok {
		t.Error("baseline available after reset")
	}
}
