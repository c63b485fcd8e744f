package focus

import "github.com/focusframe/focusframe/pkg/detect"

// CalibrationState tracks progress of the posture baseline capture
type CalibrationState int

const (
	// Uncalibrated means no face has been observed yet
	Uncalibrated CalibrationState = iota
	// Calibrating means the baseline is still being averaged
	Calibrating
	// Calibrated means the baseline froze and posture analysis may run
	Calibrated
)

// String returns a human-readable state name
func (s CalibrationState) String() string {
	switch s {
	case Calibrating:
		return "calibrating"
	case Calibrated:
		return "calibrated"
	default:
		return "uncalibrated"
	}
}

// Baseline is the calibrated reference face geometry. Size is the
// bounding box area in pixel squared, CenterY the vertical face center
// in pixels.
type Baseline struct {
	Size    float64
	CenterY float64
}

// Calibrator learns the posture baseline over a fixed number of
// observed frames using an incremental running mean, then freezes it.
// Averaging over ~1 second of frames absorbs detector jitter in the
// resting posture used as reference.
type Calibrator struct {
	frames   int // target frame count
	state    CalibrationState
	n        int
	baseline Baseline
}

// NewCalibrator creates a calibrator that freezes after frames samples
func NewCalibrator(frames int) *Calibrator {
	if frames < 1 {
		frames = 1
	}
	return &Calibrator{frames: frames}
}

// Observe folds one face box into the running baseline. Calls after
// the baseline froze are ignored.
func (c *Calibrator) Observe(box detect.Box) {
	if c.state == Calibrated {
		return
	}

	size := float64(box.Area())
	centerY := box.CenterY()

	if c.n == 0 {
		c.baseline = Baseline{Size: size, CenterY: centerY}
	} else {
		n := float64(c.n)
		c.baseline.Size = (c.baseline.Size*n + size) / (n + 1)
		c.baseline.CenterY = (c.baseline.CenterY*n + centerY) / (n + 1)
	}
	c.n++

	if c.n >= c.frames {
		c.state = Calibrated
	} else {
		c.state = Calibrating
	}
}

// Baseline returns the frozen baseline; ok is false until calibration
// completes.
func (c *Calibrator) Baseline() (Baseline, bool) {
	return c.baseline, c.state == Calibrated
}

// Done reports whether the baseline froze
func (c *Calibrator) Done() bool {
	return c.state == Calibrated
}

// State returns the current calibration state
func (c *Calibrator) State() CalibrationState {
	return c.state
}

// Frames returns how many samples were folded in so far
func (c *Calibrator) Frames() int {
	return c.n
}

// Reset discards the baseline and starts over
func (c *Calibrator) Reset() {
	c.baseline = Baseline{}
	c.n = 0
	c.state = Uncalibrated
}
