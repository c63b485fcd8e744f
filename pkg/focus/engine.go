package focus

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/focusframe/focusframe/pkg/detect"
)

// Engine owns all per-frame scoring state: presence smoothing, posture
// calibration and analysis, score accumulation, and the session clock.
// The capture loop is the sole caller of Observe; the control methods
// are invoked from the consumer side and serialize with Observe through
// the engine mutex. Reads go through lock-free snapshots.
type Engine struct {
	cfg Config

	mu          sync.Mutex
	smoother    *Smoother
	calibrator  *Calibrator
	accumulator *Accumulator
	clock       *SessionClock
	present     bool
	multiplier  float64

	snapshot atomic.Pointer[Snapshot]
}

// NewEngine creates an engine with the given scoring configuration.
// The config should be validated before being passed in.
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		cfg:         cfg,
		smoother:    NewSmoother(cfg.SmoothingWindow),
		calibrator:  NewCalibrator(cfg.CalibrationFrames),
		accumulator: NewAccumulator(cfg),
		clock:       NewSessionClock(),
		multiplier:  1.0,
	}
	e.publish(time.Now())
	return e
}

// Observe feeds one frame's detection result into the engine. box is
// nil when no face was found; now is the frame timestamp. Calibration
// and presence always update, the score only while the session is
// active.
func (e *Engine) Observe(box *detect.Box, now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.present = e.smoother.Observe(box != nil)

	if box != nil {
		if !e.calibrator.Done() {
			e.calibrator.Observe(*box)
		}
		if baseline, ok := e.calibrator.Baseline(); ok {
			e.multiplier = AnalyzePosture(*box, baseline, e.cfg)
		} else {
			e.multiplier = 1.0
		}
	} else {
		// Posture is undefined while away, not penalized
		e.multiplier = 1.0
	}

	if e.clock.Active() {
		e.accumulator.Tick(now, e.present, e.multiplier)
	}

	e.publish(now)
}

// Start activates the session. No-op if already active.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := time.Now()
	e.clock.Start(now)
	e.accumulator.Arm(now)
	e.publish(now)
}

// Pause freezes the session clock and score. No-op if already paused.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := time.Now()
	e.clock.Pause(now)
	e.publish(now)
}

// Toggle flips between active and paused, returning the new state
func (e *Engine) Toggle() SessionState {
	e.mu.Lock()
	active := e.clock.Active()
	e.mu.Unlock()

	if active {
		e.Pause()
		return SessionPaused
	}
	e.Start()
	return SessionActive
}

// Reset clears score, session time, and calibration together and
// returns the session to Paused
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.clock.Reset()
	e.accumulator.Reset()
	e.calibrator.Reset()
	e.smoother.Reset()
	e.present = false
	e.multiplier = 1.0
	e.publish(time.Now())
}

// Snapshot returns the most recently published engine state without
// blocking
func (e *Engine) Snapshot() Snapshot {
	return *e.snapshot.Load()
}

// Config returns the engine's scoring configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// publish stores a fresh snapshot. Callers must hold e.mu.
func (e *Engine) publish(now time.Time) {
	posture := "calibrating"
	if e.calibrator.Done() {
		posture = PostureBand(e.multiplier)
	}

	elapsed := e.clock.Elapsed(now)
	e.snapshot.Store(&Snapshot{
		Score:         e.accumulator.Score(),
		MaxScore:      e.cfg.MaxScore,
		Present:       e.present,
		Multiplier:    e.multiplier,
		Posture:       posture,
		Calibrated:    e.calibrator.Done(),
		SessionActive: e.clock.Active(),
		SessionID:     e.clock.ID(),
		Elapsed:       elapsed,
		ElapsedText:   FormatElapsed(elapsed),
	})
}
