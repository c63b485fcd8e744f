package focus

import (
	"testing"
	"time"

	"github.com/focusframe/focusframe/pkg/detect"
)

// smallConfig calibrates fast so tests can reach the analysis phase
func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.SmoothingWindow = 1
	cfg.CalibrationFrames = 2
	return cfg
}

func TestEngine_ScoreOnlyMovesWhileActive(t *testing.T) {
	e := NewEngine(smallConfig())
	box := detect.Box{X: 0, Y: 100, W: 100, H: 100}
	now := time.Now()

	// Paused: observing frames must not move the score
	e.Observe(&box, now)
	e.Observe(&box, now.Add(10*time.Second))
	if snap := e.Snapshot(); snap.Score != 0 {
		t.Errorf("paused score = %v, want 0", snap.Score)
	}

	e.Start()
	e.Observe(&box, time.Now().Add(time.Second))
	if snap := e.Snapshot(); snap.Score <= 0 {
		t.Errorf("active score = %v, want > 0", snap.Score)
	}
}

func TestEngine_CalibrationProgressesWhilePaused(t *testing.T) {
	e := NewEngine(smallConfig())
	box := detect.Box{X: 0, Y: 100, W: 100, H: 100}
	now := time.Now()

	e.Observe(&box, now)
	if e.Snapshot().Calibrated {
		t.Fatal("calibrated after one frame, want two")
	}
	e.Observe(&box, now.Add(33*time.Millisecond))
	if !e.Snapshot().Calibrated {
		t.Fatal("expected calibration complete")
	}
}

func TestEngine_NoFaceMeansNeutralMultiplier(t *testing.T) {
	e := NewEngine(smallConfig())
	box := detect.Box{X: 0, Y: 100, W: 100, H: 100}
	now := time.Now()

	// Calibrate, then lean in close enough to be penalized
	e.Observe(&box, now)
	e.Observe(&box, now.Add(33*time.Millisecond))
	leaning := detect.Box{X: 0, Y: 85, W: 130, H: 130}
	e.Observe(&leaning, now.Add(66*time.Millisecond))
	if snap := e.Snapshot(); snap.Multiplier >= 1.0 {
		t.Fatalf("penalized multiplier = %v, want < 1", snap.Multiplier)
	}

	// Face gone: posture is undefined, multiplier returns to neutral
	e.Observe(nil, now.Add(99*time.Millisecond))
	if snap := e.Snapshot(); snap.Multiplier != 1.0 {
		t.Errorf("away multiplier = %v, want 1.0", snap.Multiplier)
	}
}

func TestEngine_ToggleAlternates(t *testing.T) {
	e := NewEngine(smallConfig())

	if got := e.Toggle(); got != SessionActive {
		t.Errorf("first toggle = %v, want active", got)
	}
	if got := e.Toggle(); got != SessionPaused {
		t.Errorf("second toggle = %v, want paused", got)
	}
}

func TestEngine_ResetClearsEverything(t *testing.T) {
	e := NewEngine(smallConfig())
	box := detect.Box{X: 0, Y: 100, W: 100, H: 100}
	now := time.Now()

	e.Start()
	e.Observe(&box, now)
	e.Observe(&box, now.Add(5*time.Second))
	e.Reset()

	snap := e.Snapshot()
	if snap.Score != 0 {
		t.Errorf("score = %v, want 0", snap.Score)
	}
	if snap.Calibrated {
		t.Error("still calibrated after reset")
	}
	if snap.SessionActive {
		t.Error("still active after reset")
	}
	if snap.SessionID != "" {
		t.Error("session ID survived reset")
	}
	if snap.Elapsed != 0 {
		t.Errorf("elapsed = %v, want 0", snap.Elapsed)
	}
	if snap.Multiplier != 1.0 {
		t.Errorf("multiplier = %v, want neutral", snap.Multiplier)
	}
}

func TestEngine_SnapshotPostureBands(t *testing.T) {
	e := NewEngine(smallConfig())
	if snap := e.Snapshot(); snap.Posture != "calibrating" {
		t.Errorf("initial posture = %q, want calibrating", snap.Posture)
	}

	box := detect.Box{X: 0, Y: 100, W: 100, H: 100}
	now := time.Now()
	e.Observe(&box, now)
	e.Observe(&box, now.Add(33*time.Millisecond))
	e.Observe(&box, now.Add(66*time.Millisecond)) // boosted to 1.2

	if snap := e.Snapshot(); snap.Posture != "good" {
		t.Errorf("posture = %q, want good", snap.Posture)
	}
}

func TestEngine_SnapshotNeverBlocks(t *testing.T) {
	e := NewEngine(smallConfig())
	box := detect.Box{X: 0, Y: 100, W: 100, H: 100}

	done := make(chan struct{})
	go func() {
		defer close(done)
		now := time.Now()
		for i := 0; i < 1000; i++ {
			e.Observe(&box, now.Add(time.Duration(i)*33*time.Millisecond))
		}
	}()

	// Concurrent reads while the producer hammers Observe
	for i := 0; i < 1000; i++ {
		snap := e.Snapshot()
		if snap.Score < 0 || snap.Score > snap.MaxScore {
			t.Fatalf("score %v outside [0, %v]", snap.Score, snap.MaxScore)
		}
		if snap.Multiplier < 0.3 || snap.Multiplier > 1.5 {
			t.Fatalf("multiplier %v outside bounds", snap.Multiplier)
		}
	}
	<-done
}
