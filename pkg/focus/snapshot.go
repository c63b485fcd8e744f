package focus

import "time"

// Snapshot is an immutable view of the engine, published once per
// observed frame and on every control transition. Consumers read the
// latest snapshot without blocking the producer; a reading is at most
// one frame stale.
type Snapshot struct {
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"max_score"`
	Present    bool    `json:"present"`
	Multiplier float64 `json:"multiplier"`

	// Posture is the reporting band: "calibrating" until the baseline
	// freezes, then "excellent", "good", or "check"
	Posture    string `json:"posture"`
	Calibrated bool   `json:"calibrated"`

	SessionActive bool          `json:"session_active"`
	SessionID     string        `json:"session_id,omitempty"`
	Elapsed       time.Duration `json:"elapsed_ns"`
	ElapsedText   string        `json:"elapsed"`
}
