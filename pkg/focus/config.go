// Package focus implements the presence/posture scoring engine:
// detection smoothing, posture calibration and analysis, focus score
// accumulation, and session time tracking.
package focus

// Config holds all tunable parameters for the scoring engine
type Config struct {
	// Smoothing
	SmoothingWindow int // Frames of detection history for presence voting

	// Calibration
	CalibrationFrames int // Frames averaged into the posture baseline

	// Scoring
	PointsPerSecond float64 // Base score accrual rate while present
	DecayPerSecond  float64 // Score loss rate while away
	MaxScore        float64 // Score ceiling

	// Posture
	MinMultiplier     float64 // Poor posture floor
	MaxMultiplier     float64 // Good posture ceiling
	SizeTolerance     float64 // Relative face growth before the too-close penalty
	PositionTolerance float64 // Relative vertical drift before the slouch penalty
	PostureBoost      float64 // Bonus factor for staying near the baseline
}

// DefaultConfig returns the recommended scoring configuration
func DefaultConfig() Config {
	return Config{
		SmoothingWindow:   3,  // ~100ms of history at 30fps
		CalibrationFrames: 30, // ~1 second of calibration at 30fps

		PointsPerSecond: 0.5,
		DecayPerSecond:  0.1,
		MaxScore:        100,

		MinMultiplier:     0.3,
		MaxMultiplier:     1.5,
		SizeTolerance:     0.4,
		PositionTolerance: 0.3,
		PostureBoost:      1.2,
	}
}

// StrictConfig returns a configuration with tighter posture tolerances
// and faster decay, for users who want to be kept honest
func StrictConfig() Config {
	cfg := DefaultConfig()
	cfg.SizeTolerance = 0.25
	cfg.PositionTolerance = 0.2
	cfg.DecayPerSecond = 0.2
	cfg.CalibrationFrames = 60 // Longer, steadier baseline
	return cfg
}

// RelaxedConfig returns a forgiving configuration for laptop setups
// where the camera angle shifts a lot
func RelaxedConfig() Config {
	cfg := DefaultConfig()
	cfg.SizeTolerance = 0.6
	cfg.PositionTolerance = 0.45
	cfg.DecayPerSecond = 0.05
	cfg.SmoothingWindow = 5
	return cfg
}

// Validate checks that the config values are usable.
// Returns a list of validation errors, or nil if valid.
func (c Config) Validate() []string {
	var errors []string

	if c.SmoothingWindow < 1 {
		errors = append(errors, "smoothing window must be at least 1 frame")
	}
	if c.CalibrationFrames < 1 {
		errors = append(errors, "calibration frame count must be at least 1")
	}
	if c.PointsPerSecond <= 0 {
		errors = append(errors, "points per second must be positive")
	}
	if c.DecayPerSecond < 0 {
		errors = append(errors, "decay per second must not be negative")
	}
	if c.MaxScore <= 0 {
		errors = append(errors, "max score must be positive")
	}
	if c.MinMultiplier <= 0 || c.MinMultiplier > 1 {
		errors = append(errors, "min multiplier must be in (0, 1]")
	}
	if c.MaxMultiplier < 1 {
		errors = append(errors, "max multiplier must be at least 1")
	}
	if c.MinMultiplier > c.MaxMultiplier {
		errors = append(errors, "min multiplier must not exceed max multiplier")
	}
	if c.SizeTolerance <= 0 || c.PositionTolerance <= 0 {
		errors = append(errors, "posture tolerances must be positive")
	}
	if c.PostureBoost < 1 {
		errors = append(errors, "posture boost must be at least 1")
	}

	return errors
}
