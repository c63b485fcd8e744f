package focus

import (
	"math"

	"github.com/focusframe/focusframe/pkg/detect"
)

// penaltyFloor is the deepest a single posture penalty can cut the
// multiplier before the final clamp
const penaltyFloor = 0.3

// Posture band thresholds for status reporting
const (
	excellentThreshold = 1.2
	goodThreshold      = 0.8
)

// AnalyzePosture compares the current face geometry against the
// calibrated baseline and returns the posture multiplier, clamped to
// [MinMultiplier, MaxMultiplier]. Pure function: identical inputs
// always yield the same multiplier.
//
// Leaning too close and slouching are independent multiplicative
// penalties; both can apply in the same frame. The boost requires
// staying within half tolerance on both axes, so it can never co-occur
// with either penalty.
func AnalyzePosture(box detect.Box, baseline Baseline, cfg Config) float64 {
	sizeRatio := float64(box.Area()) / baseline.Size
	yDeviation := math.Abs(box.CenterY()-baseline.CenterY) / baseline.CenterY

	score := 1.0

	// Too close: face grew past tolerance
	if sizeRatio > 1+cfg.SizeTolerance {
		score *= math.Max(penaltyFloor, 1-(sizeRatio-1))
	}

	// Slouching: vertical drift past tolerance
	if yDeviation > cfg.PositionTolerance {
		score *= math.Max(penaltyFloor, 1-yDeviation)
	}

	// Reward holding the calibrated position
	if sizeRatio <= 1+cfg.SizeTolerance/2 && yDeviation <= cfg.PositionTolerance/2 {
		score = math.Min(cfg.MaxMultiplier, score*cfg.PostureBoost)
	}

	return clamp(score, cfg.MinMultiplier, cfg.MaxMultiplier)
}

// PostureBand maps a multiplier to a reporting band: "excellent" above
// 1.2, "good" above 0.8, "check" otherwise.
func PostureBand(multiplier float64) string {
	switch {
	case multiplier > excellentThreshold:
		return "excellent"
	case multiplier > goodThreshold:
		return "good"
	default:
		return "check"
	}
}

// clamp limits a value to a range
func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
