// Package app wires the capture loop, scoring engine, and dashboard
// server into one managed lifecycle.
package app

import (
	"github.com/focusframe/focusframe/internal/config"
	"github.com/focusframe/focusframe/pkg/detect/cascade"
	"github.com/focusframe/focusframe/pkg/focus"
)

// Config holds all configuration for the focusframe application.
// Flag parsing is done in cmd/focusframe/main.go; this struct is data
// only.
type Config struct {
	// Debug enables verbose debug logging.
	Debug bool

	// DebugVision enables very noisy per-frame logs.
	DebugVision bool

	// CameraIndex is the capture device index.
	CameraIndex int

	// CascadePath points at the Haar frontal-face cascade XML.
	CascadePath string

	// Port is the dashboard HTTP port.
	Port string

	// QueueDepth bounds the frame pipeline.
	QueueDepth int

	// Scoring holds the engine parameters.
	Scoring focus.Config
}

// DefaultConfig returns sensible defaults, honoring environment
// overrides for camera, port, and cascade path.
func DefaultConfig() Config {
	return Config{
		CameraIndex: config.CameraIndex(),
		CascadePath: config.CascadePath(cascade.DefaultModelPath),
		Port:        config.Port(),
		QueueDepth:  2,
		Scoring:     focus.DefaultConfig(),
	}
}

// ScoringPreset returns the named scoring configuration.
// Unknown names fall back to the default.
func ScoringPreset(name string) focus.Config {
	switch name {
	case "strict":
		return focus.StrictConfig()
	case "relaxed":
		return focus.RelaxedConfig()
	default:
		return focus.DefaultConfig()
	}
}
