// Package config provides environment configuration helpers for
// focusframe commands.
package config

import (
	"os"
	"strconv"
)

// Default runtime configuration.
const (
	DefaultPort        = "8080"
	DefaultCameraIndex = 0
)

// Port returns the dashboard port from FOCUS_PORT.
// Falls back to the default if not set.
func Port() string {
	if port := os.Getenv("FOCUS_PORT"); port != "" {
		return port
	}
	return DefaultPort
}

// CameraIndex returns the camera device index from FOCUS_CAMERA.
// Falls back to the default if not set or unparsable.
func CameraIndex() int {
	if raw := os.Getenv("FOCUS_CAMERA"); raw != "" {
		if idx, err := strconv.Atoi(raw); err == nil && idx >= 0 {
			return idx
		}
	}
	return DefaultCameraIndex
}

// CascadePath returns the Haar cascade model path from FOCUS_CASCADE.
// Falls back to the provided default if not set.
func CascadePath(defaultPath string) string {
	if path := os.Getenv("FOCUS_CASCADE"); path != "" {
		return path
	}
	return defaultPath
}
