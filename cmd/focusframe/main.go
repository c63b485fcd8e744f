// FocusFrame - presence and posture focus tracking from a webcam.
//
// Scores sustained attentiveness at the workstation by combining face
// presence with a posture-quality heuristic, and serves a live status
// dashboard.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/focusframe/focusframe/internal/log"
	"github.com/focusframe/focusframe/pkg/app"
)

func main() {
	cfg := parseFlags()

	a, err := app.New(cfg)
	if err != nil {
		log.Error("configuration error", "error", err)
		os.Exit(1)
	}

	if err := a.Init(); err != nil {
		log.Error("initialization failed", "error", err)
		os.Exit(1)
	}
	defer a.Shutdown()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		log.Error("runtime error", "error", err)
		os.Exit(1)
	}
}

// parseFlags parses command line flags and returns configuration.
func parseFlags() app.Config {
	cfg := app.DefaultConfig()

	debugFlag := flag.Bool("debug", false, "Enable verbose debug logging")
	debugVision := flag.Bool("debug-vision", false, "Enable very noisy per-frame logs")
	camera := flag.Int("camera", cfg.CameraIndex, "Camera device index")
	cascade := flag.String("cascade", cfg.CascadePath, "Path to Haar frontal-face cascade XML")
	port := flag.String("port", cfg.Port, "Dashboard HTTP port")
	preset := flag.String("preset", "default", "Scoring preset: default, strict, relaxed")
	flag.Parse()

	cfg.Debug = *debugFlag
	cfg.DebugVision = *debugVision
	cfg.CameraIndex = *camera
	cfg.CascadePath = *cascade
	cfg.Port = *port
	cfg.Scoring = app.ScoringPreset(*preset)

	if *debugFlag {
		log.Init("debug")
	} else {
		log.Init("")
	}

	return cfg
}
