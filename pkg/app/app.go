package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/focusframe/focusframe/internal/log"
	"github.com/focusframe/focusframe/pkg/capture"
	"github.com/focusframe/focusframe/pkg/debug"
	"github.com/focusframe/focusframe/pkg/detect/cascade"
	"github.com/focusframe/focusframe/pkg/focus"
	"github.com/focusframe/focusframe/pkg/pipeline"
	"github.com/focusframe/focusframe/pkg/web"
)

// App is the focusframe application orchestrator.
// It manages the engine, the capture loop, and the dashboard server.
type App struct {
	config Config

	engine *focus.Engine
	frames *pipeline.Pipeline[[]byte]
	runner *capture.Runner
	server *web.Server
}

// New validates the configuration and creates the application
func New(cfg Config) (*App, error) {
	if errs := cfg.Scoring.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid scoring config: %s", strings.Join(errs, "; "))
	}
	if cfg.QueueDepth < 1 {
		cfg.QueueDepth = 2
	}
	if cfg.Port == "" {
		return nil, fmt.Errorf("dashboard port is required")
	}

	debug.Enabled = cfg.Debug
	debug.Vision = cfg.DebugVision

	return &App{config: cfg}, nil
}

// Init acquires the camera and detector and builds the processing
// graph. Failures here are startup failures; nothing is left half
// open.
func (a *App) Init() error {
	a.engine = focus.NewEngine(a.config.Scoring)
	a.frames = pipeline.New[[]byte](a.config.QueueDepth)

	detector, err := cascade.New(a.config.CascadePath)
	if err != nil {
		return fmt.Errorf("init detector: %w", err)
	}

	grabber, err := capture.OpenGrabber(a.config.CameraIndex)
	if err != nil {
		detector.Close()
		return fmt.Errorf("init camera: %w", err)
	}

	a.runner = capture.NewRunner(grabber, detector, a.engine, a.frames)
	a.server = web.NewServer(a.config.Port, a.engine, a.frames)

	log.Info("focusframe initialized",
		"camera", a.config.CameraIndex,
		"cascade", a.config.CascadePath,
		"port", a.config.Port)
	return nil
}

// Run starts the producer and consumer and blocks until ctx is
// canceled
func (a *App) Run(ctx context.Context) error {
	if a.runner == nil || a.server == nil {
		return fmt.Errorf("app not initialized")
	}

	a.runner.Start(ctx)
	a.server.Start(ctx)

	<-ctx.Done()
	return nil
}

// Shutdown stops the capture loop (bounded join, device released on
// every path) and then the dashboard server
func (a *App) Shutdown() {
	if a.runner != nil {
		a.runner.Stop()
	}
	if a.server != nil {
		if err := a.server.Shutdown(); err != nil {
			log.Warn("server shutdown", "error", err)
		}
	}
	log.Info("focusframe stopped")
}

// Engine exposes the scoring engine, mainly for tests and embedding
func (a *App) Engine() *focus.Engine {
	return a.engine
}
