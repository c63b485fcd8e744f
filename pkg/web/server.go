// Package web provides the focusframe status server: a REST control
// API plus websocket broadcast of engine snapshots and camera frames.
// It is the consumer side of the frame pipeline, polling on its own
// cadence and never blocking the capture loop.
package web

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/focusframe/focusframe/internal/log"
	"github.com/focusframe/focusframe/pkg/focus"
	"github.com/focusframe/focusframe/pkg/hub"
	"github.com/focusframe/focusframe/pkg/pipeline"
)

// broadcastInterval is the consumer cadence (~10 Hz), deliberately
// slower than the ~30 Hz producer
const broadcastInterval = 100 * time.Millisecond

// Server is the dashboard/control server
type Server struct {
	app    *fiber.App
	port   string
	engine *focus.Engine
	frames *pipeline.Pipeline[[]byte]

	// Hubs for websocket broadcast
	statusHub *hub.Hub
	cameraHub *hub.Hub

	cancel context.CancelFunc
	done   chan struct{}
}

// NewServer creates a server exposing the given engine and frame
// pipeline on the given port
func NewServer(port string, engine *focus.Engine, frames *pipeline.Pipeline[[]byte]) *Server {
	s := &Server{
		port:      port,
		engine:    engine,
		frames:    frames,
		statusHub: hub.New("status"),
		cameraHub: hub.New("camera"),
		done:      make(chan struct{}),
	}

	app := fiber.New(fiber.Config{
		AppName:               "FocusFrame",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	// API routes
	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Post("/session/start", s.handleStart)
	api.Post("/session/pause", s.handlePause)
	api.Post("/session/toggle", s.handleToggle)
	api.Post("/session/reset", s.handleReset)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// WebSocket routes
	app.Get("/ws/status", websocket.New(s.handleStatusWS))
	app.Get("/ws/camera", websocket.New(s.handleCameraWS))

	s.app = app
	return s
}

// Start launches the hubs, the broadcast loop, and the HTTP listener.
// The listener runs in its own goroutine; startup errors are logged.
func (s *Server) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	go s.statusHub.Run(ctx)
	go s.cameraHub.Run(ctx)
	go s.broadcastLoop(ctx)

	go func() {
		log.Info("dashboard listening", "addr", "http://localhost:"+s.port)
		if err := s.app.Listen(":" + s.port); err != nil {
			log.Error("web server stopped", "error", err)
		}
	}()
}

// Shutdown stops the hubs, the broadcast loop, and the HTTP listener
func (s *Server) Shutdown() error {
	if s.cancel == nil {
		// Never started
		return s.app.Shutdown()
	}
	s.cancel()
	<-s.done
	return s.app.Shutdown()
}

// broadcastLoop is the consumer: on each tick it publishes the latest
// engine snapshot to status clients and relays at most one pending
// frame to camera clients. Pipeline-empty is steady state, not an
// error.
func (s *Server) broadcastLoop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(broadcastInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.statusHub.BroadcastStatus(s.engine.Snapshot()); err != nil {
				log.Warn("status broadcast failed", "error", err)
			}

			if frame, ok := s.frames.TryPop(); ok {
				s.cameraHub.BroadcastFrame(frame)
			}
		}
	}
}
