package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/focusframe/focusframe/pkg/hub"
)

// handleStatus returns the latest engine snapshot
func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(s.engine.Snapshot())
}

// handleStart activates the session
func (s *Server) handleStart(c *fiber.Ctx) error {
	s.engine.Start()
	return c.JSON(s.engine.Snapshot())
}

// handlePause freezes the session
func (s *Server) handlePause(c *fiber.Ctx) error {
	s.engine.Pause()
	return c.JSON(s.engine.Snapshot())
}

// handleToggle flips between active and paused
func (s *Server) handleToggle(c *fiber.Ctx) error {
	s.engine.Toggle()
	return c.JSON(s.engine.Snapshot())
}

// handleReset clears score, session time, and calibration together
func (s *Server) handleReset(c *fiber.Ctx) error {
	s.engine.Reset()
	return c.JSON(s.engine.Snapshot())
}

// handleStatusWS streams engine snapshots to a websocket client
func (s *Server) handleStatusWS(conn *websocket.Conn) {
	client := hub.NewClient(s.statusHub, conn)
	client.Run() // Blocks until disconnect
}

// handleCameraWS streams annotated JPEG frames to a websocket client
func (s *Server) handleCameraWS(conn *websocket.Conn) {
	client := hub.NewClient(s.cameraHub, conn)
	client.Run()
}
