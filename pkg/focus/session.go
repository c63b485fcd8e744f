package focus

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionState is the activity state of the tracked work session
type SessionState int

const (
	// SessionPaused is the initial state; score and clock are frozen
	SessionPaused SessionState = iota
	// SessionActive means score and session time are accumulating
	SessionActive
)

// String returns a human-readable state name
func (s SessionState) String() string {
	if s == SessionActive {
		return "active"
	}
	return "paused"
}

// SessionClock tracks active session duration across pauses,
// independent of the focus score.
type SessionClock struct {
	state       SessionState
	id          string
	startedAt   time.Time
	accumulated time.Duration
}

// NewSessionClock creates a clock in the Paused state
func NewSessionClock() *SessionClock {
	return &SessionClock{}
}

// Start transitions Paused to Active. The first start of a session is
// tagged with a fresh session ID; resuming after a pause keeps it.
func (c *SessionClock) Start(now time.Time) {
	if c.state == SessionActive {
		return
	}
	if c.id == "" {
		c.id = uuid.NewString()
	}
	c.startedAt = now
	c.state = SessionActive
}

// Pause folds the live delta into the accumulated duration and freezes
// the clock
func (c *SessionClock) Pause(now time.Time) {
	if c.state != SessionActive {
		return
	}
	c.accumulated += now.Sub(c.startedAt)
	c.startedAt = time.Time{}
	c.state = SessionPaused
}

// Reset returns to Paused with zero accumulated time and no session ID
func (c *SessionClock) Reset() {
	c.state = SessionPaused
	c.id = ""
	c.startedAt = time.Time{}
	c.accumulated = 0
}

// Elapsed returns total session time, including the live delta while
// active
func (c *SessionClock) Elapsed(now time.Time) time.Duration {
	if c.state == SessionActive {
		return c.accumulated + now.Sub(c.startedAt)
	}
	return c.accumulated
}

// Active reports whether the session is running
func (c *SessionClock) Active() bool {
	return c.state == SessionActive
}

// State returns the current session state
func (c *SessionClock) State() SessionState {
	return c.state
}

// ID returns the current session identifier, or "" outside a session
func (c *SessionClock) ID() string {
	return c.id
}

// FormatElapsed renders a duration as HH:MM:SS for status display
func FormatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
