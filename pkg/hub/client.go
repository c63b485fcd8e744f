package hub

import (
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	// writeTimeout bounds each outbound websocket write
	writeTimeout = 10 * time.Second

	// pongTimeout is how long a subscriber may go silent before the
	// connection is considered dead
	pongTimeout = 60 * time.Second

	// pingInterval keeps the connection alive; must stay under
	// pongTimeout
	pingInterval = 54 * time.Second

	// readLimit caps inbound payloads. Subscribers are not expected to
	// send anything beyond control frames.
	readLimit = 4 * 1024

	// sendDepth is the per-client buffer; when it fills the hub evicts
	// the client
	sendDepth = 64
)

// Client is one dashboard websocket subscriber
type Client struct {
	// ID identifies the client in logs
	ID string

	hub  *Hub
	conn *websocket.Conn
	send chan Message
}

// NewClient registers a new subscriber with the hub
func NewClient(h *Hub, conn *websocket.Conn) *Client {
	client := &Client{
		ID:   uuid.NewString(),
		hub:  h,
		conn: conn,
		send: make(chan Message, sendDepth),
	}
	h.register <- client
	return client
}

// Run services the connection until it closes. Call from the
// websocket handler; it blocks.
func (c *Client) Run() {
	go c.writeLoop()
	c.readLoop()
}

// readLoop discards inbound data. Its job is noticing disconnects and
// refreshing the read deadline on pongs.
func (c *Client) readLoop() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(readLimit)
	c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writeLoop is the sole writer on the connection. It drains the send
// buffer and pings on an interval; a closed send channel means the
// hub evicted this client.
func (c *Client) writeLoop() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			frameType := websocket.TextMessage
			if msg.Binary() {
				frameType = websocket.BinaryMessage
			}
			if err := c.conn.WriteMessage(frameType, msg.Payload()); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
