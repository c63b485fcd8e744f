// Package hub fans engine state out to dashboard websocket
// subscribers. One hub carries score snapshots, another carries
// annotated camera frames; both drop payloads rather than let a slow
// subscriber stall the broadcaster.
package hub

import (
	"encoding/json"

	"github.com/focusframe/focusframe/pkg/focus"
)

// Message is one payload bound for dashboard subscribers. Snapshots
// travel as websocket text frames, camera frames as binary.
type Message struct {
	payload []byte
	binary  bool
}

// StatusMessage encodes an engine snapshot as a status update
func StatusMessage(snap focus.Snapshot) (Message, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return Message{}, err
	}
	return Message{payload: data}, nil
}

// FrameMessage wraps an annotated JPEG frame. The hub does not copy;
// the caller must not reuse jpeg afterwards.
func FrameMessage(jpeg []byte) Message {
	return Message{payload: jpeg, binary: true}
}

// Binary reports whether the payload is frame bytes rather than a
// status update
func (m Message) Binary() bool { return m.binary }

// Payload returns the encoded bytes
func (m Message) Payload() []byte { return m.payload }
