// Watch - headless status watcher for a running focusframe instance.
//
// Dials the dashboard's status websocket and prints one line per
// snapshot.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"

	"github.com/focusframe/focusframe/internal/config"
)

func main() {
	host := flag.String("host", "localhost:"+config.Port(), "focusframe dashboard host:port")
	flag.Parse()

	url := fmt.Sprintf("ws://%s/ws/status", *host)
	fmt.Printf("Watching %s (Ctrl+C to stop)\n\n", url)

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		fmt.Printf("connect failed: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		conn.Close()
		os.Exit(0)
	}()

	// Wire shape of focus.Snapshot; decoded loosely so the watcher
	// tolerates added fields
	type status struct {
		Score         float64 `json:"score"`
		MaxScore      float64 `json:"max_score"`
		Present       bool    `json:"present"`
		Multiplier    float64 `json:"multiplier"`
		Posture       string  `json:"posture"`
		SessionActive bool    `json:"session_active"`
		Elapsed       string  `json:"elapsed"`
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			fmt.Printf("\nconnection closed: %v\n", err)
			return
		}

		var s status
		if err := json.Unmarshal(data, &s); err != nil {
			continue
		}

		state := "paused "
		if s.SessionActive {
			if s.Present {
				state = "focused"
			} else {
				state = "away   "
			}
		}
		fmt.Printf("\r%s | score %5.1f/%.0f | posture %-11s | x%.2f | %s   ",
			state, s.Score, s.MaxScore, s.Posture, s.Multiplier, s.Elapsed)
	}
}
