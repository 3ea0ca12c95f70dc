// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gorilla/websocket"

	"github.com/relabs-tech/exercise_tracker/internal/config"
	"github.com/relabs-tech/exercise_tracker/internal/events"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// progressState caches the latest event per topic for the snapshot API
// and keeps the set of live websocket clients. Volatile by design: a web
// restart starts empty, like the device itself after a power cycle.
type progressState struct {
	mu       sync.RWMutex
	session  events.Session
	haveSess bool
	reps     map[string]events.Rep
	routines map[string]events.Routine

	clients map[*websocket.Conn]bool
}

func newProgressState() *progressState {
	return &progressState{
		reps:     make(map[string]events.Rep),
		routines: make(map[string]events.Routine),
		clients:  make(map[*websocket.Conn]bool),
	}
}

// wsEvent is the envelope pushed to websocket clients.
type wsEvent struct {
	Type    string      `json:"type"` // "session", "rep", "routine"
	Payload interface{} `json:"payload"`
}

// broadcast pushes one event to every connected client, dropping clients
// whose writes fail.
func (p *progressState) broadcast(evt wsEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for conn := range p.clients {
		if err := conn.WriteJSON(evt); err != nil {
			log.Printf("web: websocket write error, dropping client: %v", err)
			conn.Close()
			delete(p.clients, conn)
		}
	}
}

// snapshot is the JSON body of the progress API.
type snapshot struct {
	Session  *events.Session           `json:"session,omitempty"`
	Reps     map[string]events.Rep     `json:"reps"`
	Routines map[string]events.Routine `json:"routines"`
}

// RunWeb serves a live progress dashboard over the MQTT event stream:
// a JSON snapshot endpoint, a websocket push channel, and static files.
func RunWeb() error {
	cfg := config.Get()
	state := newProgressState()

	// 1) Connect to MQTT broker
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDWeb)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("web: connected to MQTT broker at %s", cfg.MQTTBroker)

	// 2) Subscribe to the event topics and fan out to cache + websockets
	sessToken := client.Subscribe(cfg.TopicSession, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var s events.Session
		if err := json.Unmarshal(msg.Payload(), &s); err != nil {
			log.Printf("web: session unmarshal error: %v", err)
			return
		}
		state.mu.Lock()
		state.session = s
		state.haveSess = true
		state.mu.Unlock()
		state.broadcast(wsEvent{Type: "session", Payload: s})
	})
	sessToken.Wait()
	if sessToken.Error() != nil {
		return sessToken.Error()
	}

	repToken := client.Subscribe(cfg.TopicRep, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var r events.Rep
		if err := json.Unmarshal(msg.Payload(), &r); err != nil {
			log.Printf("web: rep unmarshal error: %v", err)
			return
		}
		state.mu.Lock()
		state.reps[r.Exercise] = r
		state.mu.Unlock()
		state.broadcast(wsEvent{Type: "rep", Payload: r})
	})
	repToken.Wait()
	if repToken.Error() != nil {
		return repToken.Error()
	}

	doneToken := client.Subscribe(cfg.TopicRoutine, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var r events.Routine
		if err := json.Unmarshal(msg.Payload(), &r); err != nil {
			log.Printf("web: routine unmarshal error: %v", err)
			return
		}
		state.mu.Lock()
		state.routines[r.Exercise] = r
		state.mu.Unlock()
		state.broadcast(wsEvent{Type: "routine", Payload: r})
	})
	doneToken.Wait()
	if doneToken.Error() != nil {
		return doneToken.Error()
	}
	log.Printf("web: subscribed to %s, %s, %s", cfg.TopicSession, cfg.TopicRep, cfg.TopicRoutine)

	// 3) JSON API endpoint: latest progress
	http.HandleFunc("/api/progress", func(w http.ResponseWriter, r *http.Request) {
		state.mu.RLock()
		snap := snapshot{
			Reps:     make(map[string]events.Rep, len(state.reps)),
			Routines: make(map[string]events.Routine, len(state.routines)),
		}
		if state.haveSess {
			sess := state.session
			snap.Session = &sess
		}
		for k, v := range state.reps {
			snap.Reps[k] = v
		}
		for k, v := range state.routines {
			snap.Routines[k] = v
		}
		state.mu.RUnlock()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snap); err != nil {
			log.Printf("web: json encode error: %v", err)
		}
	})

	// 4) Websocket push channel
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("web: websocket upgrade error: %v", err)
			return
		}

		state.mu.Lock()
		state.clients[conn] = true
		state.mu.Unlock()
		log.Printf("web: websocket client connected (%s)", conn.RemoteAddr())

		// Drain reads so pings and closes are processed; drop the
		// client on any error.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
						log.Printf("web: websocket error: %v", err)
					}
					state.mu.Lock()
					delete(state.clients, conn)
					state.mu.Unlock()
					conn.Close()
					return
				}
			}
		}()
	})

	// 5) Static files from ./web as the root
	fs := http.FileServer(http.Dir("web"))
	http.Handle("/", fs)

	addr := fmt.Sprintf(":%d", cfg.WebServerPort)
	log.Printf("web server listening on %s", addr)
	return http.ListenAndServe(addr, nil)
}
