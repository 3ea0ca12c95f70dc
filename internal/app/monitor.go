// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/exercise_tracker/internal/config"
	"github.com/relabs-tech/exercise_tracker/internal/events"
)

// RunMonitor subscribes to the tracker's event topics and prints them to
// the console until interrupted.
func RunMonitor() error {
	cfg := config.Get()

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDMonitor)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("monitor: connected to MQTT broker at %s", cfg.MQTTBroker)

	// Subscribe to session state
	sessToken := client.Subscribe(cfg.TopicSession, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var s events.Session
		if err := json.Unmarshal(msg.Payload(), &s); err != nil {
			log.Printf("monitor: session unmarshal error: %v", err)
			return
		}

		if s.Exercise != "" {
			fmt.Printf("[SESS]  %-12s exercise=%s\n", s.State, s.Exercise)
		} else {
			fmt.Printf("[SESS]  %-12s\n", s.State)
		}
	})
	sessToken.Wait()
	if sessToken.Error() != nil {
		return sessToken.Error()
	}
	log.Printf("monitor: subscribed to %s", cfg.TopicSession)

	// Subscribe to repetitions
	repToken := client.Subscribe(cfg.TopicRep, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var r events.Rep
		if err := json.Unmarshal(msg.Payload(), &r); err != nil {
			log.Printf("monitor: rep unmarshal error: %v", err)
			return
		}

		fmt.Printf("[REP ]  %-14s %2d/%d\n", r.Exercise, r.Rep, r.Total)
	})
	repToken.Wait()
	if repToken.Error() != nil {
		return repToken.Error()
	}
	log.Printf("monitor: subscribed to %s", cfg.TopicRep)

	// Subscribe to routine completions
	doneToken := client.Subscribe(cfg.TopicRoutine, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var r events.Routine
		if err := json.Unmarshal(msg.Payload(), &r); err != nil {
			log.Printf("monitor: routine unmarshal error: %v", err)
			return
		}

		fmt.Printf("[DONE]  %-14s routine complete (%d reps)\n", r.Exercise, r.Reps)
	})
	doneToken.Wait()
	if doneToken.Error() != nil {
		return doneToken.Error()
	}
	log.Printf("monitor: subscribed to %s", cfg.TopicRoutine)

	// Wait for Ctrl+C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("monitor: shutting down")
	client.Disconnect(250)
	return nil
}
