// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/exercise_tracker/internal/config"
	"github.com/relabs-tech/exercise_tracker/internal/events"
	"github.com/relabs-tech/exercise_tracker/internal/exercise"
)

// telemetryRenderer mirrors routine progress onto MQTT as retained JSON
// events, so the monitor, web, and display subscribers always see the
// latest state.
type telemetryRenderer struct {
	client mqtt.Client
	cfg    *config.Config
}

func newTelemetryRenderer(client mqtt.Client, cfg *config.Config) *telemetryRenderer {
	return &telemetryRenderer{client: client, cfg: cfg}
}

func (t *telemetryRenderer) publish(topic string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if token := t.client.Publish(topic, 0, true, payload); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

func (t *telemetryRenderer) IdleMenu(eligible []exercise.Kind) error {
	return t.publish(t.cfg.TopicSession, events.Session{
		State: "idle",
		Time:  time.Now().Format(time.RFC3339),
	})
}

func (t *telemetryRenderer) SessionStarted() error {
	return t.publish(t.cfg.TopicSession, events.Session{
		State: "classifying",
		Time:  time.Now().Format(time.RFC3339),
	})
}

// TrackingStarted flips the published session state to tracking as soon
// as classification binds, so subscribers see the kind before the first
// counted repetition.
func (t *telemetryRenderer) TrackingStarted(kind exercise.Kind) error {
	return t.publish(t.cfg.TopicSession, events.Session{
		State:    "tracking",
		Exercise: kind.String(),
		Time:     time.Now().Format(time.RFC3339),
	})
}

func (t *telemetryRenderer) RepCompleted(kind exercise.Kind, rep int) error {
	return t.publish(t.cfg.TopicRep, events.Rep{
		Exercise: kind.String(),
		Rep:      rep,
		Total:    exercise.RoutineLength,
		Time:     time.Now().Format(time.RFC3339),
	})
}

func (t *telemetryRenderer) RoutineCompleted(kind exercise.Kind) error {
	return t.publish(t.cfg.TopicRoutine, events.Routine{
		Exercise: kind.String(),
		Reps:     exercise.RoutineLength,
		Time:     time.Now().Format(time.RFC3339),
	})
}
