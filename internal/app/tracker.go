// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/exercise_tracker/internal/config"
	"github.com/relabs-tech/exercise_tracker/internal/exercise"
	"github.com/relabs-tech/exercise_tracker/internal/feedback"
	"github.com/relabs-tech/exercise_tracker/internal/sensors"
	"github.com/relabs-tech/exercise_tracker/internal/session"
)

// RunTracker wires the physical device together and runs the session
// controller forever: accelerometer in, LED strip / buzzer / MQTT out.
func RunTracker() error {
	log.Println("starting exercise-tracker (device)")

	cfg := config.Get()

	sampler, err := sensors.NewAccelSource()
	if err != nil {
		return err
	}

	buttons, err := sensors.NewButtons()
	if err != nil {
		return err
	}

	buzzer, err := sensors.NewBuzzer()
	if err != nil {
		return err
	}

	strip, err := sensors.NewLEDStrip()
	if err != nil {
		return err
	}

	// --- connect to MQTT ---
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDTracker)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer client.Disconnect(250)
	log.Printf("tracker: connected to MQTT broker at %s", cfg.MQTTBroker)

	renderer := feedback.Multi(
		feedback.NewHardwareRenderer(strip, buzzer),
		newTelemetryRenderer(client, cfg),
	)

	ctrl := session.New(sampler, buttons, exercise.NewTracker(), renderer, session.Options{
		Params: exercise.Params{
			SitupInterval:  time.Duration(cfg.SitupSampleInterval) * time.Millisecond,
			PushupInterval: time.Duration(cfg.PushupSampleInterval) * time.Millisecond,
			SquatInterval:  time.Duration(cfg.SquatSampleInterval) * time.Millisecond,
			JumpInterval:   time.Duration(cfg.JumpSampleInterval) * time.Millisecond,
			JumpThreshold:  cfg.JumpThreshold,
		},
		IdlePoll:         time.Duration(cfg.IdlePollInterval) * time.Millisecond,
		ClassifyInterval: time.Duration(cfg.ClassifySampleInterval) * time.Millisecond,
		CompletionPause:  time.Duration(cfg.CompletionPause) * time.Millisecond,
	})

	return ctrl.Run()
}
