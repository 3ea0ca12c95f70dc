// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/exercise_tracker/internal/config"
	"github.com/relabs-tech/exercise_tracker/internal/events"
	"github.com/relabs-tech/exercise_tracker/internal/exercise"
)

// displayData holds the latest progress for the status panel.
type displayData struct {
	mu sync.RWMutex

	session  events.Session
	haveSess bool
	rep      events.Rep
	haveRep  bool
	routine  events.Routine
	haveDone bool
}

// RunDisplay drives the ssd1306 status panel from the MQTT event stream.
func RunDisplay() error {
	cfg := config.Get()

	// Initialize periph
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize periph: %w", err)
	}

	// Open I2C bus
	bus, err := i2creg.Open("")
	if err != nil {
		return fmt.Errorf("failed to open I2C bus: %w", err)
	}
	defer bus.Close()

	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize display: %w", err)
	}
	log.Println("display: initialized")

	if err := showSplash(dev); err != nil {
		log.Printf("display: error showing splash: %v", err)
	}

	data := &displayData{}

	// Connect to MQTT
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDDisplay)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("display: connected to MQTT broker at %s", cfg.MQTTBroker)

	sessToken := client.Subscribe(cfg.TopicSession, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var s events.Session
		if err := json.Unmarshal(msg.Payload(), &s); err != nil {
			log.Printf("display: session unmarshal error: %v", err)
			return
		}
		data.mu.Lock()
		data.session = s
		data.haveSess = true
		if s.State != "tracking" {
			// Leaving a routine clears the rep line.
			data.haveRep = false
		}
		data.mu.Unlock()
	})
	sessToken.Wait()
	if sessToken.Error() != nil {
		return sessToken.Error()
	}

	repToken := client.Subscribe(cfg.TopicRep, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var r events.Rep
		if err := json.Unmarshal(msg.Payload(), &r); err != nil {
			log.Printf("display: rep unmarshal error: %v", err)
			return
		}
		data.mu.Lock()
		data.rep = r
		data.haveRep = true
		data.mu.Unlock()
	})
	repToken.Wait()
	if repToken.Error() != nil {
		return repToken.Error()
	}

	doneToken := client.Subscribe(cfg.TopicRoutine, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var r events.Routine
		if err := json.Unmarshal(msg.Payload(), &r); err != nil {
			log.Printf("display: routine unmarshal error: %v", err)
			return
		}
		data.mu.Lock()
		data.routine = r
		data.haveDone = true
		data.mu.Unlock()
	})
	doneToken.Wait()
	if doneToken.Error() != nil {
		return doneToken.Error()
	}
	log.Println("display: subscribed, starting update loop")

	// Display update loop
	ticker := time.NewTicker(time.Duration(cfg.DisplayUpdateInterval) * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		data.mu.RLock()
		snap := displayData{
			session:  data.session,
			haveSess: data.haveSess,
			rep:      data.rep,
			haveRep:  data.haveRep,
			routine:  data.routine,
			haveDone: data.haveDone,
		}
		data.mu.RUnlock()

		if err := updateStatus(dev, &snap); err != nil {
			log.Printf("display: error updating: %v", err)
		}
	}

	return nil
}

// displayName renders an exercise identifier for the 7x13 font.
func displayName(exercise string) string {
	return strings.ToUpper(strings.ReplaceAll(exercise, "_", " "))
}

func updateStatus(dev *ssd1306.Dev, data *displayData) error {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))

	// Blank image
	for i := 0; i < 1024; i++ {
		img.Pix[i] = 0
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: basicfont.Face7x13,
	}

	switch {
	case !data.haveSess:
		drawer.Dot = fixed.P(0, 26)
		drawer.DrawBytes([]byte("Exercise Tracker"))
		drawer.Dot = fixed.P(0, 39)
		drawer.DrawBytes([]byte("Waiting..."))

	case data.session.State == "tracking":
		// The session event names the exercise as soon as it binds;
		// rep events fill in the count.
		rep, total := 0, exercise.RoutineLength
		if data.haveRep {
			rep, total = data.rep.Rep, data.rep.Total
		}
		drawer.Dot = fixed.P(0, 13)
		drawer.DrawBytes([]byte(displayName(data.session.Exercise)))
		drawer.Dot = fixed.P(0, 32)
		drawer.DrawBytes([]byte(fmt.Sprintf("Rep %2d/%d", rep, total)))
		// Coarse progress bar out of the rep count.
		drawer.Dot = fixed.P(0, 52)
		drawer.DrawBytes([]byte(strings.Repeat("#", rep)))

	case data.session.State == "classifying":
		drawer.Dot = fixed.P(0, 26)
		drawer.DrawBytes([]byte("Get into"))
		drawer.Dot = fixed.P(0, 39)
		drawer.DrawBytes([]byte("position..."))

	default:
		drawer.Dot = fixed.P(0, 26)
		drawer.DrawBytes([]byte("Ready"))
		if data.haveDone {
			drawer.Dot = fixed.P(0, 45)
			drawer.DrawBytes([]byte("Last: " + displayName(data.routine.Exercise)))
		}
	}

	return dev.Draw(dev.Bounds(), img, image.Point{})
}

func showSplash(dev *ssd1306.Dev) error {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))

	// Blank image
	for i := 0; i < 1024; i++ {
		img.Pix[i] = 0
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: basicfont.Face7x13,
	}

	drawer.Dot = fixed.P(10, 26)
	drawer.DrawBytes([]byte("Exercise"))

	drawer.Dot = fixed.P(10, 43)
	drawer.DrawBytes([]byte("Tracker"))

	return dev.Draw(dev.Bounds(), img, image.Point{})
}
