// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"fmt"
	"time"

	"github.com/relabs-tech/exercise_tracker/internal/config"
	"github.com/relabs-tech/exercise_tracker/internal/feedback"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// Buzzer drives a piezo on a PWM-capable GPIO pin. Tones block for their
// full duration, matching the session loop's synchronous feedback.
type Buzzer struct {
	pin gpio.PinIO
}

// NewBuzzer configures the buzzer pin from configuration.
func NewBuzzer() (*Buzzer, error) {
	cfg := config.Get()

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("buzzer: periph host init: %w", err)
	}

	pin := gpioreg.ByName(cfg.BuzzerPin)
	if pin == nil {
		return nil, fmt.Errorf("buzzer: pin %q not found", cfg.BuzzerPin)
	}

	return &Buzzer{pin: pin}, nil
}

// Play emits one note at 50% duty and silences the pin afterwards.
func (z *Buzzer) Play(n feedback.Note) error {
	freq := physic.Frequency(n.Frequency) * physic.Hertz
	if err := z.pin.PWM(gpio.DutyHalf, freq); err != nil {
		return fmt.Errorf("buzzer: pwm %d Hz: %w", n.Frequency, err)
	}
	time.Sleep(n.Duration)
	if err := z.pin.Halt(); err != nil {
		return fmt.Errorf("buzzer: halt: %w", err)
	}
	return nil
}
