// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"fmt"

	"github.com/relabs-tech/exercise_tracker/internal/config"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Buttons polls the two physical start buttons. Both are wired active-low
// with pull-ups; either one counts as the start trigger.
type Buttons struct {
	a gpio.PinIO
	b gpio.PinIO
}

// NewButtons configures the button pins from configuration.
func NewButtons() (*Buttons, error) {
	cfg := config.Get()

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("buttons: periph host init: %w", err)
	}

	a := gpioreg.ByName(cfg.ButtonAPin)
	if a == nil {
		return nil, fmt.Errorf("buttons: pin %q not found", cfg.ButtonAPin)
	}
	if err := a.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("buttons: configure pin %q: %w", cfg.ButtonAPin, err)
	}

	b := gpioreg.ByName(cfg.ButtonBPin)
	if b == nil {
		return nil, fmt.Errorf("buttons: pin %q not found", cfg.ButtonBPin)
	}
	if err := b.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("buttons: configure pin %q: %w", cfg.ButtonBPin, err)
	}

	return &Buttons{a: a, b: b}, nil
}

// Pressed reports whether either button is currently held.
func (b *Buttons) Pressed() (bool, error) {
	return b.a.Read() == gpio.Low || b.b.Read() == gpio.Low, nil
}
