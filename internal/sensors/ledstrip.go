// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"fmt"
	"log"

	"github.com/relabs-tech/exercise_tracker/internal/config"
	"github.com/relabs-tech/exercise_tracker/internal/feedback"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/apa102"
	"periph.io/x/host/v3"
)

// LEDStrip is the 10-pixel APA102 indicator bar.
type LEDStrip struct {
	dev *apa102.Dev
}

// NewLEDStrip opens the strip on the configured SPI bus.
func NewLEDStrip() (*LEDStrip, error) {
	cfg := config.Get()

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("ledstrip: periph host init: %w", err)
	}

	port, err := spireg.Open(cfg.LEDSPIDevice)
	if err != nil {
		return nil, fmt.Errorf("ledstrip: SPI open (%s): %w", cfg.LEDSPIDevice, err)
	}

	opts := apa102.DefaultOpts
	opts.NumPixels = feedback.IndicatorCount
	opts.Intensity = cfg.LEDIntensity

	dev, err := apa102.New(port, &opts)
	if err != nil {
		return nil, fmt.Errorf("ledstrip: device creation: %w", err)
	}
	log.Printf("ledstrip: %d pixels on %s, intensity %d", feedback.IndicatorCount, cfg.LEDSPIDevice, cfg.LEDIntensity)

	return &LEDStrip{dev: dev}, nil
}

// SetPixels writes the whole strip in one transaction. len(colors) must
// equal the indicator count.
func (s *LEDStrip) SetPixels(colors []feedback.Color) error {
	if len(colors) != feedback.IndicatorCount {
		return fmt.Errorf("ledstrip: expected %d pixels, got %d", feedback.IndicatorCount, len(colors))
	}

	buf := make([]byte, 0, len(colors)*3)
	for _, c := range colors {
		buf = append(buf, c.R, c.G, c.B)
	}

	if _, err := s.dev.Write(buf); err != nil {
		return fmt.Errorf("ledstrip: write: %w", err)
	}
	return nil
}
