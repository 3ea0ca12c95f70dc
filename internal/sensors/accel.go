// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"fmt"
	"log"

	"github.com/relabs-tech/exercise_tracker/internal/config"
	"github.com/relabs-tech/exercise_tracker/internal/motion"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/devices/v3/mpu9250"
	"periph.io/x/host/v3"
)

// gRange maps the configured accelerometer range setting to full scale
// in g.
var gRange = []float64{2, 4, 8, 16}

const gravity = 9.80665

type accelSource struct {
	imu   *mpu9250.MPU9250
	scale float64 // raw counts → m/s²
}

// NewAccelSource opens the motion sampler selected by configuration:
// the on-board IMU over SPI, or a serial bench rig.
func NewAccelSource() (motion.Sampler, error) {
	cfg := config.Get()
	switch cfg.AccelSource {
	case "serial":
		return newSerialSource(cfg.AccelSerialPort, cfg.AccelSerialBaud)
	default:
		return newSPISource(cfg.AccelSPIDevice, cfg.AccelCSPin, cfg.AccelRange)
	}
}

// newSPISource initializes the MPU9250 over SPI, accelerometer only.
func newSPISource(spiDev, csPin string, accelRange byte) (motion.Sampler, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("accel: periph host init: %w", err)
	}

	cs := gpioreg.ByName(csPin)
	if cs == nil {
		return nil, fmt.Errorf("accel: CS pin %q not found", csPin)
	}

	tr, err := mpu9250.NewSpiTransport(spiDev, cs)
	if err != nil {
		return nil, fmt.Errorf("accel: SPI transport (%s): %w", spiDev, err)
	}

	imu, err := mpu9250.New(tr)
	if err != nil {
		return nil, fmt.Errorf("accel: device creation: %w", err)
	}

	if err := imu.Init(); err != nil {
		return nil, fmt.Errorf("accel: initialization: %w", err)
	}

	if err := imu.SetAccelRange(accelRange); err != nil {
		return nil, fmt.Errorf("accel: set accel range: %w", err)
	}
	log.Printf("accel: range set to %d (±%.0fg)", accelRange, gRange[accelRange])

	if err := imu.Calibrate(); err != nil {
		log.Printf("Warning: accel calibration failed: %v", err)
	} else {
		log.Println("accel: calibration complete")
	}

	return &accelSource{
		imu:   imu,
		scale: gRange[accelRange] * gravity / 32768,
	}, nil
}

// Next reads one calibrated acceleration sample from the IMU.
func (s *accelSource) Next() (motion.Sample, error) {
	ax, err := s.imu.GetAccelerationX()
	if err != nil {
		return motion.Sample{}, fmt.Errorf("accel X: %w", err)
	}
	ay, err := s.imu.GetAccelerationY()
	if err != nil {
		return motion.Sample{}, fmt.Errorf("accel Y: %w", err)
	}
	az, err := s.imu.GetAccelerationZ()
	if err != nil {
		return motion.Sample{}, fmt.Errorf("accel Z: %w", err)
	}

	return motion.Sample{
		X: float64(ax) * s.scale,
		Y: float64(ay) * s.scale,
		Z: float64(az) * s.scale,
	}, nil
}
