// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	serial "github.com/jacobsa/go-serial/serial"

	"github.com/relabs-tech/exercise_tracker/internal/motion"
)

// serialSource reads acceleration samples from a bench rig that forwards
// them over UART as "x,y,z" lines (m/s², one sample per line). Malformed
// lines are skipped, the same way partial sentences from a noisy serial
// sensor are.
type serialSource struct {
	port   io.ReadWriteCloser
	reader *bufio.Reader
}

func newSerialSource(portName string, baudRate int) (motion.Sampler, error) {
	opts := serial.OpenOptions{
		PortName:        portName,
		BaudRate:        uint(baudRate),
		DataBits:        8,
		StopBits:        1,
		MinimumReadSize: 1,
		ParityMode:      serial.PARITY_NONE,
	}

	port, err := serial.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("accel serial open (%s): %w", portName, err)
	}
	log.Printf("accel: serial port opened on %s at %d baud", portName, baudRate)

	return &serialSource{port: port, reader: bufio.NewReader(port)}, nil
}

// Next blocks until a well-formed sample line arrives.
func (s *serialSource) Next() (motion.Sample, error) {
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return motion.Sample{}, fmt.Errorf("accel serial read: %w", err)
		}

		sample, ok := parseSampleLine(line)
		if !ok {
			continue
		}
		return sample, nil
	}
}

// parseSampleLine parses one "x,y,z" line into a sample.
func parseSampleLine(line string) (motion.Sample, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return motion.Sample{}, false
	}

	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return motion.Sample{}, false
	}

	var vals [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return motion.Sample{}, false
		}
		vals[i] = v
	}

	return motion.Sample{X: vals[0], Y: vals[1], Z: vals[2]}, true
}

// Close releases the serial port.
func (s *serialSource) Close() error {
	return s.port.Close()
}
