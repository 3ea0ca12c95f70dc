// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config holds all application configuration values.
type Config struct {
	// MQTT
	MQTTBroker          string
	MQTTClientIDTracker string
	MQTTClientIDMonitor string
	MQTTClientIDWeb     string
	MQTTClientIDDisplay string

	// Topics
	TopicSession string
	TopicRep     string
	TopicRoutine string

	// Accelerometer source: "spi" (on-board IMU) or "serial" (bench rig
	// forwarding x,y,z lines over UART).
	AccelSource    string
	AccelSPIDevice string
	AccelCSPin     string
	// Accelerometer range: 0=±2g, 1=±4g, 2=±8g, 3=±16g
	AccelRange      byte
	AccelSerialPort string
	AccelSerialBaud int

	// Buttons and buzzer (GPIO pin names)
	ButtonAPin string
	ButtonBPin string
	BuzzerPin  string

	// LED strip
	LEDSPIDevice string
	LEDIntensity byte

	// Detector timing (milliseconds) and jump threshold (m/s²)
	SitupSampleInterval    int
	PushupSampleInterval   int
	SquatSampleInterval    int
	JumpSampleInterval     int
	ClassifySampleInterval int
	IdlePollInterval       int
	CompletionPause        int
	JumpThreshold          float64

	// Web Server
	WebServerPort int

	// Display
	DisplayUpdateInterval int // milliseconds
}

// Package-level unexported variables for singleton pattern:
//   - globalConfig: unexported so other packages cannot access it directly.
//   - configOnce: ensures InitGlobal() only runs once, even if called multiple times.
//   - configMu: RWMutex protects concurrent access.
//
// External code must use InitGlobal() to set and Get() to read.
var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// Load reads the configuration file and returns a Config struct.
func Load(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := &Config{}
	cfg.applyDefaults()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults seeds the detector tuning so a config file only needs the
// hardware and broker keys.
func (c *Config) applyDefaults() {
	c.AccelSource = "spi"
	c.SitupSampleInterval = 100
	c.PushupSampleInterval = 100
	c.SquatSampleInterval = 250
	c.JumpSampleInterval = 150
	c.ClassifySampleInterval = 100
	c.IdlePollInterval = 50
	c.CompletionPause = 2000
	c.JumpThreshold = -15
	c.LEDIntensity = 64
	c.WebServerPort = 8080
	c.DisplayUpdateInterval = 250
	c.MQTTClientIDTracker = "exercise-tracker-device"
	c.MQTTClientIDMonitor = "exercise-tracker-monitor"
	c.MQTTClientIDWeb = "exercise-tracker-web"
	c.MQTTClientIDDisplay = "exercise-tracker-display"
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	// MQTT
	case "MQTT_BROKER":
		c.MQTTBroker = value
	case "MQTT_CLIENT_ID_TRACKER":
		c.MQTTClientIDTracker = value
	case "MQTT_CLIENT_ID_MONITOR":
		c.MQTTClientIDMonitor = value
	case "MQTT_CLIENT_ID_WEB":
		c.MQTTClientIDWeb = value
	case "MQTT_CLIENT_ID_DISPLAY":
		c.MQTTClientIDDisplay = value

	// Topics
	case "TOPIC_SESSION":
		c.TopicSession = value
	case "TOPIC_REP":
		c.TopicRep = value
	case "TOPIC_ROUTINE":
		c.TopicRoutine = value

	// Accelerometer
	case "ACCEL_SOURCE":
		if value != "spi" && value != "serial" {
			return fmt.Errorf("ACCEL_SOURCE must be \"spi\" or \"serial\", got %q", value)
		}
		c.AccelSource = value
	case "ACCEL_SPI_DEVICE":
		c.AccelSPIDevice = value
	case "ACCEL_CS_PIN":
		c.AccelCSPin = value
	case "ACCEL_RANGE":
		rangeVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid ACCEL_RANGE %q: %w", value, err)
		}
		if rangeVal < 0 || rangeVal > 3 {
			return fmt.Errorf("ACCEL_RANGE must be 0-3 (0=±2g, 1=±4g, 2=±8g, 3=±16g), got %d", rangeVal)
		}
		c.AccelRange = byte(rangeVal)
	case "ACCEL_SERIAL_PORT":
		c.AccelSerialPort = value
	case "ACCEL_SERIAL_BAUD":
		baud, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid ACCEL_SERIAL_BAUD %q: %w", value, err)
		}
		c.AccelSerialBaud = baud

	// Buttons and buzzer
	case "BUTTON_A_PIN":
		c.ButtonAPin = value
	case "BUTTON_B_PIN":
		c.ButtonBPin = value
	case "BUZZER_PIN":
		c.BuzzerPin = value

	// LED strip
	case "LED_SPI_DEVICE":
		c.LEDSPIDevice = value
	case "LED_INTENSITY":
		val, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid LED_INTENSITY %q: %w", value, err)
		}
		if val < 0 || val > 255 {
			return fmt.Errorf("LED_INTENSITY must be 0-255, got %d", val)
		}
		c.LEDIntensity = byte(val)

	// Timing
	case "SITUP_SAMPLE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid SITUP_SAMPLE_INTERVAL %q: %w", value, err)
		}
		c.SitupSampleInterval = interval
	case "PUSHUP_SAMPLE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid PUSHUP_SAMPLE_INTERVAL %q: %w", value, err)
		}
		c.PushupSampleInterval = interval
	case "SQUAT_SAMPLE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid SQUAT_SAMPLE_INTERVAL %q: %w", value, err)
		}
		c.SquatSampleInterval = interval
	case "JUMP_SAMPLE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid JUMP_SAMPLE_INTERVAL %q: %w", value, err)
		}
		c.JumpSampleInterval = interval
	case "CLASSIFY_SAMPLE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid CLASSIFY_SAMPLE_INTERVAL %q: %w", value, err)
		}
		c.ClassifySampleInterval = interval
	case "IDLE_POLL_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid IDLE_POLL_INTERVAL %q: %w", value, err)
		}
		c.IdlePollInterval = interval
	case "COMPLETION_PAUSE":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid COMPLETION_PAUSE %q: %w", value, err)
		}
		c.CompletionPause = interval
	case "JUMP_THRESHOLD":
		threshold, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid JUMP_THRESHOLD %q: %w", value, err)
		}
		c.JumpThreshold = threshold

	// Web Server
	case "WEB_SERVER_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid WEB_SERVER_PORT %q: %w", value, err)
		}
		c.WebServerPort = port

	// Display
	case "DISPLAY_UPDATE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid DISPLAY_UPDATE_INTERVAL %q: %w", value, err)
		}
		c.DisplayUpdateInterval = interval

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return nil
}

// validate checks that all required fields are set.
func (c *Config) validate() error {
	if c.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required")
	}
	if c.TopicSession == "" {
		return fmt.Errorf("TOPIC_SESSION is required")
	}
	if c.TopicRep == "" {
		return fmt.Errorf("TOPIC_REP is required")
	}
	if c.TopicRoutine == "" {
		return fmt.Errorf("TOPIC_ROUTINE is required")
	}
	switch c.AccelSource {
	case "spi":
		if c.AccelSPIDevice == "" {
			return fmt.Errorf("ACCEL_SPI_DEVICE is required when ACCEL_SOURCE=spi")
		}
		if c.AccelCSPin == "" {
			return fmt.Errorf("ACCEL_CS_PIN is required when ACCEL_SOURCE=spi")
		}
	case "serial":
		if c.AccelSerialPort == "" {
			return fmt.Errorf("ACCEL_SERIAL_PORT is required when ACCEL_SOURCE=serial")
		}
		if c.AccelSerialBaud == 0 {
			return fmt.Errorf("ACCEL_SERIAL_BAUD is required when ACCEL_SOURCE=serial")
		}
	}
	if c.ButtonAPin == "" {
		return fmt.Errorf("BUTTON_A_PIN is required")
	}
	if c.ButtonBPin == "" {
		return fmt.Errorf("BUTTON_B_PIN is required")
	}
	if c.BuzzerPin == "" {
		return fmt.Errorf("BUZZER_PIN is required")
	}
	if c.LEDSPIDevice == "" {
		return fmt.Errorf("LED_SPI_DEVICE is required")
	}
	return nil
}

// InitGlobal initializes the global configuration from file.
// Uses sync.Once to ensure this only runs once, even if called multiple times.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance.
// InitGlobal must be called first, or this will return nil.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
