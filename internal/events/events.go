// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package events defines the JSON payloads published over MQTT by the
// tracker and consumed by the monitor, web, and display binaries.
package events

// Session reports a controller state change.
type Session struct {
	State    string `json:"state"`              // "idle", "classifying", "tracking"
	Exercise string `json:"exercise,omitempty"` // set while tracking
	Time     string `json:"time"`               // RFC3339
}

// Rep reports one counted repetition.
type Rep struct {
	Exercise string `json:"exercise"`
	Rep      int    `json:"rep"`   // 1-based count after this repetition
	Total    int    `json:"total"` // repetitions in a full routine
	Time     string `json:"time"`
}

// Routine reports a completed ten-repetition routine.
type Routine struct {
	Exercise string `json:"exercise"`
	Reps     int    `json:"reps"`
	Time     string `json:"time"`
}
