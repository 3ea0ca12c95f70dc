// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package feedback

import (
	"fmt"

	"github.com/relabs-tech/exercise_tracker/internal/exercise"
)

// ConsoleRenderer prints progress to stdout. Used by the mock tracker and
// handy next to the hardware renderer while debugging on the device.
type ConsoleRenderer struct{}

func NewConsoleRenderer() *ConsoleRenderer {
	return &ConsoleRenderer{}
}

func (c *ConsoleRenderer) IdleMenu(eligible []exercise.Kind) error {
	if len(eligible) == 0 {
		fmt.Println("[IDLE] all routines complete")
		return nil
	}
	fmt.Print("[IDLE]")
	for _, k := range eligible {
		fmt.Printf("  %s", k)
	}
	fmt.Println()
	return nil
}

func (c *ConsoleRenderer) SessionStarted() error {
	fmt.Println("[SESS] tracking started")
	return nil
}

func (c *ConsoleRenderer) TrackingStarted(kind exercise.Kind) error {
	fmt.Printf("[SESS] tracking %s\n", kind)
	return nil
}

func (c *ConsoleRenderer) RepCompleted(kind exercise.Kind, rep int) error {
	fmt.Printf("[REP ] %s  %d/%d\n", kind, rep, exercise.RoutineLength)
	return nil
}

func (c *ConsoleRenderer) RoutineCompleted(kind exercise.Kind) error {
	fmt.Printf("[DONE] %s  routine complete\n", kind)
	return nil
}
