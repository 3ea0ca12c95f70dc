// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"log"

	"github.com/relabs-tech/exercise_tracker/internal/exercise"
	"github.com/relabs-tech/exercise_tracker/internal/feedback"
	"github.com/relabs-tech/exercise_tracker/internal/motion"
	"github.com/relabs-tech/exercise_tracker/internal/session"
)

// autoTrigger presses the start button whenever any routine is still
// open, so the mock workout runs through unattended.
type autoTrigger struct {
	tracker *exercise.Tracker
}

func (t *autoTrigger) Pressed() (bool, error) {
	return len(t.tracker.EligibleKinds()) > 0, nil
}

// RunMockConsole runs the full session pipeline against the scripted
// workout source, printing progress to stdout. No hardware required.
func RunMockConsole() error {
	log.Println("starting exercise-tracker (mock console)")

	tracker := exercise.NewTracker()
	ctrl := session.New(
		motion.NewWorkoutSource(),
		&autoTrigger{tracker: tracker},
		tracker,
		feedback.NewConsoleRenderer(),
		session.Options{},
	)

	return ctrl.Run()
}
