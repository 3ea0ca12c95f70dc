// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package feedback

import (
	"log"

	"github.com/relabs-tech/exercise_tracker/internal/exercise"
)

// MultiRenderer fans each event out to several renderers. A failing
// renderer is logged and skipped so LED trouble never stalls a routine.
type MultiRenderer struct {
	renderers []Renderer
}

// Multi combines renderers into one.
func Multi(renderers ...Renderer) *MultiRenderer {
	return &MultiRenderer{renderers: renderers}
}

func (m *MultiRenderer) IdleMenu(eligible []exercise.Kind) error {
	for _, r := range m.renderers {
		if err := r.IdleMenu(eligible); err != nil {
			log.Printf("feedback: idle menu render error: %v", err)
		}
	}
	return nil
}

func (m *MultiRenderer) SessionStarted() error {
	for _, r := range m.renderers {
		if err := r.SessionStarted(); err != nil {
			log.Printf("feedback: session start render error: %v", err)
		}
	}
	return nil
}

func (m *MultiRenderer) TrackingStarted(kind exercise.Kind) error {
	for _, r := range m.renderers {
		if err := r.TrackingStarted(kind); err != nil {
			log.Printf("feedback: tracking start render error: %v", err)
		}
	}
	return nil
}

func (m *MultiRenderer) RepCompleted(kind exercise.Kind, rep int) error {
	for _, r := range m.renderers {
		if err := r.RepCompleted(kind, rep); err != nil {
			log.Printf("feedback: rep render error: %v", err)
		}
	}
	return nil
}

func (m *MultiRenderer) RoutineCompleted(kind exercise.Kind) error {
	for _, r := range m.renderers {
		if err := r.RoutineCompleted(kind); err != nil {
			log.Printf("feedback: routine render error: %v", err)
		}
	}
	return nil
}
