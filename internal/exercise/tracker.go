// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package exercise

// RoutineLength is the number of repetitions that make up one routine.
const RoutineLength = 10

// RoutineState is the progress of one exercise kind within the current
// power cycle.
type RoutineState struct {
	CompletedReps int  `json:"completed_reps"`
	Finished      bool `json:"finished"`
}

// Tracker owns the per-kind routine state. It is a passive holder: only
// the active detector's session increments a counter, and the single
// active session invariant means there is never concurrent mutation.
// State resets only with the process.
type Tracker struct {
	states [len(Kinds)]RoutineState
}

// NewTracker returns a tracker with all routines at zero.
func NewTracker() *Tracker {
	return &Tracker{}
}

// CompleteRep records one finished repetition for kind and reports the new
// count and whether the routine just finished. Once finished a kind is
// frozen; further calls are no-ops.
func (t *Tracker) CompleteRep(k Kind) (rep int, finished bool) {
	s := &t.states[k]
	if s.Finished {
		return s.CompletedReps, true
	}
	s.CompletedReps++
	if s.CompletedReps >= RoutineLength {
		s.Finished = true
	}
	return s.CompletedReps, s.Finished
}

// Reps returns the completed repetitions for kind.
func (t *Tracker) Reps(k Kind) int {
	return t.states[k].CompletedReps
}

// Finished reports whether kind's routine is done for this power cycle.
func (t *Tracker) Finished(k Kind) bool {
	return t.states[k].Finished
}

// Eligible reports whether kind may still be selected by classification.
func (t *Tracker) Eligible(k Kind) bool {
	return !t.states[k].Finished
}

// EligibleKinds returns the kinds still shown on the idle menu, in display
// order.
func (t *Tracker) EligibleKinds() []Kind {
	var out []Kind
	for _, k := range Kinds {
		if t.Eligible(k) {
			out = append(out, k)
		}
	}
	return out
}

// State returns a copy of kind's routine state.
func (t *Tracker) State(k Kind) RoutineState {
	return t.states[k]
}
