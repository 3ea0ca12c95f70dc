// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package motion

// ScriptSource replays a fixed sequence of samples. Once the script is
// exhausted it keeps returning the last sample, which reads as a wearer
// holding still.
type ScriptSource struct {
	samples []Sample
	pos     int
}

// NewScriptSource creates a source replaying the given samples in order.
func NewScriptSource(samples ...Sample) *ScriptSource {
	return &ScriptSource{samples: samples}
}

func (s *ScriptSource) Next() (Sample, error) {
	if len(s.samples) == 0 {
		return Sample{}, nil
	}
	if s.pos >= len(s.samples) {
		return s.samples[len(s.samples)-1], nil
	}
	sample := s.samples[s.pos]
	s.pos++
	return sample, nil
}
