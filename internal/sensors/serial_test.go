// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"testing"

	"github.com/relabs-tech/exercise_tracker/internal/motion"
)

func TestParseSampleLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want motion.Sample
		ok   bool
	}{
		{"plain", "1.5,9.8,0.3", motion.Sample{X: 1.5, Y: 9.8, Z: 0.3}, true},
		{"negative and spaces", " -20.1 , 3.0 , 9.81 \r\n", motion.Sample{X: -20.1, Y: 3.0, Z: 9.81}, true},
		{"integers", "0,0,10", motion.Sample{Z: 10}, true},
		{"empty", "", motion.Sample{}, false},
		{"blank line", "  \r\n", motion.Sample{}, false},
		{"too few fields", "1.0,2.0", motion.Sample{}, false},
		{"too many fields", "1,2,3,4", motion.Sample{}, false},
		{"garbage field", "1.0,abc,3.0", motion.Sample{}, false},
		{"partial line after reconnect", ".8,0.3", motion.Sample{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseSampleLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("sample = %+v, want %+v", got, tt.want)
			}
		})
	}
}
