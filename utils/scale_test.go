// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFloat64ToPCM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		x     float64
		depth int
		want  int32
	}{
		{"zero", 0, 16, 0},
		{"positive full scale clamps to max", 1.0, 16, 32767},
		{"negative full scale", -1.0, 16, -32768},
		{"above range clamps", 2.5, 16, 32767},
		{"below range clamps", -2.5, 16, -32768},
		{"half scale", 0.5, 16, 16384},
		{"24 bit max", 1.0, 24, 8388607},
		{"8 bit min", -1.0, 8, -128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float64ToPCM(tt.x, tt.depth); got != tt.want {
				t.Errorf("Float64ToPCM(%v, %d) = %d, want %d", tt.x, tt.depth, got, tt.want)
			}
		})
	}
}

func TestPCMToFloat64(t *testing.T) {
	t.Parallel()

	if got := PCMToFloat64(-32768, 16); got != -1.0 {
		t.Errorf("PCMToFloat64(-32768, 16) = %v, want -1", got)
	}
	if got := PCMToFloat64(16384, 16); got != 0.5 {
		t.Errorf("PCMToFloat64(16384, 16) = %v, want 0.5", got)
	}
	if got := PCMToFloat64(0, 24); got != 0 {
		t.Errorf("PCMToFloat64(0, 24) = %v, want 0", got)
	}
}

func TestPCMFloatRoundTrip(t *testing.T) {
	t.Parallel()

	// Every 16 bit value must survive a float round trip exactly.
	for _, v := range []int32{-32768, -12345, -1, 0, 1, 999, 32767} {
		got := Float64ToPCM(PCMToFloat64(v, 16), 16)
		if got != v {
			t.Errorf("round trip of %d = %d", v, got)
		}
	}
}

func TestShiftPCM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		v        int32
		from, to int
		want     int32
	}{
		{"same depth", 1234, 16, 16, 1234},
		{"widen 16 to 24", 1, 16, 24, 256},
		{"narrow 24 to 16", 256, 24, 16, 1},
		{"narrow truncates", 255, 24, 16, 0},
		{"negative widen", -1, 8, 16, -256},
		{"negative narrow", -256, 16, 8, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ShiftPCM(tt.v, tt.from, tt.to); got != tt.want {
				t.Errorf("ShiftPCM(%d, %d, %d) = %d, want %d", tt.v, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestPCMRange(t *testing.T) {
	t.Parallel()

	if PCMMax(16) != 32767 || PCMMin(16) != -32768 {
		t.Errorf("PCMMax/PCMMin(16) = %d/%d", PCMMax(16), PCMMin(16))
	}
	if PCMMax(8) != 127 || PCMMin(8) != -128 {
		t.Errorf("PCMMax/PCMMin(8) = %d/%d", PCMMax(8), PCMMin(8))
	}
}
