// SPDX-License-Identifier: EPL-2.0

// Package sndtest generates deterministic sample data for tests.
package sndtest

import "math"

// SineInt16 generates frames of an interleaved sine wave, identical on
// every channel.
func SineInt16(sampleRate, channels, frames int, freq float64) []int16 {
	out := make([]int16, frames*channels)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		v := int16(math.Sin(2*math.Pi*freq*t) * 30000)
		for c := 0; c < channels; c++ {
			out[i*channels+c] = v
		}
	}
	return out
}

// RampInt16 generates frames where sample values encode their own
// position, making misalignment visible in assertions.
func RampInt16(channels, frames int) []int16 {
	out := make([]int16, frames*channels)
	for i := 0; i < frames; i++ {
		for c := 0; c < channels; c++ {
			out[i*channels+c] = int16(i*channels + c - 16000)
		}
	}
	return out
}

// SilenceFloat64 generates frames of silence.
func SilenceFloat64(channels, frames int) []float64 {
	return make([]float64, frames*channels)
}
