// SPDX-License-Identifier: EPL-2.0

package sndio

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/ik5/sndio/internal/sndtest"
)

func TestProbe(t *testing.T) {
	t.Parallel()

	path := writeTestWAV(t, 2, sndtest.RampInt16(2, 25))

	info, err := Probe(path)
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	if info.Major != MajorWAV || info.Subtype != SubtypePCM16 {
		t.Errorf("Probe() = %s/%s, want wav/pcm_16", info.Major, info.Subtype)
	}
	if info.SampleRate != 44100 || info.Channels != 2 || info.Frames != 25 {
		t.Errorf("Probe() = %d Hz, %d ch, %d frames, want 44100, 2, 25",
			info.SampleRate, info.Channels, info.Frames)
	}
}

func TestProbeAll(t *testing.T) {
	t.Parallel()

	// Distinct channel counts tell the results apart.
	var paths []string
	for ch := 1; ch <= 4; ch++ {
		paths = append(paths, writeTestWAV(t, ch, sndtest.RampInt16(ch, 10)))
	}

	infos, err := ProbeAll(paths)
	if err != nil {
		t.Fatalf("ProbeAll() error = %v", err)
	}
	if len(infos) != len(paths) {
		t.Fatalf("ProbeAll() returned %d results, want %d", len(infos), len(paths))
	}
	for i, info := range infos {
		if info.Channels != i+1 {
			t.Errorf("result %d: Channels = %d, want %d", i, info.Channels, i+1)
		}
	}
}

func TestProbeAll_Failure(t *testing.T) {
	t.Parallel()

	good := writeTestWAV(t, 1, sndtest.RampInt16(1, 10))
	missing := filepath.Join(t.TempDir(), "gone.wav")

	if _, err := ProbeAll([]string{good, missing, good}); err == nil {
		t.Error("ProbeAll() with a missing path returned no error")
	}
}

func TestProbeAll_Empty(t *testing.T) {
	t.Parallel()

	infos, err := ProbeAll(nil)
	if err != nil {
		t.Fatalf("ProbeAll(nil) error = %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("ProbeAll(nil) returned %d results", len(infos))
	}
}

func TestProbeAll_Many(t *testing.T) {
	t.Parallel()

	// More files than the parallelism limit.
	var paths []string
	for i := range 32 {
		paths = append(paths, writeTestWAV(t, 1, sndtest.RampInt16(1, i+1)))
	}

	infos, err := ProbeAll(paths)
	if err != nil {
		t.Fatalf("ProbeAll() error = %v", err)
	}
	for i, info := range infos {
		if info.Frames != int64(i+1) {
			t.Errorf("result %d: Frames = %d, want %d", i, info.Frames, i+1)
		}
	}
}

func ExampleProbe() {
	// Probing never keeps a handle open.
	info, err := Probe("testdata/example.wav")
	if err != nil {
		fmt.Println("probe:", errors.Unwrap(err))
		return
	}
	fmt.Println(info.SampleRate, info.Channels)
}
