// SPDX-License-Identifier: EPL-2.0

package sndio

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/ik5/sndio/internal/sndtest"
)

func TestWAVInt16RoundTrip(t *testing.T) {
	t.Parallel()

	samples := sndtest.SineInt16(44100, 2, 500, 440)
	path := writeTestWAV(t, 2, samples)

	f, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got := make([]int16, len(samples))
	n, err := f.ReadInt16(got)
	if err != nil {
		t.Fatalf("ReadInt16() error = %v", err)
	}
	if n != 500 {
		t.Fatalf("ReadInt16() = %d frames, want 500", n)
	}
	for i, want := range samples {
		if got[i] != want {
			t.Fatalf("sample %d = %d, want %d", i, got[i], want)
		}
	}
}

func TestShortReadOnlyAtEnd(t *testing.T) {
	t.Parallel()

	samples := sndtest.RampInt16(1, 10)
	path := writeTestWAV(t, 1, samples)

	f, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// Ask for more frames than the file holds: the read comes back
	// short exactly once, then reports zero frames with no error.
	got := make([]int16, 64)
	n, err := f.ReadInt16(got)
	if err != nil {
		t.Fatalf("ReadInt16() error = %v", err)
	}
	if n != 10 {
		t.Fatalf("ReadInt16() = %d frames, want 10", n)
	}

	n, err = f.ReadInt16(got)
	if n != 0 || err != nil {
		t.Errorf("ReadInt16() at end = %d, %v, want 0, nil", n, err)
	}
}

func TestChannelMismatch(t *testing.T) {
	t.Parallel()

	path := writeTestWAV(t, 2, sndtest.RampInt16(2, 16))

	f, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// 5 values cannot be split across 2 channels.
	if _, err := f.ReadInt16(make([]int16, 5)); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("ReadInt16(odd slice) error = %v, want ErrChannelMismatch", err)
	}

	w, err := Create(filepath.Join(t.TempDir(), "w.wav"), WriteOptions{
		Major:      MajorWAV,
		Subtype:    SubtypePCM16,
		SampleRate: 44100,
		Channels:   2,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if _, err := w.WriteInt16(make([]int16, 3)); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("WriteInt16(odd slice) error = %v, want ErrChannelMismatch", err)
	}
}

func TestFloatScaling(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.wav")
	f, err := Create(path, WriteOptions{
		Major:      MajorWAV,
		Subtype:    SubtypePCM16,
		SampleRate: 44100,
		Channels:   1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteFloat64([]float64{0, 0.5, -0.5, 1, -1}); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	got := make([]int16, 5)
	if _, err := r.ReadInt16(got); err != nil {
		t.Fatal(err)
	}
	want := []int16{0, 16384, -16384, 32767, -32768}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("sample %d = %d, want %d", i, got[i], w)
		}
	}

	// And back to float, within one 16-bit step.
	if err := r.Seek(0, 0); err != nil {
		t.Fatal(err)
	}
	gotF := make([]float64, 5)
	if _, err := r.ReadFloat64(gotF); err != nil {
		t.Fatal(err)
	}
	wantF := []float64{0, 0.5, -0.5, 1, -1}
	for i, w := range wantF {
		if math.Abs(gotF[i]-w) > 1.0/32768 {
			t.Errorf("float sample %d = %v, want about %v", i, gotF[i], w)
		}
	}
}

func TestWidthRescaling24Bit(t *testing.T) {
	t.Parallel()

	// 16-bit input into a 24-bit file widens by 8 bits on disk and
	// narrows back on a 16-bit read.
	path := filepath.Join(t.TempDir(), "d.wav")
	f, err := Create(path, WriteOptions{
		Major:      MajorWAV,
		Subtype:    SubtypePCM24,
		SampleRate: 48000,
		Channels:   1,
	})
	if err != nil {
		t.Fatal(err)
	}
	src := []int16{0, 1, -1, 32767, -32768}
	if _, err := f.WriteInt16(src); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	info, err := r.Info()
	if err != nil {
		t.Fatal(err)
	}
	if info.Subtype != SubtypePCM24 {
		t.Fatalf("Info().Subtype = %s, want pcm_24", info.Subtype)
	}

	native := make([]int32, len(src))
	if _, err := r.ReadInt32(native); err != nil {
		t.Fatal(err)
	}
	// ReadInt32 surfaces full-scale 32-bit values.
	if native[1] != 1<<16 {
		t.Errorf("widened sample = %d, want %d", native[1], 1<<16)
	}

	if err := r.Seek(0, 0); err != nil {
		t.Fatal(err)
	}
	got := make([]int16, len(src))
	if _, err := r.ReadInt16(got); err != nil {
		t.Fatal(err)
	}
	for i, want := range src {
		if got[i] != want {
			t.Errorf("sample %d = %d, want %d", i, got[i], want)
		}
	}
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	samples := sndtest.RampInt16(2, 300)
	path := writeTestWAV(t, 2, samples)

	f, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// Partially drain first; ReadAll must rewind before reading.
	if _, err := f.ReadInt16(make([]int16, 64)); err != nil {
		t.Fatal(err)
	}

	got, err := f.ReadAllInt16()
	if err != nil {
		t.Fatalf("ReadAllInt16() error = %v", err)
	}
	if len(got) != len(samples) {
		t.Fatalf("ReadAllInt16() returned %d samples, want %d", len(got), len(samples))
	}
	for i, want := range samples {
		if got[i] != want {
			t.Fatalf("sample %d = %d, want %d", i, got[i], want)
		}
	}

	gotF, err := f.ReadAllFloat64()
	if err != nil {
		t.Fatalf("ReadAllFloat64() error = %v", err)
	}
	if len(gotF) != len(samples) {
		t.Fatalf("ReadAllFloat64() returned %d samples, want %d", len(gotF), len(samples))
	}
	for i, want := range samples {
		if math.Abs(gotF[i]-float64(want)/32768) > 1e-9 {
			t.Fatalf("float sample %d = %v, want %v", i, gotF[i], float64(want)/32768)
		}
	}
}
