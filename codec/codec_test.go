// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"bytes"
	"io"
	"testing"
)

func TestRegistry_LookupAndOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(Driver{Major: MajorWAV, Name: "wav"})
	r.Register(Driver{Major: MajorMPEG, Name: "mpeg"})

	d, ok := r.Lookup(MajorWAV)
	if !ok || d.Name != "wav" {
		t.Fatalf("Lookup(MajorWAV) = %v, %v", d, ok)
	}

	if _, ok := r.Lookup(MajorFLAC); ok {
		t.Error("Lookup(MajorFLAC) found an unregistered driver")
	}

	drivers := r.Drivers()
	if len(drivers) != 2 || drivers[0].Major != MajorWAV || drivers[1].Major != MajorMPEG {
		t.Errorf("Drivers() not in registration order: %v", drivers)
	}
}

func TestRegistry_DetectPrefersFirstMatch(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(Driver{
		Major: MajorWAV,
		Sniff: func(head []byte) bool { return bytes.HasPrefix(head, []byte("RIFF")) },
	})
	// Deliberately greedy sniffer registered second.
	r.Register(Driver{
		Major: MajorMPEG,
		Sniff: func(head []byte) bool { return true },
	})

	d, ok := r.Detect([]byte("RIFFxxxxWAVE"))
	if !ok || d.Major != MajorWAV {
		t.Errorf("Detect() = %v, %v, want the WAV driver", d.Major, ok)
	}

	d, ok = r.Detect([]byte("garbage"))
	if !ok || d.Major != MajorMPEG {
		t.Errorf("Detect() fallback = %v, %v, want the greedy driver", d.Major, ok)
	}
}

func TestRegistry_DetectSkipsNilSniffers(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(Driver{Major: MajorRaw}) // raw cannot be auto-detected

	if _, ok := r.Detect([]byte("anything")); ok {
		t.Error("Detect() matched a driver without a sniffer")
	}
}

func TestDriver_CanWrite(t *testing.T) {
	t.Parallel()

	d := Driver{WriteSubtypes: []SubtypeFormat{SubtypePCM16, SubtypePCM24}}
	if !d.CanWrite(SubtypePCM16) {
		t.Error("CanWrite(SubtypePCM16) = false")
	}
	if d.CanWrite(SubtypeVorbis) {
		t.Error("CanWrite(SubtypeVorbis) = true")
	}
}

func TestInfo_BlockAlign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		channels int
		subtype  SubtypeFormat
		want     int
	}{
		{1, SubtypePCM16, 2},
		{2, SubtypePCM16, 4},
		{2, SubtypePCM24, 6},
		{6, SubtypePCM32, 24},
		{1, SubtypePCMU8, 1},
	}

	for _, tt := range tests {
		info := Info{Channels: tt.channels, Subtype: tt.subtype}
		if got := info.BlockAlign(); got != tt.want {
			t.Errorf("BlockAlign() with %d ch %s = %d, want %d", tt.channels, tt.subtype, got, tt.want)
		}
	}
}

// Compile-time checks that the contracts stay satisfiable by minimal
// implementations.
type nopStream struct{}

func (nopStream) Info() Info                      { return Info{} }
func (nopStream) ReadFrames(dst []int32) (int, error) { return 0, io.EOF }
func (nopStream) Tag(TagType) (string, bool)      { return "", false }
func (nopStream) Close() error                    { return nil }

var _ Stream = nopStream{}
