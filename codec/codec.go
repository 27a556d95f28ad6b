// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"io"
	"sync"
)

// Info is a read-only snapshot of an open stream's properties.
type Info struct {
	// SampleRate of the stream in Hz.
	SampleRate int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
	// Frames is the total frame count, or -1 when the backend cannot
	// determine it up front.
	Frames int64
	// Major is the container format.
	Major MajorFormat
	// Subtype is the sample encoding inside the container.
	Subtype SubtypeFormat
	// Endian of the stored samples.
	Endian Endian
	// Seekable reports whether the frame cursor can be repositioned.
	Seekable bool
}

// BlockAlign returns the byte size of one interleaved frame.
func (i Info) BlockAlign() int {
	return i.Channels * i.Subtype.Width() / 8
}

// Stream is a decoded audio stream produced by a format backend.
//
// Samples are interleaved int32 values at the stream's native bit depth
// (Info().Subtype.Width()). A backend may return fewer frames than
// requested at any point; it returns (0, io.EOF) once exhausted.
type Stream interface {
	Info() Info
	// ReadFrames fills dst with interleaved samples. len(dst) must be a
	// multiple of the channel count. Returns the number of frames read.
	ReadFrames(dst []int32) (int, error)
	// Tag reports a metadata field, with ok=false when the file has no
	// such field set.
	Tag(t TagType) (string, bool)
	// Close releases decoder resources. It does not close the underlying
	// reader.
	Close() error
}

// FrameSeeker is implemented by streams with native cursor positioning.
// Streams without it are repositioned by the caller (rebuild and skip).
type FrameSeeker interface {
	SeekFrame(frame int64) error
}

// Writer is an encoding sink produced by a format backend.
type Writer interface {
	Info() Info
	// WriteFrames encodes interleaved samples at the writer's native bit
	// depth. len(src) must be a multiple of the channel count. Returns the
	// number of frames written.
	WriteFrames(src []int32) (int, error)
	// SetTag stages a metadata field to be written with the file.
	SetTag(t TagType, v string) error
	// Close flushes headers and trailing chunks. It does not close the
	// underlying writer.
	Close() error
}

// Driver describes one container format backend.
type Driver struct {
	Major     MajorFormat
	Name      string
	Extension string

	// Sniff reports whether head (the first bytes of a file) looks like
	// this container. Nil for formats that cannot be auto-detected.
	Sniff func(head []byte) bool

	// OpenRead builds a Stream on rs. Nil when this build has no decoder.
	OpenRead func(rs io.ReadSeeker) (Stream, error)

	// OpenWrite builds a Writer on ws. Nil when this build has no encoder.
	OpenWrite func(ws io.WriteSeeker, info Info) (Writer, error)

	// WriteSubtypes lists the encodings OpenWrite accepts.
	WriteSubtypes []SubtypeFormat
}

// CanWrite reports whether the driver can encode the given subtype.
func (d Driver) CanWrite(s SubtypeFormat) bool {
	for _, st := range d.WriteSubtypes {
		if st == s {
			return true
		}
	}
	return false
}

// Registry holds format drivers in registration order. Detection walks
// the same order, so loose sniffers (MPEG) must be registered last.
type Registry struct {
	drivers []Driver

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		mtx: &sync.Mutex{},
	}
}

func (r *Registry) Register(d Driver) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.drivers = append(r.drivers, d)
}

func (r *Registry) Lookup(m MajorFormat) (Driver, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, d := range r.drivers {
		if d.Major == m {
			return d, true
		}
	}
	return Driver{}, false
}

// Detect returns the first registered driver whose sniffer accepts head.
func (r *Registry) Detect(head []byte) (Driver, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, d := range r.drivers {
		if d.Sniff != nil && d.Sniff(head) {
			return d, true
		}
	}
	return Driver{}, false
}

// Drivers returns a copy of the registered drivers in order.
func (r *Registry) Drivers() []Driver {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]Driver, len(r.drivers))
	copy(out, r.drivers)
	return out
}
