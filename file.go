// SPDX-License-Identifier: EPL-2.0

package sndio

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/sndio/codec"
)

// File is an open audio file. It exclusively owns the OS file handle
// and the backend codec state; no alias to either escapes it.
//
// A File is not safe for concurrent use. Distinct Files are fully
// independent.
type File struct {
	path string
	mode Mode
	f    *os.File
	info codec.Info

	stream codec.Stream                 // read mode
	writer codec.Writer                 // write mode
	reopen func() (codec.Stream, error) // rebuilds the decoder for backward seeks

	pos   int64 // frame cursor (read) or frames written (write)
	buf   []int32
	wtags map[TagType]string // echo-back store for tags staged on a write handle

	closed bool
}

// Path returns the path the file was opened with.
func (f *File) Path() string { return f.path }

// Mode returns the access mode the file was opened with.
func (f *File) Mode() Mode { return f.mode }

// Info returns a snapshot of the stream properties. The snapshot is
// invalidated by Close.
func (f *File) Info() (Info, error) {
	if f.closed {
		return Info{}, ErrClosed
	}
	info := f.info
	if f.writer != nil {
		info = f.writer.Info()
	}
	return info, nil
}

// Position returns the current frame cursor.
func (f *File) Position() int64 { return f.pos }

// Seek repositions the frame cursor of a read handle. whence is one of
// io.SeekStart, io.SeekCurrent, io.SeekEnd. Out-of-range targets fail
// with ErrInvalidSeek and leave the cursor unchanged.
func (f *File) Seek(offset int64, whence int) error {
	if f.closed {
		return ErrClosed
	}
	if f.writer != nil {
		// Streaming encoders only append.
		return fmt.Errorf("sndio: seek on a write handle: %w", ErrNotSeekable)
	}
	if !f.info.Seekable {
		return ErrNotSeekable
	}

	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = f.pos + offset
	case io.SeekEnd:
		if f.info.Frames < 0 {
			return fmt.Errorf("sndio: seek from end of a stream of unknown length: %w", ErrNotSeekable)
		}
		target = f.info.Frames + offset
	default:
		return fmt.Errorf("sndio: seek whence %d: %w", whence, ErrInvalidParameter)
	}

	if target < 0 || (f.info.Frames >= 0 && target > f.info.Frames) {
		return fmt.Errorf("sndio: seek to frame %d of %d: %w", target, f.info.Frames, ErrInvalidSeek)
	}

	if fs, ok := f.stream.(codec.FrameSeeker); ok {
		if err := fs.SeekFrame(target); err != nil {
			return err
		}
		f.pos = target
		return nil
	}

	if target >= f.pos {
		return f.skipFrames(target - f.pos)
	}

	// No native positioning and the target is behind the cursor:
	// rebuild the decoder and skip forward.
	stream, err := f.reopen()
	if err != nil {
		return fmt.Errorf("sndio: seek: %w", err)
	}
	f.stream.Close()
	f.stream = stream
	f.pos = 0
	return f.skipFrames(target)
}

func (f *File) skipFrames(frames int64) error {
	const chunkFrames = 4096
	want := chunkFrames * f.info.Channels
	if cap(f.buf) < want {
		f.buf = make([]int32, want)
	}

	for frames > 0 {
		n := int64(chunkFrames)
		if n > frames {
			n = frames
		}
		read, err := f.stream.ReadFrames(f.buf[:n*int64(f.info.Channels)])
		f.pos += int64(read)
		frames -= int64(read)
		if err == io.EOF || (read == 0 && err == nil) {
			return fmt.Errorf("sndio: seek past end of stream: %w", ErrInvalidSeek)
		}
		if err != nil {
			return fmt.Errorf("sndio: seek: %w", err)
		}
	}
	return nil
}

// Tag reports a metadata field value, with ok=false when the file has
// no such field (never an error). On a write handle it echoes back
// fields staged with SetTag. A closed handle has no fields.
func (f *File) Tag(t TagType) (string, bool) {
	if f.closed {
		return "", false
	}
	if f.writer != nil {
		v, ok := f.wtags[t]
		return v, ok
	}
	return f.stream.Tag(t)
}

// SetTag stages a metadata field to be written with the file. It fails
// with ErrNotWritable on read handles.
func (f *File) SetTag(t TagType, v string) error {
	if f.closed {
		return ErrClosed
	}
	if f.writer == nil {
		return fmt.Errorf("sndio: set %s tag: %w", t, ErrNotWritable)
	}
	if err := f.writer.SetTag(t, v); err != nil {
		return err
	}
	f.wtags[t] = v
	return nil
}

// Close flushes pending encoder state and releases the OS handle.
// Closing an already closed File is a no-op.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	var first error
	if f.stream != nil {
		first = f.stream.Close()
	}
	if f.writer != nil {
		first = f.writer.Close()
	}
	if err := f.f.Close(); err != nil && first == nil {
		first = fmt.Errorf("sndio: close %s: %w", f.path, err)
	}

	f.stream = nil
	f.writer = nil
	f.reopen = nil
	return first
}
