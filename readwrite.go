// SPDX-License-Identifier: EPL-2.0

package sndio

import (
	"fmt"
	"io"

	"github.com/ik5/sndio/utils"
)

// readNative fills dst with interleaved samples at the file's native
// bit depth, looping over backend reads so that a short return can only
// mean end of stream. A backend reporting zero frames without an error
// is surfaced as a zero-frame read; callers loop and check Position.
func (f *File) readNative(dst []int32) (int, error) {
	if f.closed {
		return 0, ErrClosed
	}
	if f.stream == nil {
		return 0, ErrNotReadable
	}
	ch := f.info.Channels
	if len(dst)%ch != 0 {
		return 0, fmt.Errorf("sndio: %d values across %d channels: %w", len(dst), ch, ErrChannelMismatch)
	}

	filled := 0
	for filled < len(dst) {
		n, err := f.stream.ReadFrames(dst[filled:])
		filled += n * ch
		f.pos += int64(n)
		if err == io.EOF {
			break
		}
		if err != nil {
			return filled / ch, fmt.Errorf("sndio: read %s: %w", f.path, err)
		}
		if n == 0 {
			break
		}
	}
	return filled / ch, nil
}

// writeNative encodes interleaved samples at the file's native bit
// depth. A short write that was not requested is an error.
func (f *File) writeNative(src []int32) (int, error) {
	if f.closed {
		return 0, ErrClosed
	}
	if f.writer == nil {
		return 0, ErrNotWritable
	}
	ch := f.info.Channels
	if len(src)%ch != 0 {
		return 0, fmt.Errorf("sndio: %d values across %d channels: %w", len(src), ch, ErrChannelMismatch)
	}

	n, err := f.writer.WriteFrames(src)
	f.pos += int64(n)
	if err != nil {
		return n, fmt.Errorf("sndio: write %s: %w", f.path, err)
	}
	if n < len(src)/ch {
		return n, fmt.Errorf("sndio: write %s: %w", f.path, ErrShortWrite)
	}
	return n, nil
}

func (f *File) scratch(n int) []int32 {
	if cap(f.buf) < n {
		f.buf = make([]int32, n)
	}
	return f.buf[:n]
}

// ReadInt16 reads interleaved frames into dst, rescaling from the
// file's native depth. It returns the number of frames read, which is
// less than requested only at end of stream; a further read returns 0
// frames and no error.
func (f *File) ReadInt16(dst []int16) (int, error) {
	buf := f.scratch(len(dst))
	frames, err := f.readNative(buf)
	depth := f.info.Subtype.Width()
	for i := range frames * f.info.Channels {
		dst[i] = int16(utils.ShiftPCM(buf[i], depth, 16))
	}
	return frames, err
}

// ReadInt32 reads interleaved frames into dst as full-scale 32 bit
// samples.
func (f *File) ReadInt32(dst []int32) (int, error) {
	buf := f.scratch(len(dst))
	frames, err := f.readNative(buf)
	depth := f.info.Subtype.Width()
	for i := range frames * f.info.Channels {
		dst[i] = utils.ShiftPCM(buf[i], depth, 32)
	}
	return frames, err
}

// ReadFloat32 reads interleaved frames into dst normalized to [-1, 1).
func (f *File) ReadFloat32(dst []float32) (int, error) {
	buf := f.scratch(len(dst))
	frames, err := f.readNative(buf)
	depth := f.info.Subtype.Width()
	for i := range frames * f.info.Channels {
		dst[i] = float32(utils.PCMToFloat64(buf[i], depth))
	}
	return frames, err
}

// ReadFloat64 reads interleaved frames into dst normalized to [-1, 1).
func (f *File) ReadFloat64(dst []float64) (int, error) {
	buf := f.scratch(len(dst))
	frames, err := f.readNative(buf)
	depth := f.info.Subtype.Width()
	for i := range frames * f.info.Channels {
		dst[i] = utils.PCMToFloat64(buf[i], depth)
	}
	return frames, err
}

// WriteInt16 writes interleaved frames from src, rescaling to the
// file's native depth. It returns the number of frames written.
func (f *File) WriteInt16(src []int16) (int, error) {
	buf := f.scratch(len(src))
	depth := f.info.Subtype.Width()
	for i, v := range src {
		buf[i] = utils.ShiftPCM(int32(v), 16, depth)
	}
	return f.writeNative(buf)
}

// WriteInt32 writes interleaved full-scale 32 bit frames from src.
func (f *File) WriteInt32(src []int32) (int, error) {
	buf := f.scratch(len(src))
	depth := f.info.Subtype.Width()
	for i, v := range src {
		buf[i] = utils.ShiftPCM(v, 32, depth)
	}
	return f.writeNative(buf)
}

// WriteFloat32 writes interleaved normalized frames from src, clamping
// to [-1, 1].
func (f *File) WriteFloat32(src []float32) (int, error) {
	buf := f.scratch(len(src))
	depth := f.info.Subtype.Width()
	for i, v := range src {
		buf[i] = utils.Float64ToPCM(float64(v), depth)
	}
	return f.writeNative(buf)
}

// WriteFloat64 writes interleaved normalized frames from src, clamping
// to [-1, 1].
func (f *File) WriteFloat64(src []float64) (int, error) {
	buf := f.scratch(len(src))
	depth := f.info.Subtype.Width()
	for i, v := range src {
		buf[i] = utils.Float64ToPCM(v, depth)
	}
	return f.writeNative(buf)
}

// readAll rewinds f and drains it through read in chunks.
func readAll[T any](f *File, read func([]T) (int, error)) ([]T, error) {
	if err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	ch := f.info.Channels
	var out []T
	if f.info.Frames > 0 {
		out = make([]T, 0, f.info.Frames*int64(ch))
	}

	chunk := make([]T, 4096*ch)
	for {
		frames, err := read(chunk)
		if frames > 0 {
			out = append(out, chunk[:frames*ch]...)
		}
		if err != nil {
			return out, err
		}
		if frames == 0 {
			return out, nil
		}
	}
}

// ReadAllInt16 rewinds the file and reads every frame.
func (f *File) ReadAllInt16() ([]int16, error) { return readAll(f, f.ReadInt16) }

// ReadAllInt32 rewinds the file and reads every frame as full-scale
// 32 bit samples.
func (f *File) ReadAllInt32() ([]int32, error) { return readAll(f, f.ReadInt32) }

// ReadAllFloat32 rewinds the file and reads every frame normalized to
// [-1, 1).
func (f *File) ReadAllFloat32() ([]float32, error) { return readAll(f, f.ReadFloat32) }

// ReadAllFloat64 rewinds the file and reads every frame normalized to
// [-1, 1).
func (f *File) ReadAllFloat64() ([]float64, error) { return readAll(f, f.ReadFloat64) }
