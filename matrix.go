// SPDX-License-Identifier: EPL-2.0

package sndio

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

// Matrix I/O: the 2-D counterpart of the flat interleaved calls, shaped
// (frames × channels). A gonum Dense in row-major order with a stride
// equal to the channel count is read and written in place; anything
// else goes through a copy. No codec logic lives here — everything
// funnels into the float64 buffer operations.

// ReadMatrix fills dst row by row, one frame per row, and returns the
// number of frames read. The column count must match the channel count.
func (f *File) ReadMatrix(dst *mat.Dense) (int, error) {
	if f.closed {
		return 0, ErrClosed
	}
	rows, cols := dst.Dims()
	if cols != f.info.Channels {
		return 0, fmt.Errorf("sndio: matrix with %d columns for %d channels: %w",
			cols, f.info.Channels, ErrChannelMismatch)
	}

	rm := dst.RawMatrix()
	if rm.Stride == cols {
		return f.ReadFloat64(rm.Data[:rows*cols])
	}

	buf := make([]float64, rows*cols)
	frames, err := f.ReadFloat64(buf)
	for i := 0; i < frames; i++ {
		for j := 0; j < cols; j++ {
			dst.Set(i, j, buf[i*cols+j])
		}
	}
	return frames, err
}

// WriteMatrix writes src row by row, one frame per row, and returns the
// number of frames written. The column count must match the channel
// count.
func (f *File) WriteMatrix(src mat.Matrix) (int, error) {
	if f.closed {
		return 0, ErrClosed
	}
	rows, cols := src.Dims()
	if cols != f.info.Channels {
		return 0, fmt.Errorf("sndio: matrix with %d columns for %d channels: %w",
			cols, f.info.Channels, ErrChannelMismatch)
	}

	if d, ok := src.(*mat.Dense); ok {
		rm := d.RawMatrix()
		if rm.Stride == cols {
			return f.WriteFloat64(rm.Data[:rows*cols])
		}
	}

	buf := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			buf[i*cols+j] = src.At(i, j)
		}
	}
	return f.WriteFloat64(buf)
}

// ReadAllMatrix rewinds the file and reads every frame into a new
// (frames × channels) matrix.
func (f *File) ReadAllMatrix() (*mat.Dense, error) {
	if f.closed {
		return nil, ErrClosed
	}

	if f.info.Frames >= 0 {
		if err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		if f.info.Frames == 0 {
			// gonum refuses zero-sized allocations; an empty Dense
			// stands in for the (0 × channels) result.
			return &mat.Dense{}, nil
		}
		dst := mat.NewDense(int(f.info.Frames), f.info.Channels, nil)
		if _, err := f.ReadMatrix(dst); err != nil {
			return nil, err
		}
		return dst, nil
	}

	// Length unknown up front: drain and shape afterwards.
	data, err := f.ReadAllFloat64()
	if err != nil {
		return nil, err
	}
	frames := len(data) / f.info.Channels
	if frames == 0 {
		return &mat.Dense{}, nil
	}
	return mat.NewDense(frames, f.info.Channels, data[:frames*f.info.Channels]), nil
}
