// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sndio/codec"
)

// WriteSubtypes lists the encodings the AIFF encoder accepts.
var WriteSubtypes = []codec.SubtypeFormat{
	codec.SubtypePCMS8,
	codec.SubtypePCM16,
	codec.SubtypePCM24,
	codec.SubtypePCM32,
}

type writer struct {
	enc    *aiff.Encoder
	info   codec.Info
	intBuf *goaudio.IntBuffer
	frames int64
	closed bool
}

// NewWriter opens an AIFF encoding sink on ws, delegating header layout
// to go-audio/aiff.
func NewWriter(ws io.WriteSeeker, info codec.Info) (codec.Writer, error) {
	found := false
	for _, st := range WriteSubtypes {
		if st == info.Subtype {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: aiff with %s", codec.ErrUnsupportedEncoding, info.Subtype)
	}
	// AIFF is big-endian only.
	if info.Endian != codec.EndianFile && info.Endian != codec.EndianBig {
		return nil, fmt.Errorf("%w: aiff is big-endian", codec.ErrInvalidParameter)
	}

	enc := aiff.NewEncoder(ws, info.SampleRate, info.Subtype.Width(), info.Channels)

	info.Major = codec.MajorAIFF
	info.Endian = codec.EndianFile
	info.Seekable = true
	info.Frames = 0

	return &writer{enc: enc, info: info}, nil
}

func (w *writer) Info() codec.Info {
	info := w.info
	info.Frames = w.frames
	return info
}

func (w *writer) WriteFrames(src []int32) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	if w.intBuf == nil || cap(w.intBuf.Data) < len(src) {
		w.intBuf = &goaudio.IntBuffer{
			Data: make([]int, len(src)),
			Format: &goaudio.Format{
				NumChannels: w.info.Channels,
				SampleRate:  w.info.SampleRate,
			},
			SourceBitDepth: w.info.Subtype.Width(),
		}
	}
	w.intBuf.Data = w.intBuf.Data[:len(src)]

	for i, v := range src {
		w.intBuf.Data[i] = int(v)
	}

	if err := w.enc.Write(w.intBuf); err != nil {
		return 0, fmt.Errorf("sndio/aiff: write: %w", err)
	}
	n := len(src) / w.info.Channels
	w.frames += int64(n)
	return n, nil
}

func (w *writer) SetTag(codec.TagType, string) error {
	return fmt.Errorf("%w: aiff tags", codec.ErrUnsupportedEncoding)
}

func (w *writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("sndio/aiff: close: %w", err)
	}
	return nil
}
