// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sndio/codec"
)

// aiffReader is an interface for aiff.Decoder to allow testing.
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Sniff reports whether head starts a FORM/AIFF or FORM/AIFC container.
func Sniff(head []byte) bool {
	if len(head) < 12 {
		return false
	}
	if !bytes.Equal(head[:4], []byte("FORM")) {
		return false
	}
	return bytes.Equal(head[8:12], []byte("AIFF")) || bytes.Equal(head[8:12], []byte("AIFC"))
}

type stream struct {
	dec    aiffReader
	info   codec.Info
	intBuf *goaudio.IntBuffer
	format *goaudio.Format
}

func (s *stream) Info() codec.Info { return s.info }
func (s *stream) Close() error     { return nil }

// AIFF carries no string metadata in this build.
func (s *stream) Tag(codec.TagType) (string, bool) { return "", false }

func (s *stream) ReadFrames(dst []int32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.format,
			SourceBitDepth: s.info.Subtype.Width(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w: %w", codec.ErrMalformedFile, err)
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = int32(s.intBuf.Data[i])
	}

	if err != nil && err != io.EOF {
		return n / s.info.Channels, fmt.Errorf("%w: %w", codec.ErrMalformedFile, err)
	}
	return n / s.info.Channels, nil
}

// NewReader opens an AIFF stream on rs, delegating all container parsing
// and sample decoding to go-audio/aiff.
func NewReader(rs io.ReadSeeker) (codec.Stream, error) {
	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, codec.ErrMalformedFile
	}
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", codec.ErrMalformedFile, err)
	}

	subtype, ok := subtypeFor(int(dec.BitDepth))
	if !ok {
		return nil, fmt.Errorf("%w: aiff %d bit", codec.ErrUnsupportedEncoding, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: invalid aiff COMM chunk", codec.ErrMalformedFile)
	}

	return &stream{
		dec: dec,
		info: codec.Info{
			SampleRate: format.SampleRate,
			Channels:   format.NumChannels,
			Frames:     int64(dec.NumSampleFrames),
			Major:      codec.MajorAIFF,
			Subtype:    subtype,
			Endian:     codec.EndianFile,
			Seekable:   true,
		},
		format: format,
	}, nil
}

func subtypeFor(bitDepth int) (codec.SubtypeFormat, bool) {
	switch bitDepth {
	case 8:
		// AIFF 8-bit samples are signed, unlike WAV.
		return codec.SubtypePCMS8, true
	case 16:
		return codec.SubtypePCM16, true
	case 24:
		return codec.SubtypePCM24, true
	case 32:
		return codec.SubtypePCM32, true
	default:
		return codec.SubtypeUnknown, false
	}
}
