// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/sndio/codec"
)

// go-mp3 always decodes to 16-bit stereo.
const (
	channels      = 2
	bytesPerFrame = 4
)

// mp3Reader is an interface for gomp3.Decoder to allow testing.
type mp3Reader interface {
	Read([]byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
}

// Sniff reports whether head looks like an MPEG audio stream: an ID3v2
// tag or a frame sync. The sync check is loose, so the MPEG driver must
// be registered after every container with real magic.
func Sniff(head []byte) bool {
	if len(head) < 3 {
		return false
	}
	if bytes.Equal(head[:3], []byte("ID3")) {
		return true
	}
	return head[0] == 0xFF && head[1]&0xE0 == 0xE0
}

type stream struct {
	dec  mp3Reader
	info codec.Info
	buf  []byte
	rem  []byte // undecoded bytes carried between reads
}

func (s *stream) Info() codec.Info { return s.info }
func (s *stream) Close() error     { return nil }

// MPEG metadata (ID3) is skipped, not parsed, by the linked engine.
func (s *stream) Tag(codec.TagType) (string, bool) { return "", false }

func (s *stream) SeekFrame(frame int64) error {
	if _, err := s.dec.Seek(frame*bytesPerFrame, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %w", codec.ErrInvalidSeek, err)
	}
	s.rem = nil
	return nil
}

func (s *stream) ReadFrames(dst []int32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n := copy(s.buf, s.rem)
	s.rem = s.rem[:0]

	var err error
	for n < bytesNeeded {
		var rn int
		rn, err = s.dec.Read(s.buf[n:])
		n += rn
		if err != nil {
			break
		}
		if rn == 0 {
			break
		}
	}

	// Hold back a partial sample for the next call.
	if n%2 != 0 {
		s.rem = append(s.rem[:0], s.buf[n-1])
		n--
	}

	samples := n / 2
	if samples == 0 {
		if err == io.EOF {
			return 0, io.EOF
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %w", codec.ErrMalformedFile, err)
		}
		return 0, nil
	}

	for i := range samples {
		low := uint16(s.buf[2*i])
		high := uint16(s.buf[2*i+1])
		dst[i] = int32(int16(low | high<<8))
	}

	if err != nil && err != io.EOF {
		return samples / channels, fmt.Errorf("%w: %w", codec.ErrMalformedFile, err)
	}
	return samples / channels, nil
}

// NewReader opens an MPEG stream on rs, delegating all frame parsing and
// decoding to hajimehoshi/go-mp3.
func NewReader(rs io.ReadSeeker) (codec.Stream, error) {
	dec, err := gomp3.NewDecoder(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", codec.ErrMalformedFile, err)
	}

	frames := int64(-1)
	if l := dec.Length(); l > 0 {
		frames = l / bytesPerFrame
	}

	return &stream{
		dec: dec,
		info: codec.Info{
			SampleRate: dec.SampleRate(),
			Channels:   channels,
			Frames:     frames,
			Major:      codec.MajorMPEG,
			Subtype:    codec.SubtypeMPEG,
			Endian:     codec.EndianFile,
			Seekable:   true,
		},
	}, nil
}
