// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"

	"github.com/ik5/sndio/codec"
	"github.com/ik5/sndio/utils"
)

// frameParser is an interface for flac.Stream to allow testing.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

// Sniff reports whether head starts a FLAC stream.
func Sniff(head []byte) bool {
	return len(head) >= 4 && bytes.Equal(head[:4], []byte("fLaC"))
}

type stream struct {
	dec      frameParser
	info     codec.Info
	tags     map[codec.TagType]string
	fromBits int     // bit depth of the encoded stream
	pending  []int32 // interleaved samples left over from the last block
}

func (s *stream) Info() codec.Info { return s.info }
func (s *stream) Close() error     { return nil }

func (s *stream) Tag(t codec.TagType) (string, bool) {
	v, ok := s.tags[t]
	return v, ok
}

func (s *stream) ReadFrames(dst []int32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	filled := copy(dst, s.pending)
	s.pending = s.pending[filled:]

	for filled < len(dst) {
		f, err := s.dec.ParseNext()
		if err == io.EOF {
			if filled == 0 {
				return 0, io.EOF
			}
			break
		}
		if err != nil {
			return filled / s.info.Channels, fmt.Errorf("%w: %w", codec.ErrMalformedFile, err)
		}

		block := s.interleave(f)
		n := copy(dst[filled:], block)
		filled += n
		if n < len(block) {
			s.pending = append(s.pending[:0], block[n:]...)
		}
	}

	return filled / s.info.Channels, nil
}

// interleave flattens a decoded FLAC block into interleaved samples at
// the stream's declared subtype width.
func (s *stream) interleave(f *frame.Frame) []int32 {
	ch := len(f.Subframes)
	if ch == 0 {
		return nil
	}
	frames := len(f.Subframes[0].Samples)
	to := s.info.Subtype.Width()

	out := make([]int32, 0, frames*ch)
	for i := 0; i < frames; i++ {
		for c := 0; c < ch; c++ {
			out = append(out, utils.ShiftPCM(f.Subframes[c].Samples[i], s.fromBits, to))
		}
	}
	return out
}

// NewReader opens a FLAC stream on rs, delegating stream parsing and
// decoding to mewkiz/flac. Tags come from the VorbisComment metadata
// block. The engine exposes no encoder, so FLAC is read-only here.
func NewReader(rs io.ReadSeeker) (codec.Stream, error) {
	dec, err := flac.Parse(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", codec.ErrMalformedFile, err)
	}

	info := dec.Info
	if info == nil || info.NChannels == 0 || info.SampleRate == 0 {
		return nil, fmt.Errorf("%w: missing STREAMINFO", codec.ErrMalformedFile)
	}

	subtype := codec.SubtypePCM16
	if info.BitsPerSample > 16 {
		subtype = codec.SubtypePCM24
	}
	if info.BitsPerSample > 24 {
		return nil, fmt.Errorf("%w: flac %d bit", codec.ErrUnsupportedEncoding, info.BitsPerSample)
	}

	tags := make(map[codec.TagType]string)
	for _, block := range dec.Blocks {
		vc, ok := block.Body.(*meta.VorbisComment)
		if !ok {
			continue
		}
		comments := make([]string, 0, len(vc.Tags))
		for _, kv := range vc.Tags {
			comments = append(comments, kv[0]+"="+kv[1])
		}
		tags = codec.TagsFromVorbisComments(comments)
		break
	}

	return &stream{
		dec: dec,
		info: codec.Info{
			SampleRate: int(info.SampleRate),
			Channels:   int(info.NChannels),
			Frames:     int64(info.NSamples),
			Major:      codec.MajorFLAC,
			Subtype:    subtype,
			Endian:     codec.EndianFile,
			Seekable:   true,
		},
		tags:     tags,
		fromBits: int(info.BitsPerSample),
	}, nil
}
