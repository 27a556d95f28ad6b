// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/sndio/codec"
	"github.com/ik5/sndio/utils"
)

// oggReader is an interface for oggvorbis.Reader to allow testing.
type oggReader interface {
	Read([]float32) (int, error)
	SetPosition(int64) error
}

// Sniff reports whether head starts an Ogg container.
func Sniff(head []byte) bool {
	return len(head) >= 4 && bytes.Equal(head[:4], []byte("OggS"))
}

type stream struct {
	dec      oggReader
	info     codec.Info
	tags     map[codec.TagType]string
	frameBuf []float32
}

func (s *stream) Info() codec.Info { return s.info }
func (s *stream) Close() error     { return nil }

func (s *stream) Tag(t codec.TagType) (string, bool) {
	v, ok := s.tags[t]
	return v, ok
}

func (s *stream) SeekFrame(frame int64) error {
	if err := s.dec.SetPosition(frame); err != nil {
		return fmt.Errorf("%w: %w", codec.ErrInvalidSeek, err)
	}
	return nil
}

func (s *stream) ReadFrames(dst []int32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.frameBuf) < len(dst) {
		s.frameBuf = make([]float32, len(dst))
	}
	s.frameBuf = s.frameBuf[:len(dst)]

	// oggvorbis counts interleaved values, not frames.
	n, err := s.dec.Read(s.frameBuf)
	if n == 0 {
		if err == io.EOF {
			return 0, io.EOF
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %w", codec.ErrMalformedFile, err)
		}
		return 0, nil
	}

	for i := range n {
		dst[i] = utils.Float64ToPCM(float64(s.frameBuf[i]), 16)
	}

	if err != nil && err != io.EOF {
		return n / s.info.Channels, fmt.Errorf("%w: %w", codec.ErrMalformedFile, err)
	}
	return n / s.info.Channels, nil
}

// NewReader opens an Ogg/Vorbis stream on rs, delegating all container
// and codec work to jfreymuth/oggvorbis. Decoded samples surface at
// 16-bit depth, matching the compressed subtype's declared width.
func NewReader(rs io.ReadSeeker) (codec.Stream, error) {
	comments, err := oggvorbis.GetCommentHeader(rs)
	tags := make(map[codec.TagType]string)
	if err == nil {
		tags = codec.TagsFromVorbisComments(comments.Comments)
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("sndio/vorbis: rewind: %w", err)
	}

	dec, err := oggvorbis.NewReader(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", codec.ErrMalformedFile, err)
	}

	return &stream{
		dec: dec,
		info: codec.Info{
			SampleRate: dec.SampleRate(),
			Channels:   dec.Channels(),
			Frames:     dec.Length(),
			Major:      codec.MajorOGG,
			Subtype:    codec.SubtypeVorbis,
			Endian:     codec.EndianFile,
			Seekable:   true,
		},
		tags:     tags,
		frameBuf: make([]float32, 4096),
	}, nil
}
