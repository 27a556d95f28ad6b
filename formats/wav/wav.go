// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
	"github.com/go-audio/wav"

	"github.com/ik5/sndio/codec"
)

// wavReader is an interface for wav.Decoder to allow testing.
type wavReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Sniff reports whether head starts a RIFF/WAVE container.
func Sniff(head []byte) bool {
	if len(head) < 12 {
		return false
	}
	return bytes.Equal(head[:4], riff.RiffID[:]) && bytes.Equal(head[8:12], wavFormatID())
}

func wavFormatID() []byte {
	id := riff.WavFormatID
	return id[:]
}

type stream struct {
	dec    wavReader
	info   codec.Info
	tags   map[codec.TagType]string
	intBuf *goaudio.IntBuffer
	format *goaudio.Format
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

	unsigned := s.info.Subtype == codec.SubtypePCMU8
	for i := range n {
		v := int32(s.intBuf.Data[i])
		if unsigned {
			// 8-bit WAV stores unsigned bytes; recenter to signed.
			v -= 128
		}
		dst[i] = v
	}

	if err != nil && err != io.EOF {
		return n / s.info.Channels, fmt.Errorf("%w: %w", codec.ErrMalformedFile, err)
	}
	return n / s.info.Channels, nil
}

// NewReader opens a WAV stream on rs, delegating all container parsing
// and sample decoding to go-audio/wav.
//
// Metadata lives in a LIST chunk that may sit before or after the data
// chunk, so the file is scanned twice: one pass for tags, a fresh
// decoder for PCM access.
func NewReader(rs io.ReadSeeker) (codec.Stream, error) {
	meta := wav.NewDecoder(rs)
	if !meta.IsValidFile() {
		return nil, codec.ErrMalformedFile
	}
	meta.ReadMetadata()
	tags := tagsFromMetadata(meta.Metadata)

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("sndio/wav: rewind: %w", err)
	}

	dec := wav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", codec.ErrMalformedFile, err)
	}

	subtype, ok := subtypeFor(dec.WavAudioFormat, int(dec.BitDepth))
	if !ok {
		return nil, fmt.Errorf("%w: wav audio format %d, %d bit",
			codec.ErrUnsupportedEncoding, dec.WavAudioFormat, dec.BitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", codec.ErrMalformedFile, err)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: invalid wav format chunk", codec.ErrMalformedFile)
	}

	blockAlign := format.NumChannels * subtype.Width() / 8
	frames := int64(-1)
	if dec.PCMSize > 0 && blockAlign > 0 {
		frames = int64(dec.PCMSize) / int64(blockAlign)
	} else if dec.PCMSize == 0 {
		frames = 0
	}

	return &stream{
		dec: dec,
		info: codec.Info{
			SampleRate: format.SampleRate,
			Channels:   format.NumChannels,
			Frames:     frames,
			Major:      codec.MajorWAV,
			Subtype:    subtype,
			Endian:     codec.EndianFile,
			Seekable:   true,
		},
		tags:   tags,
		format: format,
	}, nil
}

func subtypeFor(audioFormat uint16, bitDepth int) (codec.SubtypeFormat, bool) {
	// 1 is plain PCM, 0xFFFE is WAVE_FORMAT_EXTENSIBLE carrying PCM.
	if audioFormat != 1 && audioFormat != 0xFFFE {
		return codec.SubtypeUnknown, false
	}
	switch bitDepth {
	case 8:
		return codec.SubtypePCMU8, true
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

func tagsFromMetadata(m *wav.Metadata) map[codec.TagType]string {
	tags := make(map[codec.TagType]string)
	if m == nil {
		return tags
	}
	set := func(t codec.TagType, v string) {
		if v != "" {
			tags[t] = v
		}
	}
	set(codec.TagTitle, m.Title)
	set(codec.TagArtist, m.Artist)
	set(codec.TagCopyright, m.Copyright)
	set(codec.TagSoftware, m.Software)
	set(codec.TagComment, m.Comments)
	set(codec.TagDate, m.CreationDate)
	set(codec.TagAlbum, m.Product)
	set(codec.TagTrackNumber, m.TrackNbr)
	set(codec.TagGenre, m.Genre)
	return tags
}
