// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/sndio/codec"
)

// WriteSubtypes lists the encodings the WAV encoder accepts.
var WriteSubtypes = []codec.SubtypeFormat{
	codec.SubtypePCMU8,
	codec.SubtypePCM16,
	codec.SubtypePCM24,
	codec.SubtypePCM32,
}

type writer struct {
	enc    *wav.Encoder
	info   codec.Info
	tags   map[codec.TagType]string
	intBuf *goaudio.IntBuffer
	frames int64
	closed bool
}

// NewWriter opens a WAV encoding sink on ws, delegating header layout
// and chunk bookkeeping to go-audio/wav.
func NewWriter(ws io.WriteSeeker, info codec.Info) (codec.Writer, error) {
	found := false
	for _, st := range WriteSubtypes {
		if st == info.Subtype {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: wav with %s", codec.ErrUnsupportedEncoding, info.Subtype)
	}
	// WAV is little-endian only.
	if info.Endian != codec.EndianFile && info.Endian != codec.EndianLittle {
		return nil, fmt.Errorf("%w: wav is little-endian", codec.ErrInvalidParameter)
	}

	const wavFormatPCM = 1
	enc := wav.NewEncoder(ws, info.SampleRate, info.Subtype.Width(), info.Channels, wavFormatPCM)

	info.Major = codec.MajorWAV
	info.Endian = codec.EndianFile
	info.Seekable = true
	info.Frames = 0

	return &writer{
		enc:  enc,
		info: info,
		tags: make(map[codec.TagType]string),
	}, nil
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

	unsigned := w.info.Subtype == codec.SubtypePCMU8
	for i, v := range src {
		if unsigned {
			v += 128
		}
		w.intBuf.Data[i] = int(v)
	}

	if err := w.enc.Write(w.intBuf); err != nil {
		return 0, fmt.Errorf("sndio/wav: write: %w", err)
	}
	n := len(src) / w.info.Channels
	w.frames += int64(n)
	return n, nil
}

func (w *writer) SetTag(t codec.TagType, v string) error {
	if t == codec.TagLicense {
		// LIST-INFO has no license field.
		return fmt.Errorf("%w: wav has no %s tag", codec.ErrUnsupportedEncoding, t)
	}
	w.tags[t] = v
	return nil
}

func (w *writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if len(w.tags) > 0 {
		w.enc.Metadata = metadataFromTags(w.tags)
	}
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("sndio/wav: close: %w", err)
	}
	return nil
}

func metadataFromTags(tags map[codec.TagType]string) *wav.Metadata {
	m := &wav.Metadata{}
	for t, v := range tags {
		switch t {
		case codec.TagTitle:
			m.Title = v
		case codec.TagArtist:
			m.Artist = v
		case codec.TagCopyright:
			m.Copyright = v
		case codec.TagSoftware:
			m.Software = v
		case codec.TagComment:
			m.Comments = v
		case codec.TagDate:
			m.CreationDate = v
		case codec.TagAlbum:
			m.Product = v
		case codec.TagTrackNumber:
			m.TrackNbr = v
		case codec.TagGenre:
			m.Genre = v
		}
	}
	return m
}
