// SPDX-License-Identifier: EPL-2.0

// Package raw reads and writes headerless PCM. There is no container to
// parse and no codec to run, so unlike its sibling packages this one has
// no external engine to delegate to: it only shuttles bytes.
package raw

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/sndio/codec"
)

// Subtypes lists the encodings this package can read and write.
var Subtypes = []codec.SubtypeFormat{
	codec.SubtypePCMS8,
	codec.SubtypePCMU8,
	codec.SubtypePCM16,
	codec.SubtypePCM24,
	codec.SubtypePCM32,
}

func supported(s codec.SubtypeFormat) bool {
	for _, st := range Subtypes {
		if st == s {
			return true
		}
	}
	return false
}

func byteOrder(e codec.Endian) (binary.ByteOrder, error) {
	switch e {
	case codec.EndianFile, codec.EndianLittle, codec.EndianCPU:
		// Raw has no file order; default little, the common case.
		return binary.LittleEndian, nil
	case codec.EndianBig:
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("%w: endian %d", codec.ErrInvalidParameter, e)
	}
}

func validate(info codec.Info) (binary.ByteOrder, error) {
	if info.SampleRate <= 0 || info.Channels <= 0 {
		return nil, fmt.Errorf("%w: raw needs samplerate and channels", codec.ErrInvalidParameter)
	}
	if !supported(info.Subtype) {
		return nil, fmt.Errorf("%w: raw with %s", codec.ErrUnsupportedEncoding, info.Subtype)
	}
	return byteOrder(info.Endian)
}

func decodeSample(b []byte, subtype codec.SubtypeFormat, order binary.ByteOrder) int32 {
	switch subtype {
	case codec.SubtypePCMS8:
		return int32(int8(b[0]))
	case codec.SubtypePCMU8:
		return int32(b[0]) - 128
	case codec.SubtypePCM16:
		return int32(int16(order.Uint16(b)))
	case codec.SubtypePCM24:
		var v uint32
		if order == binary.BigEndian {
			v = uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
		} else {
			v = uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])
		}
		// Sign-extend 24 bits.
		return int32(v<<8) >> 8
	default: // SubtypePCM32
		return int32(order.Uint32(b))
	}
}

func encodeSample(b []byte, v int32, subtype codec.SubtypeFormat, order binary.ByteOrder) {
	switch subtype {
	case codec.SubtypePCMS8:
		b[0] = byte(int8(v))
	case codec.SubtypePCMU8:
		b[0] = byte(v + 128)
	case codec.SubtypePCM16:
		order.PutUint16(b, uint16(int16(v)))
	case codec.SubtypePCM24:
		u := uint32(v)
		if order == binary.BigEndian {
			b[0], b[1], b[2] = byte(u>>16), byte(u>>8), byte(u)
		} else {
			b[0], b[1], b[2] = byte(u), byte(u>>8), byte(u>>16)
		}
	default: // SubtypePCM32
		order.PutUint32(b, uint32(v))
	}
}

type stream struct {
	rs    io.ReadSeeker
	info  codec.Info
	order binary.ByteOrder
	buf   []byte
}

func (s *stream) Info() codec.Info                 { return s.info }
func (s *stream) Close() error                     { return nil }
func (s *stream) Tag(codec.TagType) (string, bool) { return "", false }

func (s *stream) SeekFrame(frame int64) error {
	if _, err := s.rs.Seek(frame*int64(s.info.BlockAlign()), io.SeekStart); err != nil {
		return fmt.Errorf("%w: %w", codec.ErrInvalidSeek, err)
	}
	return nil
}

func (s *stream) ReadFrames(dst []int32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	width := s.info.Subtype.Width() / 8
	need := len(dst) * width
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.rs, s.buf)
	samples := n / width
	for i := range samples {
		dst[i] = decodeSample(s.buf[i*width:(i+1)*width], s.info.Subtype, s.order)
	}

	if samples == 0 {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, io.EOF
		}
		if err != nil {
			return 0, err
		}
		return 0, nil
	}
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return samples / s.info.Channels, err
	}
	return samples / s.info.Channels, nil
}

// NewReader interprets rs as headerless PCM described by info. The
// caller must supply sample rate, channel count and subtype; there is
// no header to detect them from.
func NewReader(rs io.ReadSeeker, info codec.Info) (codec.Stream, error) {
	order, err := validate(info)
	if err != nil {
		return nil, err
	}

	info.Major = codec.MajorRaw
	info.Seekable = true
	info.Frames = -1
	if end, err := rs.Seek(0, io.SeekEnd); err == nil {
		info.Frames = end / int64(info.BlockAlign())
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("sndio/raw: rewind: %w", err)
		}
	}

	return &stream{rs: rs, info: info, order: order}, nil
}

type writer struct {
	ws     io.WriteSeeker
	info   codec.Info
	order  binary.ByteOrder
	buf    []byte
	frames int64
}

// NewWriter writes headerless PCM described by info to ws.
func NewWriter(ws io.WriteSeeker, info codec.Info) (codec.Writer, error) {
	order, err := validate(info)
	if err != nil {
		return nil, err
	}

	info.Major = codec.MajorRaw
	info.Seekable = true
	info.Frames = 0

	return &writer{ws: ws, info: info, order: order}, nil
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

	width := w.info.Subtype.Width() / 8
	need := len(src) * width
	if cap(w.buf) < need {
		w.buf = make([]byte, need)
	}
	w.buf = w.buf[:need]

	for i, v := range src {
		encodeSample(w.buf[i*width:(i+1)*width], v, w.info.Subtype, w.order)
	}

	n, err := w.ws.Write(w.buf)
	frames := n / width / w.info.Channels
	w.frames += int64(frames)
	if err != nil {
		return frames, err
	}
	if n < need {
		return frames, codec.ErrShortWrite
	}
	return frames, nil
}

func (w *writer) SetTag(codec.TagType, string) error {
	return fmt.Errorf("%w: raw pcm has no tags", codec.ErrUnsupportedEncoding)
}

func (w *writer) Close() error { return nil }
