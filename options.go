// SPDX-License-Identifier: EPL-2.0

package sndio

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/sndio/codec"
	"github.com/ik5/sndio/formats/raw"
)

// Mode is the intended access mode of a File.
type Mode int

const (
	ModeRead Mode = iota
	ModeWrite
	ModeReadWrite
)

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	case ModeReadWrite:
		return "read-write"
	default:
		return "unknown"
	}
}

// RawOptions describes how to interpret a headerless PCM file opened
// for reading. All fields except Endian are required.
type RawOptions struct {
	SampleRate int
	Channels   int
	Subtype    SubtypeFormat
	Endian     Endian
}

// WriteOptions describes the target format of a file opened for
// writing. Major and Subtype are both required; the backends refuse
// ambiguous write formats.
type WriteOptions struct {
	Major      MajorFormat
	Subtype    SubtypeFormat
	Endian     Endian
	SampleRate int
	Channels   int
}

// Validate reports whether the combination is writable by this build.
func (o WriteOptions) Validate() error {
	if o.SampleRate <= 0 {
		return fmt.Errorf("%w: samplerate %d, expect a positive number", ErrInvalidParameter, o.SampleRate)
	}
	if o.Channels <= 0 {
		return fmt.Errorf("%w: channels %d, expect a positive number", ErrInvalidParameter, o.Channels)
	}
	if !CheckFormat(o.Major, o.Subtype, o.Endian, o.SampleRate, o.Channels) {
		return fmt.Errorf("%w: %s/%s (%s endian)", ErrUnsupportedEncoding, o.Major, o.Subtype, o.Endian)
	}
	return nil
}

// OpenOptions is the full open configuration. The zero value of Raw
// and Write select auto-detection and refuse writing, respectively.
type OpenOptions struct {
	Mode Mode
	// Raw, when non-nil, reads the file as headerless PCM instead of
	// auto-detecting a container.
	Raw *RawOptions
	// Write is required for ModeWrite.
	Write *WriteOptions
}

// Open opens path read-only with container auto-detection.
func Open(path string) (*File, error) {
	return OpenFile(path, OpenOptions{Mode: ModeRead})
}

// OpenRaw opens path read-only as headerless PCM.
func OpenRaw(path string, o RawOptions) (*File, error) {
	return OpenFile(path, OpenOptions{Mode: ModeRead, Raw: &o})
}

// Create creates or truncates path and opens it write-only in the
// given format.
func Create(path string, o WriteOptions) (*File, error) {
	return OpenFile(path, OpenOptions{Mode: ModeWrite, Write: &o})
}

// OpenFile is the generalized open call the convenience constructors
// delegate to.
func OpenFile(path string, o OpenOptions) (*File, error) {
	switch o.Mode {
	case ModeRead:
		return openRead(path, o.Raw)
	case ModeWrite:
		return openWrite(path, o.Write)
	case ModeReadWrite:
		// The linked engines are streaming codecs; none can reopen a
		// finished container for update.
		return nil, fmt.Errorf("sndio: open %s: %w", path, ErrUnsupportedMode)
	default:
		return nil, fmt.Errorf("sndio: open %s: mode %d: %w", path, o.Mode, ErrInvalidParameter)
	}
}

func openRead(path string, rawOpts *RawOptions) (*File, error) {
	osf, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sndio: open %s: %w", path, err)
	}

	var (
		stream codec.Stream
		reopen func() (codec.Stream, error)
	)
	if rawOpts != nil {
		info := codec.Info{
			SampleRate: rawOpts.SampleRate,
			Channels:   rawOpts.Channels,
			Subtype:    rawOpts.Subtype,
			Endian:     rawOpts.Endian,
		}
		stream, err = raw.NewReader(osf, info)
		reopen = func() (codec.Stream, error) {
			if _, err := osf.Seek(0, io.SeekStart); err != nil {
				return nil, err
			}
			return raw.NewReader(osf, info)
		}
	} else {
		var drv codec.Driver
		drv, err = detect(osf)
		if err == nil {
			stream, err = drv.OpenRead(osf)
			reopen = func() (codec.Stream, error) {
				if _, err := osf.Seek(0, io.SeekStart); err != nil {
					return nil, err
				}
				return drv.OpenRead(osf)
			}
		}
	}
	if err != nil {
		osf.Close()
		return nil, fmt.Errorf("sndio: open %s: %w", path, err)
	}

	return &File{
		path:   path,
		mode:   ModeRead,
		f:      osf,
		info:   stream.Info(),
		stream: stream,
		reopen: reopen,
	}, nil
}

// detect reads the first bytes of f and matches them against the
// registered drivers, rewinding f either way.
func detect(f *os.File) (codec.Driver, error) {
	head := make([]byte, 12)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		if err == io.EOF {
			return codec.Driver{}, ErrUnrecognisedFormat
		}
		return codec.Driver{}, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return codec.Driver{}, err
	}

	drv, ok := registry.Detect(head[:n])
	if !ok {
		return codec.Driver{}, ErrUnrecognisedFormat
	}
	return drv, nil
}

func openWrite(path string, o *WriteOptions) (*File, error) {
	if o == nil {
		return nil, fmt.Errorf("sndio: open %s: write options required: %w", path, ErrInvalidParameter)
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("sndio: open %s: %w", path, err)
	}

	drv, ok := registry.Lookup(o.Major)
	if !ok || drv.OpenWrite == nil {
		return nil, fmt.Errorf("sndio: open %s: no %s encoder: %w", path, o.Major, ErrUnsupportedEncoding)
	}

	osf, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("sndio: open %s: %w", path, err)
	}

	writer, err := drv.OpenWrite(osf, codec.Info{
		SampleRate: o.SampleRate,
		Channels:   o.Channels,
		Major:      o.Major,
		Subtype:    o.Subtype,
		Endian:     o.Endian,
	})
	if err != nil {
		osf.Close()
		return nil, fmt.Errorf("sndio: open %s: %w", path, err)
	}

	return &File{
		path:   path,
		mode:   ModeWrite,
		f:      osf,
		info:   writer.Info(),
		writer: writer,
		wtags:  make(map[TagType]string),
	}, nil
}
