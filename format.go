// SPDX-License-Identifier: EPL-2.0

package sndio

import (
	"github.com/ik5/sndio/codec"
	"github.com/ik5/sndio/formats/aiff"
	"github.com/ik5/sndio/formats/flac"
	"github.com/ik5/sndio/formats/mp3"
	"github.com/ik5/sndio/formats/raw"
	"github.com/ik5/sndio/formats/vorbis"
	"github.com/ik5/sndio/formats/wav"
)

// Aliases to codec types so callers only import this package.
type (
	Info          = codec.Info
	MajorFormat   = codec.MajorFormat
	SubtypeFormat = codec.SubtypeFormat
	Endian        = codec.Endian
	TagType       = codec.TagType
)

const (
	MajorUnknown = codec.MajorUnknown
	MajorWAV     = codec.MajorWAV
	MajorAIFF    = codec.MajorAIFF
	MajorFLAC    = codec.MajorFLAC
	MajorOGG     = codec.MajorOGG
	MajorMPEG    = codec.MajorMPEG
	MajorRaw     = codec.MajorRaw
)

const (
	SubtypeUnknown = codec.SubtypeUnknown
	SubtypePCMS8   = codec.SubtypePCMS8
	SubtypePCMU8   = codec.SubtypePCMU8
	SubtypePCM16   = codec.SubtypePCM16
	SubtypePCM24   = codec.SubtypePCM24
	SubtypePCM32   = codec.SubtypePCM32
	SubtypeFloat   = codec.SubtypeFloat
	SubtypeDouble  = codec.SubtypeDouble
	SubtypeVorbis  = codec.SubtypeVorbis
	SubtypeMPEG    = codec.SubtypeMPEG
)

const (
	EndianFile   = codec.EndianFile
	EndianLittle = codec.EndianLittle
	EndianBig    = codec.EndianBig
	EndianCPU    = codec.EndianCPU
)

const (
	TagTitle       = codec.TagTitle
	TagCopyright   = codec.TagCopyright
	TagSoftware    = codec.TagSoftware
	TagArtist      = codec.TagArtist
	TagComment     = codec.TagComment
	TagDate        = codec.TagDate
	TagAlbum       = codec.TagAlbum
	TagLicense     = codec.TagLicense
	TagTrackNumber = codec.TagTrackNumber
	TagGenre       = codec.TagGenre
)

// AllTags lists every tag type.
func AllTags() []TagType { return codec.AllTags() }

// registry holds the format backends linked into this build, in
// detection order. MPEG last: its sniffer is loose.
var registry = func() *codec.Registry {
	r := codec.NewRegistry()
	r.Register(codec.Driver{
		Major:         MajorWAV,
		Name:          "WAV (Microsoft)",
		Extension:     "wav",
		Sniff:         wav.Sniff,
		OpenRead:      wav.NewReader,
		OpenWrite:     wav.NewWriter,
		WriteSubtypes: wav.WriteSubtypes,
	})
	r.Register(codec.Driver{
		Major:         MajorAIFF,
		Name:          "AIFF (Apple/SGI)",
		Extension:     "aiff",
		Sniff:         aiff.Sniff,
		OpenRead:      aiff.NewReader,
		OpenWrite:     aiff.NewWriter,
		WriteSubtypes: aiff.WriteSubtypes,
	})
	r.Register(codec.Driver{
		Major:     MajorFLAC,
		Name:      "FLAC (Free Lossless Audio Codec)",
		Extension: "flac",
		Sniff:     flac.Sniff,
		OpenRead:  flac.NewReader,
	})
	r.Register(codec.Driver{
		Major:     MajorOGG,
		Name:      "Ogg (Xiph.Org)",
		Extension: "ogg",
		Sniff:     vorbis.Sniff,
		OpenRead:  vorbis.NewReader,
	})
	r.Register(codec.Driver{
		Major:     MajorMPEG,
		Name:      "MPEG audio",
		Extension: "mp3",
		Sniff:     mp3.Sniff,
		OpenRead:  mp3.NewReader,
	})
	r.Register(codec.Driver{
		Major:         MajorRaw,
		Name:          "RAW (header-less)",
		Extension:     "raw",
		OpenWrite:     raw.NewWriter,
		WriteSubtypes: raw.Subtypes,
	})
	return r
}()

// MajorInfo describes one supported container format.
type MajorInfo struct {
	Name      string
	Extension string
}

// SubtypeInfo describes one supported sample encoding.
type SubtypeInfo struct {
	Name string
}

// SupportedMajorFormats returns the container formats this build can
// open, keyed by format.
func SupportedMajorFormats() map[MajorFormat]MajorInfo {
	out := make(map[MajorFormat]MajorInfo)
	for _, d := range registry.Drivers() {
		out[d.Major] = MajorInfo{Name: d.Name, Extension: d.Extension}
	}
	return out
}

// SupportedSubtypes returns the sample encodings this build knows,
// keyed by subtype.
func SupportedSubtypes() map[SubtypeFormat]SubtypeInfo {
	return map[SubtypeFormat]SubtypeInfo{
		SubtypePCMS8:  {Name: "Signed 8 bit PCM"},
		SubtypePCMU8:  {Name: "Unsigned 8 bit PCM"},
		SubtypePCM16:  {Name: "Signed 16 bit PCM"},
		SubtypePCM24:  {Name: "Signed 24 bit PCM"},
		SubtypePCM32:  {Name: "Signed 32 bit PCM"},
		SubtypeVorbis: {Name: "Vorbis"},
		SubtypeMPEG:   {Name: "MPEG audio"},
	}
}

// DefaultSubtype returns the natural sample encoding for a container.
func DefaultSubtype(m MajorFormat) (SubtypeFormat, bool) {
	switch m {
	case MajorWAV, MajorAIFF, MajorFLAC, MajorRaw:
		return SubtypePCM16, true
	case MajorOGG:
		return SubtypeVorbis, true
	case MajorMPEG:
		return SubtypeMPEG, true
	default:
		return SubtypeUnknown, false
	}
}

// CheckFormat reports whether a write-format combination is valid for
// this build: a positive rate and channel count, a container with an
// encoder, a subtype that encoder accepts, and a byte order the
// container allows.
func CheckFormat(major MajorFormat, subtype SubtypeFormat, endian Endian, samplerate, channels int) bool {
	if samplerate <= 0 || channels <= 0 {
		return false
	}
	d, ok := registry.Lookup(major)
	if !ok || d.OpenWrite == nil || !d.CanWrite(subtype) {
		return false
	}
	switch major {
	case MajorWAV:
		return endian == EndianFile || endian == EndianLittle
	case MajorAIFF:
		return endian == EndianFile || endian == EndianBig
	default:
		return true
	}
}
