// SPDX-License-Identifier: EPL-2.0

package codec

// MajorFormat identifies an audio container format.
type MajorFormat int

const (
	MajorUnknown MajorFormat = iota
	MajorWAV
	MajorAIFF
	MajorFLAC
	MajorOGG
	MajorMPEG
	MajorRaw
)

func (m MajorFormat) String() string {
	switch m {
	case MajorWAV:
		return "wav"
	case MajorAIFF:
		return "aiff"
	case MajorFLAC:
		return "flac"
	case MajorOGG:
		return "ogg"
	case MajorMPEG:
		return "mpeg"
	case MajorRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// SubtypeFormat identifies the sample encoding inside a container.
type SubtypeFormat int

const (
	SubtypeUnknown SubtypeFormat = iota
	SubtypePCMS8
	SubtypePCMU8
	SubtypePCM16
	SubtypePCM24
	SubtypePCM32
	SubtypeFloat
	SubtypeDouble
	SubtypeVorbis
	SubtypeMPEG
)

func (s SubtypeFormat) String() string {
	switch s {
	case SubtypePCMS8:
		return "pcm_s8"
	case SubtypePCMU8:
		return "pcm_u8"
	case SubtypePCM16:
		return "pcm_16"
	case SubtypePCM24:
		return "pcm_24"
	case SubtypePCM32:
		return "pcm_32"
	case SubtypeFloat:
		return "float"
	case SubtypeDouble:
		return "double"
	case SubtypeVorbis:
		return "vorbis"
	case SubtypeMPEG:
		return "mpeg"
	default:
		return "unknown"
	}
}

// Width returns the bit depth sample values of this subtype carry.
// Compressed encodings decode to 16-bit values in this build.
func (s SubtypeFormat) Width() int {
	switch s {
	case SubtypePCMS8, SubtypePCMU8:
		return 8
	case SubtypePCM16, SubtypeVorbis, SubtypeMPEG:
		return 16
	case SubtypePCM24:
		return 24
	case SubtypePCM32, SubtypeFloat:
		return 32
	case SubtypeDouble:
		return 64
	default:
		return 0
	}
}

// Endian selects the byte order of stored samples. EndianFile is the
// container's native order and is what callers almost always want.
type Endian int

const (
	EndianFile Endian = iota
	EndianLittle
	EndianBig
	EndianCPU
)

func (e Endian) String() string {
	switch e {
	case EndianFile:
		return "file"
	case EndianLittle:
		return "little"
	case EndianBig:
		return "big"
	case EndianCPU:
		return "cpu"
	default:
		return "unknown"
	}
}
