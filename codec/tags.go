// SPDX-License-Identifier: EPL-2.0

package codec

import "strings"

// TagType names a string metadata field of an audio file.
type TagType int

const (
	TagTitle TagType = iota
	TagCopyright
	TagSoftware
	TagArtist
	TagComment
	TagDate
	TagAlbum
	TagLicense
	TagTrackNumber
	TagGenre
)

func (t TagType) String() string {
	switch t {
	case TagTitle:
		return "title"
	case TagCopyright:
		return "copyright"
	case TagSoftware:
		return "software"
	case TagArtist:
		return "artist"
	case TagComment:
		return "comment"
	case TagDate:
		return "date"
	case TagAlbum:
		return "album"
	case TagLicense:
		return "license"
	case TagTrackNumber:
		return "tracknumber"
	case TagGenre:
		return "genre"
	default:
		return "unknown"
	}
}

// AllTags lists every tag type, in declaration order.
func AllTags() []TagType {
	return []TagType{
		TagTitle, TagCopyright, TagSoftware, TagArtist, TagComment,
		TagDate, TagAlbum, TagLicense, TagTrackNumber, TagGenre,
	}
}

// vorbisKeys maps Vorbis-comment field names (upper case) to tag types.
// Shared by the FLAC and OGG backends, which store tags in the same
// comment block layout.
var vorbisKeys = map[string]TagType{
	"TITLE":       TagTitle,
	"COPYRIGHT":   TagCopyright,
	"ENCODER":     TagSoftware,
	"ARTIST":      TagArtist,
	"COMMENT":     TagComment,
	"DESCRIPTION": TagComment,
	"DATE":        TagDate,
	"ALBUM":       TagAlbum,
	"LICENSE":     TagLicense,
	"TRACKNUMBER": TagTrackNumber,
	"GENRE":       TagGenre,
}

// TagsFromVorbisComments folds "KEY=value" comment strings into a tag
// map. Unknown keys are ignored; the first occurrence of a key wins.
func TagsFromVorbisComments(comments []string) map[TagType]string {
	out := make(map[TagType]string)
	for _, c := range comments {
		key, value, ok := strings.Cut(c, "=")
		if !ok {
			continue
		}
		t, ok := vorbisKeys[strings.ToUpper(key)]
		if !ok {
			continue
		}
		if _, dup := out[t]; dup {
			continue
		}
		out[t] = value
	}
	return out
}
