// SPDX-License-Identifier: EPL-2.0

package sndio

import "github.com/ik5/sndio/codec"

// The error taxonomy, re-exported from codec so callers only import
// this package. Every failure crossing the backend boundary is wrapped
// in exactly one of these sentinels (plus the original cause); match
// with errors.Is.
//
// The sentinels fall into four classes:
//   - open errors: ErrUnrecognisedFormat, ErrUnsupportedEncoding,
//     ErrMalformedFile, ErrUnsupportedMode (OS-level open failures are
//     returned wrapped, matchable with errors.Is(err, fs.ErrNotExist)
//     and friends)
//   - argument errors: ErrInvalidParameter, ErrChannelMismatch,
//     ErrInvalidSeek, ErrNotSeekable
//   - I/O errors: ErrShortWrite, plus wrapped read/write failures
//   - state errors: ErrClosed, ErrNotReadable, ErrNotWritable
var (
	ErrUnrecognisedFormat  = codec.ErrUnrecognisedFormat
	ErrUnsupportedEncoding = codec.ErrUnsupportedEncoding
	ErrMalformedFile       = codec.ErrMalformedFile
	ErrUnsupportedMode     = codec.ErrUnsupportedMode

	ErrInvalidParameter = codec.ErrInvalidParameter
	ErrChannelMismatch  = codec.ErrChannelMismatch
	ErrInvalidSeek      = codec.ErrInvalidSeek
	ErrNotSeekable      = codec.ErrNotSeekable

	ErrShortWrite = codec.ErrShortWrite

	ErrClosed      = codec.ErrClosed
	ErrNotReadable = codec.ErrNotReadable
	ErrNotWritable = codec.ErrNotWritable
)
