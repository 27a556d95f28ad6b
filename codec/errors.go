// SPDX-License-Identifier: EPL-2.0

package codec

import "errors"

// The closed error taxonomy shared by the root package and all format
// backends. Backends never surface a third-party library's failure
// undecorated; they wrap it with one of these sentinels.
var (
	// Open failures.
	ErrUnrecognisedFormat  = errors.New("sndio: unrecognised audio format")
	ErrUnsupportedEncoding = errors.New("sndio: encoding not supported by this build")
	ErrMalformedFile       = errors.New("sndio: malformed audio file")
	ErrUnsupportedMode     = errors.New("sndio: open mode not supported by this build")

	// Argument failures.
	ErrInvalidParameter = errors.New("sndio: invalid parameter")
	ErrChannelMismatch  = errors.New("sndio: buffer size must be a multiple of the channel count")
	ErrInvalidSeek      = errors.New("sndio: seek position out of range")
	ErrNotSeekable      = errors.New("sndio: stream is not seekable")

	// I/O failures.
	ErrShortWrite = errors.New("sndio: short write")

	// State failures.
	ErrClosed      = errors.New("sndio: file already closed")
	ErrNotReadable = errors.New("sndio: file not opened for reading")
	ErrNotWritable = errors.New("sndio: file not opened for writing")
)
