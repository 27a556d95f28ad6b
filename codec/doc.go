// SPDX-License-Identifier: EPL-2.0

// Package codec defines the contracts between the sndio root package and
// its format backends.
//
// A backend wraps one external codec/container engine and adapts it to
// two small interfaces:
//   - Stream for decoding (interleaved int32 samples at native depth)
//   - Writer for encoding
//
// Backends register themselves as a Driver in a Registry. The registry
// preserves registration order, which doubles as detection priority:
// containers with strong magic (RIFF, FORM, fLaC, OggS) are tried before
// loose ones (MPEG frame sync).
//
// This package contains no parsing or codec logic of its own. Everything
// that touches bytes of an audio file lives in the external engines the
// formats packages delegate to.
package codec
