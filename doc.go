// SPDX-License-Identifier: EPL-2.0

// Package sndio reads and writes audio files through a single safe,
// panic-free interface. All container parsing and codec work is done by
// external engines (go-audio, go-mp3, oggvorbis, mewkiz/flac); this
// package only owns handles, negotiates buffers, and translates errors.
//
// # Supported Formats
//
//   - WAV (PCM 8/16/24/32 bit) — read and write, with LIST-INFO tags
//   - AIFF (PCM 8/16/24/32 bit) — read and write
//   - FLAC (16/24 bit) — read, with Vorbis-comment tags
//   - Ogg Vorbis — read, with Vorbis-comment tags
//   - MPEG audio (MP3) — read
//   - RAW headerless PCM — read and write
//
// Support is a property of the linked engines, not of this package;
// asking for a combination no engine handles fails with
// ErrUnsupportedEncoding.
//
// # Quick Start
//
// Open a file and read its samples:
//
//	f, err := sndio.Open("song.flac")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	info, _ := f.Info()
//	fmt.Printf("%d Hz, %d channels, %d frames\n",
//	    info.SampleRate, info.Channels, info.Frames)
//
//	data, err := f.ReadAllFloat32()
//
// Write a stereo 16-bit WAV:
//
//	f, err := sndio.Create("out.wav", sndio.WriteOptions{
//	    Major:      sndio.MajorWAV,
//	    Subtype:    sndio.SubtypePCM16,
//	    Endian:     sndio.EndianFile,
//	    SampleRate: 44100,
//	    Channels:   2,
//	})
//	if err != nil {
//	    return err
//	}
//	n, err := f.WriteInt16(samples) // interleaved, len divisible by 2
//	err = f.Close()                 // flushes the header
//
// # Frames and Buffers
//
// All I/O is in frames: one sample per channel at one time index.
// Buffers are interleaved, and their length must be a multiple of the
// channel count. Read calls return fewer frames than requested only at
// end of stream; a further read returns 0 frames and no error.
//
// Reads and writes are available at four widths (int16, int32,
// float32, float64) regardless of the file's native depth; samples are
// rescaled the way libsndfile does, with floats normalized to [-1, 1].
//
// # Matrix I/O
//
// The gonum integration exposes the same operations on (frames ×
// channels) matrices:
//
//	m, err := f.ReadAllMatrix() // *mat.Dense
//
// # Tags
//
// String metadata (title, artist, ...) is read with Tag and written
// with SetTag. A missing field is (“”, false), not an error:
//
//	if title, ok := f.Tag(sndio.TagTitle); ok {
//	    fmt.Println(title)
//	}
//
// # Errors
//
// Every failure is returned, none are logged or swallowed, and each is
// wrapped in one sentinel of the closed taxonomy in errors.go. Match
// with errors.Is:
//
//	if errors.Is(err, sndio.ErrUnrecognisedFormat) { ... }
//
// # Concurrency
//
// A File is single-threaded: it owns one cursor and one codec state.
// Use external synchronization to share one, or open distinct Files —
// they are fully independent (see ProbeAll).
package sndio
