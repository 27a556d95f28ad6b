// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinels_Distinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrUnrecognisedFormat, ErrUnsupportedEncoding, ErrMalformedFile,
		ErrUnsupportedMode, ErrInvalidParameter, ErrChannelMismatch,
		ErrInvalidSeek, ErrNotSeekable, ErrShortWrite,
		ErrClosed, ErrNotReadable, ErrNotWritable,
	}

	for i, a := range sentinels {
		if a == nil {
			t.Fatalf("sentinel %d is nil", i)
		}
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v matches %v", a, b)
			}
		}
	}
}

func TestSentinels_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("opening file: %w", ErrUnrecognisedFormat)
	if !errors.Is(wrapped, ErrUnrecognisedFormat) {
		t.Error("errors.Is() failed for wrapped ErrUnrecognisedFormat")
	}
	if errors.Is(wrapped, ErrMalformedFile) {
		t.Error("errors.Is() matched an unrelated sentinel")
	}
}
