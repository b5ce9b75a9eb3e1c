package subtitle

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedCue marks cue records that cannot be normalized. Malformed
// cues are dropped from their file's sequence; they are never fatal.
var ErrMalformedCue = errors.New("malformed cue")

// RawCue is a cue record as read by a parser, before validation.
type RawCue struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// Cue is a validated subtitle cue. Index is the cue's position within its
// file's normalized sequence and is strictly increasing across the file.
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// Normalize validates a raw cue and assigns it the given sequence index.
func Normalize(index int, raw RawCue) (Cue, error) {
	if raw.Start < 0 || raw.End < 0 {
		return Cue{}, fmt.Errorf("%w: negative timestamp %s --> %s", ErrMalformedCue, raw.Start, raw.End)
	}
	if raw.Start > raw.End {
		return Cue{}, fmt.Errorf("%w: start %s after end %s", ErrMalformedCue, raw.Start, raw.End)
	}
	text := strings.TrimSpace(raw.Text)
	if text == "" {
		return Cue{}, fmt.Errorf("%w: empty text", ErrMalformedCue)
	}
	return Cue{Index: index, Start: raw.Start, End: raw.End, Text: text}, nil
}
