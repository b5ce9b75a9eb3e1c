package subtitle

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeAcceptsValidCue(t *testing.T) {
	cue, err := Normalize(3, RawCue{Start: time.Second, End: 2 * time.Second, Text: "  hello\n"})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if cue.Index != 3 {
		t.Fatalf("expected index 3, got %d", cue.Index)
	}
	if cue.Text != "hello" {
		t.Fatalf("expected trimmed text, got %q", cue.Text)
	}
}

func TestNormalizeRejectsMalformedCues(t *testing.T) {
	cases := []struct {
		name string
		raw  RawCue
	}{
		{"start after end", RawCue{Start: 2 * time.Second, End: time.Second, Text: "x"}},
		{"negative start", RawCue{Start: -time.Second, End: time.Second, Text: "x"}},
		{"negative end", RawCue{Start: 0, End: -time.Second, Text: "x"}},
		{"empty text", RawCue{Start: 0, End: time.Second, Text: "   \n  "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Normalize(0, tc.raw); !errors.Is(err, ErrMalformedCue) {
				t.Fatalf("expected ErrMalformedCue, got %v", err)
			}
		})
	}
}

func TestNormalizeAllowsZeroLengthCue(t *testing.T) {
	if _, err := Normalize(0, RawCue{Start: time.Second, End: time.Second, Text: "x"}); err != nil {
		t.Fatalf("zero-length cue should normalize: %v", err)
	}
}
