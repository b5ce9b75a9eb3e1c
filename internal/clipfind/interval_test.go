package clipfind

import (
	"errors"
	"testing"
	"time"

	"subclip/internal/subtitle"
)

func TestValidatePadding(t *testing.T) {
	if err := validatePadding(0, 0); err != nil {
		t.Fatalf("zero padding should be valid: %v", err)
	}
	if err := validatePadding(-time.Second, 0); !errors.Is(err, ErrInvalidPadding) {
		t.Fatalf("expected ErrInvalidPadding for negative lead, got %v", err)
	}
	if err := validatePadding(0, -time.Millisecond); !errors.Is(err, ErrInvalidPadding) {
		t.Fatalf("expected ErrInvalidPadding for negative trail, got %v", err)
	}
}

func TestFileBoundTakesLarger(t *testing.T) {
	cues := []subtitle.Cue{
		cue(0, 0, 10*time.Second, "a"),
		cue(1, 11*time.Second, 20*time.Second, "b"),
	}
	if got := fileBound(cues, 0); got != 20*time.Second {
		t.Fatalf("expected last cue end, got %v", got)
	}
	if got := fileBound(cues, time.Minute); got != time.Minute {
		t.Fatalf("expected supplied duration, got %v", got)
	}
}

func TestBuildCandidatesPadsAndClamps(t *testing.T) {
	cues := []subtitle.Cue{
		cue(0, 2*time.Second, 4*time.Second, "first"),
		cue(1, 58*time.Second, 59*time.Second, "last"),
	}
	spans := []MatchSpan{
		{CueIndex: 0, Kind: PatternLiteral},
		{CueIndex: 1, Kind: PatternLiteral},
	}
	got := buildCandidates(cues, spans, 5*time.Second, 5*time.Second, time.Minute)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].start != 0 {
		t.Fatalf("lead clamp: expected 0, got %v", got[0].start)
	}
	if got[0].end != 9*time.Second {
		t.Fatalf("expected padded end 9s, got %v", got[0].end)
	}
	if got[1].end != time.Minute {
		t.Fatalf("trail clamp: expected 1m, got %v", got[1].end)
	}
	if got[1].start != 53*time.Second {
		t.Fatalf("expected padded start 53s, got %v", got[1].start)
	}
}

func TestBuildCandidatesDoesNotMergeOverlaps(t *testing.T) {
	cues := []subtitle.Cue{
		cue(0, 10*time.Second, 12*time.Second, "cat"),
		cue(1, 12500*time.Millisecond, 14*time.Second, "cat sat"),
	}
	spans := []MatchSpan{{CueIndex: 0}, {CueIndex: 1}}
	got := buildCandidates(cues, spans, time.Second, time.Second, time.Hour)
	if len(got) != 2 {
		t.Fatalf("builder must emit overlapping candidates separately, got %d", len(got))
	}
}

func TestBuildCandidatesIgnoresUnknownIndices(t *testing.T) {
	cues := []subtitle.Cue{cue(0, 0, time.Second, "a")}
	got := buildCandidates(cues, []MatchSpan{{CueIndex: 99}}, 0, 0, time.Minute)
	if len(got) != 0 {
		t.Fatalf("expected no candidates for unknown cue index, got %d", len(got))
	}
}
