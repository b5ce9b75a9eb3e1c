package clipfind

import (
	"fmt"
	"time"

	"subclip/internal/subtitle"
)

// candidate is one matched cue padded into a clip window, before merging.
type candidate struct {
	start time.Duration
	end   time.Duration
	cues  []int
}

// validatePadding rejects negative padding values. Checked once by Find
// before any file work starts; the builder itself assumes valid inputs.
func validatePadding(lead, trail time.Duration) error {
	if lead < 0 {
		return fmt.Errorf("%w: lead padding %s is negative", ErrInvalidPadding, lead)
	}
	if trail < 0 {
		return fmt.Errorf("%w: trail padding %s is negative", ErrInvalidPadding, trail)
	}
	return nil
}

// fileBound returns the clamp limit for candidate intervals: the end of the
// last cue or the externally supplied file duration, whichever is larger.
func fileBound(cues []subtitle.Cue, supplied time.Duration) time.Duration {
	bound := supplied
	for _, cue := range cues {
		if cue.End > bound {
			bound = cue.End
		}
	}
	return bound
}

// buildCandidates pads each matched cue by lead/trail and clamps the result
// to [0, bound]. Candidates are emitted one per span even when generous
// padding makes neighbours overlap; merging is the resolver's job, which
// keeps the padding arithmetic testable on its own.
func buildCandidates(cues []subtitle.Cue, spans []MatchSpan, lead, trail, bound time.Duration) []candidate {
	byIndex := make(map[int]subtitle.Cue, len(cues))
	for _, cue := range cues {
		byIndex[cue.Index] = cue
	}
	candidates := make([]candidate, 0, len(spans))
	for _, span := range spans {
		cue, ok := byIndex[span.CueIndex]
		if !ok {
			continue
		}
		start := cue.Start - lead
		if start < 0 {
			start = 0
		}
		end := cue.End + trail
		if end > bound {
			end = bound
		}
		candidates = append(candidates, candidate{start: start, end: end, cues: []int{cue.Index}})
	}
	return candidates
}
