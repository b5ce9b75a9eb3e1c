// Package subtitle holds the normalized cue model and the SRT parser that
// supplies cues to the clip finder.
//
// A RawCue is whatever the parser read off disk; Normalize turns it into a
// Cue with a stable index within its file, rejecting records whose
// timestamps or text are unusable. Durations carry millisecond precision,
// matching the SRT timestamp format.
package subtitle
