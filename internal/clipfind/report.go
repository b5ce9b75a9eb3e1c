package clipfind

import (
	"fmt"
	"strconv"
	"time"
)

// Seconds is a duration serialized as a fixed three-decimal second count.
// The fixed width keeps report output byte-identical across runs, which the
// deterministic-aggregation guarantee extends all the way to serialization.
type Seconds time.Duration

// Duration converts back to a time.Duration.
func (s Seconds) Duration() time.Duration { return time.Duration(s) }

func (s Seconds) String() string {
	return strconv.FormatFloat(time.Duration(s).Seconds(), 'f', 3, 64)
}

// MarshalJSON renders the value as a bare JSON number.
func (s Seconds) MarshalJSON() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalJSON accepts a JSON number of seconds.
func (s *Seconds) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("parse seconds: %w", err)
	}
	*s = Seconds(time.Duration(f * float64(time.Second)))
	return nil
}

// Clip is one final output interval. Cues lists every contributing cue
// index in ascending order, so callers can trace a clip back to its
// subtitle evidence.
type Clip struct {
	Start Seconds `json:"start"`
	End   Seconds `json:"end"`
	Cues  []int   `json:"cues"`
}

// FileReport holds one file's outcome. Clips are pairwise non-overlapping
// and sorted ascending by start. Error is set only when the cue source
// failed outright, in which case Clips is empty.
type FileReport struct {
	File        string `json:"file"`
	Clips       []Clip `json:"clips"`
	DroppedCues int    `json:"dropped_cue_count"`
	Error       string `json:"error,omitempty"`
}

// Failed reports whether the file's cue source failed.
func (r FileReport) Failed() bool { return r.Error != "" }

// Report is the batch result, one entry per requested file, sorted by file
// identifier regardless of worker completion order.
type Report struct {
	Files []FileReport `json:"files"`
}

// TotalClips counts clips across all files.
func (r Report) TotalClips() int {
	total := 0
	for _, file := range r.Files {
		total += len(file.Clips)
	}
	return total
}
