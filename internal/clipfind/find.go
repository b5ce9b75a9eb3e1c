package clipfind

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"

	"subclip/internal/logging"
	"subclip/internal/subtitle"
)

// CueSource supplies a file's raw cues. It is called once per file, inside
// that file's worker, and may block on I/O; a returned error fails only the
// file it belongs to.
type CueSource func(ctx context.Context, file string) ([]subtitle.RawCue, error)

// Request configures one find batch. Pattern and paddings are shared across
// all files and validated before any file work starts.
type Request struct {
	Files        []string
	Pattern      PatternSpec
	LeadPadding  time.Duration
	TrailPadding time.Duration
	// Workers caps concurrent file processing. Zero or negative selects
	// GOMAXPROCS-equivalent parallelism, bounded by the file count.
	Workers int
	// FileDurations optionally supplies a known media duration per file.
	// Candidate intervals clamp to the larger of this value and the last
	// cue's end.
	FileDurations map[string]time.Duration
}

// Find runs the full pipeline over every requested file and returns the
// aggregated report. Configuration errors (ErrInvalidPattern,
// ErrInvalidPadding) abort immediately; per-file failures are recorded on
// their report entries. On context cancellation files not yet dispatched
// simply produce no entry, and the context error is returned alongside the
// partial report.
func Find(ctx context.Context, logger *slog.Logger, source CueSource, req Request) (Report, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if source == nil {
		return Report{}, fmt.Errorf("cue source is required")
	}
	matcher, err := NewMatcher(req.Pattern)
	if err != nil {
		return Report{}, err
	}
	if err := validatePadding(req.LeadPadding, req.TrailPadding); err != nil {
		return Report{}, err
	}

	report := Report{Files: make([]FileReport, 0, len(req.Files))}
	if len(req.Files) == 0 {
		return report, nil
	}

	workers := req.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(req.Files) {
		workers = len(req.Files)
	}

	jobs := make(chan string)
	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for file := range jobs {
				entry := processFile(ctx, logger, source, matcher, req, file)
				mu.Lock()
				report.Files = append(report.Files, entry)
				mu.Unlock()
			}
		}()
	}

dispatch:
	for _, file := range req.Files {
		// select alone is not enough: with a worker ready it may pick the
		// send even after cancellation, so check the context first.
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- file:
		}
	}
	close(jobs)
	wg.Wait()

	// Completion order depends on worker scheduling; the sort below is the
	// determinism guarantee, not the dispatch order.
	sort.Slice(report.Files, func(i, j int) bool {
		return report.Files[i].File < report.Files[j].File
	})

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

func processFile(ctx context.Context, logger *slog.Logger, source CueSource, matcher *Matcher, req Request, file string) FileReport {
	entry := FileReport{File: file, Clips: []Clip{}}

	raws, err := source(ctx, file)
	if err != nil {
		logger.Warn("cue source failed",
			logging.String("file", file),
			logging.Error(err))
		entry.Error = err.Error()
		return entry
	}

	cues := make([]subtitle.Cue, 0, len(raws))
	for i, raw := range raws {
		cue, err := subtitle.Normalize(i, raw)
		if err != nil {
			entry.DroppedCues++
			logger.Debug("dropped malformed cue",
				logging.String("file", file),
				logging.Int("cue", i),
				logging.Error(err))
			continue
		}
		cues = append(cues, cue)
	}

	spans := matchCues(matcher, cues)
	bound := fileBound(cues, req.FileDurations[file])
	candidates := buildCandidates(cues, spans, req.LeadPadding, req.TrailPadding, bound)
	entry.Clips = mergeCandidates(candidates)

	logger.Debug("file processed",
		logging.String("file", file),
		logging.Int("cues", len(cues)),
		logging.Int("matches", len(spans)),
		logging.Int("clips", len(entry.Clips)),
		logging.Int("dropped", entry.DroppedCues))
	return entry
}
