package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"subclip/internal/clipfind"
	"subclip/internal/logging"
	"subclip/internal/subtitle"
)

type findOptions struct {
	pattern       string
	regex         bool
	caseSensitive bool
	lead          time.Duration
	trail         time.Duration
	workers       int
	noCache       bool
}

func newFindCommand(ctx *commandContext) *cobra.Command {
	var pattern string
	var regex, caseSensitive, jsonOut, noCache bool
	var leadSeconds, trailSeconds float64
	var workers int

	cmd := &cobra.Command{
		Use:   "find --pattern <text> <path>...",
		Short: "Find clip intervals whose subtitle text matches a pattern",
		Long: `Find searches subtitle cues for a pattern and prints the padded,
merged clip intervals per file. Paths may be .srt files, media files with
embedded subtitle streams, or directories of either.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			opts := findOptions{
				pattern:       pattern,
				regex:         regex,
				caseSensitive: cfg.Find.CaseSensitive,
				lead:          cfg.LeadPadding(),
				trail:         cfg.TrailPadding(),
				workers:       cfg.Find.Workers,
				noCache:       noCache,
			}
			if cmd.Flags().Changed("case-sensitive") {
				opts.caseSensitive = caseSensitive
			}
			if cmd.Flags().Changed("lead") {
				opts.lead = secondsFlag(leadSeconds)
			}
			if cmd.Flags().Changed("trail") {
				opts.trail = secondsFlag(trailSeconds)
			}
			if cmd.Flags().Changed("workers") {
				opts.workers = workers
			}

			report, _, err := runFind(cmd.Context(), ctx, opts, args)
			if err != nil {
				return err
			}

			if jsonOut || !isatty.IsTerminal(os.Stdout.Fd()) {
				return writeJSON(cmd, report)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderFindTable(report))
			fmt.Fprintf(cmd.OutOrStdout(), "%d clip(s) across %d file(s)\n", report.TotalClips(), len(report.Files))
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Text or regular expression to search for")
	cmd.Flags().BoolVarP(&regex, "regex", "r", false, "Interpret the pattern as a regular expression")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "Match case-sensitively")
	cmd.Flags().Float64Var(&leadSeconds, "lead", 1.0, "Seconds of padding before each matching cue")
	cmd.Flags().Float64Var(&trailSeconds, "trail", 1.0, "Seconds of padding after each matching cue")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent files processed (0 = CPU count)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Always emit JSON, even on a terminal")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the parsed-cue cache")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}

func secondsFlag(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// runFind resolves inputs, extracts embedded subtitles from media files,
// and runs the clip finder. The returned map links each extracted subtitle
// file back to its source media file for cutting.
func runFind(cmdCtx context.Context, ctx *commandContext, opts findOptions, args []string) (clipfind.Report, map[string]string, error) {
	logger, err := ctx.ensureLogger()
	if err != nil {
		return clipfind.Report{}, nil, err
	}
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return clipfind.Report{}, nil, err
	}

	subtitleFiles, mediaFiles, err := discoverInputs(args)
	if err != nil {
		return clipfind.Report{}, nil, err
	}

	srtToMedia := make(map[string]string)
	durations := make(map[string]time.Duration)
	if len(mediaFiles) > 0 {
		client, err := ctx.ffmpegClient()
		if err != nil {
			return clipfind.Report{}, nil, err
		}
		if err := cfg.EnsureDirectories(); err != nil {
			return clipfind.Report{}, nil, err
		}
		for _, media := range mediaFiles {
			dest := extractionDir(cfg.Paths.CacheDir, media)
			extracted, err := client.ExtractSubtitles(cmdCtx, logger, media, dest)
			if err != nil {
				logger.Warn("subtitle extraction failed",
					logging.String("file", media),
					logging.Error(err))
				continue
			}
			duration, durErr := client.Duration(cmdCtx, media)
			for _, srt := range extracted {
				subtitleFiles = append(subtitleFiles, srt)
				srtToMedia[srt] = media
				if durErr == nil {
					durations[srt] = duration
				}
			}
		}
	}

	if len(subtitleFiles) == 0 {
		return clipfind.Report{}, nil, fmt.Errorf("no subtitle files found in the given paths")
	}

	source := clipfind.CueSource(func(ctx context.Context, file string) ([]subtitle.RawCue, error) {
		return subtitle.ParseSRTFile(file)
	})
	if !opts.noCache {
		store, err := ctx.openCueCache()
		if err != nil {
			logger.Warn("cue cache unavailable, parsing directly", logging.Error(err))
		} else {
			defer store.Close()
			source = store.Source(logger, source)
		}
	}

	kind := clipfind.PatternLiteral
	if opts.regex {
		kind = clipfind.PatternRegex
	}
	report, err := clipfind.Find(cmdCtx, logger, source, clipfind.Request{
		Files: subtitleFiles,
		Pattern: clipfind.PatternSpec{
			Kind:          kind,
			Text:          opts.pattern,
			CaseSensitive: opts.caseSensitive,
		},
		LeadPadding:   opts.lead,
		TrailPadding:  opts.trail,
		Workers:       opts.workers,
		FileDurations: durations,
	})
	if err != nil {
		return clipfind.Report{}, nil, err
	}
	return report, srtToMedia, nil
}

func renderFindTable(report clipfind.Report) string {
	rows := make([][]string, 0, report.TotalClips())
	for _, file := range report.Files {
		if file.Failed() {
			rows = append(rows, []string{file.File, "-", "-", "-", file.Error})
			continue
		}
		for _, clip := range file.Clips {
			rows = append(rows, []string{
				file.File,
				subtitle.FormatTimestamp(clip.Start.Duration()),
				subtitle.FormatTimestamp(clip.End.Duration()),
				joinInts(clip.Cues),
				"",
			})
		}
	}
	return renderTable([]string{"File", "Start", "End", "Cues", "Error"}, rows, 2, 3)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
