package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"subclip/internal/logging"
	"subclip/internal/media/ffmpeg"
	"subclip/internal/subtitle"
	"subclip/internal/textutil"
)

const maxClipNameRunes = 64

func newCutCommand(ctx *commandContext) *cobra.Command {
	var pattern, profileName, outputDir string
	var regex, caseSensitive, noCache bool
	var leadSeconds, trailSeconds float64
	var workers int

	cmd := &cobra.Command{
		Use:   "cut --pattern <text> <media>...",
		Short: "Cut every clip whose subtitle text matches a pattern",
		Long: `Cut runs find over the media files' subtitle streams, then extracts
each resulting interval with ffmpeg using the selected encoding profile.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			client, err := ctx.ffmpegClient()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("profile") {
				profileName = cfg.FFmpeg.Profile
			}
			profile, err := ffmpeg.LookupProfile(profileName)
			if err != nil {
				return err
			}

			outDir := strings.TrimSpace(outputDir)
			if outDir == "" {
				outDir = cfg.Paths.OutputDir
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

			report, srtToMedia, err := runFind(cmd.Context(), ctx, opts, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cut := 0
			for _, file := range report.Files {
				if file.Failed() {
					fmt.Fprintf(out, "%s: %s\n", file.File, file.Error)
					continue
				}
				media, ok := srtToMedia[file.File]
				if !ok {
					// Standalone .srt inputs have no media to cut from.
					logger.Warn("no media source for subtitle file, skipping",
						logging.String("file", file.File))
					continue
				}
				for _, clip := range file.Clips {
					outPath := clipOutputPath(outDir, media, clip.Start.Duration(), clip.End.Duration(), profile)
					if err := client.Cut(cmd.Context(), media, outPath, clip.Start.Duration(), clip.End.Duration(), profile); err != nil {
						logger.Warn("clip cut failed",
							logging.String("file", media),
							logging.String("output", outPath),
							logging.Error(err))
						fmt.Fprintf(out, "%s: %v\n", media, err)
						continue
					}
					cut++
					fmt.Fprintln(out, outPath)
				}
			}
			fmt.Fprintf(out, "cut %d clip(s)\n", cut)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Text or regular expression to search for")
	cmd.Flags().BoolVarP(&regex, "regex", "r", false, "Interpret the pattern as a regular expression")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "Match case-sensitively")
	cmd.Flags().Float64Var(&leadSeconds, "lead", 1.0, "Seconds of padding before each matching cue")
	cmd.Flags().Float64Var(&trailSeconds, "trail", 1.0, "Seconds of padding after each matching cue")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent files processed (0 = CPU count)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the parsed-cue cache")
	cmd.Flags().StringVar(&profileName, "profile", "", "Encoding profile (av1, flac)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for cut clips")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}

// clipOutputPath names a clip after its source and interval, sanitized so
// the result is always a safe single filename.
func clipOutputPath(outDir, media string, start, end time.Duration, profile ffmpeg.Profile) string {
	stem := strings.TrimSuffix(filepath.Base(media), filepath.Ext(media))
	name := fmt.Sprintf("%s [%s-%s] p=%s",
		stem,
		subtitle.FormatTimestamp(start),
		subtitle.FormatTimestamp(end),
		profile.Name)
	name = textutil.TruncateRunes(textutil.SanitizeFileName(name), maxClipNameRunes)
	return filepath.Join(outDir, name+"."+profile.Ext)
}
