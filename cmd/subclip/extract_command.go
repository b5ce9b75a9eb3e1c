package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subclip/internal/logging"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <media>...",
		Short: "Demux embedded subtitle streams to SRT files in the cache",
		Args:  cobra.MinimumNArgs(1),
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
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			_, mediaFiles, err := discoverInputs(args)
			if err != nil {
				return err
			}
			if len(mediaFiles) == 0 {
				return fmt.Errorf("no media files found in the given paths")
			}

			out := cmd.OutOrStdout()
			for _, media := range mediaFiles {
				dest := extractionDir(cfg.Paths.CacheDir, media)
				extracted, err := client.ExtractSubtitles(cmd.Context(), logger, media, dest)
				if err != nil {
					logger.Warn("subtitle extraction failed",
						logging.String("file", media),
						logging.Error(err))
					fmt.Fprintf(out, "%s: %v\n", media, err)
					continue
				}
				if len(extracted) == 0 {
					fmt.Fprintf(out, "%s: no subtitle streams\n", media)
					continue
				}
				for _, srt := range extracted {
					fmt.Fprintln(out, srt)
				}
			}
			return nil
		},
	}
	return cmd
}
