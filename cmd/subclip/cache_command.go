package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Parsed-cue cache utilities",
	}
	cacheCmd.AddCommand(newCachePruneCommand(ctx))
	return cacheCmd
}

func newCachePruneCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Drop cache entries for subtitle files that no longer exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openCueCache()
			if err != nil {
				return fmt.Errorf("open cue cache: %w", err)
			}
			defer store.Close()

			removed, err := store.Prune(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pruned %d stale entries\n", removed)
			return nil
		},
	}
}
