package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// writeJSON emits v as two-space-indented JSON on the command's stdout,
// the shape scripts consuming find output should parse.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
