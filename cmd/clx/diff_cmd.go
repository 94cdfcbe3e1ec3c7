package main

import (
	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	var tool string

	cmd := &cobra.Command{
		Use:     "diff <bundle> <bundle>",
		Short:   "Diff the textual renderings of two bundles",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(2),
		Long: `Fetch the contents of two bundles and compare them.

Both renderings are fetched (cl cat) and handed to an interactive diff
tool as two files. Tool resolution: --tool flag, then diff_tool config,
then vimdiff. When stdout is not a terminal the command falls back to a
plain 'diff -u' so it stays usable in pipes.`,
		Example: `  clx diff 0x1a2b 0x3c4d            # vimdiff two bundles
  clx diff exp^1 exp^2              # Compare last two versions
  clx diff --tool=meld 0x1a 0x3c    # Use a different tool
  clx diff exp^1 exp^2 | less       # Non-interactive unified diff`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd.Context(), cfg, args[0], args[1], tool)
		},
	}

	cmd.Flags().StringVar(&tool, "tool", "", "Diff tool to use (default from config)")

	return cmd
}
