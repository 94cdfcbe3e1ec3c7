package main

import (
	"github.com/spf13/cobra"
)

func newRerunCmd() *cobra.Command {
	var interactive bool
	var copyToClipboard bool
	var noRecord bool

	cmd := &cobra.Command{
		Use:     "rerun [bundle]",
		Short:   "Print a re-runnable command for a bundle",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Print the cl run command that would recreate a bundle.

Fetches the argument string the bundle was created with (cl info -f args)
and synthesizes "cl run <args>", re-quoted so the line is safe to execute.
The clhist shell function from 'clx shell-init' pushes the printed line
into your shell's history buffer for editing.

If the fetch fails or returns nothing, the printed entry reproduces
whatever the fetch wrote - including nothing after the prefix.`,
		Example: `  clx rerun 0x1a2b3c            # Print command for a uuid
  clx rerun main::experiment    # Bundle on an aliased server
  clx rerun experiment^2        # Two versions back
  clx rerun -i                  # Pick a bundle from rerun history
  clx rerun --copy 0x1a2b3c     # Also copy to clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := rerunOptions{
				interactive: interactive,
				copy:        copyToClipboard,
				record:      !noRecord,
			}
			if len(args) > 0 {
				opts.spec = args[0]
			}
			return runRerun(cmd.Context(), cfg, opts)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick a bundle from rerun history")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the command to the clipboard")
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Don't record this rerun in history")

	return cmd
}
