package main

import (
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "info [bundle...]",
		Short:   "Look up bundle info, batching specs from args or stdin",
		GroupID: GroupCore,
		Long: `Forward bundle specs to cl info.

With positional arguments, looks them up directly. With no arguments or
a single "-", reads whitespace-delimited specs from stdin - typically
piped from cl search. History ranges (exp^1-3) expand first. Specs are
forwarded in order, without deduplication, batched per invocation
(info_batch_size, default 64). The wrapped tool's exit status propagates.`,
		Example: `  clx info 0x1a2b 0x3c4d            # Direct lookup
  clx info exp^1-3                  # History range expands to three specs
  cl search maxsize -u | clx info - # Pipe search results
  cl search .mine -u | clx info     # Same, "-" is optional`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), cfg, args, cmd.InOrStdin())
		},
	}

	return cmd
}
