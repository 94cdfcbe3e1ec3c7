package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/clx/internal/cl"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search <keyword>...",
		Short:   "Search bundles and show their info",
		GroupID: GroupCore,
		Args:    cobra.MinimumNArgs(1),
		Long: `Search bundles and pipe the results into an info lookup.

Equivalent to 'cl search <keywords> -u | clx info -': the search returns
uuids, which are forwarded to cl info in order, batched per invocation.`,
		Example: `  clx search .mine               # Info for your bundles
  clx search maxsize .limit=20   # Any cl search keywords work`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client := cl.New(cfg.CLBin)
			uuids, err := client.SearchUUIDs(ctx, args)
			if err != nil {
				return err
			}
			if len(uuids) == 0 {
				return fmt.Errorf("no bundles matched")
			}

			return lookupInfo(ctx, cfg, uuids)
		},
	}

	return cmd
}
