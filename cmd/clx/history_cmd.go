package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/clx/internal/format"
	"github.com/raphi011/clx/internal/history"
	"github.com/raphi011/clx/internal/output"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "history",
		Short:   "List recorded reruns",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `List reruns recorded by 'clx rerun', most recent first.

These entries feed 'clx rerun -i'.`,
		Example: `  clx history          # List recorded reruns
  clx history clear    # Forget all recorded reruns`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			hist, err := history.Load(cfg.HistoryPath())
			if err != nil {
				return err
			}
			if len(hist.Entries) == 0 {
				out.Println("No reruns recorded")
				return nil
			}

			hist.SortByRecency()
			now := time.Now()
			for _, e := range hist.Entries {
				out.Printf("%-19s  %-12s  %-20s  %s\n",
					format.DateStr(e.LastUsed.Unix()), format.Ago(e.LastUsed, now), e.Bundle, e.Command)
			}
			return nil
		},
	}

	cmd.AddCommand(newHistoryClearCmd())

	return cmd
}

func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget all recorded reruns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hist, err := history.Load(cfg.HistoryPath())
			if err != nil {
				return err
			}
			hist.Clear()
			if err := hist.Save(cfg.HistoryPath()); err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Println("History cleared")
			return nil
		},
	}
}
