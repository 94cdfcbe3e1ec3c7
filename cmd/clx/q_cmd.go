package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/raphi011/clx/internal/dispatch"
	"github.com/raphi011/clx/internal/format"
	"github.com/raphi011/clx/internal/output"
)

func newQCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "q",
		Short:   "Workqueue wrapper with JSON output",
		GroupID: GroupWorkqueue,
		Long: `Wrap the q workqueue tool, re-emitting its answers as JSON.

Each subcommand runs one q invocation and prints a single JSON object,
so schedulers can consume job state without parsing q's text output.`,
		Example: `  clx q start --request-time 3600 job.sh
  clx q info J-abc123
  clx q kill J-abc123
  clx q cleanup J-abc123`,
	}

	cmd.AddCommand(newQStartCmd())
	cmd.AddCommand(newQInfoCmd())
	cmd.AddCommand(newQKillCmd())
	cmd.AddCommand(newQCleanupCmd())

	return cmd
}

func newQStartCmd() *cobra.Command {
	var (
		requestTime   string
		requestMemory string
		cpus          int
		gpus          int
		priority      int
		sharePath     bool
	)

	cmd := &cobra.Command{
		Use:   "start [flags] <script>",
		Short: "Submit a script to the workqueue",
		Args:  cobra.ExactArgs(1),
		Long: `Submit a script and print {"raw": ..., "handle": ...}.

Resource requests translate into q flags: time in seconds, memory
converted to MB, priority negated (q counts low as important). Sizes
and durations accept suffixed forms (2g, 1h).`,
		Example: `  clx q start job.sh
  clx q start --request-time 1h --request-memory 2g job.sh
  clx q start --share-working-path job.sh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := dispatch.StartOptions{
				Script:           args[0],
				CPUs:             cpus,
				GPUs:             gpus,
				Priority:         priority,
				ShareWorkingPath: sharePath,
			}

			if requestTime != "" {
				seconds, err := format.ParseDuration(requestTime)
				if err != nil {
					return err
				}
				opts.TimeSeconds = seconds
			}
			if requestMemory != "" {
				bytes, err := format.ParseSize(requestMemory)
				if err != nil {
					return err
				}
				opts.MemoryBytes = float64(bytes)
			}

			result, err := dispatch.New(cfg.QBin).Start(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return output.FromContext(cmd.Context()).JSON(result)
		},
	}

	cmd.Flags().StringVar(&requestTime, "request-time", "", "Requested computation time (e.g. 3600, 1h)")
	cmd.Flags().StringVar(&requestMemory, "request-memory", "", "Requested memory (e.g. 2147483648, 2g)")
	cmd.Flags().IntVar(&cpus, "request-cpus", 0, "Requested CPU count")
	cmd.Flags().IntVar(&gpus, "request-gpus", 0, "Requested GPU count")
	cmd.Flags().IntVar(&priority, "request-priority", 0, "Job priority (higher is more important)")
	cmd.Flags().BoolVar(&sharePath, "share-working-path", false, "Run directly in the script directory")

	return cmd
}

func newQInfoCmd() *cobra.Command {
	var text bool

	cmd := &cobra.Command{
		Use:   "info [handle...]",
		Short: "Query job state",
		Long: `Query job state and print {"raw": ..., "infos": [...]}.

With no handles, all jobs are listed. --text prints a human-readable
table instead of JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := dispatch.New(cfg.QBin).Info(cmd.Context(), args)
			if err != nil {
				return err
			}
			if text {
				printJobTable(cmd.Context(), result.Infos)
				return nil
			}
			return output.FromContext(cmd.Context()).JSON(result)
		},
	}

	cmd.Flags().BoolVar(&text, "text", false, "Print a table instead of JSON")

	return cmd
}

// printJobTable renders job infos for humans, one row per job.
func printJobTable(ctx context.Context, infos []dispatch.JobInfo) {
	out := output.FromContext(ctx)
	if len(infos) == 0 {
		out.Println("No jobs")
		return
	}

	for _, info := range infos {
		elapsed := format.Missing
		if info.TimeSeconds != nil {
			elapsed = format.DurationStr(float64(*info.TimeSeconds))
		}
		mem := format.Missing
		if info.MemoryBytes != nil {
			mem = format.SizeStr(*info.MemoryBytes)
		}
		out.Printf("%-12s  %-8s  %-16s  %8s  %8s\n",
			info.Handle, info.State, format.ContentsStr(info.Hostname), elapsed, mem)
	}
}

func newQKillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kill <handle>",
		Short: "Stop a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := dispatch.New(cfg.QBin).Kill(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return output.FromContext(cmd.Context()).JSON(result)
		},
	}
}

func newQCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup <handle>",
		Short: "Remove a finished job from the queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := dispatch.New(cfg.QBin).Cleanup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return output.FromContext(cmd.Context()).JSON(result)
		},
	}
}
