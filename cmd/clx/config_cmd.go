package main

import (
	"encoding/json"
	"sort"

	"github.com/spf13/cobra"

	"github.com/raphi011/clx/internal/config"
	"github.com/raphi011/clx/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage clx configuration",
		GroupID: GroupConfig,
		Example: `  clx config init           # Create default config
  clx config show           # Show effective config
  clx config show --json    # Output as JSON`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file at ~/.config/clx/config.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Printf("Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if asJSON {
				data, err := json.MarshalIndent(effectiveConfig(cfg), "", "  ")
				if err != nil {
					return err
				}
				out.Println(string(data))
				return nil
			}

			out.Printf("cl_bin          = %q\n", cfg.CLBin)
			out.Printf("q_bin           = %q\n", cfg.QBin)
			out.Printf("diff_tool       = %q\n", cfg.DiffTool)
			out.Printf("info_batch_size = %d\n", cfg.InfoBatchSize)
			out.Printf("history_limit   = %d\n", cfg.HistoryLimit)

			if len(cfg.Aliases) > 0 {
				out.Println()
				out.Println("[aliases]")
				names := make([]string, 0, len(cfg.Aliases))
				for name := range cfg.Aliases {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					out.Printf("%s = %q\n", name, cfg.Aliases[name])
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

type configJSON struct {
	CLBin         string            `json:"cl_bin"`
	QBin          string            `json:"q_bin"`
	DiffTool      string            `json:"diff_tool"`
	InfoBatchSize int               `json:"info_batch_size"`
	HistoryLimit  int               `json:"history_limit"`
	Aliases       map[string]string `json:"aliases,omitempty"`
}

func effectiveConfig(cfg *config.Config) configJSON {
	return configJSON{
		CLBin:         cfg.CLBin,
		QBin:          cfg.QBin,
		DiffTool:      cfg.DiffTool,
		InfoBatchSize: cfg.InfoBatchSize,
		HistoryLimit:  cfg.HistoryLimit,
		Aliases:       cfg.Aliases,
	}
}
