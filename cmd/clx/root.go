package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/clx/internal/cl"
	"github.com/raphi011/clx/internal/cmd"
	"github.com/raphi011/clx/internal/config"
	"github.com/raphi011/clx/internal/log"
	"github.com/raphi011/clx/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg *config.Config
)

// Command group IDs for organizing help output
const (
	GroupCore      = "core"
	GroupWorkqueue = "workqueue"
	GroupUtility   = "utility"
	GroupConfig    = "config"
)

// Commands that work without the cl binary installed.
var noCLCheck = map[string]bool{
	"shell-init": true,
	"config":     true,
	"history":    true,
	"q":          true,
	"completion": true,
	"help":       true,
	"__complete": true,
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clx",
	Short: "Shell companion for the CodaLab cl client",
	Long: `clx wraps the CodaLab cl client with shell conveniences.

It re-synthesizes the command a bundle was created with so your shell can
recall it, diffs the contents of two bundles, pipes search results into
info lookups, and exposes the q workqueue as JSON.

Run 'clx shell-init <shell>' to install the clhist/cldiff/clsi helpers.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed by now, so the logger honors -v/-q.
		ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))
		cmd.SetContext(ctx)

		// Walk up to the top-level subcommand for the exemption check.
		top := cmd
		for top.HasParent() && top.Parent().HasParent() {
			top = top.Parent()
		}
		if noCLCheck[top.Name()] || noCLCheck[cmd.Name()] {
			return nil
		}

		return cl.New(cfg.CLBin).Check()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data). The logger is
	// attached in PersistentPreRunE once the -v/-q flags are parsed.
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		// A wrapped tool's exit status passes through unchanged.
		if code := cmd.ExitCode(err); code > 0 {
			os.Exit(code)
		}
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'clx -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupWorkqueue, Title: "Workqueue Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newRerunCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newSearchCmd())

	// Workqueue commands
	rootCmd.AddCommand(newQCmd())

	// Utility commands
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newShellInitCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
}
