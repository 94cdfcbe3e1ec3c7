package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/clx/internal/output"
	"github.com/raphi011/clx/internal/shell"
)

func newShellInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "shell-init <bash|zsh|fish>",
		Short:     "Print shell integration functions",
		GroupID:   GroupUtility,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{shell.Bash, shell.Zsh, shell.Fish},
		Long: `Print the shell functions that glue clx into your shell.

  clhist <bundle>   push a re-runnable command into shell history
  cldiff <a> <b>    diff two bundle renderings
  clsi [query...]   pipe search results into an info lookup

History mutation has to happen in the shell itself - a child process
cannot reach the parent shell's history list - which is why these thin
functions exist.`,
		Example: `  eval "$(clx shell-init zsh)"     # In ~/.zshrc
  eval "$(clx shell-init bash)"    # In ~/.bashrc
  clx shell-init fish | source     # In config.fish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := shell.InitScript(args[0])
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Print(script)
			return nil
		},
	}

	return cmd
}
