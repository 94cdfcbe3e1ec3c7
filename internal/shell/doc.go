// Package shell covers the boundary between clx and the interactive shell:
// quoting and splitting of command strings, synthesis of re-runnable
// cl commands, and the shell-init scripts that glue clx output into the
// shell's history buffer.
//
// # Quoting policy
//
// Fetched argument strings are split with POSIX rules. Tokens made of
// safe characters pass through untouched; everything else is wrapped in
// single quotes with embedded quotes escaped as '\''. When splitting
// fails (unbalanced quotes in the fetched string), the raw string is used
// verbatim so the synthesized command reproduces exactly what the fetch
// step wrote.
package shell
