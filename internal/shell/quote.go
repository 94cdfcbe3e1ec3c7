package shell

import (
	"regexp"
	"strings"

	"github.com/anmitsu/go-shlex"
)

// RunPrefix is the fixed prefix of synthesized rerun commands.
const RunPrefix = "cl run "

// safeRegex matches tokens that need no quoting.
var safeRegex = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./^-]+$`)

// Quote escapes a string for safe use in shell commands.
// Safe tokens are returned untouched; everything else is wrapped in
// single quotes, with embedded single quotes escaped as '\''.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if safeRegex.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// QuoteAll quotes each token and joins them with spaces.
func QuoteAll(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = Quote(t)
	}
	return strings.Join(quoted, " ")
}

// Split splits a command string with POSIX shell rules.
func Split(s string) ([]string, error) {
	return shlex.Split(s, true)
}

// SynthesizeRun builds the history entry for a bundle's argument string:
// RunPrefix plus the arguments, re-quoted per the package quoting policy.
// An empty fetch yields the bare prefix; a string that does not split
// (unbalanced quotes) is reproduced verbatim.
func SynthesizeRun(raw string) string {
	args := strings.TrimRight(raw, "\r\n")
	if args == "" {
		return RunPrefix
	}

	tokens, err := Split(args)
	if err != nil {
		return RunPrefix + args
	}
	return RunPrefix + QuoteAll(tokens)
}
