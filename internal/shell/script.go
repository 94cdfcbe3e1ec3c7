package shell

import "fmt"

// Supported shells for InitScript.
const (
	Bash = "bash"
	Zsh  = "zsh"
	Fish = "fish"
)

const bashScript = `# clx shell integration (bash)
# Install: eval "$(clx shell-init bash)"

# Push a re-runnable command for a bundle into shell history.
clhist() {
	local cmd
	cmd="$(clx rerun "$@")" || return
	history -s -- "$cmd"
	printf '%s\n' "$cmd"
}

# Diff the textual renderings of two bundles.
cldiff() {
	clx diff "$@"
}

# Pipe search results into an info lookup.
clsi() {
	cl search "$@" -u | clx info -
}
`

const zshScript = `# clx shell integration (zsh)
# Install: eval "$(clx shell-init zsh)"

# Load a re-runnable command for a bundle into the editing buffer.
clhist() {
	local cmd
	cmd="$(clx rerun "$@")" || return
	print -z -- "$cmd"
}

# Diff the textual renderings of two bundles.
cldiff() {
	clx diff "$@"
}

# Pipe search results into an info lookup.
clsi() {
	cl search "$@" -u | clx info -
}
`

const fishScript = `# clx shell integration (fish)
# Install: clx shell-init fish | source

# Load a re-runnable command for a bundle into the command line.
function clhist
	set -l cmd (clx rerun $argv); or return
	commandline -- "$cmd"
end

# Diff the textual renderings of two bundles.
function cldiff
	clx diff $argv
end

# Pipe search results into an info lookup.
function clsi
	cl search $argv -u | clx info -
end
`

// InitScript returns the shell integration script for the given shell.
func InitScript(sh string) (string, error) {
	switch sh {
	case Bash:
		return bashScript, nil
	case Zsh:
		return zshScript, nil
	case Fish:
		return fishScript, nil
	}
	return "", fmt.Errorf("unsupported shell %q (supported: bash, zsh, fish)", sh)
}
