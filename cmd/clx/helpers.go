package main

import (
	"context"
	"os"
	"os/exec"

	"github.com/raphi011/clx/internal/output"
)

// runPassthrough executes a command with stdout wired to the printer and
// stderr passed through. The child's error is returned untranslated so
// callers can inspect the exit code.
func runPassthrough(ctx context.Context, out *output.Printer, name string, args ...string) error {
	child := exec.CommandContext(ctx, name, args...)
	child.Stdout = out.Writer()
	child.Stderr = os.Stderr
	return child.Run()
}
