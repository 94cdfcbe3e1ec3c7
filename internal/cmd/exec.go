package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/raphi011/clx/internal/log"
)

// OutputContext executes a command and returns stdout, with stderr in the
// error if it fails. An empty dir runs the command in the current
// directory.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		return nil, wrapError(ctx, err, &stderr)
	}
	return stdout.Bytes(), nil
}

// Interactive executes a command with the process's terminal attached.
// Used for tools that take over the screen (vimdiff etc).
func Interactive(ctx context.Context, dir, name string, args ...string) error {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	return c.Run()
}

// ExitCode extracts the child exit code from an error, unwrapping as
// needed. Returns -1 if no exit error is in the chain.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// wrapError prefers the context error (so cancellation surfaces as
// context.Canceled) and otherwise promotes captured stderr to the message.
func wrapError(ctx context.Context, err error, stderr *bytes.Buffer) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return err
}
