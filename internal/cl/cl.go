package cl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/raphi011/clx/internal/cmd"
	"github.com/raphi011/clx/internal/log"
)

// Client invokes the cl binary.
type Client struct {
	bin string
}

// New creates a client for the given cl binary (name or path).
func New(bin string) *Client {
	if bin == "" {
		bin = "cl"
	}
	return &Client{bin: bin}
}

// Check verifies that the cl binary is available in PATH.
func (c *Client) Check() error {
	if _, err := exec.LookPath(c.bin); err != nil {
		return fmt.Errorf("%s not found: install the CodaLab CLI (https://worksheets.codalab.org)", c.bin)
	}
	return nil
}

// FetchArgs returns the argument string the bundle was created with
// (cl info -f args <spec>). The trailing newline is stripped; an empty
// args field comes back as the empty string.
//
// On failure the partial stdout is still returned alongside the error:
// the synthesized history entry reproduces whatever the fetch wrote,
// even when the query failed.
func (c *Client) FetchArgs(ctx context.Context, spec string) (string, error) {
	args := []string{"info", "-f", "args", spec}
	log.FromContext(ctx).Command(c.bin, args...)

	child := exec.CommandContext(ctx, c.bin, args...)
	var stdout, stderr bytes.Buffer
	child.Stdout = &stdout
	child.Stderr = &stderr

	err := child.Run()
	fetched := strings.TrimRight(stdout.String(), "\r\n")
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fetched, fmt.Errorf("fetch args for %s: %s", spec, msg)
		}
		return fetched, fmt.Errorf("fetch args for %s: %w", spec, err)
	}
	return fetched, nil
}

// Cat returns the textual rendering of a bundle's contents
// (cl cat <spec>).
func (c *Client) Cat(ctx context.Context, spec string) ([]byte, error) {
	out, err := cmd.OutputContext(ctx, "", c.bin, "cat", spec)
	if err != nil {
		return nil, fmt.Errorf("cat %s: %w", spec, err)
	}
	return out, nil
}

// Info runs cl info for one batch of specs, streaming output to w.
// Stderr passes through to the process stderr; the child's exit error is
// returned untranslated so callers can forward the exit status.
func (c *Client) Info(ctx context.Context, w io.Writer, specs []string) error {
	args := append([]string{"info"}, specs...)
	log.FromContext(ctx).Command(c.bin, args...)

	child := exec.CommandContext(ctx, c.bin, args...)
	child.Stdout = w
	child.Stderr = os.Stderr
	return child.Run()
}

// SearchUUIDs runs cl search with uuid-only output and returns the
// resulting bundle uuids in order.
func (c *Client) SearchUUIDs(ctx context.Context, terms []string) ([]string, error) {
	args := append([]string{"search"}, terms...)
	args = append(args, "-u")
	out, err := cmd.OutputContext(ctx, "", c.bin, args...)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return strings.Fields(string(out)), nil
}

// Batches splits specs into chunks of at most size, order preserved,
// no deduplication.
func Batches(specs []string, size int) [][]string {
	if size <= 0 {
		size = 1
	}
	var batches [][]string
	for len(specs) > size {
		batches = append(batches, specs[:size])
		specs = specs[size:]
	}
	if len(specs) > 0 {
		batches = append(batches, specs)
	}
	return batches
}
