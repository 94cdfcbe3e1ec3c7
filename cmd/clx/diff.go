package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/clx/internal/cl"
	"github.com/raphi011/clx/internal/cmd"
	"github.com/raphi011/clx/internal/config"
	"github.com/raphi011/clx/internal/format"
	"github.com/raphi011/clx/internal/log"
	"github.com/raphi011/clx/internal/output"
	"github.com/raphi011/clx/internal/spec"
)

func runDiff(ctx context.Context, cfg *config.Config, specA, specB, tool string) error {
	specA = spec.ExpandAlias(specA, cfg.Aliases)
	specB = spec.ExpandAlias(specB, cfg.Aliases)

	client := cl.New(cfg.CLBin)

	// The two fetches are independent; run them concurrently.
	var wg sync.WaitGroup
	var contents [2][]byte
	var errs [2]error
	for i, s := range []string{specA, specB} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			contents[i], errs[i] = client.Cat(ctx, s)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	dir, err := os.MkdirTemp("", "clx-diff-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	pathA := filepath.Join(dir, format.SanitizeForPath(specA))
	pathB := filepath.Join(dir, format.SanitizeForPath(specB))
	if pathA == pathB {
		pathB += ".b"
	}
	if err := os.WriteFile(pathA, contents[0], 0o600); err != nil {
		return err
	}
	if err := os.WriteFile(pathB, contents[1], 0o600); err != nil {
		return err
	}

	if tool == "" && !isatty.IsTerminal(os.Stdout.Fd()) {
		return runPlainDiff(ctx, pathA, pathB)
	}
	if tool == "" {
		tool = cfg.DiffTool
	}

	// The diff tool owns the terminal; its verdict is the verdict.
	return cmd.Interactive(ctx, "", tool, pathA, pathB)
}

// runPlainDiff runs a non-interactive unified diff.
// diff exits 1 when the files differ; only exit codes above 1 are errors.
func runPlainDiff(ctx context.Context, pathA, pathB string) error {
	l := log.FromContext(ctx)
	l.Command("diff", "-u", pathA, pathB)

	out := output.FromContext(ctx)
	err := runPassthrough(ctx, out, "diff", "-u", pathA, pathB)
	if err != nil && cmd.ExitCode(err) == 1 {
		return nil
	}
	return err
}
