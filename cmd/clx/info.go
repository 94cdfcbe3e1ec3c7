package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/raphi011/clx/internal/cl"
	"github.com/raphi011/clx/internal/config"
	"github.com/raphi011/clx/internal/output"
	"github.com/raphi011/clx/internal/spec"
)

func runInfo(ctx context.Context, cfg *config.Config, args []string, stdin io.Reader) error {
	specs := args
	if len(specs) == 0 || (len(specs) == 1 && specs[0] == "-") {
		read, err := readSpecs(stdin)
		if err != nil {
			return err
		}
		specs = read
	}

	if len(specs) == 0 {
		return fmt.Errorf("no bundle specs (pass them as arguments or pipe them in)")
	}

	return lookupInfo(ctx, cfg, specs)
}

// lookupInfo expands and forwards specs to cl info in batches.
// Order is preserved and duplicates are kept; the last failing batch's
// error propagates after all batches ran.
func lookupInfo(ctx context.Context, cfg *config.Config, specs []string) error {
	specs = spec.ExpandHistoryRanges(specs)
	for i, s := range specs {
		specs[i] = spec.ExpandAlias(s, cfg.Aliases)
	}

	client := cl.New(cfg.CLBin)
	out := output.FromContext(ctx)

	var lastErr error
	for _, batch := range cl.Batches(specs, cfg.InfoBatchSize) {
		if err := client.Info(ctx, out.Writer(), batch); err != nil {
			lastErr = err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return lastErr
}

// readSpecs reads whitespace-delimited bundle specs from r.
func readSpecs(r io.Reader) ([]string, error) {
	var specs []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		specs = append(specs, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read specs: %w", err)
	}
	return specs, nil
}
