package main

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/raphi011/clx/internal/cl"
	"github.com/raphi011/clx/internal/config"
	"github.com/raphi011/clx/internal/history"
	"github.com/raphi011/clx/internal/log"
	"github.com/raphi011/clx/internal/output"
	"github.com/raphi011/clx/internal/shell"
	"github.com/raphi011/clx/internal/spec"
	"github.com/raphi011/clx/internal/ui"
)

type rerunOptions struct {
	spec        string
	interactive bool
	copy        bool
	record      bool
}

func runRerun(ctx context.Context, cfg *config.Config, opts rerunOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	hist, err := history.Load(cfg.HistoryPath())
	if err != nil {
		l.Printf("Warning: failed to load history: %v\n", err)
		hist = &history.History{}
	}

	bundle := opts.spec
	switch {
	case opts.interactive && bundle != "":
		return fmt.Errorf("--interactive takes no bundle argument")
	case opts.interactive:
		picked, err := pickFromHistory(hist)
		if err != nil {
			return err
		}
		if picked == "" {
			return nil // cancelled
		}
		bundle = picked
	case bundle == "":
		return fmt.Errorf("specify a bundle or use -i (run 'clx history' to see recorded reruns)")
	}

	if err := spec.Validate(bundle); err != nil {
		return err
	}
	bundle = spec.ExpandAlias(bundle, cfg.Aliases)

	client := cl.New(cfg.CLBin)
	args, err := client.FetchArgs(ctx, bundle)
	if err != nil {
		// The history entry reproduces whatever the fetch wrote,
		// even when the query failed.
		l.Printf("Warning: %v\n", err)
	}

	command := shell.SynthesizeRun(args)
	out.Println(command)

	if opts.copy {
		if err := clipboard.WriteAll(command); err != nil {
			l.Printf("Warning: failed to copy to clipboard: %v\n", err)
		}
	}

	if opts.record && err == nil {
		hist.Record(bundle, command, cfg.HistoryLimit)
		if err := hist.Save(cfg.HistoryPath()); err != nil {
			l.Printf("Warning: failed to record history: %v\n", err)
		}
	}

	return nil
}

// pickFromHistory runs the fuzzy picker over recorded reruns.
// Returns "" when the user cancels.
func pickFromHistory(hist *history.History) (string, error) {
	if len(hist.Entries) == 0 {
		return "", fmt.Errorf("no rerun history (use clx rerun <bundle> first)")
	}

	hist.SortByRecency()
	items := make([]ui.Item, len(hist.Entries))
	for i, e := range hist.Entries {
		items[i] = ui.Item{
			Label: e.Bundle + "  " + spec.ShortenName(e.Command, 60),
			Value: e.Bundle,
		}
	}

	result, err := ui.Pick("Pick a bundle to rerun", items)
	if err != nil {
		return "", err
	}
	if result.Cancelled {
		return "", nil
	}
	return result.Item.Value, nil
}
