//go:build integration

package main

import (
	"strings"
	"testing"

	"github.com/raphi011/clx/internal/history"
)

// TestRerun_QuotesFetchedArgs tests synthesizing a runnable command.
//
// Scenario: User runs `clx rerun 0xabc` and the bundle's args contain
// a token with a space.
// Expected: The printed line is "cl run " plus the tokens, with the
// spaced token single-quoted so the line is safe to execute.
func TestRerun_QuotesFetchedArgs(t *testing.T) {
	// Not parallel - modifies HOME and global config

	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	clStub := writeStub(t, tmpDir, "cl",
		`printf "python train.py --lr 0.1 'hello world'\n"`)
	setTestConfig(t, clStub)

	ctx, out := testContextWithOutput(t)
	cmd := newRerunCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"0xabc"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("rerun command failed: %v", err)
	}

	want := "cl run python train.py --lr 0.1 'hello world'\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

// TestRerun_EmptyFetch tests a bundle with no recorded args.
//
// Scenario: User runs `clx rerun 0xabc` and cl info returns nothing.
// Expected: The bare "cl run " prefix is printed.
func TestRerun_EmptyFetch(t *testing.T) {
	// Not parallel - modifies HOME and global config

	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	clStub := writeStub(t, tmpDir, "cl", `exit 0`)
	setTestConfig(t, clStub)

	ctx, out := testContextWithOutput(t)
	cmd := newRerunCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"0xabc"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("rerun command failed: %v", err)
	}

	if out.String() != "cl run \n" {
		t.Errorf("expected bare prefix, got %q", out.String())
	}
}

// TestRerun_Idempotent tests that rerunning a synthesized command's
// argument part reproduces it.
//
// Scenario: The fetched args are already in quoted form (as a previous
// rerun would have printed them).
// Expected: The printed line carries them through unchanged.
func TestRerun_Idempotent(t *testing.T) {
	// Not parallel - modifies HOME and global config

	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	clStub := writeStub(t, tmpDir, "cl",
		`printf "python train.py 'hello world'\n"`)
	setTestConfig(t, clStub)

	ctx, out := testContextWithOutput(t)
	cmd := newRerunCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"0xabc"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("rerun command failed: %v", err)
	}

	first := strings.TrimSuffix(out.String(), "\n")

	// Feed the argument part of the first output back through.
	args := strings.TrimPrefix(first, "cl run ")
	clStub2 := writeStub(t, tmpDir, "cl2", `printf '%s\n' "`+args+`"`)
	cfg.CLBin = clStub2

	ctx2, out2 := testContextWithOutput(t)
	cmd2 := newRerunCmd()
	cmd2.SetContext(ctx2)
	cmd2.SetArgs([]string{"0xabc"})

	if err := cmd2.Execute(); err != nil {
		t.Fatalf("second rerun failed: %v", err)
	}

	second := strings.TrimSuffix(out2.String(), "\n")
	if first != second {
		t.Errorf("expected stable output, got %q then %q", first, second)
	}
}

// TestRerun_ExpandsAlias tests server alias expansion.
//
// Scenario: User runs `clx rerun main::0xabc` with the default aliases.
// Expected: cl receives the expanded server address in the spec.
func TestRerun_ExpandsAlias(t *testing.T) {
	// Not parallel - modifies HOME and global config

	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("STUB_LOG", tmpDir+"/cl.log")

	clStub := writeStub(t, tmpDir, "cl", `echo "$@" >> "$STUB_LOG"`)
	setTestConfig(t, clStub)

	ctx, _ := testContextWithOutput(t)
	cmd := newRerunCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"main::0xabc"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("rerun command failed: %v", err)
	}

	logLine := readStubLog(t, tmpDir+"/cl.log")
	want := "info -f args https://codalab.org/bundleservice::0xabc\n"
	if logLine != want {
		t.Errorf("expected cl args %q, got %q", want, logLine)
	}
}

// TestRerun_RecordsHistory tests that successful reruns are recorded.
//
// Scenario: User runs `clx rerun 0xabc` twice for different bundles.
// Expected: Both show up in the history file.
func TestRerun_RecordsHistory(t *testing.T) {
	// Not parallel - modifies HOME and global config

	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	clStub := writeStub(t, tmpDir, "cl", `printf 'date\n'`)
	setTestConfig(t, clStub)

	for _, bundle := range []string{"0xaaa", "0xbbb"} {
		ctx, _ := testContextWithOutput(t)
		cmd := newRerunCmd()
		cmd.SetContext(ctx)
		cmd.SetArgs([]string{bundle})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("rerun %s failed: %v", bundle, err)
		}
	}

	hist, err := history.Load(cfg.HistoryPath())
	if err != nil {
		t.Fatalf("failed to load history: %v", err)
	}
	if len(hist.Entries) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(hist.Entries))
	}
	for _, e := range hist.Entries {
		if e.Command != "cl run date" {
			t.Errorf("expected recorded command %q, got %q", "cl run date", e.Command)
		}
	}
}

// TestRerun_NoRecord tests opting out of history recording.
//
// Scenario: User runs `clx rerun --no-record 0xabc`.
// Expected: The command prints but nothing is recorded.
func TestRerun_NoRecord(t *testing.T) {
	// Not parallel - modifies HOME and global config

	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	clStub := writeStub(t, tmpDir, "cl", `printf 'date\n'`)
	setTestConfig(t, clStub)

	ctx, out := testContextWithOutput(t)
	cmd := newRerunCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"--no-record", "0xabc"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("rerun command failed: %v", err)
	}
	if out.String() != "cl run date\n" {
		t.Errorf("unexpected output %q", out.String())
	}

	hist, err := history.Load(cfg.HistoryPath())
	if err != nil {
		t.Fatalf("failed to load history: %v", err)
	}
	if len(hist.Entries) != 0 {
		t.Errorf("expected empty history, got %d entries", len(hist.Entries))
	}
}

// TestRerun_FetchFailure tests a failing cl query.
//
// Scenario: cl exits non-zero after writing partial output.
// Expected: The printed line reproduces the partial output after the
// prefix, and nothing is recorded.
func TestRerun_FetchFailure(t *testing.T) {
	// Not parallel - modifies HOME and global config

	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	clStub := writeStub(t, tmpDir, "cl",
		`printf 'partial\n'
echo "no such bundle" >&2
exit 1`)
	setTestConfig(t, clStub)

	ctx, out := testContextWithOutput(t)
	cmd := newRerunCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"0xdead"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("rerun should not fail on fetch errors: %v", err)
	}
	if out.String() != "cl run partial\n" {
		t.Errorf("expected partial output reproduced, got %q", out.String())
	}

	hist, err := history.Load(cfg.HistoryPath())
	if err != nil {
		t.Fatalf("failed to load history: %v", err)
	}
	if len(hist.Entries) != 0 {
		t.Errorf("failed fetch should not be recorded, got %d entries", len(hist.Entries))
	}
}

// TestRerun_RejectsMalformedSpec tests spec validation before the fetch.
//
// Scenario: User runs `clx rerun 0xZZZ` with a malformed uuid.
// Expected: Command fails without ever invoking cl.
func TestRerun_RejectsMalformedSpec(t *testing.T) {
	// Not parallel - modifies HOME and global config

	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("STUB_LOG", tmpDir+"/cl.log")

	clStub := writeStub(t, tmpDir, "cl", `echo "$@" >> "$STUB_LOG"`)
	setTestConfig(t, clStub)

	ctx, _ := testContextWithOutput(t)
	cmd := newRerunCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"0xZZZ"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for malformed uuid")
	}
	if got := readStubLog(t, tmpDir+"/cl.log"); got != "" {
		t.Errorf("cl should not run for a malformed spec, got %q", got)
	}
}

// TestRerun_NoArgsNoInteractive tests the missing-spec error.
//
// Scenario: User runs `clx rerun` without a bundle or -i.
// Expected: Command fails with a hint.
func TestRerun_NoArgsNoInteractive(t *testing.T) {
	// Not parallel - modifies HOME and global config

	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	clStub := writeStub(t, tmpDir, "cl", `exit 0`)
	setTestConfig(t, clStub)

	ctx, _ := testContextWithOutput(t)
	cmd := newRerunCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error when no bundle given")
	}
}
