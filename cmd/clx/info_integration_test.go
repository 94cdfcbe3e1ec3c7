//go:build integration

package main

import (
	"strings"
	"testing"

	"github.com/raphi011/clx/internal/cmd"
)

// infoStub writes a cl stub that logs every invocation's args.
func infoStub(t *testing.T, dir string) string {
	t.Helper()
	t.Setenv("STUB_LOG", dir+"/cl.log")
	return writeStub(t, dir, "cl", `echo "$@" >> "$STUB_LOG"`)
}

// TestInfo_ArgsForwardedInOrder tests the direct lookup path.
//
// Scenario: User runs `clx info id1 id2 id3 id1`.
// Expected: cl info receives the specs in order, duplicates kept.
func TestInfo_ArgsForwardedInOrder(t *testing.T) {
	// Not parallel - modifies global config

	tmpDir := t.TempDir()
	setTestConfig(t, infoStub(t, tmpDir))

	ctx := testContext(t)
	cmd := newInfoCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"id1", "id2", "id3", "id1"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("info command failed: %v", err)
	}

	got := readStubLog(t, tmpDir+"/cl.log")
	if got != "info id1 id2 id3 id1\n" {
		t.Errorf("expected ordered forwarding with duplicates, got %q", got)
	}
}

// TestInfo_ReadsStdin tests the pipe path.
//
// Scenario: User runs `cl search ... -u | clx info -`.
// Expected: Whitespace-delimited specs from stdin are forwarded.
func TestInfo_ReadsStdin(t *testing.T) {
	// Not parallel - modifies global config

	tmpDir := t.TempDir()
	setTestConfig(t, infoStub(t, tmpDir))

	ctx := testContext(t)
	cmd := newInfoCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"-"})
	cmd.SetIn(strings.NewReader("0xaaa 0xbbb\n0xccc\n"))

	if err := cmd.Execute(); err != nil {
		t.Fatalf("info command failed: %v", err)
	}

	got := readStubLog(t, tmpDir+"/cl.log")
	if got != "info 0xaaa 0xbbb 0xccc\n" {
		t.Errorf("expected stdin specs forwarded, got %q", got)
	}
}

// TestInfo_Batching tests splitting large spec lists.
//
// Scenario: info_batch_size is 2 and five specs come in.
// Expected: Three cl info invocations of sizes 2, 2, 1, in order.
func TestInfo_Batching(t *testing.T) {
	// Not parallel - modifies global config

	tmpDir := t.TempDir()
	c := setTestConfig(t, infoStub(t, tmpDir))
	c.InfoBatchSize = 2

	ctx := testContext(t)
	cmd := newInfoCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"a", "b", "c", "d", "e"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("info command failed: %v", err)
	}

	got := readStubLog(t, tmpDir+"/cl.log")
	want := "info a b\ninfo c d\ninfo e\n"
	if got != want {
		t.Errorf("expected batched invocations %q, got %q", want, got)
	}
}

// TestInfo_HistoryRangeExpansion tests range specs.
//
// Scenario: User runs `clx info exp^1-3 other`.
// Expected: The range expands before forwarding.
func TestInfo_HistoryRangeExpansion(t *testing.T) {
	// Not parallel - modifies global config

	tmpDir := t.TempDir()
	setTestConfig(t, infoStub(t, tmpDir))

	ctx := testContext(t)
	cmd := newInfoCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"exp^1-3", "other"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("info command failed: %v", err)
	}

	got := readStubLog(t, tmpDir+"/cl.log")
	if got != "info exp^1 exp^2 exp^3 other\n" {
		t.Errorf("expected expanded range, got %q", got)
	}
}

// TestInfo_NoSpecs tests running with nothing to look up.
//
// Scenario: User runs `clx info` with empty stdin.
// Expected: Command fails with an error.
func TestInfo_NoSpecs(t *testing.T) {
	// Not parallel - modifies global config

	tmpDir := t.TempDir()
	setTestConfig(t, infoStub(t, tmpDir))

	ctx := testContext(t)
	cmd := newInfoCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})
	cmd.SetIn(strings.NewReader(""))

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for empty spec list")
	}
}

// TestInfo_StreamsOutput tests that cl's stdout reaches the printer.
//
// Scenario: cl info prints a table per batch.
// Expected: All batches' output arrives concatenated, in order.
func TestInfo_StreamsOutput(t *testing.T) {
	// Not parallel - modifies global config

	tmpDir := t.TempDir()
	clStub := writeStub(t, tmpDir, "cl",
		`shift
for spec in "$@"; do echo "info: $spec"; done`)
	c := setTestConfig(t, clStub)
	c.InfoBatchSize = 2

	ctx, out := testContextWithOutput(t)
	cmd := newInfoCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"a", "b", "c"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("info command failed: %v", err)
	}

	want := "info: a\ninfo: b\ninfo: c\n"
	if out.String() != want {
		t.Errorf("expected streamed output %q, got %q", want, out.String())
	}
}

// TestInfo_FailingBatchPropagates tests exit status forwarding.
//
// Scenario: One batch fails but later batches still run.
// Expected: All invocations happen; the command returns an error.
func TestInfo_FailingBatchPropagates(t *testing.T) {
	// Not parallel - modifies global config

	tmpDir := t.TempDir()
	t.Setenv("STUB_LOG", tmpDir+"/cl.log")
	clStub := writeStub(t, tmpDir, "cl",
		`echo "$@" >> "$STUB_LOG"
case "$@" in
  *bad*) exit 2 ;;
esac`)
	c := setTestConfig(t, clStub)
	c.InfoBatchSize = 1

	ctx := testContext(t)
	cmd := newInfoCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"good", "bad", "alsogood"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error from failing batch")
	}

	got := readStubLog(t, tmpDir+"/cl.log")
	want := "info good\ninfo bad\ninfo alsogood\n"
	if got != want {
		t.Errorf("later batches should still run, got %q", got)
	}
}

// TestInfo_ForwardsExitStatus tests that cl's exit code survives.
//
// Scenario: cl info exits 7.
// Expected: The returned error still carries exit code 7, so clx can
// exit with the same status.
func TestInfo_ForwardsExitStatus(t *testing.T) {
	// Not parallel - modifies global config

	tmpDir := t.TempDir()
	setTestConfig(t, writeStub(t, tmpDir, "cl", "exit 7"))

	ctx := testContext(t)
	c := newInfoCmd()
	c.SetContext(ctx)
	c.SetArgs([]string{"0xabc"})

	err := c.Execute()
	if err == nil {
		t.Fatal("expected error from failing cl")
	}
	if code := cmd.ExitCode(err); code != 7 {
		t.Errorf("expected exit code 7, got %d (%v)", code, err)
	}
}
