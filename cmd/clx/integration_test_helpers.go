//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/raphi011/clx/internal/config"
	"github.com/raphi011/clx/internal/log"
	"github.com/raphi011/clx/internal/output"
)

// testContext returns a context with a silenced logger and a printer
// writing to stderr, so test output stays readable.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, true))
	ctx = output.WithPrinter(ctx, os.Stderr)
	return ctx
}

// testContextWithOutput captures printed output in a buffer.
func testContextWithOutput(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, true))
	ctx = output.WithPrinter(ctx, &buf)
	return ctx, &buf
}

// writeStub writes an executable shell script into dir and returns its path.
// The script body runs under /bin/sh.
func writeStub(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("failed to write stub %s: %v", name, err)
	}
	return path
}

// setTestConfig points the global config at a stub cl binary and
// restores the previous config when the test finishes.
func setTestConfig(t *testing.T, clBin string) *config.Config {
	t.Helper()
	old := cfg
	c := config.Default()
	c.CLBin = clBin
	cfg = &c
	t.Cleanup(func() { cfg = old })
	return cfg
}

// readStubLog returns the contents of a stub's invocation log.
// Returns "" if the stub never ran.
func readStubLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("failed to read stub log: %v", err)
	}
	return string(data)
}
