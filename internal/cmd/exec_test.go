package cmd

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/raphi011/clx/internal/log"
)

func logCtx() context.Context {
	l := log.New(&bytes.Buffer{}, false, false)
	return log.WithLogger(context.Background(), l)
}

func TestOutputContext_Success(t *testing.T) {
	t.Parallel()
	out, err := OutputContext(logCtx(), "", "echo", "hello")
	if err != nil {
		t.Fatalf("OutputContext(echo hello) = %v, want nil", err)
	}
	if got := string(out); got != "hello\n" {
		t.Errorf("OutputContext output = %q, want %q", got, "hello\n")
	}
}

func TestOutputContext_Failure(t *testing.T) {
	t.Parallel()
	_, err := OutputContext(logCtx(), "", "sh", "-c", "exit 1")
	if err == nil {
		t.Error("OutputContext(exit 1) = nil, want error")
	}
}

func TestOutputContext_StderrMessage(t *testing.T) {
	t.Parallel()
	_, err := OutputContext(logCtx(), "", "sh", "-c", "echo 'error msg' >&2; exit 1")
	if err == nil {
		t.Fatal("OutputContext = nil, want error")
	}
	if err.Error() != "error msg" {
		t.Errorf("OutputContext error = %q, want %q", err.Error(), "error msg")
	}
}

func TestOutputContext_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	_, err := OutputContext(ctx, "", "sleep", "10")
	if err == nil {
		t.Error("OutputContext with cancelled context = nil, want error")
	}
	if err != context.Canceled {
		t.Errorf("OutputContext error = %v, want context.Canceled", err)
	}
}

func TestOutputContext_Dir(t *testing.T) {
	t.Parallel()
	out, err := OutputContext(logCtx(), "/tmp", "pwd")
	if err != nil {
		t.Fatalf("OutputContext with dir = %v, want nil", err)
	}
	if got := string(out); got != "/tmp\n" && got != "/private/tmp\n" {
		t.Errorf("OutputContext output = %q, want /tmp", got)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	_, err := OutputContext(logCtx(), "", "sh", "-c", "exit 3")
	if err == nil {
		t.Fatal("OutputContext = nil, want error")
	}
	if code := ExitCode(err); code != 3 {
		t.Errorf("ExitCode = %d, want 3", code)
	}
}

// The child's status must survive error wrapping on the way up.
func TestExitCode_WrappedError(t *testing.T) {
	t.Parallel()
	_, err := OutputContext(logCtx(), "", "sh", "-c", "exit 7")
	if err == nil {
		t.Fatal("OutputContext = nil, want error")
	}
	wrapped := fmt.Errorf("info lookup: %w", err)
	if code := ExitCode(wrapped); code != 7 {
		t.Errorf("ExitCode(wrapped) = %d, want 7", code)
	}
}

func TestExitCode_NotExit(t *testing.T) {
	t.Parallel()
	if code := ExitCode(fmt.Errorf("plain error")); code != -1 {
		t.Errorf("ExitCode(plain) = %d, want -1", code)
	}
	if code := ExitCode(nil); code != -1 {
		t.Errorf("ExitCode(nil) = %d, want -1", code)
	}
}
