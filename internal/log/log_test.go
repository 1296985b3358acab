package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	original := Logger()
	level := levelVar.Level()
	setLogger(slog.New(newHandler(buf)))
	t.Cleanup(func() {
		setLogger(original)
		levelVar.Set(level)
	})
	return buf
}

func TestInfoProducesLogfmtWithTimestamp(t *testing.T) {
	buf := captureLogs(t)
	if err := SetLevel("info"); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}

	Info(context.Background(), "recipe costed", "recipe_id", 7)

	line := strings.TrimSpace(buf.String())
	for _, want := range []string{"ts=", "level=info", `msg="recipe costed"`, "recipe_id=7"} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line %q missing %q", line, want)
		}
	}
}

func TestDefaultLevelHidesInfo(t *testing.T) {
	buf := captureLogs(t)
	if err := SetLevel(""); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}

	Info(context.Background(), "hidden")
	Debug(context.Background(), "hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output at warn level, got %q", buf.String())
	}

	Warn(context.Background(), "shown")
	if !strings.Contains(buf.String(), "level=warn") {
		t.Fatalf("expected warn line, got %q", buf.String())
	}
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	if err := SetLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNilContextIsTolerated(t *testing.T) {
	buf := captureLogs(t)
	if err := SetLevel("error"); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}

	//nolint:staticcheck // nil context is accepted on purpose
	Error(nil, "boom")
	if !strings.Contains(buf.String(), "msg=boom") {
		t.Fatalf("expected error line, got %q", buf.String())
	}
}

func TestSetOutputKeepsLevel(t *testing.T) {
	_ = captureLogs(t)
	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}

	buf := new(bytes.Buffer)
	SetOutput(buf)
	Debug(context.Background(), "links purged", "count", 2)
	if !strings.Contains(buf.String(), "msg=\"links purged\"") {
		t.Fatalf("expected debug line after SetOutput, got %q", buf.String())
	}

	SetOutput(io.Discard)
	Warn(context.Background(), "recipe skipped")
	if strings.Contains(buf.String(), "recipe skipped") {
		t.Fatalf("discarded output still reached the old writer: %q", buf.String())
	}
}
