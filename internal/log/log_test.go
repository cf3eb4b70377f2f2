package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	original := Logger()
	originalLevel := Level()
	ReplaceLogger(New(buf))
	t.Cleanup(func() {
		ReplaceLogger(original)
		levelVar.Set(originalLevel)
	})
	return buf
}

func TestInfoProducesLogfmtWithTimestamp(t *testing.T) {
	buf := captureLogger(t)

	Info(context.Background(), "hello", "user", "test")

	line := strings.TrimSpace(buf.String())
	for _, want := range []string{"ts=", "level=info", "msg=hello", "user=test"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in log line, got %q", want, line)
		}
	}
}

func TestSetLevelFiltersMessages(t *testing.T) {
	buf := captureLogger(t)

	if err := SetLevel("WARN"); err != nil {
		t.Fatalf("SetLevel returned error: %v", err)
	}
	Info(context.Background(), "quiet")
	Warn(context.Background(), "loud")

	out := buf.String()
	if strings.Contains(out, "msg=quiet") {
		t.Fatalf("info message should be filtered, got %q", out)
	}
	if !strings.Contains(out, "level=warn") || !strings.Contains(out, "msg=loud") {
		t.Fatalf("expected warn message, got %q", out)
	}

	if err := SetLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestComponentTagsLines(t *testing.T) {
	buf := captureLogger(t)

	Component("search").Info("ranked", "results", 3)

	if line := buf.String(); !strings.Contains(line, "component=search") || !strings.Contains(line, "results=3") {
		t.Fatalf("expected component attributes, got %q", line)
	}
}
