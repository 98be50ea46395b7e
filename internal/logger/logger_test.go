package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Adda-Baaj/iconfinder/internal/config"
)

func TestInitRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := initWithWriter(&config.Config{LogLevel: "warn"}, &buf)
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	log.InfoObj("hidden", "k", 1)
	log.WarnObj("shown", "request", map[string]any{"url": "https://example/x"})
	_ = Close()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"url":"https://example/x"`) {
		t.Fatalf("expected structured warn line, got %s", out)
	}
	if !strings.Contains(out, `"ts":`) {
		t.Fatalf("expected ts key, got %s", out)
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if got := parseLevel("verbose"); got.String() != "info" {
		t.Fatalf("expected info, got %s", got)
	}
	if got := parseLevel(" DEBUG "); got.String() != "debug" {
		t.Fatalf("expected debug, got %s", got)
	}
}

func TestNilLoggersAreSafe(t *testing.T) {
	var z *ZapLogger
	z.ErrorObj("x", "y", nil)
	NopLogger{}.InfoObj("x", "y", nil)
}
