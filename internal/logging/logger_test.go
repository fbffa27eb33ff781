package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Output: &buf, JSON: true})
	if logger == nil {
		t.Fatal("New logger should not be nil")
	}

	t.Run("Levels", func(t *testing.T) {
		buf.Reset()
		logger.Debug("debug msg")
		if !strings.Contains(buf.String(), "debug msg") {
			t.Error("debug logging failed")
		}

		buf.Reset()
		logger.Info("info msg")
		if !strings.Contains(buf.String(), "info msg") {
			t.Error("info logging failed")
		}

		buf.Reset()
		logger.Warn("warn msg")
		if !strings.Contains(buf.String(), "warn msg") {
			t.Error("warn logging failed")
		}

		buf.Reset()
		logger.Error("error msg")
		if !strings.Contains(buf.String(), "error msg") {
			t.Error("error logging failed")
		}
	})

	t.Run("DynamicLevel", func(t *testing.T) {
		logger.SetLevel(LevelError)
		buf.Reset()
		logger.Info("should not appear")
		if buf.Len() > 0 {
			t.Error("logged info message when level was Error")
		}
		logger.SetLevel(LevelDebug)
	})

	t.Run("WithComponent", func(t *testing.T) {
		buf.Reset()
		logger.WithComponent("discovery").Info("msg")
		if !strings.Contains(buf.String(), "discovery") {
			t.Error("WithComponent missing component field")
		}
	})
}

func TestConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Output: &buf})

	logger.WithComponent("spark").Info("neighbor up", "neighbor", "rsw001")
	out := buf.String()

	if !strings.Contains(out, "[info]") {
		t.Errorf("missing level tag: %q", out)
	}
	if !strings.Contains(out, "spark: neighbor up") {
		t.Errorf("component must prefix the message: %q", out)
	}
	if !strings.Contains(out, "neighbor=rsw001") {
		t.Errorf("missing key=value attr: %q", out)
	}

	buf.Reset()
	logger.Info("spaced attr", "detail", "two words")
	if !strings.Contains(buf.String(), `detail="two words"`) {
		t.Errorf("values with spaces must be quoted: %q", buf.String())
	}
}
