package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestMake_Defaults(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.config.level != LevelInfo {
		t.Errorf("expected default level Info, got %v", logger.config.level)
	}
	if logger.config.format != FormatJSON {
		t.Errorf("expected default format JSON, got %v", logger.config.format)
	}
	if logger.config.caller {
		t.Error("expected caller info disabled by default")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func(Logger, string, ...slog.Attr)
		minLevel Level
		logged   bool
	}{
		{"trace at trace", Logger.Trace, LevelTrace, true},
		{"trace at debug", Logger.Trace, LevelDebug, false},
		{"debug at debug", Logger.Debug, LevelDebug, true},
		{"debug at info", Logger.Debug, LevelInfo, false},
		{"info at info", Logger.Info, LevelInfo, true},
		{"info at warn", Logger.Info, LevelWarn, false},
		{"warn at warn", Logger.Warn, LevelWarn, true},
		{"warn at error", Logger.Warn, LevelError, false},
		{"error at error", Logger.Error, LevelError, true},
		{"error at trace", Logger.Error, LevelTrace, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := Make(&buf, WithLevel(tt.minLevel))

			tt.logFunc(logger, "filter probe")

			if got := buf.Len() > 0; got != tt.logged {
				t.Errorf("expected logged=%v, got %d bytes", tt.logged, buf.Len())
			}
		})
	}
}

func TestLogger_LevelNames(t *testing.T) {
	// Trace must render as "trace", not slog's synthetic "DEBUG-4".
	levels := []struct {
		logFunc func(Logger, string, ...slog.Attr)
		name    string
	}{
		{Logger.Trace, "trace"},
		{Logger.Debug, "debug"},
		{Logger.Info, "info"},
		{Logger.Warn, "warn"},
		{Logger.Error, "error"},
	}

	for _, format := range []Format{FormatText, FormatJSON} {
		for _, level := range levels {
			t.Run(format.String()+"/"+level.name, func(t *testing.T) {
				var buf bytes.Buffer
				logger := Make(&buf,
					WithLevel(LevelTrace),
					WithFormat(format),
					WithPretty(true),
				)

				level.logFunc(logger, "level probe")

				output := buf.String()
				if !strings.Contains(output, "level probe") {
					t.Fatalf("expected message in output, got: %s", output)
				}
				if !strings.Contains(output, level.name) {
					t.Errorf("expected level name %q in output, got: %s", level.name, output)
				}
			})
		}
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatJSON), WithPretty(false))

	logger.Info("structured message", slog.String("key", "value"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if entry["msg"] != "structured message" {
		t.Errorf("expected msg=structured message, got %v", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Errorf("expected key=value, got %v", entry["key"])
	}
}

func TestLogger_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatText), WithPretty(false))

	logger.Info("structured message", slog.String("key", "value"))

	output := buf.String()
	if !strings.Contains(output, "structured message") {
		t.Error("message not found in text output")
	}
	if !strings.Contains(output, "key=value") {
		t.Error("key=value not found in text output")
	}
}

func TestLogger_CallerInfo(t *testing.T) {
	for _, enable := range []bool{true, false} {
		var buf bytes.Buffer
		logger := Make(&buf, WithCaller(enable))

		logger.Info("caller probe")

		if got := strings.Contains(buf.String(), "source"); got != enable {
			t.Errorf("WithCaller(%v): source field present = %v", enable, got)
		}
	}
}

func TestLogger_TimeLayout(t *testing.T) {
	t.Run("named layout", func(t *testing.T) {
		var buf bytes.Buffer
		logger := Make(&buf, WithTimeLayout("RFC3339Nano"), WithPretty(false))

		logger.Info("time probe")

		if !strings.Contains(buf.String(), ".") {
			t.Errorf("expected sub-second timestamp, got: %s", buf.String())
		}
	})

	t.Run("disabled", func(t *testing.T) {
		var buf bytes.Buffer
		logger := Make(&buf, WithTimeLayout("none"), WithPretty(false))

		logger.Info("time probe")

		if strings.Contains(buf.String(), `"time"`) {
			t.Errorf("expected no time field, got: %s", buf.String())
		}
	})
}

func TestLogger_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithPretty(false))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("concurrent message", slog.Int("id", id))
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 100 {
		t.Errorf("expected 100 log lines, got %d", len(lines))
	}
}

func TestLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatJSON), WithPretty(false))

	logger.With(slog.String("key", "value")).Info("bound probe")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to unmarshal log entry: %v", err)
	}
	if val, ok := entry["key"]; !ok || val != "value" {
		t.Errorf("expected key=value in log entry, got %v", val)
	}
}

func TestLogger_Wrap_OverridesOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelError))

	logger.Debug("suppressed")
	if buf.Len() > 0 {
		t.Fatal("debug message logged at Error level")
	}

	logger.Wrap(WithLevel(LevelDebug)).Debug("admitted")
	if !strings.Contains(buf.String(), "admitted") {
		t.Error("wrapped logger did not apply lowered level")
	}
}

func TestLogger_ZeroValue_NoOp(t *testing.T) {
	var l Logger

	// None of these may panic.
	l.Trace("test")
	l.Debug("test")
	l.Info("test")
	l.Warn("test")
	l.Error("test")

	if derived := l.With(slog.String("key", "value")); derived.Logger != nil {
		t.Error("expected nil handler from zero value With")
	}
}

func TestLogger_ContextMethods(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(Logger, string, ...slog.Attr)
	}{
		{"TraceContext", func(l Logger, msg string, attrs ...slog.Attr) {
			l.TraceContext(DefaultContextProvider(), msg, attrs...)
		}},
		{"DebugContext", func(l Logger, msg string, attrs ...slog.Attr) {
			l.DebugContext(DefaultContextProvider(), msg, attrs...)
		}},
		{"InfoContext", func(l Logger, msg string, attrs ...slog.Attr) {
			l.InfoContext(DefaultContextProvider(), msg, attrs...)
		}},
		{"WarnContext", func(l Logger, msg string, attrs ...slog.Attr) {
			l.WarnContext(DefaultContextProvider(), msg, attrs...)
		}},
		{"ErrorContext", func(l Logger, msg string, attrs ...slog.Attr) {
			l.ErrorContext(DefaultContextProvider(), msg, attrs...)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := Make(&buf, WithLevel(LevelTrace))

			tt.logFunc(logger, "context probe")

			if !strings.Contains(buf.String(), "context probe") {
				t.Error("expected message to be logged")
			}
		})
	}
}

func TestPackage_ContextFunctions_UseDefaultLogger(t *testing.T) {
	original := defaultLog
	defer func() { defaultLog = original }()

	tests := []struct {
		name    string
		logFunc func(string, ...slog.Attr)
	}{
		{"TraceContext", func(msg string, attrs ...slog.Attr) {
			TraceContext(DefaultContextProvider(), msg, attrs...)
		}},
		{"DebugContext", func(msg string, attrs ...slog.Attr) {
			DebugContext(DefaultContextProvider(), msg, attrs...)
		}},
		{"InfoContext", func(msg string, attrs ...slog.Attr) {
			InfoContext(DefaultContextProvider(), msg, attrs...)
		}},
		{"WarnContext", func(msg string, attrs ...slog.Attr) {
			WarnContext(DefaultContextProvider(), msg, attrs...)
		}},
		{"ErrorContext", func(msg string, attrs ...slog.Attr) {
			ErrorContext(DefaultContextProvider(), msg, attrs...)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Config(WithOutput(&buf), WithLevel(LevelTrace))

			tt.logFunc("package context test")

			if !strings.Contains(buf.String(), "package context test") {
				t.Error("expected message via package context function")
			}
		})
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	var buf bytes.Buffer
	logger := Make(&buf)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", slog.Int("iteration", i))
	}
}

func BenchmarkLogger_Info_WithCaller(b *testing.B) {
	var buf bytes.Buffer
	logger := Make(&buf, WithCaller(true))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", slog.Int("iteration", i))
	}
}

func BenchmarkLogger_Info_WithAttributes(b *testing.B) {
	var buf bytes.Buffer
	logger := Make(&buf).With(slog.String("component", "bench"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", slog.Int("iteration", i))
	}
}

func BenchmarkLogger_Info_Concurrent(b *testing.B) {
	var buf bytes.Buffer
	logger := Make(&buf)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			logger.Info("concurrent message", slog.Int("id", i))
			i++
		}
	})
}
