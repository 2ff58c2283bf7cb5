package log

import (
	"strings"
	"testing"
	"time"
)

func TestOption_WithLevel(t *testing.T) {
	for _, level := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError} {
		t.Run(level.String(), func(t *testing.T) {
			c := WithLevel(level)(config{})
			if c.level != level {
				t.Errorf("expected level %v, got %v", level, c.level)
			}
		})
	}
}

func TestOption_WithCaller(t *testing.T) {
	for _, enable := range []bool{true, false} {
		c := WithCaller(enable)(config{})
		if c.caller != enable {
			t.Errorf("WithCaller(%v): caller = %v", enable, c.caller)
		}
	}
}

func TestOption_WithFormat(t *testing.T) {
	tests := []struct {
		name   string
		format Format
	}{
		{"json", FormatJSON},
		{"text", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := WithFormat(tt.format)(config{})
			if c.format != tt.format {
				t.Errorf("expected format %v, got %v", tt.format, c.format)
			}
		})
	}
}

func TestTimeFormatter_Layouts(t *testing.T) {
	now := time.Date(2023, 10, 15, 14, 30, 45, 123456789, time.UTC)

	tests := []struct {
		name        string
		layout      string
		contains    []string
		notContains []string
	}{
		{
			name:        "named rfc3339",
			layout:      "RFC3339",
			contains:    []string{"2023-10-15T14:30:45Z"},
			notContains: []string{".123", ".456", ".789"},
		},
		{
			name:     "named rfc3339 nano",
			layout:   "RFC3339Nano",
			contains: []string{"2023-10-15T14:30:45.123456789Z"},
		},
		{
			name:     "custom layout keeps surrounding whitespace",
			layout:   "   2006-01-02 15:04:05.000Z07:00",
			contains: []string{"   2023-10-15 14:30:45.123Z"},
		},
		{
			name:     "unrecognized name is used verbatim",
			layout:   "UNKNOWN_FORMAT",
			contains: []string{"UNKNOWN_FORMAT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := WithTimeLayout(tt.layout)(config{})
			result := c.formatTime(now)

			for _, s := range tt.contains {
				if !strings.Contains(result, s) {
					t.Errorf("expected %q to contain %q", result, s)
				}
			}
			for _, s := range tt.notContains {
				if strings.Contains(result, s) {
					t.Errorf("expected %q not to contain %q", result, s)
				}
			}
		})
	}
}

func TestTimeFormatter_NamedLayoutMatchesStdlib(t *testing.T) {
	now := time.Date(2023, 10, 15, 14, 30, 45, 123456789, time.UTC)
	c := WithTimeLayout("RFC3339")(config{})

	if got, want := c.formatTime(now), now.Format(time.RFC3339); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTimeFormatter_BlankLayoutDisablesTimestamp(t *testing.T) {
	now := time.Date(2023, 10, 15, 14, 30, 45, 123456789, time.UTC)

	for _, layout := range []string{"", "   \t  ", "none"} {
		c := WithTimeLayout(layout)(config{})
		if got := c.formatTime(now); got != "" {
			t.Errorf("layout %q: expected empty timestamp, got %q", layout, got)
		}
	}
}

func BenchmarkTimeFormatter(b *testing.B) {
	for _, layout := range []string{"RFC3339", "RFC3339Nano"} {
		b.Run(layout, func(b *testing.B) {
			c := WithTimeLayout(layout)(config{})
			now := time.Now()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = c.formatTime(now)
			}
		})
	}
}
