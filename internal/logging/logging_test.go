package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// captureLogOutput captures log output for testing by temporarily
// redirecting the logger to write to a buffer
func captureLogOutput(f func()) string {
	var buf bytes.Buffer

	oldLogger := defaultLogger
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	defaultLogger = slog.New(handler)

	f()

	defaultLogger = oldLogger
	return buf.String()
}

func TestLogHelpers(t *testing.T) {
	tests := []struct {
		name      string
		log       func()
		wantLevel string
		wantMsg   string
	}{
		{
			name:      "debug",
			log:       func() { Debug("debug message", "key", "value") },
			wantLevel: "DEBUG",
			wantMsg:   "debug message",
		},
		{
			name:      "info",
			log:       func() { Info("info message") },
			wantLevel: "INFO",
			wantMsg:   "info message",
		},
		{
			name:      "warn",
			log:       func() { Warn("warn message") },
			wantLevel: "WARN",
			wantMsg:   "warn message",
		},
		{
			name:      "error",
			log:       func() { Error("error message") },
			wantLevel: "ERROR",
			wantMsg:   "error message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureLogOutput(tt.log)

			var record map[string]any
			if err := json.Unmarshal([]byte(out), &record); err != nil {
				t.Fatalf("log output is not JSON: %v\n%s", err, out)
			}
			if got := record["level"]; got != tt.wantLevel {
				t.Errorf("level = %v, want %v", got, tt.wantLevel)
			}
			if got := record["msg"]; got != tt.wantMsg {
				t.Errorf("msg = %v, want %v", got, tt.wantMsg)
			}
		})
	}
}

func TestInvalidIdentifier(t *testing.T) {
	out := captureLogOutput(func() {
		InvalidIdentifier("02313510", 17, errors.New("too short"))
	})

	var record map[string]any
	if err := json.Unmarshal([]byte(out), &record); err != nil {
		t.Fatalf("log output is not JSON: %v\n%s", err, out)
	}
	if got := record["msg"]; got != "invalid_identifier" {
		t.Errorf("msg = %v, want invalid_identifier", got)
	}
	if got := record["value"]; got != "02313510" {
		t.Errorf("value = %v, want 02313510", got)
	}
	if got := record["line"]; got != float64(17) {
		t.Errorf("line = %v, want 17", got)
	}
	if got, ok := record["error"].(string); !ok || !strings.Contains(got, "too short") {
		t.Errorf("error = %v, want to contain %q", record["error"], "too short")
	}
}

func TestInitLoggerLevels(t *testing.T) {
	// Reinitialize at Error level and confirm the global logger filters
	// lower levels.
	InitLogger(LevelError, FormatText)
	defer InitLogger(LevelWarn, FormatText)

	ctx := context.Background()
	if GetLogger().Enabled(ctx, slog.LevelWarn) {
		t.Error("logger at LevelError should not enable warn records")
	}
	if !GetLogger().Enabled(ctx, slog.LevelError) {
		t.Error("logger at LevelError should enable error records")
	}
}
