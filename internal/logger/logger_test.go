package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// capture routes all loggers to a buffer at level for the rest of the test.
func capture(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := Configure(Options{Level: level, Console: &buf}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	t.Cleanup(func() {
		if err := Configure(Options{}); err != nil {
			t.Errorf("reset: %v", err)
		}
	})
	return &buf
}

func TestNamedTagsSubsystem(t *testing.T) {
	buf := capture(t, "debug")

	Named("geometry").Info("geometry uploaded", zap.Int("vertices", 49))

	out := buf.String()
	for _, want := range []string{"geometry", "geometry uploaded", "vertices", "49"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q lacks %q", out, want)
		}
	}
}

func TestNamedFollowsConfigure(t *testing.T) {
	// Package-level loggers are created before the viewer configures logging.
	l := Named("landscape")
	if err := Configure(Options{}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	l.Info("dropped while unconfigured")

	buf := capture(t, "info")
	l.Info("terrain built")

	out := buf.String()
	if !strings.Contains(out, "terrain built") || !strings.Contains(out, "landscape") {
		t.Errorf("rebound logger wrote %q", out)
	}
	if strings.Contains(out, "dropped") {
		t.Errorf("line from before Configure leaked: %q", out)
	}
}

func TestNamedIsShared(t *testing.T) {
	if Named("scene") != Named("scene") {
		t.Error("Named returned different loggers for one subsystem")
	}
	if Named("scene").Name() != "scene" {
		t.Errorf("Name = %q", Named("scene").Name())
	}
}

func TestCallerIsLogSite(t *testing.T) {
	buf := capture(t, "info")

	Named("shader").Warn("attribute inactive")
	Info("viewer starting")

	out := buf.String()
	if n := strings.Count(out, "logger_test.go"); n != 2 {
		t.Errorf("expected both lines attributed to logger_test.go, got %d in %q", n, out)
	}
	if strings.Contains(out, "logger/logger.go") {
		t.Errorf("caller points into the logger package: %q", out)
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		level    string
		included []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"", []string{"INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			buf := capture(t, tt.level)
			l := Named("renderer")
			l.Debug("frame")
			l.Info("frame")
			l.Warn("frame")
			l.Error("frame")

			out := buf.String()
			for _, want := range tt.included {
				if !strings.Contains(out, want) {
					t.Errorf("expected %s in %q", want, out)
				}
			}
			for _, unwanted := range tt.excluded {
				if strings.Contains(out, unwanted) {
					t.Errorf("unexpected %s in %q", unwanted, out)
				}
			}
		})
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "megaquad.log")
	if err := Configure(Options{Level: "info", File: DefaultFileConfig(path)}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	t.Cleanup(func() { _ = Configure(Options{}) })

	Named("window").Info("window opened", zap.Int("width", 800))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "window opened") || !strings.Contains(out, "window") {
		t.Errorf("log file = %q", out)
	}
	// File lines use plain level names and a full date.
	if strings.Contains(out, "\x1b[") {
		t.Errorf("color codes in log file: %q", out)
	}
	if !strings.Contains(out, "INFO") || !strings.Contains(out, "-") {
		t.Errorf("log file missing level or date: %q", out)
	}
}

func TestInvalidLevel(t *testing.T) {
	if err := Configure(Options{Level: "verbose"}); err == nil {
		t.Error("expected error for unknown level, got nil")
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("megaquad.log")
	if cfg.Path != "megaquad.log" || cfg.MaxSizeMB <= 0 || cfg.MaxBackups <= 0 || !cfg.Compress {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}
