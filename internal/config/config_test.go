package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log:
  file: /tmp/friday.log
  level: debug
calendar:
  month: "2023-05"
ui:
  alt_screen: false
export:
  dir: out
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.File != "/tmp/friday.log" {
		t.Errorf("Log.File = %q, want /tmp/friday.log", cfg.Log.File)
	}
	if cfg.Log.GetLogLevel() != zapcore.DebugLevel {
		t.Errorf("GetLogLevel() = %v, want debug", cfg.Log.GetLogLevel())
	}
	if year, month := cfg.Calendar.GetMonth(time.Now()); year != 2023 || month != 5 {
		t.Errorf("GetMonth() = (%d, %d), want (2023, 5)", year, month)
	}
	if cfg.UI.AltScreen {
		t.Error("UI.AltScreen = true, want false")
	}
	if cfg.Export.GetDir() != "out" {
		t.Errorf("Export.GetDir() = %q, want out", cfg.Export.GetDir())
	}
	if cfg.Export.ProductID != defaultProductID {
		t.Errorf("Export.ProductID = %q, want default", cfg.Export.ProductID)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	if cfg.Log.Level != want.Log.Level || cfg.UI.AltScreen != want.UI.AltScreen || cfg.Export.Dir != want.Export.Dir {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FRIDAY_CALENDAR_CALENDAR_MONTH", "2024-06")
	t.Setenv("FRIDAY_CALENDAR_LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, "log:\n  level: info\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Calendar.Month != "2024-06" {
		t.Errorf("Calendar.Month = %q, want 2024-06", cfg.Calendar.Month)
	}
	if cfg.Log.GetLogLevel() != zapcore.WarnLevel {
		t.Errorf("GetLogLevel() = %v, want warn", cfg.Log.GetLogLevel())
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Bad month", "calendar:\n  month: May\n"},
		{"Bad level", "log:\n  level: loud\n"},
		{"Empty product id", "export:\n  product_id: \" \"\n"},
		{"Malformed yaml", "log: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}

func TestCalendarConfig_GetMonthFallsBackToNow(t *testing.T) {
	c := CalendarConfig{}
	now := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)

	if year, month := c.GetMonth(now); year != 2025 || month != 3 {
		t.Errorf("GetMonth() = (%d, %d), want (2025, 3)", year, month)
	}
}
