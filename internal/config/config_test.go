package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	style := cfg.Style()
	if style.FontFamily != "等线" || style.HeaderFontSize != 12 || style.BodyFontSize != 11 {
		t.Errorf("unexpected default style %+v", style)
	}
	if cfg.Export.Filename != "course_schedule.xlsx" {
		t.Errorf("unexpected default filename %q", cfg.Export.Filename)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timetable.toml")
	data := `
[server]
port = 8081
download_ttl = "90s"

[export]
font_family = "SimSun"

[limits]
max_week = 30
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8081 {
		t.Errorf("expected port 8081, got %d", cfg.Server.Port)
	}
	if cfg.Server.DownloadTTL.Duration != 90*time.Second {
		t.Errorf("expected ttl 90s, got %v", cfg.Server.DownloadTTL)
	}
	if cfg.Export.FontFamily != "SimSun" {
		t.Errorf("expected SimSun, got %q", cfg.Export.FontFamily)
	}
	if cfg.Export.BodyFontSize != 11 {
		t.Errorf("expected untouched body size 11, got %v", cfg.Export.BodyFontSize)
	}
	if cfg.Limits.MaxWeek != 30 {
		t.Errorf("expected max_week 30, got %d", cfg.Limits.MaxWeek)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing explicit file")
	}

	bad := filepath.Join(dir, "bad.toml")
	os.WriteFile(bad, []byte("[server\nport = "), 0644)
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.toml")
	for _, body := range []string{"[limits]\nmax_week = -1\n", "[limits]\nmax_week = 1001\n"} {
		os.WriteFile(invalid, []byte(body), 0644)
		if _, err := Load(invalid); err == nil {
			t.Errorf("expected validation error for %q", body)
		}
	}
}
