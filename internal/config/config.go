// Package config loads timetable settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
	"github.com/ukaji3/timetable-go/pkg/timetable/xlsx"
)

// DefaultFileName is looked up next to the executable when no path is given.
const DefaultFileName = "timetable.toml"

// AppConfig is the application configuration.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Export ExportConfig `toml:"export"`
	Limits LimitsConfig `toml:"limits"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Port           int      `toml:"port"`
	DevMode        bool     `toml:"dev_mode"`
	MaxUploadBytes int64    `toml:"max_upload_bytes"`
	DownloadTTL    Duration `toml:"download_ttl"`
}

// ExportConfig configures the generated workbook.
type ExportConfig struct {
	Filename       string  `toml:"filename"`
	FontFamily     string  `toml:"font_family"`
	HeaderFontSize float64 `toml:"header_font_size"`
	BodyFontSize   float64 `toml:"body_font_size"`
}

// LimitsConfig bounds the input.
type LimitsConfig struct {
	// MaxWeek treats larger week numbers as invalid. Zero disables the limit.
	MaxWeek int `toml:"max_week"`
}

// Duration is a time.Duration written as a string such as "10m" in TOML.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *AppConfig {
	style := xlsx.DefaultStyle()
	return &AppConfig{
		Server: ServerConfig{
			Port:           20262,
			DevMode:        false,
			MaxUploadBytes: 5 << 20,
			DownloadTTL:    Duration{10 * time.Minute},
		},
		Export: ExportConfig{
			Filename:       xlsx.DefaultFilename,
			FontFamily:     style.FontFamily,
			HeaderFontSize: style.HeaderFontSize,
			BodyFontSize:   style.BodyFontSize,
		},
	}
}

// Style returns the workbook fonts described by the export section.
func (c *AppConfig) Style() xlsx.Style {
	return xlsx.Style{
		FontFamily:     c.Export.FontFamily,
		HeaderFontSize: c.Export.HeaderFontSize,
		BodyFontSize:   c.Export.BodyFontSize,
	}
}

// Validate reports settings that cannot be used.
func (c *AppConfig) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be positive")
	}
	if c.Server.DownloadTTL.Duration <= 0 {
		return fmt.Errorf("server.download_ttl must be positive")
	}
	if c.Export.Filename == "" {
		return fmt.Errorf("export.filename is required")
	}
	if c.Limits.MaxWeek < 0 || c.Limits.MaxWeek > parser.MaxWeek {
		return fmt.Errorf("limits.max_week out of range: %d (0..%d)", c.Limits.MaxWeek, parser.MaxWeek)
	}
	return nil
}

// Load reads path on top of the defaults. An empty path falls back to
// DefaultFileName next to the executable; a missing default file is not an error.
func Load(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		exeDir, err := exeDir()
		if err != nil {
			exeDir = "."
		}
		path = filepath.Join(exeDir, DefaultFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func exeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
