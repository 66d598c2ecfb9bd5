// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audtrim/formats/mp3"
)

// Config is the complete audtrim configuration file.
type Config struct {
	Export  ExportConfig  `yaml:"export"`
	FFmpeg  FFmpegConfig  `yaml:"ffmpeg"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ExportConfig controls the file written after trimming.
type ExportConfig struct {
	Format     string `yaml:"format"`      // mp3 or wav
	Bitrate    int    `yaml:"bitrate"`     // kbps, mp3 only
	Output     string `yaml:"output"`      // default output path
	Layout     string `yaml:"layout"`      // interleaved or sequential
	Mono       bool   `yaml:"mono"`        // downmix before encoding
	SampleRate int    `yaml:"sample_rate"` // 0 keeps the source rate
}

// FFmpegConfig locates the ffmpeg binary used for MP3 encoding.
type FFmpegConfig struct {
	Path string `yaml:"path"`
}

// MetricsConfig names the node_exporter textfile written after each run.
// Empty disables it.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// LoggingConfig selects the slog level and handler format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			Format:  "mp3",
			Bitrate: mp3.DefaultBitrateKbps,
			Output:  mp3.DefaultFilename,
			Layout:  mp3.Interleaved.String(),
		},
		FFmpeg: FFmpegConfig{
			Path: mp3.DefaultFFmpegPath,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads path on top of Default, so a file only needs the keys it
// changes. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	if err := c.Export.Validate(); err != nil {
		return fmt.Errorf("export config: %w", err)
	}

	if c.FFmpeg.Path == "" {
		return fmt.Errorf("ffmpeg config: path cannot be empty")
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	if t := c.Metrics.Textfile; t != "" && !strings.HasSuffix(t, ".prom") {
		return fmt.Errorf("metrics config: textfile must end in .prom, got '%s'", t)
	}

	return nil
}

func (e *ExportConfig) Validate() error {
	switch e.Format {
	case "mp3":
		if err := mp3.ValidBitrate(e.Bitrate); err != nil {
			return err
		}
	case "wav":
	default:
		return fmt.Errorf("format must be 'mp3' or 'wav', got '%s'", e.Format)
	}

	if _, err := mp3.ParseLayout(e.Layout); err != nil {
		return err
	}

	if e.Output == "" {
		return fmt.Errorf("output cannot be empty")
	}

	if e.SampleRate < 0 || e.SampleRate > 192000 {
		return fmt.Errorf("sample_rate must be between 0 and 192000, got %d", e.SampleRate)
	}

	return nil
}

func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("level must be one of [debug, info, warn, error], got '%s'", l.Level)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("format must be 'json' or 'text', got '%s'", l.Format)
	}

	return nil
}

// SlogLevel maps Level to a slog level. Unknown values give info.
func (l *LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger builds a text or json slog logger writing to w.
func (l *LoggingConfig) Logger(w io.Writer) *slog.Logger {
	level := l.SlogLevel()
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	switch l.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
