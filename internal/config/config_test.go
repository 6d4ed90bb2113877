package config_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dantte-lp/mcproto/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()

	if cfg.Listen.Addr != ":25565" {
		t.Errorf("Listen.Addr = %q, want %q", cfg.Listen.Addr, ":25565")
	}
	if cfg.Listen.Upstream != "127.0.0.1:25566" {
		t.Errorf("Listen.Upstream = %q, want %q", cfg.Listen.Upstream, "127.0.0.1:25566")
	}
	if cfg.Metrics.Addr != ":9100" {
		t.Errorf("Metrics.Addr = %q, want %q", cfg.Metrics.Addr, ":9100")
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics.Path = %q, want %q", cfg.Metrics.Path, "/metrics")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}
	if cfg.Proto.Version != 47 {
		t.Errorf("Proto.Version = %d, want 47", cfg.Proto.Version)
	}
	if cfg.Proto.CompressionThreshold != -1 {
		t.Errorf("Proto.CompressionThreshold = %d, want -1", cfg.Proto.CompressionThreshold)
	}

	if err := config.Validate(cfg); err != nil {
		t.Errorf("DefaultConfig() failed validation: %v", err)
	}
}

func TestLoadFromYAML(t *testing.T) {
	t.Parallel()

	yamlContent := `
listen:
  addr: ":30000"
  upstream: "10.0.0.1:25565"
metrics:
  addr: ":9200"
  path: "/custom-metrics"
log:
  level: "debug"
  format: "text"
proto:
  version: 5
  compression_threshold: 256
`

	path := writeTemp(t, yamlContent)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}

	if cfg.Listen.Addr != ":30000" {
		t.Errorf("Listen.Addr = %q, want %q", cfg.Listen.Addr, ":30000")
	}
	if cfg.Listen.Upstream != "10.0.0.1:25565" {
		t.Errorf("Listen.Upstream = %q, want %q", cfg.Listen.Upstream, "10.0.0.1:25565")
	}
	if cfg.Metrics.Addr != ":9200" {
		t.Errorf("Metrics.Addr = %q, want %q", cfg.Metrics.Addr, ":9200")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Proto.Version != 5 {
		t.Errorf("Proto.Version = %d, want 5", cfg.Proto.Version)
	}
	if cfg.Proto.CompressionThreshold != 256 {
		t.Errorf("Proto.CompressionThreshold = %d, want 256", cfg.Proto.CompressionThreshold)
	}
}

func TestLoadMergesDefaults(t *testing.T) {
	t.Parallel()

	yamlContent := `
listen:
  addr: ":55555"
log:
  level: "warn"
`

	path := writeTemp(t, yamlContent)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}

	if cfg.Listen.Addr != ":55555" {
		t.Errorf("Listen.Addr = %q, want %q", cfg.Listen.Addr, ":55555")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
	}

	// Default values should be preserved.
	if cfg.Listen.Upstream != "127.0.0.1:25566" {
		t.Errorf("Listen.Upstream = %q, want default %q", cfg.Listen.Upstream, "127.0.0.1:25566")
	}
	if cfg.Metrics.Addr != ":9100" {
		t.Errorf("Metrics.Addr = %q, want default %q", cfg.Metrics.Addr, ":9100")
	}
	if cfg.Proto.Version != 47 {
		t.Errorf("Proto.Version = %d, want default 47", cfg.Proto.Version)
	}
}

func TestValidateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*config.Config)
		wantErr error
	}{
		{
			name: "empty listen addr",
			modify: func(cfg *config.Config) {
				cfg.Listen.Addr = ""
			},
			wantErr: config.ErrEmptyListenAddr,
		},
		{
			name: "empty upstream addr",
			modify: func(cfg *config.Config) {
				cfg.Listen.Upstream = ""
			},
			wantErr: config.ErrEmptyUpstream,
		},
		{
			name: "unknown proto version",
			modify: func(cfg *config.Config) {
				cfg.Proto.Version = 999
			},
			wantErr: config.ErrUnknownProtoVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			tt.modify(cfg)

			err := config.Validate(cfg)
			if err == nil {
				t.Fatal("Validate() returned nil, want error")
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "DEBUG", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "Error", want: slog.LevelError},
		{input: "unknown", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got := config.ParseLogLevel(tt.input)
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadNonexistentFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load("/nonexistent/path/config.yml")
	if err == nil {
		t.Fatal("Load() returned nil error for nonexistent file")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	// Cannot run in parallel: mutates process-wide environment state.
	yamlContent := `
listen:
  addr: ":25565"
log:
  level: "info"
`
	path := writeTemp(t, yamlContent)

	t.Setenv("MCPROTO_LISTEN_ADDR", ":26000")
	t.Setenv("MCPROTO_LOG_LEVEL", "debug")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}

	if cfg.Listen.Addr != ":26000" {
		t.Errorf("Listen.Addr = %q, want %q (from env)", cfg.Listen.Addr, ":26000")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q (from env)", cfg.Log.Level, "debug")
	}
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "mcproto.yml")

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	return path
}
