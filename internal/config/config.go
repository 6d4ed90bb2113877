// Package config manages mcproto-proxy daemon configuration using koanf/v2.
//
// Supports YAML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// -------------------------------------------------------------------------
// Configuration Structures
// -------------------------------------------------------------------------

// Config holds the complete mcproto-proxy configuration.
type Config struct {
	Listen  ListenConfig  `koanf:"listen"`
	Metrics MetricsConfig `koanf:"metrics"`
	Log     LogConfig     `koanf:"log"`
	Proto   ProtoConfig   `koanf:"proto"`
}

// ListenConfig holds the proxy's front-end listen configuration.
type ListenConfig struct {
	// Addr is the TCP address the proxy accepts client connections on.
	Addr string `koanf:"addr"`
	// Upstream is the backend server address relayed frames are forwarded to.
	Upstream string `koanf:"upstream"`
}

// MetricsConfig holds the Prometheus metrics endpoint configuration.
type MetricsConfig struct {
	// Addr is the HTTP listen address for the metrics endpoint (e.g., ":9100").
	Addr string `koanf:"addr"`
	// Path is the URL path for the metrics endpoint (e.g., "/metrics").
	Path string `koanf:"path"`
}

// LogConfig holds the logging configuration.
type LogConfig struct {
	// Level is the log level: "debug", "info", "warn", "error".
	Level string `koanf:"level"`
	// Format is the log output format: "json" or "text".
	Format string `koanf:"format"`
}

// ProtoConfig holds the protocol parameters applied to relayed connections:
// the catalog version used for every connection, and the compression
// threshold in effect until a SetCompression packet is observed.
type ProtoConfig struct {
	// Version is the catalog version (schema registry key) to relay with.
	Version int `koanf:"version"`

	// CompressionThreshold is the initial compression threshold, or -1 to
	// start with compression disabled until a SetCompression packet is seen.
	CompressionThreshold int `koanf:"compression_threshold"`
}

// -------------------------------------------------------------------------
// Defaults
// -------------------------------------------------------------------------

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Listen: ListenConfig{
			Addr:     ":25565",
			Upstream: "127.0.0.1:25566",
		},
		Metrics: MetricsConfig{
			Addr: ":9100",
			Path: "/metrics",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Proto: ProtoConfig{
			Version:              47,
			CompressionThreshold: -1,
		},
	}
}

// -------------------------------------------------------------------------
// Loader
// -------------------------------------------------------------------------

// envPrefix is the environment variable prefix for mcproto-proxy configuration.
// Variables are named MCPROTO_<section>_<key>, e.g., MCPROTO_LISTEN_ADDR.
const envPrefix = "MCPROTO_"

// Load reads configuration from a YAML file at path, overlays environment
// variable overrides (MCPROTO_ prefix), and merges on top of DefaultConfig().
// Missing fields inherit defaults.
//
// Environment variable mapping:
//
//	MCPROTO_LISTEN_ADDR      -> listen.addr
//	MCPROTO_LISTEN_UPSTREAM  -> listen.upstream
//	MCPROTO_METRICS_ADDR     -> metrics.addr
//	MCPROTO_LOG_LEVEL        -> log.level
//	MCPROTO_PROTO_VERSION    -> proto.version
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := DefaultConfig()
	if err := loadDefaults(k, defaults); err != nil {
		return nil, fmt.Errorf("load config defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config from %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper), nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config from %s: %w", path, err)
	}

	return cfg, nil
}

// envKeyMapper transforms MCPROTO_LISTEN_ADDR -> listen.addr.
func envKeyMapper(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "_", ".")
}

// loadDefaults marshals the default config into koanf as the base layer.
func loadDefaults(k *koanf.Koanf, defaults *Config) error {
	defaultMap := map[string]any{
		"listen.addr":                 defaults.Listen.Addr,
		"listen.upstream":             defaults.Listen.Upstream,
		"metrics.addr":                defaults.Metrics.Addr,
		"metrics.path":                defaults.Metrics.Path,
		"log.level":                   defaults.Log.Level,
		"log.format":                  defaults.Log.Format,
		"proto.version":               defaults.Proto.Version,
		"proto.compression_threshold": defaults.Proto.CompressionThreshold,
	}

	for key, val := range defaultMap {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

// -------------------------------------------------------------------------
// Validation
// -------------------------------------------------------------------------

// Validation errors.
var (
	// ErrEmptyListenAddr indicates the listen address is empty.
	ErrEmptyListenAddr = errors.New("listen.addr must not be empty")

	// ErrEmptyUpstream indicates the upstream address is empty.
	ErrEmptyUpstream = errors.New("listen.upstream must not be empty")

	// ErrUnknownProtoVersion indicates proto.version has no registered catalog entry.
	ErrUnknownProtoVersion = errors.New("proto.version is not a known catalog version")
)

// knownVersions lists the catalog versions this build registers.
var knownVersions = map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true, 5: true, 47: true}

// Validate checks the configuration for logical errors.
func Validate(cfg *Config) error {
	if cfg.Listen.Addr == "" {
		return ErrEmptyListenAddr
	}
	if cfg.Listen.Upstream == "" {
		return ErrEmptyUpstream
	}
	if !knownVersions[cfg.Proto.Version] {
		return fmt.Errorf("%w: %d", ErrUnknownProtoVersion, cfg.Proto.Version)
	}
	return nil
}

// -------------------------------------------------------------------------
// Log Level Parsing
// -------------------------------------------------------------------------

// ParseLogLevel maps a configuration log level string to the corresponding
// slog.Level. Unknown values default to slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
