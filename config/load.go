package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file at the path and merges it over the defaults. Environment overrides
// are applied afterwards. Empty path means defaults with environment overrides only.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		var parsed Config
		if err = yaml.Unmarshal(data, &parsed); err != nil {
			return nil, err
		}

		Merge(cfg, parsed)
	}

	ApplyEnv(cfg)
	return cfg, nil
}

// Merge copies every non-zero field of src into dst.
func Merge(dst *Config, src Config) {
	if src.Response.Charset != "" {
		dst.Response.Charset = src.Response.Charset
	}
	if src.File.ChunkSize > 0 {
		dst.File.ChunkSize = src.File.ChunkSize
	}
	if src.File.DefaultMIME != "" {
		dst.File.DefaultMIME = src.File.DefaultMIME
	}
	if src.Server.Addr != "" {
		dst.Server.Addr = src.Server.Addr
	}
	if src.Server.Root != "" {
		dst.Server.Root = src.Server.Root
	}
	if src.Server.BandwidthKBps != 0 {
		dst.Server.BandwidthKBps = src.Server.BandwidthKBps
	}
	if src.Server.ShutdownTimeout != 0 {
		dst.Server.ShutdownTimeout = src.Server.ShutdownTimeout
	}
}

// ApplyEnv overrides the config with RESPOND_* environment variables. Malformed numeric
// values are ignored.
func ApplyEnv(cfg *Config) {
	if addr := env("RESPOND_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if root := env("RESPOND_ROOT"); root != "" {
		cfg.Server.Root = root
	}
	if charset := env("RESPOND_CHARSET"); charset != "" {
		cfg.Response.Charset = charset
	}
	if size, err := strconv.Atoi(env("RESPOND_CHUNK_SIZE")); err == nil && size > 0 {
		cfg.File.ChunkSize = size
	}
	if kbps, err := strconv.Atoi(env("RESPOND_BANDWIDTH_KBPS")); err == nil && kbps >= 0 {
		cfg.Server.BandwidthKBps = kbps
	}
	if timeout, err := time.ParseDuration(env("RESPOND_SHUTDOWN_TIMEOUT")); err == nil {
		cfg.Server.ShutdownTimeout = timeout
	}
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
