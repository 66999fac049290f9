package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the wfgraph front ends.
// Values come from an optional YAML file; environment variables override them.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Traversal TraversalConfig `yaml:"traversal"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP front end settings.
type ServerConfig struct {
	BindAddr string `yaml:"bind_addr" env:"WFGRAPH_BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"WFGRAPH_PORT" env-default:"8080"`
	// MaxUploadBytes caps the request body of upload endpoints (16 MiB).
	MaxUploadBytes int `yaml:"max_upload_bytes" env:"WFGRAPH_MAX_UPLOAD_BYTES" env-default:"16777216"`
	// CORSOrigins lists origins allowed to call the API from a browser.
	CORSOrigins []string `yaml:"cors_origins" env:"WFGRAPH_CORS_ORIGINS" env-separator:"," env-default:"*"`
}

// TraversalConfig tunes path enumeration.
type TraversalConfig struct {
	// MaxDepth is how many transitions a single path may follow.
	MaxDepth int `yaml:"max_depth" env:"WFGRAPH_MAX_DEPTH" env-default:"10"`
}

// LogConfig selects the zap encoder and level.
type LogConfig struct {
	Level  string `yaml:"level" env:"WFGRAPH_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"WFGRAPH_LOG_FORMAT" env-default:"console"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.BindAddr + ":" + s.Port
}

// Load reads configuration from path, or from the environment alone when
// path is empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings the front ends cannot run with.
func (c *Config) Validate() error {
	if c.Traversal.MaxDepth <= 0 {
		return fmt.Errorf("traversal.max_depth must be positive, got %d", c.Traversal.MaxDepth)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be positive, got %d", c.Server.MaxUploadBytes)
	}
	if len(c.Server.CORSOrigins) == 0 {
		return fmt.Errorf("server.cors_origins must not be empty")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
