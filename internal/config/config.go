package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Transport modes.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Auth   AuthConfig   `yaml:"auth"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Transport string `yaml:"transport"`
}

type StoreConfig struct {
	// Backend is memory, file, or sqlite.
	Backend string `yaml:"backend"`
	// Path is the data file for the file and sqlite backends.
	Path string `yaml:"path"`
}

type AuthConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			Transport: TransportStdio,
		},
		Store: StoreConfig{
			Backend: BackendFile,
			Path:    "farvue.json",
		},
		Auth: AuthConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("FARVUE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("FARVUE_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("FARVUE_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FARVUE_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if transport := os.Getenv("FARVUE_TRANSPORT"); transport != "" {
		cfg.Server.Transport = transport
	}
	if backend := os.Getenv("FARVUE_STORE_BACKEND"); backend != "" {
		cfg.Store.Backend = backend
	}
	if path := os.Getenv("FARVUE_STORE_PATH"); path != "" {
		cfg.Store.Path = path
	}
	if enabled := os.Getenv("FARVUE_AUTH_ENABLED"); enabled != "" {
		v, err := strconv.ParseBool(enabled)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FARVUE_AUTH_ENABLED: %w", err)
		}
		cfg.Auth.Enabled = v
	}
	if level := os.Getenv("FARVUE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	switch c.Server.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("unknown transport %q", c.Server.Transport)
	}
	if c.Store.Backend != BackendMemory && c.Store.Path == "" {
		return fmt.Errorf("store backend %q requires a path", c.Store.Backend)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
