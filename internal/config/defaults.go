package config

import (
	_ "embed"
)

//go:embed defaults/xenzia.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It mirrors defaults/xenzia.yaml and is used if the embedded file fails to parse.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Path: "~/.arcade/xenzia.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.arcade/xenzia.log",
		},
		Input: InputConfig{
			SwipeThreshold: 2,
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
