// Package config provides YAML-based configuration loading for the
// Snake Xenzia host: storage location, logging, input and SSH server settings.
// Board size, speed and scoring are fixed by the game and not configurable.
package config

import "time"

// Config contains all host configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Input   InputConfig   `yaml:"input"`
	Server  ServerConfig  `yaml:"server"`
}

// StorageConfig defines where the high score is kept.
type StorageConfig struct {
	Path string `yaml:"path"` // SQLite file, ~ is expanded
}

// LogConfig defines logging behaviour.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // used while the TUI owns the terminal; empty discards
}

// InputConfig defines input collaborator parameters.
type InputConfig struct {
	SwipeThreshold int `yaml:"swipe_threshold"` // minimum drag distance in cells
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}
