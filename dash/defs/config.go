package defs

import (
	"time"

	"go.uber.org/zap"
)

const (
	DefaultAddr         = ":4242"
	DefaultFallbackPath = "assets/glucose.csv"

	FetchTimeout = 10 * time.Second
)

type Config struct {
	Sheet  SheetConfig  `yaml:"sheet"`
	Server ServerConfig `yaml:"server"`
	Logger *zap.Logger  `yaml:"-"`
}

// SheetConfig locates the CSV. An empty ID skips the remote attempt and
// reads the fallback file directly.
type SheetConfig struct {
	ID           string `yaml:"id"`
	FallbackPath string `yaml:"fallbackPath"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

func (c *Config) ApplyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Sheet.FallbackPath == "" {
		c.Sheet.FallbackPath = DefaultFallbackPath
	}
}
