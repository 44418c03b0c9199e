// Package config reads rawcall settings from the environment.
package config

import (
	"strings"

	"github.com/xyproto/env/v2"
)

const (
	DefaultFormat     = "table"
	DefaultCacheSize  = 64
	DefaultQueueDepth = 1
)

type Config struct {
	LogLevel   string
	Trace      bool
	Format     string
	CacheSize  int
	QueueDepth int
}

// Load builds a Config from RAWCALL_* variables, falling back to defaults
// for anything unset or nonsensical. The environment is re-read on every
// call.
func Load() Config {
	env.Load()

	c := Config{
		LogLevel:   strings.ToLower(env.Str("RAWCALL_LOG_LEVEL", "info")),
		Trace:      env.Bool("RAWCALL_TRACE"),
		Format:     strings.ToLower(env.Str("RAWCALL_FORMAT", DefaultFormat)),
		CacheSize:  env.Int("RAWCALL_CACHE_SIZE", DefaultCacheSize),
		QueueDepth: env.Int("RAWCALL_QUEUE_DEPTH", DefaultQueueDepth),
	}
	if c.Format != "table" && c.Format != "json" {
		c.Format = DefaultFormat
	}
	if c.CacheSize <= 0 {
		c.CacheSize = DefaultCacheSize
	}
	if c.QueueDepth <= 0 {
		c.QueueDepth = DefaultQueueDepth
	}
	return c
}
