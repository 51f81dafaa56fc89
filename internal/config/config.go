// Package config holds the server configuration.
package config

import "time"

// StorageType selects the catalog store implementation.
type StorageType string

const (
	StorageTypeMemory StorageType = "memory"
	StorageTypeRedis  StorageType = "redis"
)

// Config carries everything the server needs to start.
type Config struct {
	HTTPPort       int
	StorageType    StorageType
	RedisAddrs     []string
	Namespace      string
	RequestTimeout time.Duration
	// LatencyScale stretches or shrinks the artificial stage delays.
	// Zero disables them.
	LatencyScale float64
	// DeclineRate is the probability an unforced payment declines.
	DeclineRate float64
	Debug       bool
}
