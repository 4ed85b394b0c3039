// Package timeouts provides centralized timeout values for handler operations.
//
// The values are used with context.WithTimeout around I/O in HTTP handlers.
// Mindwell has exactly one external call (the diagnostic collection listing),
// so only two tiers exist:
//   - Ping: connectivity probes and the diagnostic listing
//   - Short: everything else that might one day touch a backend
//
// Defaults can be overridden at startup from the environment.
package timeouts

import (
	"os"
	"sync"
	"time"
)

// Default timeout values (used if nothing is configured).
const (
	DefaultPing  = 2 * time.Second
	DefaultShort = 5 * time.Second
)

var (
	mu    sync.RWMutex
	ping  = DefaultPing
	short = DefaultShort
)

// Ping returns the timeout for connectivity probes, such as the diagnostic
// endpoint's collection listing.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for simple backend operations.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// ConfigureFromEnv reads timeout overrides from the environment. Variables
// (optional; invalid or non-positive values are ignored):
//   - TIMEOUT_PING: e.g. "2s", "500ms"
//   - TIMEOUT_SHORT: e.g. "5s"
//
// Returns the number of timeouts configured from the environment.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()
	configured := 0

	if v := os.Getenv("TIMEOUT_PING"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ping = d
			configured++
		}
	}
	if v := os.Getenv("TIMEOUT_SHORT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			short = d
			configured++
		}
	}

	return configured
}

// Reset restores the default values. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
}
