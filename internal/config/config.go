// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// gift server and the terminal client. It is populated by merging values from
// environment variables, command-line flags, an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds runtime mode, public origin and version.
	App App `envPrefix:"APP_"`

	// Storage holds the upload directory and the client history database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen, timeout and rate-limit settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address the terminal client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job periods.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// GiftRef is a gift link or bare id the client should open for reveal.
	// Only settable with the -gift flag.
	GiftRef string
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the client-side history database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the upload directory settings.
	Files Files `envPrefix:"FILES_"`
}

// App holds application-level configuration values.
type App struct {
	// Mode is "development", "production" or "test". Development exposes
	// internal error details in 500 responses and keeps debug logs.
	// Env: APP_MODE
	Mode string `env:"MODE"`

	// PublicURL is the origin used when building gift links
	// (e.g. "https://gifts.example.com"). When empty the request origin is used.
	// Env: APP_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network, timeout and rate-limit settings for the HTTP server.
type Server struct {
	// Host is the interface the server binds to. Empty means all interfaces.
	// Env: SERVER_HOST
	Host string `env:"HOST"`

	// Port is the first TCP port tried on startup.
	// Env: SERVER_PORT
	Port int `env:"PORT"`

	// PortAttempts is how many consecutive ports are tried, starting at Port,
	// before startup gives up.
	// Env: SERVER_PORT_ATTEMPTS
	PortAttempts int `env:"PORT_ATTEMPTS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimitWindow is the sliding window applied to /api/ requests.
	// Env: SERVER_RATE_LIMIT_WINDOW
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW"`

	// RateLimitMax is the number of /api/ requests one client address may
	// make per window.
	// Env: SERVER_RATE_LIMIT_MAX
	RateLimitMax int `env:"RATE_LIMIT_MAX"`
}

// DB holds connection settings for the client history database.
type DB struct {
	// DSN is the SQLite database file (e.g. "gifts-history.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds file-system settings for uploaded gift images.
type Files struct {
	// UploadsDir is the directory uploaded images are written to and served from.
	// Env: STORAGE_FILES_UPLOADS_DIR
	UploadsDir string `env:"UPLOADS_DIR"`

	// MaxFileSize is the largest accepted image, in bytes.
	// Env: STORAGE_FILES_MAX_FILE_SIZE
	MaxFileSize int64 `env:"MAX_FILE_SIZE"`
}

// Adapter holds the outbound settings of the terminal client.
type Adapter struct {
	// HTTPAddress is the gift server address, "host:port" or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SweepInterval is how often expired gifts are removed.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		withDefaults().
		build()
}
