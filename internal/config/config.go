// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Defaults applied when no source sets a value.
const (
	DefaultHTTPAddress          = "https://simple-api-ngvw.onrender.com"
	DefaultRequestTimeout       = 10 * time.Second
	DefaultDSN                  = "go-post-client.db"
	DefaultSessionCheckInterval = time.Minute
)

// ClientConfig is the top-level client configuration. It is populated by
// merging environment variables, command-line flags, an optional JSON file
// and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type ClientConfig struct {
	// App holds process-level settings such as the log destination.
	App App `envPrefix:"APP_"`
	// Adapter holds the REST API address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`
	// Storage holds the local database used to persist the session token.
	Storage Storage `envPrefix:"STORAGE_"`
	// Workers holds settings for background workers.
	Workers Workers `envPrefix:"WORKERS_"`
	// JSONFilePath is the optional path to a JSON configuration file.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// LogFile is the file the client logger appends to. Empty means a file
	// named "logs" next to the executable.
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds network settings used by the API client.
type Adapter struct {
	// HTTPAddress is the base URL of the REST API. A missing scheme is
	// completed with http://.
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local storage settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB contains the local SQLite connection settings.
type DB struct {
	// DSN is the SQLite file path holding the persisted token.
	DSN string `env:"DSN"`
}

// Workers contains background worker settings.
type Workers struct {
	// SessionCheckInterval is how often the expiry watcher inspects the
	// session token.
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`
}

// GetClientConfig builds and validates the client configuration from the
// process environment and os.Args.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}

func defaults() *ClientConfig {
	return &ClientConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Workers: Workers{SessionCheckInterval: DefaultSessionCheckInterval},
	}
}
