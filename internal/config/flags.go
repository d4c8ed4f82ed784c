// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-a API base URL (e.g. https://api.example.com or localhost:8080)
//	-d SQLite DSN holding the session token
//	-request-timeout request timeout (e.g. "10s")
//	-session-check-interval expiry watcher interval (e.g. "1m")
//	-log-file log file path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*ClientConfig, error) {
	fs := flag.NewFlagSet("go-post-client", flag.ContinueOnError)

	var (
		address              string
		dsn                  string
		requestTimeout       time.Duration
		sessionCheckInterval time.Duration
		logFile              string
		jsonConfigPath       string
	)

	fs.StringVar(&address, "a", "", "API base URL")
	fs.StringVar(&dsn, "d", "", "SQLite DSN")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&sessionCheckInterval, "session-check-interval", 0, "Session expiry check interval (e.g., 1m)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &ClientConfig{
		App:     App{LogFile: logFile},
		Adapter: Adapter{HTTPAddress: address, RequestTimeout: requestTimeout},
		Storage: Storage{DB: DB{DSN: dsn}},
		Workers: Workers{SessionCheckInterval: sessionCheckInterval},

		JSONFilePath: jsonConfigPath,
	}, nil
}
