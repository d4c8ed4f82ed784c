// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the session, runs the background workers alongside the
// terminal UI and releases local storage on exit.
package client
