// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the client:
// HTTP client initialization, request identifiers and offline decoding of
// JWT bearer tokens.
package utils
