// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the wire and domain types shared by the API
// client, the session manager, the paging fetchers and the TUI.
package models
