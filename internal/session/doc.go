// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the client's authentication state.
//
// A single [*Manager] is built at startup and injected wherever the token or
// the current user is needed. It restores a persisted token on start
// ([Manager.Initialize]), establishes one on [Manager.Login] and destroys it
// on [Manager.Logout]. Screens observe transitions through
// [Manager.Subscribe] instead of polling.
package session
