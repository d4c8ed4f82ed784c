// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the Bubble Tea terminal interface of the client.
//
// [RootModel] routes between two page trees: the auth tree (menu, login,
// register) while the session is empty and the main tree (home, feed,
// users, new post, my posts) while it is authenticated. The router follows
// session transitions, so login, logout and token expiry switch trees
// without any screen knowing about the others.
package tui
