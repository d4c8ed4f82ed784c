// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the public identity of an account as returned by the API.
// The same shape is reconstructed locally from the claims of a persisted
// bearer token when no fresh user payload is available.
type User struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Name is the display name shown in lists and post bylines.
	Name string `json:"name"`

	// Email is the login identifier of the account.
	Email string `json:"email"`
}

// DisplayName returns Name, or a placeholder when the server omitted it.
func (u *User) DisplayName() string {
	if u == nil || u.Name == "" {
		return "Unknown author"
	}
	return u.Name
}
