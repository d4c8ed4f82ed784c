// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "github.com/MKhiriev/go-post-client/models"

// State is a snapshot of the session. A nil User with a non-empty Token is
// valid: the token carried no readable identity.
type State struct {
	Token string
	User  *models.User
}

// Authenticated reports whether a token is present.
func (s State) Authenticated() bool {
	return s.Token != ""
}

func (s State) clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
