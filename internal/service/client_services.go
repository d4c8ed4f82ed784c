// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-post-client/internal/adapter"
	"github.com/MKhiriev/go-post-client/internal/config"
	"github.com/MKhiriev/go-post-client/internal/logger"
	"github.com/MKhiriev/go-post-client/internal/session"
	"github.com/MKhiriev/go-post-client/internal/store"
	"github.com/MKhiriev/go-post-client/internal/validators"
)

// ClientServices is the set of services handed to the TUI.
type ClientServices struct {
	Session *session.Manager
	Posts   PostService
	Users   UserService
}

// NewClientServices builds the API client and the services on top of it.
// The API client reads its bearer token from the session manager on every
// request.
func NewClientServices(adapterCfg config.Adapter, tokens store.TokenStore, log *logger.Logger) (*ClientServices, error) {
	var sess *session.Manager
	tokenSource := func() string {
		if sess == nil {
			return ""
		}
		return sess.Token()
	}

	api, err := adapter.NewHTTPAPIClient(adapterCfg, tokenSource, log.GetChildLogger("adapter"))
	if err != nil {
		return nil, fmt.Errorf("error creating api client: %w", err)
	}

	validator := validators.NewValidator()
	sess = session.NewManager(api, tokens, validator, log)

	return NewClientServicesWith(sess, api, validator, log), nil
}

// NewClientServicesWith wires the services around an existing session and
// API client.
func NewClientServicesWith(sess *session.Manager, api adapter.APIClient, validator validators.Validator, log *logger.Logger) *ClientServices {
	return &ClientServices{
		Session: sess,
		Posts:   NewPostService(api, validator, log),
		Users:   NewUserService(api, log),
	}
}
