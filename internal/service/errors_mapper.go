// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-post-client/internal/adapter"
	"github.com/MKhiriev/go-post-client/internal/validators"
)

// Messages shown when an operation fails without a more specific reason.
const (
	MsgNetwork           = "Network unavailable or server unreachable"
	MsgLoginFailed       = "Invalid credentials."
	MsgRegisterFailed    = "Registration failed. Check your details."
	MsgLoadMyPostsFailed = "Could not load your posts."
	MsgCreatePostFailed  = "Failed to create post"
	MsgDeletePostFailed  = "Could not delete the post."
)

// UserMessage turns err into text for the user. Local validation errors
// and server-provided messages are shown verbatim; transport failures get
// a fixed network message; anything else yields fallback. A nil err yields
// "".
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}

	if errors.Is(err, adapter.ErrTransport) || errors.Is(err, context.DeadlineExceeded) {
		return MsgNetwork
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		if msg := strings.TrimSpace(apiErr.Message); msg != "" {
			return msg
		}
	}

	return fallback
}
