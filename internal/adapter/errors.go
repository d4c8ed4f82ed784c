// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels wrapped by [*APIError]. Match them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrTransport wraps every failure that happened before a response was
	// received: no connectivity, DNS, TLS, timeout.
	ErrTransport = errors.New("transport failure")

	// ErrEmptyToken is returned by Login when the server answered 2xx
	// without a token.
	ErrEmptyToken = errors.New("server returned no token")

	// ErrDecodeResponse is returned when a 2xx body does not match the
	// expected shape.
	ErrDecodeResponse = errors.New("cannot decode response")
)

// APIError is a non-2xx answer from the API. Message is the server-provided
// "message" (or "error") field, empty when the body carried none.
type APIError struct {
	StatusCode int
	Message    string

	kind error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (http %d)", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%s (http %d): %s", e.kind, e.StatusCode, e.Message)
}

// Unwrap exposes the status sentinel so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	return e.kind
}
