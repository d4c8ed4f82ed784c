// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/MKhiriev/go-post-client/internal/logger"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with application-specific middleware.
//
// Example usage:
//
//	client := utils.NewHTTPClient().WithBearer(session.Token)
//	resp, err := client.R().Get("https://example.com/posts")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithBearer registers a request middleware that reads the current token from
// source before every request and, when it is non-empty, sets
// "Authorization: Bearer <token>". Reading per request means a token stored
// after login is picked up without rebuilding the client.
func (c *HTTPClient) WithBearer(source func() string) *HTTPClient {
	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if source == nil {
			return nil
		}
		if token := source(); token != "" {
			r.SetAuthToken(token)
		}
		return nil
	})
	return c
}

// WithRequestID registers a request middleware that sets header to a fresh
// value from gen unless the request already carries one.
func (c *HTTPClient) WithRequestID(header string, gen func() string) *HTTPClient {
	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(header) == "" {
			r.SetHeader(header, gen())
		}
		return nil
	})
	return c
}

// WithLogging logs every completed request with its method, URL, status,
// duration and response size, plus the request ID read from header.
// Transport failures are logged at error level.
func (c *HTTPClient) WithLogging(header string, log *logger.Logger) *HTTPClient {
	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Info().
			Str("request_id", resp.Request.Header.Get(header)).
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Int64("size", resp.Size()).
			Send()
		return nil
	})
	c.OnError(func(r *resty.Request, err error) {
		log.Error().
			Err(err).
			Str("request_id", r.Header.Get(header)).
			Str("method", r.Method).
			Str("url", r.URL).
			Send()
	})
	return c
}
