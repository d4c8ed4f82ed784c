// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the social-posting REST
// API.
//
// The abstraction is [APIClient], which decouples the session manager and
// services from HTTP. The package ships a resty-based implementation
// ([NewHTTPAPIClient]) that attaches the bearer token on every request.
//
// Non-2xx answers are returned as [*APIError] wrapping a status sentinel
// (e.g. [ErrUnauthorized] for 401); network failures wrap [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-post-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// APIClient defines the operations of the remote API used by the client.
// Implementations attach the current bearer token to every request when one
// is available and never retry.
type APIClient interface {
	// Login exchanges credentials for a bearer token via POST /login.
	// The returned response always has a non-empty Token.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// Register creates an account via POST /users. It does not authenticate.
	Register(ctx context.Context, profile models.Profile) (models.RegisterResponse, error)

	// GetPosts fetches one page of the public feed via GET /posts.
	GetPosts(ctx context.Context, page, limit int) ([]models.Post, error)

	// GetMyPosts fetches every post of the authenticated user via
	// GET /my-posts.
	GetMyPosts(ctx context.Context) ([]models.Post, error)

	// CreatePost uploads a post with its image via multipart POST /posts.
	CreatePost(ctx context.Context, post models.NewPost) (models.Post, error)

	// DeletePost removes a post via DELETE /posts/{id}.
	DeletePost(ctx context.Context, id int64) error

	// GetUsers fetches one page of users via GET /users. Total is zero when
	// the server does not report it.
	GetUsers(ctx context.Context, page, limit int) (models.UsersPage, error)
}
