// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client use cases on top of the API
// adapter: browsing and managing posts, listing users, and turning errors
// into messages for the user.
package service

import (
	"context"

	"github.com/MKhiriev/go-post-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Page sizes requested by the list screens.
const (
	PostsPageSize = 10
	UsersPageSize = 50
)

// PostService covers the public feed and the user's own posts.
type PostService interface {
	// Page returns one page of the public feed.
	Page(ctx context.Context, page, limit int) ([]models.Post, error)
	// Mine returns every post of the authenticated user.
	Mine(ctx context.Context) ([]models.Post, error)
	// Create validates post locally and uploads it with its image.
	Create(ctx context.Context, post models.NewPost) (models.Post, error)
	// Delete removes the post with the given id.
	Delete(ctx context.Context, id int64) error
}

// UserService lists registered users.
type UserService interface {
	// Page returns one page of users and the total count (0 when the server
	// does not report it).
	Page(ctx context.Context, page, limit int) ([]models.User, int, error)
}
