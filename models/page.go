// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PostsPage is the body of GET /posts and, in its wrapped form, GET /my-posts.
type PostsPage struct {
	Posts []Post `json:"posts"`
}

// UsersPage is the body of GET /users. Total is the number of users across
// all pages; zero means the server did not report it.
type UsersPage struct {
	Users []User `json:"users"`
	Total int    `json:"total,omitempty"`
}

// CreatePostResponse is the body returned by POST /posts.
type CreatePostResponse struct {
	Post *Post `json:"post,omitempty"`
}
