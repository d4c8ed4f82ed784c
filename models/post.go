// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a single entry of the social feed.
type Post struct {
	// ID is the server-assigned identifier used for deletion.
	ID int64 `json:"id"`

	// Title is the short headline of the post.
	Title string `json:"title"`

	// Content is the body text.
	Content string `json:"content"`

	// ImageID is the URL of the uploaded picture. The API names it imageId
	// even though it carries a full URL.
	ImageID string `json:"imageId,omitempty"`

	// Author is the embedded author record, when the endpoint includes it.
	Author *User `json:"author,omitempty"`

	// CreatedAt is the publication time, zero when not reported.
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// NewPost describes a post to be created. ImagePath points to a local image
// file that is uploaded as the "foto" multipart field.
type NewPost struct {
	Title     string `validate:"required"`
	Content   string `validate:"required"`
	ImagePath string `validate:"required,file"`
}
