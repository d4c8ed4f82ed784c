// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-post-client/internal/adapter"
	"github.com/MKhiriev/go-post-client/internal/logger"
	"github.com/MKhiriev/go-post-client/internal/validators"
	"github.com/MKhiriev/go-post-client/models"
)

type postService struct {
	api       adapter.APIClient
	validator validators.Validator
	logger    *logger.Logger
}

func NewPostService(api adapter.APIClient, validator validators.Validator, log *logger.Logger) PostService {
	return &postService{
		api:       api,
		validator: validator,
		logger:    log.GetChildLogger("post_service"),
	}
}

func (s *postService) Page(ctx context.Context, page, limit int) ([]models.Post, error) {
	posts, err := s.api.GetPosts(ctx, page, limit)
	if err != nil {
		s.logger.Err(err).Str("func", "postService.Page").Int("page", page).Msg("failed to load posts")
		return nil, fmt.Errorf("load posts page %d: %w", page, err)
	}
	return posts, nil
}

func (s *postService) Mine(ctx context.Context) ([]models.Post, error) {
	posts, err := s.api.GetMyPosts(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "postService.Mine").Msg("failed to load own posts")
		return nil, fmt.Errorf("load my posts: %w", err)
	}
	return posts, nil
}

func (s *postService) Create(ctx context.Context, post models.NewPost) (models.Post, error) {
	if err := s.validator.Validate(ctx, post); err != nil {
		return models.Post{}, err
	}

	created, err := s.api.CreatePost(ctx, post)
	if err != nil {
		s.logger.Err(err).Str("func", "postService.Create").Msg("failed to create post")
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}

	s.logger.Info().Int64("post_id", created.ID).Msg("post created")
	return created, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeletePost(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "postService.Delete").Int64("post_id", id).Msg("failed to delete post")
		return fmt.Errorf("delete post %d: %w", id, err)
	}

	s.logger.Info().Int64("post_id", id).Msg("post deleted")
	return nil
}
