// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-post-client/internal/adapter"
	"github.com/MKhiriev/go-post-client/internal/logger"
	"github.com/MKhiriev/go-post-client/models"
)

type userService struct {
	api    adapter.APIClient
	logger *logger.Logger
}

func NewUserService(api adapter.APIClient, log *logger.Logger) UserService {
	return &userService{api: api, logger: log.GetChildLogger("user_service")}
}

func (s *userService) Page(ctx context.Context, page, limit int) ([]models.User, int, error) {
	res, err := s.api.GetUsers(ctx, page, limit)
	if err != nil {
		s.logger.Err(err).Str("func", "userService.Page").Int("page", page).Msg("failed to load users")
		return nil, 0, fmt.Errorf("load users page %d: %w", page, err)
	}
	return res.Users, res.Total, nil
}
