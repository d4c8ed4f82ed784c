// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-post-client/internal/adapter"
	"github.com/MKhiriev/go-post-client/internal/logger"
	"github.com/MKhiriev/go-post-client/internal/mock"
	"github.com/MKhiriev/go-post-client/internal/paging"
	"github.com/MKhiriev/go-post-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_Page(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	svc := NewUserService(api, logger.Nop())

	api.EXPECT().GetUsers(gomock.Any(), 1, UsersPageSize).
		Return(models.UsersPage{Users: []models.User{{ID: 1}}, Total: 120}, nil)

	users, total, err := svc.Page(context.Background(), 1, UsersPageSize)

	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, 120, total)
}

func TestUserService_DrivesNumberedPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	svc := NewUserService(api, logger.Nop())

	page2 := make([]models.User, UsersPageSize)
	for i := range page2 {
		page2[i] = models.User{ID: int64(100 + i)}
	}
	api.EXPECT().GetUsers(gomock.Any(), 2, UsersPageSize).
		Return(models.UsersPage{Users: page2, Total: 120}, nil)

	users := paging.NewNumbered(svc.Page, UsersPageSize)
	require.NoError(t, users.GoToPage(context.Background(), 2))

	s := users.State()
	assert.Equal(t, 3, s.TotalPages)
	assert.Equal(t, page2, s.Items)
}

func TestUserService_Page_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	svc := NewUserService(api, logger.Nop())

	api.EXPECT().GetUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.UsersPage{}, adapter.ErrForbidden)

	_, _, err := svc.Page(context.Background(), 1, UsersPageSize)
	assert.ErrorIs(t, err, adapter.ErrForbidden)
}
