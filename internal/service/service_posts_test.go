// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-post-client/internal/adapter"
	"github.com/MKhiriev/go-post-client/internal/logger"
	"github.com/MKhiriev/go-post-client/internal/mock"
	"github.com/MKhiriev/go-post-client/internal/paging"
	"github.com/MKhiriev/go-post-client/internal/validators"
	"github.com/MKhiriev/go-post-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPostService(t *testing.T) (PostService, *mock.MockAPIClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	return NewPostService(api, validators.NewValidator(), logger.Nop()), api
}

func TestPostService_Page(t *testing.T) {
	svc, api := newTestPostService(t)
	want := []models.Post{{ID: 1, Title: "a"}}

	api.EXPECT().GetPosts(gomock.Any(), 2, PostsPageSize).Return(want, nil)

	got, err := svc.Page(context.Background(), 2, PostsPageSize)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPostService_Page_Error(t *testing.T) {
	svc, api := newTestPostService(t)

	api.EXPECT().GetPosts(gomock.Any(), 1, PostsPageSize).Return(nil, adapter.ErrInternalServerError)

	_, err := svc.Page(context.Background(), 1, PostsPageSize)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

func TestPostService_Mine(t *testing.T) {
	svc, api := newTestPostService(t)

	api.EXPECT().GetMyPosts(gomock.Any()).Return([]models.Post{{ID: 3}}, nil)

	got, err := svc.Mine(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestPostService_Create_ValidatesBeforeRequest(t *testing.T) {
	svc, _ := newTestPostService(t)

	_, err := svc.Create(context.Background(), models.NewPost{Title: "t"})

	assert.Equal(t, validators.MsgPostRequired, UserMessage(err, MsgCreatePostFailed))
}

func TestPostService_Create(t *testing.T) {
	svc, api := newTestPostService(t)

	image := filepath.Join(t.TempDir(), "cat.png")
	require.NoError(t, os.WriteFile(image, []byte("png"), 0o600))
	post := models.NewPost{Title: "t", Content: "c", ImagePath: image}

	api.EXPECT().CreatePost(gomock.Any(), post).Return(models.Post{ID: 9, Title: "t"}, nil)

	got, err := svc.Create(context.Background(), post)

	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
}

func TestPostService_Create_ServerMessage(t *testing.T) {
	svc, api := newTestPostService(t)

	image := filepath.Join(t.TempDir(), "cat.png")
	require.NoError(t, os.WriteFile(image, []byte("png"), 0o600))

	api.EXPECT().CreatePost(gomock.Any(), gomock.Any()).
		Return(models.Post{}, &adapter.APIError{StatusCode: 400, Message: "Image too large"})

	_, err := svc.Create(context.Background(), models.NewPost{Title: "t", Content: "c", ImagePath: image})

	assert.Equal(t, "Image too large", UserMessage(err, MsgCreatePostFailed))
}

func TestPostService_DeleteAbsentIDKeepsList(t *testing.T) {
	svc, api := newTestPostService(t)
	ctx := context.Background()

	api.EXPECT().GetMyPosts(gomock.Any()).Return([]models.Post{{ID: 1}, {ID: 2}}, nil)
	api.EXPECT().DeletePost(gomock.Any(), int64(99)).Return(nil)

	mine := paging.NewStatic(svc.Mine)
	require.NoError(t, mine.Load(ctx))

	require.NoError(t, svc.Delete(ctx, 99))
	removed := mine.Remove(func(p models.Post) bool { return p.ID == 99 })

	assert.Zero(t, removed)
	assert.Equal(t, []models.Post{{ID: 1}, {ID: 2}}, mine.State().Items)
}

func TestPostService_Delete_Error(t *testing.T) {
	svc, api := newTestPostService(t)

	api.EXPECT().DeletePost(gomock.Any(), int64(1)).Return(errors.New("boom"))

	err := svc.Delete(context.Background(), 1)

	require.Error(t, err)
	assert.Equal(t, MsgDeletePostFailed, UserMessage(err, MsgDeletePostFailed))
}
