// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-post-client/internal/config"
	"github.com/MKhiriev/go-post-client/internal/logger"
	"github.com/MKhiriev/go-post-client/internal/utils"
	"github.com/MKhiriev/go-post-client/models"
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader is set on every outbound request.
const RequestIDHeader = "X-Request-ID"

type httpAPIClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAPIClient constructs the resty implementation of [APIClient].
// It normalises and validates adapterCfg.HTTPAddress, applies the request
// timeout, and installs two request middlewares: a bearer header read from
// tokenSource on every request, and an X-Request-ID header.
//
// tokenSource may be nil for a client that never authenticates.
func NewHTTPAPIClient(adapterCfg config.Adapter, tokenSource func() string, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().
		WithBearer(tokenSource).
		WithRequestID(RequestIDHeader, utils.NewRequestID).
		WithLogging(RequestIDHeader, logger.GetChildLogger("http"))

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpAPIClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [APIClient]. POST /login with a JSON body.
func (h *httpAPIClient) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&out).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, transportError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	out.Token = strings.TrimSpace(out.Token)
	if out.Token == "" {
		return models.LoginResponse{}, ErrEmptyToken
	}

	return out, nil
}

// Register implements [APIClient]. POST /users with a JSON body. A bare user
// object is accepted as well as {"user": {...}}.
func (h *httpAPIClient) Register(ctx context.Context, profile models.Profile) (models.RegisterResponse, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		Post("/users")
	if err != nil {
		return models.RegisterResponse{}, transportError("register request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	var out models.RegisterResponse
	if len(bytes.TrimSpace(resp.Body())) == 0 {
		return out, nil
	}
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("%w: register: %v", ErrDecodeResponse, err)
	}
	if out.User == nil {
		var bare models.User
		if json.Unmarshal(resp.Body(), &bare) == nil && (bare.ID != 0 || bare.Email != "") {
			out.User = &bare
		}
	}

	return out, nil
}

// GetPosts implements [APIClient]. GET /posts?page=&limit=.
func (h *httpAPIClient) GetPosts(ctx context.Context, page, limit int) ([]models.Post, error) {
	var out models.PostsPage

	resp, err := h.request(ctx).
		SetQueryParams(pageParams(page, limit)).
		SetResult(&out).
		Get("/posts")
	if err != nil {
		return nil, transportError("get posts request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return out.Posts, nil
}

// GetMyPosts implements [APIClient]. GET /my-posts. The endpoint answers
// either {"posts": [...]} or a bare array; both are accepted.
func (h *httpAPIClient) GetMyPosts(ctx context.Context) ([]models.Post, error) {
	resp, err := h.request(ctx).Get("/my-posts")
	if err != nil {
		return nil, transportError("get my posts request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil, nil
	}

	if body[0] == '[' {
		var posts []models.Post
		if err = json.Unmarshal(body, &posts); err != nil {
			return nil, fmt.Errorf("%w: my posts: %v", ErrDecodeResponse, err)
		}
		return posts, nil
	}

	var page models.PostsPage
	if err = json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("%w: my posts: %v", ErrDecodeResponse, err)
	}
	return page.Posts, nil
}

// CreatePost implements [APIClient]. Multipart POST /posts with the text
// fields "title" and "content" and the image as file field "foto".
func (h *httpAPIClient) CreatePost(ctx context.Context, post models.NewPost) (models.Post, error) {
	image, err := os.Open(post.ImagePath)
	if err != nil {
		return models.Post{}, fmt.Errorf("open image: %w", err)
	}
	defer image.Close()

	var out models.CreatePostResponse

	fileName := filepath.Base(post.ImagePath)
	resp, err := h.request(ctx).
		SetMultipartFormData(map[string]string{
			"title":   post.Title,
			"content": post.Content,
		}).
		SetMultipartField("foto", fileName, ImageContentType(fileName), image).
		SetResult(&out).
		Post("/posts")
	if err != nil {
		return models.Post{}, transportError("create post request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	if out.Post == nil {
		return models.Post{Title: post.Title, Content: post.Content}, nil
	}
	return *out.Post, nil
}

// DeletePost implements [APIClient]. DELETE /posts/{id}.
func (h *httpAPIClient) DeletePost(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/posts/{id}")
	if err != nil {
		return transportError("delete post request", err)
	}

	return mapHTTPError(resp)
}

// GetUsers implements [APIClient]. GET /users?page=&limit=.
func (h *httpAPIClient) GetUsers(ctx context.Context, page, limit int) (models.UsersPage, error) {
	var out models.UsersPage

	resp, err := h.request(ctx).
		SetQueryParams(pageParams(page, limit)).
		SetResult(&out).
		Get("/users")
	if err != nil {
		return models.UsersPage{}, transportError("get users request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UsersPage{}, err
	}

	return out, nil
}

func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func pageParams(page, limit int) map[string]string {
	return map[string]string{
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(limit),
	}
}

// ImageContentType derives "image/<ext>" from fileName's extension and
// defaults to "image/jpeg" when there is none.
func ImageContentType(fileName string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	if ext == "" {
		return "image/jpeg"
	}
	return "image/" + ext
}
