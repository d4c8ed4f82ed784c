// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-post-client/internal/config"
	"github.com/MKhiriev/go-post-client/internal/logger"
	"github.com/MKhiriev/go-post-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpAPIClient pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string, token func() string) APIClient {
	t.Helper()

	a, err := NewHTTPAPIClient(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, token, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://api.example.com/", want: "https://api.example.com"},
		{in: "  ", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImageContentType(t *testing.T) {
	assert.Equal(t, "image/png", ImageContentType("/tmp/cat.PNG"))
	assert.Equal(t, "image/jpeg", ImageContentType("photo"))
	assert.Equal(t, "image/webp", ImageContentType("a.webp"))
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@b.co", creds.Email)
		assert.Equal(t, "x", creds.Password)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))

		writeJSON(w, http.StatusOK, map[string]any{
			"token": "t1",
			"user":  map[string]any{"id": 1, "name": "Ann", "email": "a@b.co"},
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	got, err := a.Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "t1", got.Token)
	require.NotNil(t, got.User)
	assert.Equal(t, int64(1), got.User.ID)
	assert.Equal(t, "Ann", got.User.Name)
}

func TestLogin_EmptyToken(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"token": ""})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, nil).Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "x"})
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestLogin_Unauthorized(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Invalid password"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, nil).Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid password", apiErr.Message)
}

func TestLogin_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url, nil).Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "x"})
	assert.ErrorIs(t, err, ErrTransport)
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/users", func(w http.ResponseWriter, r *http.Request) {
		var p models.Profile
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, "Ann", p.Name)
		writeJSON(w, http.StatusCreated, map[string]any{"id": 7, "name": "Ann", "email": "a@b.co"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, nil).Register(context.Background(), models.Profile{Name: "Ann", Email: "a@b.co", Password: "secret1"})

	require.NoError(t, err)
	require.NotNil(t, got.User)
	assert.Equal(t, int64(7), got.User.ID)
}

func TestRegister_ConflictWithErrorField(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/users", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]any{"error": "Email already used"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, nil).Register(context.Background(), models.Profile{Name: "Ann", Email: "a@b.co", Password: "secret1"})

	assert.ErrorIs(t, err, ErrConflict)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Email already used", apiErr.Message)
}

// ── Posts ───────────────────────────────────────────────────────────────────

func TestGetPosts_SendsPageLimitAndBearer(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/posts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{
			"posts": []map[string]any{
				{"id": 11, "title": "T", "content": "C", "imageId": "http://img/1", "author": map[string]any{"name": "Ann"}},
			},
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	posts, err := newTestAdapter(t, srv.URL, func() string { return "t1" }).GetPosts(context.Background(), 2, 10)

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(11), posts[0].ID)
	assert.Equal(t, "http://img/1", posts[0].ImageID)
	assert.Equal(t, "Ann", posts[0].Author.DisplayName())
}

func TestGetPosts_ServerError(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/posts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, nil).GetPosts(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestGetMyPosts_BothShapes(t *testing.T) {
	tests := []struct {
		name string
		body any
		want int
	}{
		{name: "wrapped", body: map[string]any{"posts": []map[string]any{{"id": 1}, {"id": 2}}}, want: 2},
		{name: "bare array", body: []map[string]any{{"id": 3}}, want: 1},
		{name: "empty object", body: map[string]any{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Get("/my-posts", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, tt.body)
			})
			srv := httptest.NewServer(r)
			defer srv.Close()

			posts, err := newTestAdapter(t, srv.URL, nil).GetMyPosts(context.Background())
			require.NoError(t, err)
			assert.Len(t, posts, tt.want)
		})
	}
}

func TestCreatePost_Multipart(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "cat.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("png-bytes"), 0o600))

	r := chi.NewRouter()
	r.Post("/posts", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Hello", r.FormValue("title"))
		assert.Equal(t, "World", r.FormValue("content"))

		file, header, err := r.FormFile("foto")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "cat.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
		data, _ := io.ReadAll(file)
		assert.Equal(t, "png-bytes", string(data))

		writeJSON(w, http.StatusCreated, map[string]any{"post": map[string]any{"id": 5, "title": "Hello", "content": "World"}})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, func() string { return "t1" }).CreatePost(context.Background(), models.NewPost{
		Title: "Hello", Content: "World", ImagePath: imagePath,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
}

func TestCreatePost_MissingImage(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1", nil)
	_, err := a.CreatePost(context.Background(), models.NewPost{Title: "a", Content: "b", ImagePath: "/no/such/file.jpg"})

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDeletePost(t *testing.T) {
	r := chi.NewRouter()
	r.Delete("/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "42" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Post not found"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	require.NoError(t, a.DeletePost(context.Background(), 42))
	assert.ErrorIs(t, a.DeletePost(context.Background(), 1), ErrNotFound)
}

// ── Users ───────────────────────────────────────────────────────────────────

func TestGetUsers(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/users", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, map[string]any{
			"users": []map[string]any{{"id": 1, "name": "Ann", "email": "a@b.co"}},
			"total": 120,
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, nil).GetUsers(context.Background(), 3, 50)

	require.NoError(t, err)
	assert.Equal(t, 120, got.Total)
	require.Len(t, got.Users, 1)
	assert.Equal(t, "a@b.co", got.Users[0].Email)
}

func TestGetUsers_Forbidden(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/users", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, nil).GetUsers(context.Background(), 1, 50)
	assert.ErrorIs(t, err, ErrForbidden)
}
