// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-post-client/internal/session"
	"github.com/MKhiriev/go-post-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names.
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageHome     = "home"
	pagePosts    = "posts"
	pageUsers    = "users"
	pageCreate   = "create"
	pageMyPosts  = "myposts"
)

// NavigateTo switches the active page of the current tree. When Payload is
// set it is delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// RegisterSuccessNotice is delivered to the auth menu after registration.
type RegisterSuccessNotice struct {
	Email string
}

type sessionChangedMsg struct {
	state session.State
}

type loginResultMsg struct {
	err error
}

type registerResultMsg struct {
	email string
	err   error
}

type postsLoadedMsg struct {
	err error
}

type usersLoadedMsg struct {
	err error
}

type myPostsLoadedMsg struct {
	err error
}

type postCreatedMsg struct {
	post models.Post
	err  error
}

type postDeletedMsg struct {
	id  int64
	err error
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
