// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-post-client/internal/service"
	"github.com/MKhiriev/go-post-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is the TUI router:
//  1. keeps the active page tree and page;
//  2. swaps trees when the session becomes authenticated or empty;
//  3. handles global ctrl+c and the build info window;
//  4. handles NavigateTo messages;
//  5. delegates all other messages to the active page.
type RootModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	authenticated bool
	pages         map[string]tea.Model
	current       tea.Model

	showBuildInfo bool
}

// NewRootModel opens the tree matching the current session.
func NewRootModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) RootModel {
	r := RootModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
	}
	r.openTree(services.Session.Authenticated())
	return r
}

func (r *RootModel) openTree(authenticated bool) {
	r.authenticated = authenticated
	r.showBuildInfo = false

	if authenticated {
		r.pages = map[string]tea.Model{
			pageHome:    NewHomeModel(r.ctx, r.services.Session),
			pagePosts:   NewPostsModel(r.ctx, r.services.Posts),
			pageUsers:   NewUsersModel(r.ctx, r.services.Users),
			pageCreate:  NewCreatePostModel(r.ctx, r.services.Posts),
			pageMyPosts: NewMyPostsModel(r.ctx, r.services.Posts),
		}
		r.current = r.pages[pageHome]
		return
	}

	r.pages = map[string]tea.Model{
		pageMenu:     NewAuthMenuModel(),
		pageLogin:    NewLoginModel(r.ctx, r.services.Session),
		pageRegister: NewRegisterModel(r.ctx, r.services.Session),
	}
	r.current = r.pages[pageMenu]
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.isMenuPage():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if changed, ok := msg.(sessionChangedMsg); ok {
		if changed.state.Authenticated() != r.authenticated {
			r.openTree(changed.state.Authenticated())
			return r, r.current.Init()
		}
	}

	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("go-post-client", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
