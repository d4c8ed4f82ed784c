// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-post-client/internal/paging"
	"github.com/MKhiriev/go-post-client/internal/service"
	"github.com/MKhiriev/go-post-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// UsersModel lists users one numbered page at a time.
type UsersModel struct {
	ctx       context.Context
	directory *paging.Numbered[models.User]

	idx     int
	spinner spinner.Model
	status  string
	errMsg  string
}

func NewUsersModel(ctx context.Context, users service.UserService) *UsersModel {
	return &UsersModel{
		ctx:       ctx,
		directory: paging.NewNumbered(users.Page, service.UsersPageSize),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *UsersModel) Init() tea.Cmd {
	m.idx = 0
	return tea.Batch(m.spinner.Tick, m.cmdGoTo(1))
}

func (m *UsersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		m.idx = 0
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *UsersModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.directory.State()

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageHome)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(s.Items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.left):
		if s.CurrentPage > 1 {
			return m, m.cmdGoTo(s.CurrentPage - 1)
		}
	case key.Matches(msg, keys.right):
		if s.CurrentPage < s.TotalPages {
			return m, m.cmdGoTo(s.CurrentPage + 1)
		}
	case key.Matches(msg, keys.pageJump):
		n, _ := strconv.Atoi(msg.String())
		if n >= 1 && n <= s.TotalPages {
			return m, m.cmdGoTo(n)
		}
	case key.Matches(msg, keys.refresh):
		m.status, m.errMsg = "", ""
		return m, refreshCmd[models.User](m.ctx, m.directory, func(err error) tea.Msg {
			return usersLoadedMsg{err: err}
		})
	case key.Matches(msg, keys.copy):
		if m.idx < len(s.Items) {
			m.copy(s.Items[m.idx].Email)
		}
	}
	return m, nil
}

func (m *UsersModel) copy(text string) {
	if err := copyToClipboard(text); err != nil {
		m.errMsg = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.errMsg = ""
	m.status = "Copied email"
}

func (m *UsersModel) cmdGoTo(page int) tea.Cmd {
	ctx, directory := m.ctx, m.directory
	return func() tea.Msg {
		return usersLoadedMsg{err: directory.GoToPage(ctx, page)}
	}
}

func (m *UsersModel) View() string {
	s := m.directory.State()

	var b strings.Builder
	renderMessages(&b, m.errMsg, m.status)

	switch {
	case s.Loading:
		b.WriteString(m.spinner.View() + " Loading users...\n")
	case len(s.Items) == 0:
		b.WriteString("No users\n")
	default:
		b.WriteString(fmt.Sprintf("  %-6s │ %-24s │ %s\n", "ID", "Name", "Email"))
		b.WriteString("  ───────┼──────────────────────────┼──────────────────────────\n")
		for i, u := range s.Items {
			b.WriteString(fmt.Sprintf("%s %-6d │ %-24s │ %s\n",
				cursorMark(i == m.idx),
				u.ID,
				fitText(valueOrDash(u.Name), 24),
				fitText(valueOrDash(u.Email), 32),
			))
		}
	}

	b.WriteString(fmt.Sprintf("\nPage %d of %d\n", s.CurrentPage, s.TotalPages))

	return renderPage("USERS", strings.TrimRight(b.String(), "\n"), "←/→: page │ 1-9: go to page │ ↑/↓: select │ r: refresh │ c: copy email │ esc: back")
}
