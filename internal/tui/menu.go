// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-post-client/internal/session"
	"github.com/MKhiriev/go-post-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	label  string
	action func() tea.Cmd
}

// MenuModel is a vertical list of actions. It backs both the auth menu and
// the home screen.
type MenuModel struct {
	title  string
	header func() string
	items  []menuItem
	idx    int
	status string
}

// NewAuthMenuModel is the entry screen of the auth tree.
func NewAuthMenuModel() *MenuModel {
	return &MenuModel{
		title: "MAIN MENU",
		items: []menuItem{
			{label: "Log in", action: func() tea.Cmd { return navigate(pageLogin) }},
			{label: "Register", action: func() tea.Cmd { return navigate(pageRegister) }},
			{label: "Quit", action: func() tea.Cmd { return tea.Quit }},
		},
	}
}

// NewHomeModel is the entry screen of the main tree.
func NewHomeModel(ctx context.Context, sess *session.Manager) *MenuModel {
	return &MenuModel{
		title: "HOME",
		header: func() string {
			return signedInAs(sess.User())
		},
		items: []menuItem{
			{label: "Feed", action: func() tea.Cmd { return navigate(pagePosts) }},
			{label: "Users", action: func() tea.Cmd { return navigate(pageUsers) }},
			{label: "New post", action: func() tea.Cmd { return navigate(pageCreate) }},
			{label: "My posts", action: func() tea.Cmd { return navigate(pageMyPosts) }},
			{label: "Log out", action: func() tea.Cmd { return cmdLogout(ctx, sess) }},
		},
	}
}

func signedInAs(u *models.User) string {
	switch {
	case u == nil:
		return "Signed in"
	case u.Name != "":
		return "Signed in as " + u.Name
	case u.Email != "":
		return "Signed in as " + u.Email
	default:
		return "Signed in"
	}
}

// cmdLogout ends the session. The router reacts to the session change.
func cmdLogout(ctx context.Context, sess *session.Manager) tea.Cmd {
	return func() tea.Msg {
		sess.Logout(ctx)
		return nil
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(RegisterSuccessNotice); ok {
		if notice.Email != "" {
			m.status = "Account " + notice.Email + " registered. You can log in now."
		} else {
			m.status = "Registration complete. You can log in now."
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.enter):
		m.status = ""
		return m, m.items[m.idx].action()
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if m.header != nil {
		b.WriteString(m.header())
		b.WriteString("\n\n")
	}
	renderMessages(&b, "", m.status)

	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items))) + 2
	if w := lipgloss.Width("ID"); w > idColWidth {
		idColWidth = w
	}
	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.label); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		idCell := fmt.Sprintf("%s %d", cursorMark(i == m.idx), i+1)
		label := item.label
		if i == m.idx {
			label = selectedStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%-*s │ %s\n", idColWidth, idCell, label))
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version │ q: quit")
}
