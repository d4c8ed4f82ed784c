// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-post-client/internal/paging"
	"github.com/MKhiriev/go-post-client/internal/service"
	"github.com/MKhiriev/go-post-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// PostsModel is the public feed with infinite scrolling: reaching the last
// post requests the next page.
type PostsModel struct {
	ctx  context.Context
	feed *paging.Infinite[models.Post]

	idx     int
	spinner spinner.Model
	status  string
	errMsg  string
}

func NewPostsModel(ctx context.Context, posts service.PostService) *PostsModel {
	return &PostsModel{
		ctx:     ctx,
		feed:    paging.NewInfinite(posts.Page, service.PostsPageSize),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *PostsModel) Init() tea.Cmd {
	m.idx = 0
	return tea.Batch(m.spinner.Tick, m.cmdRefresh())
}

func (m *PostsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case postsLoadedMsg:
		// load-more failures only stop scrolling
		m.clampIdx()
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

func (m *PostsModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.feed.State().Items

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageHome)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(items)-1 {
			m.idx++
		}
		if m.idx >= len(items)-1 {
			return m, m.cmdLoadNext()
		}
	case key.Matches(msg, keys.refresh):
		m.idx = 0
		m.status, m.errMsg = "", ""
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.copy):
		if m.idx < len(items) {
			m.copy(items[m.idx].Content)
		}
	}
	return m, nil
}

func (m *PostsModel) copy(text string) {
	if err := copyToClipboard(text); err != nil {
		m.errMsg = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.errMsg = ""
	m.status = "Copied post content"
}

func (m *PostsModel) clampIdx() {
	n := len(m.feed.State().Items)
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *PostsModel) cmdRefresh() tea.Cmd {
	return refreshCmd[models.Post](m.ctx, m.feed, func(err error) tea.Msg {
		return postsLoadedMsg{err: err}
	})
}

func (m *PostsModel) cmdLoadNext() tea.Cmd {
	s := m.feed.State()
	if s.Loading || !s.HasMore {
		return nil
	}
	ctx, feed := m.ctx, m.feed
	return func() tea.Msg {
		return postsLoadedMsg{err: feed.LoadNext(ctx)}
	}
}

func (m *PostsModel) View() string {
	s := m.feed.State()

	var b strings.Builder
	renderMessages(&b, m.errMsg, m.status)

	if len(s.Items) == 0 {
		if s.Loading {
			b.WriteString(m.spinner.View() + " Loading posts...\n")
		} else {
			b.WriteString("No posts yet\n")
		}
	}

	for i, p := range s.Items {
		selected := i == m.idx
		title := fitText(valueOrDash(p.Title), 48)
		if selected {
			title = selectedStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursorMark(selected), title))
		b.WriteString(fmt.Sprintf("    by %s\n", p.Author.DisplayName()))
		if selected {
			for _, line := range strings.Split(p.Content, "\n") {
				b.WriteString("    " + line + "\n")
			}
			if p.ImageID != "" {
				b.WriteString("    image: " + p.ImageID + "\n")
			}
		} else {
			b.WriteString("    " + fitText(p.Content, 60) + "\n")
		}
	}

	switch {
	case len(s.Items) > 0 && s.Loading:
		b.WriteString("\n" + m.spinner.View() + " Loading more...\n")
	case len(s.Items) > 0 && !s.HasMore:
		b.WriteString("\n" + helpStyle.Render("End of feed") + "\n")
	}

	return renderPage("FEED", strings.TrimRight(b.String(), "\n"), "↑/↓: scroll │ r: refresh │ c: copy content │ esc: back")
}
