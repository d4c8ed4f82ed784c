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

// MyPostsModel lists the posts of the signed-in user and deletes them after
// confirmation.
type MyPostsModel struct {
	ctx   context.Context
	posts service.PostService
	list  *paging.Static[models.Post]

	idx     int
	confirm *confirmModel
	pending int64
	spinner spinner.Model
	status  string
	errMsg  string
}

func NewMyPostsModel(ctx context.Context, posts service.PostService) *MyPostsModel {
	return &MyPostsModel{
		ctx:     ctx,
		posts:   posts,
		list:    paging.NewStatic(posts.Mine),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *MyPostsModel) Init() tea.Cmd {
	m.idx = 0
	m.confirm = nil
	m.status, m.errMsg = "", ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *MyPostsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case myPostsLoadedMsg:
		m.clampIdx()
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err, service.MsgLoadMyPostsFailed)
		}
		return m, nil
	case postDeletedMsg:
		if msg.err != nil {
			m.status = ""
			m.errMsg = service.UserMessage(msg.err, service.MsgDeletePostFailed)
			return m, nil
		}
		id := msg.id
		m.list.Remove(func(p models.Post) bool { return p.ID == id })
		m.clampIdx()
		m.errMsg = ""
		m.status = "Post deleted."
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *MyPostsModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirm = nil
		return m, m.cmdDelete(m.pending)
	case key.Matches(msg, keys.no):
		m.confirm = nil
	}
	return m, nil
}

func (m *MyPostsModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.list.State().Items

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
	case key.Matches(msg, keys.refresh):
		m.status, m.errMsg = "", ""
		return m, refreshCmd[models.Post](m.ctx, m.list, func(err error) tea.Msg {
			return myPostsLoadedMsg{err: err}
		})
	case key.Matches(msg, keys.delete):
		if m.idx < len(items) {
			post := items[m.idx]
			m.pending = post.ID
			m.confirm = &confirmModel{message: valueOrDash(post.Title)}
		}
	}
	return m, nil
}

func (m *MyPostsModel) clampIdx() {
	n := len(m.list.State().Items)
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *MyPostsModel) cmdLoad() tea.Cmd {
	ctx, list := m.ctx, m.list
	return func() tea.Msg {
		return myPostsLoadedMsg{err: list.Load(ctx)}
	}
}

func (m *MyPostsModel) cmdDelete(id int64) tea.Cmd {
	ctx, posts := m.ctx, m.posts
	return func() tea.Msg {
		return postDeletedMsg{id: id, err: posts.Delete(ctx, id)}
	}
}

func (m *MyPostsModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	s := m.list.State()

	var b strings.Builder
	renderMessages(&b, m.errMsg, m.status)

	switch {
	case s.Loading:
		b.WriteString(m.spinner.View() + " Loading your posts...\n")
	case len(s.Items) == 0:
		b.WriteString("You have no posts\n")
	default:
		for i, p := range s.Items {
			b.WriteString(fmt.Sprintf("%s #%-5d %s\n",
				cursorMark(i == m.idx),
				p.ID,
				fitText(valueOrDash(p.Title), 48),
			))
		}
	}

	return renderPage("MY POSTS", strings.TrimRight(b.String(), "\n"), "↑/↓: select │ d: delete │ r: refresh │ esc: back")
}
