// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-post-client/internal/service"
	"github.com/MKhiriev/go-post-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	createFieldTitle = iota
	createFieldContent
	createFieldImage
	createFieldCount
)

// CreatePostModel is the form for publishing a post with an image.
type CreatePostModel struct {
	ctx   context.Context
	posts service.PostService

	title   textinput.Model
	content textarea.Model
	image   textinput.Model
	focus   int

	submitting bool
	status     string
	errMsg     string
}

func NewCreatePostModel(ctx context.Context, posts service.PostService) *CreatePostModel {
	content := textarea.New()
	content.Placeholder = "What's new?"
	content.SetWidth(60)
	content.SetHeight(6)
	content.ShowLineNumbers = false
	content.CharLimit = 5000

	m := &CreatePostModel{
		ctx:     ctx,
		posts:   posts,
		title:   newInput("title", 200),
		content: content,
		image:   newInput("/path/to/image.jpg", 1024),
	}
	m.setFocus(createFieldTitle)
	return m
}

func (m *CreatePostModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	return textinput.Blink
}

func (m *CreatePostModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(postCreatedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.status = ""
			m.errMsg = service.UserMessage(result.err, service.MsgCreatePostFailed)
			return m, nil
		}
		m.reset()
		m.errMsg = ""
		m.status = "Post published."
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			return m, navigate(pageHome)
		case key.Matches(keyMsg, keys.tab):
			m.setFocus((m.focus + 1) % createFieldCount)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus((m.focus - 1 + createFieldCount) % createFieldCount)
			return m, nil
		case key.Matches(keyMsg, keys.submit),
			key.Matches(keyMsg, keys.enter) && m.focus != createFieldContent:
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case createFieldTitle:
		m.title, cmd = m.title.Update(msg)
	case createFieldContent:
		m.content, cmd = m.content.Update(msg)
	case createFieldImage:
		m.image, cmd = m.image.Update(msg)
	}
	return m, cmd
}

func (m *CreatePostModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.submitting = true
	m.status, m.errMsg = "", ""

	post := models.NewPost{
		Title:     strings.TrimSpace(m.title.Value()),
		Content:   strings.TrimSpace(m.content.Value()),
		ImagePath: strings.TrimSpace(m.image.Value()),
	}
	ctx, posts := m.ctx, m.posts
	return func() tea.Msg {
		created, err := posts.Create(ctx, post)
		return postCreatedMsg{post: created, err: err}
	}
}

func (m *CreatePostModel) setFocus(field int) {
	m.focus = field
	m.title.Blur()
	m.content.Blur()
	m.image.Blur()

	switch field {
	case createFieldTitle:
		m.title.Focus()
	case createFieldContent:
		m.content.Focus()
	case createFieldImage:
		m.image.Focus()
	}
}

func (m *CreatePostModel) reset() {
	m.title.SetValue("")
	m.content.Reset()
	m.image.SetValue("")
	m.setFocus(createFieldTitle)
}

func (m *CreatePostModel) View() string {
	var b strings.Builder
	renderMessages(&b, m.errMsg, m.status)

	b.WriteString("Title\n")
	b.WriteString(m.title.View() + "\n\n")
	b.WriteString("Content\n")
	b.WriteString(m.content.View() + "\n\n")
	b.WriteString("Image file\n")
	b.WriteString(m.image.View() + "\n")

	if m.submitting {
		b.WriteString("\n[Publishing...]\n")
	} else {
		b.WriteString("\n[Publish]\n")
	}

	return renderPage("NEW POST", strings.TrimRight(b.String(), "\n"), "tab: next field │ ctrl+s: publish │ esc: back")
}
