// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-post-client/internal/service"
	"github.com/MKhiriev/go-post-client/internal/session"
	"github.com/MKhiriev/go-post-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the login form. A successful login changes the session and
// the router swaps to the main tree; this screen only reports failures.
type LoginModel struct {
	ctx     context.Context
	session *session.Manager

	form       form
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, sess *session.Manager) *LoginModel {
	email := newInput("email", 256)
	password := newInput("password", 256)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return &LoginModel{
		ctx:     ctx,
		session: sess,
		form:    newForm([]string{"Email", "Password"}, email, password),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		m.submitting = false
		m.errMsg = service.UserMessage(result.err, service.MsgLoginFailed)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, navigate(pageMenu)
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(models.Credentials{
				Email:    strings.TrimSpace(m.form.value(0)),
				Password: m.form.value(1),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	m.form.render(&b)

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		renderMessages(&b, m.errMsg, "")
	}

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		return loginResultMsg{err: sess.Login(ctx, creds)}
	}
}
