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

// RegisterModel is the sign-up form. On success it returns to the auth
// menu with a [RegisterSuccessNotice].
type RegisterModel struct {
	ctx     context.Context
	session *session.Manager

	form       form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, sess *session.Manager) *RegisterModel {
	password := newInput("at least 6 characters", 256)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return &RegisterModel{
		ctx:     ctx,
		session: sess,
		form: newForm(
			[]string{"Name", "Email", "Password"},
			newInput("name", 100),
			newInput("email", 256),
			password,
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = service.UserMessage(result.err, service.MsgRegisterFailed)
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Email: result.email}}
		}
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
			return m, m.cmdRegister(models.Profile{
				Name:     strings.TrimSpace(m.form.value(0)),
				Email:    strings.TrimSpace(m.form.value(1)),
				Password: m.form.value(2),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	m.form.render(&b)

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		renderMessages(&b, m.errMsg, "")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(profile models.Profile) tea.Cmd {
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		return registerResultMsg{email: profile.Email, err: sess.Register(ctx, profile)}
	}
}
