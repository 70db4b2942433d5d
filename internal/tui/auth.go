package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	errEmptyCredentials = errors.New("email and password are required")
	errEmptyName        = errors.New("name is required")
)

type authMode int

const (
	authSignIn authMode = iota
	authSignUp
)

// authForm is the sign-in / sign-up dialog. It opens when a guest tries a
// members-only action and hands focus back once the token arrives.
type authForm struct {
	mode   authMode
	name   textinput.Model
	email  textinput.Model
	pass   textinput.Model
	cursor int
	busy   bool
	err    error
	notice string
}

func newAuthForm() authForm {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 50
	name.Width = 30

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 100
	email.Width = 30
	email.Focus()

	pass := textinput.New()
	pass.Placeholder = "Password"
	pass.CharLimit = 100
	pass.Width = 30
	pass.EchoMode = textinput.EchoPassword

	return authForm{mode: authSignIn, name: name, email: email, pass: pass}
}

// fields returns the visible inputs in tab order.
func (f *authForm) fields() []*textinput.Model {
	if f.mode == authSignUp {
		return []*textinput.Model{&f.name, &f.email, &f.pass}
	}
	return []*textinput.Model{&f.email, &f.pass}
}

func (f *authForm) focusField(i int) {
	fields := f.fields()
	if i < 0 {
		i = 0
	}
	if i >= len(fields) {
		i = len(fields) - 1
	}
	f.cursor = i
	for j, field := range fields {
		if j == i {
			field.Focus()
		} else {
			field.Blur()
		}
	}
}

func (f *authForm) switchMode() {
	if f.mode == authSignIn {
		f.mode = authSignUp
	} else {
		f.mode = authSignIn
	}
	f.err = nil
	f.focusField(0)
}

// handleAuthKeys handles key events while the auth dialog is open.
func (m Model) handleAuthKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusList
		return m, nil

	case "tab", "down":
		m.auth.focusField(m.auth.cursor + 1)
		return m, textinput.Blink

	case "shift+tab", "up":
		m.auth.focusField(m.auth.cursor - 1)
		return m, textinput.Blink

	case "ctrl+t":
		m.auth.switchMode()
		return m, textinput.Blink

	case "enter":
		if m.auth.cursor < len(m.auth.fields())-1 {
			m.auth.focusField(m.auth.cursor + 1)
			return m, textinput.Blink
		}
		return m.submitAuth()
	}

	// Forward to the focused input
	var cmd tea.Cmd
	fields := m.auth.fields()
	*fields[m.auth.cursor], cmd = fields[m.auth.cursor].Update(msg)
	return m, cmd
}

func (m Model) submitAuth() (tea.Model, tea.Cmd) {
	if m.auth.busy {
		return m, nil
	}

	email := strings.TrimSpace(m.auth.email.Value())
	pass := m.auth.pass.Value()
	if email == "" || pass == "" {
		m.auth.err = errEmptyCredentials
		return m, nil
	}

	if m.auth.mode == authSignUp {
		name := strings.TrimSpace(m.auth.name.Value())
		if name == "" {
			m.auth.err = errEmptyName
			return m, nil
		}
		m.auth.busy = true
		m.auth.err = nil
		return m, submitRegister(m.client, name, email, pass)
	}

	m.auth.busy = true
	m.auth.err = nil
	return m, submitLogin(m.client, email, pass)
}

// renderAuth renders the auth dialog panel.
func (m Model) renderAuth(width int) string {
	f := m.auth

	title := "SIGN IN"
	if f.mode == authSignUp {
		title = "SIGN UP"
	}

	var b strings.Builder
	b.WriteString(styleHeader.Render(title))
	b.WriteString("\n\n")

	if f.mode == authSignUp {
		b.WriteString(" " + f.name.View() + "\n")
	}
	b.WriteString(" " + f.email.View() + "\n")
	b.WriteString(" " + f.pass.View() + "\n\n")

	switch {
	case f.busy:
		b.WriteString(styleLoading.Render(" Signing in..."))
	case f.err != nil:
		b.WriteString(styleError.Render(" " + f.err.Error()))
	case f.notice != "":
		b.WriteString(styleSuccess.Render(" " + f.notice))
	default:
		hint := "No account yet? Ctrl+T to sign up"
		if f.mode == authSignUp {
			hint = "Have an account? Ctrl+T to sign in"
		}
		b.WriteString(styleMuted.Render(" " + hint))
	}

	return b.String()
}
