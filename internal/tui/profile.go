package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/logmind/moodlog/internal/viewstate"
)

type profileInput int

const (
	profileInputNone profileInput = iota
	profileInputName
	profileInputToken
	profileInputPhoto
)

type profileModel struct {
	state      viewstate.ProfileState
	input      profileInput
	text       textinput.Model
	submitting bool
	status     string
}

func newProfileModel() profileModel {
	text := textinput.New()
	text.Width = 40
	return profileModel{text: text}
}

func (m profileModel) startInput(kind profileInput, placeholder, value string) profileModel {
	m.input = kind
	m.text.Placeholder = placeholder
	m.text.SetValue(value)
	m.text.Focus()
	return m
}

func (m profileModel) stopInput() profileModel {
	m.input = profileInputNone
	m.text.Blur()
	m.text.SetValue("")
	return m
}

func (m profileModel) View() string {
	out := viewTitle("Profile") + "\n"

	user := m.state.User
	if user == nil {
		out += "Signed out.\n\n"
		out += "Entries stay on this device either way; signing in\n"
		out += "keeps your profile across reinstalls.\n"
	} else {
		name := user.DisplayName
		if name == "" {
			name = "(no name)"
		}
		account := "Google"
		if user.IsAnonymous {
			account = "Anonymous"
		}
		out += "Name:    " + name + "\n"
		out += "Account: " + account + "\n"
		if user.Email != "" {
			out += "Email:   " + user.Email + "\n"
		}
		if user.PhotoURL != "" {
			out += "Photo:   " + fitText(user.PhotoURL, 48) + "\n"
		}
	}

	switch m.input {
	case profileInputName:
		out += "\nDisplay name: " + m.text.View() + "\n"
		out += helpStyle.Render("enter save  esc cancel")
	case profileInputToken:
		out += "\nGoogle ID token: " + m.text.View() + "\n"
		out += helpStyle.Render("enter sign in  esc cancel")
	case profileInputPhoto:
		out += "\nPhoto URL: " + m.text.View() + "\n"
		out += helpStyle.Render("enter save  esc cancel")
	}

	if m.submitting {
		out += "\nWorking...\n"
	}
	if m.state.Err != nil {
		out += "\n" + errorStyle.Render(m.state.Err.Error()) + "\n"
	}
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	if m.input == profileInputNone {
		if user == nil {
			out += "\n" + helpStyle.Render("a anonymous sign-in  g google sign-in  esc back")
		} else {
			out += "\n" + helpStyle.Render("e edit name  i photo url  o sign out  esc back")
		}
	}
	return out
}
