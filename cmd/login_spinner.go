package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/fishpi-cli/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loginDoneMsg struct {
	key string
	err error
}

type loginSpinnerModel struct {
	spinner spinner.Model
	label   string
	login   tea.Cmd
	key     string
	err     error
	done    bool
}

func newLoginSpinnerModel(label string, login tea.Cmd) loginSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return loginSpinnerModel{
		spinner: s,
		label:   label,
		login:   login,
	}
}

func (m loginSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.login)
}

func (m loginSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loginDoneMsg:
		m.done = true
		m.key = msg.key
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m loginSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// spinnerAuthenticator shows a spinner on output while the wrapped
// authenticator is working.
type spinnerAuthenticator struct {
	next   ports.Authenticator
	output io.Writer
}

var _ ports.Authenticator = (*spinnerAuthenticator)(nil)

func newSpinnerAuthenticator(next ports.Authenticator, output io.Writer) *spinnerAuthenticator {
	return &spinnerAuthenticator{next: next, output: output}
}

func (a *spinnerAuthenticator) Authenticate(ctx context.Context, username, password, code string) (string, error) {
	loginCmd := func() tea.Msg {
		key, err := a.next.Authenticate(ctx, username, password, code)
		return loginDoneMsg{key: key, err: err}
	}

	p := tea.NewProgram(
		newLoginSpinnerModel(fmt.Sprintf("%s 登录中...", username), loginCmd),
		tea.WithInput(nil),
		tea.WithOutput(a.output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(loginSpinnerModel)
	if !ok {
		return "", fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.key, result.err
}
