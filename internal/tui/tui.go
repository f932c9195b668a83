package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/internal/service"
	"github.com/logmind/moodlog/internal/viewstate"
	"github.com/logmind/moodlog/models"
)

// TUI owns the terminal program. Notify is safe to call from other
// goroutines while Run is active; outside of that window it is a no-op.
type TUI struct {
	services   *service.Services
	home       *viewstate.Home
	write      *viewstate.Write
	statistics *viewstate.Statistics
	settings   *viewstate.Settings
	profile    *viewstate.Profile
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

func New(
	services *service.Services,
	home *viewstate.Home,
	write *viewstate.Write,
	statistics *viewstate.Statistics,
	settings *viewstate.Settings,
	profile *viewstate.Profile,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) *TUI {
	return &TUI{
		services:   services,
		home:       home,
		write:      write,
		statistics: statistics,
		settings:   settings,
		profile:    profile,
		buildInfo:  buildInfo,
		logger:     log,
	}
}

// Run blocks until the user quits or the program fails.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.home, t.write, t.statistics, t.settings, t.profile, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen())

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()

	finalModel, runErr := program.Run()

	t.mu.Lock()
	t.program = nil
	t.mu.Unlock()

	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return result.err
	}
	return nil
}

// Notify shows text inside the running program, for the daily reminder.
func (t *TUI) Notify(text string) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(reminderMsg{text: text})
	}
}
