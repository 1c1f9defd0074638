package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/simplify/internal/config"
	"github.com/abhisek/simplify/internal/feedback"
	"github.com/abhisek/simplify/internal/hint"
	"github.com/abhisek/simplify/internal/problemgen"
	"github.com/abhisek/simplify/internal/router"
	"github.com/abhisek/simplify/internal/screen"
	"github.com/abhisek/simplify/internal/screens/home"
	"github.com/abhisek/simplify/internal/screens/practice"
	"github.com/abhisek/simplify/internal/screens/welcome"
	"github.com/abhisek/simplify/internal/session"
	"github.com/abhisek/simplify/internal/store"
	"github.com/abhisek/simplify/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Config        config.Config
	Generator     problemgen.Generator
	GeneratorName string

	// Hinter is nil when hints are off.
	Hinter hint.Hinter

	// EventRepo is nil when the practice log is unavailable.
	EventRepo store.EventRepo
	Logger    *slog.Logger

	// SkipWelcome starts on the home screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the model, starting on the splash screen unless
// opts.SkipWelcome is set.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	resolver := feedback.NewResolver(opts.Config.Lang)
	recorder := session.NewRecorder(opts.EventRepo, opts.Logger)

	newPractice := func() screen.Screen {
		return practice.New(practice.Deps{
			Generator:     opts.Generator,
			GeneratorName: opts.GeneratorName,
			Hinter:        opts.Hinter,
			Recorder:      recorder,
			Resolver:      resolver,
			Total:         opts.Config.Exercises,
			AdvanceDelay:  opts.Config.AdvanceDelay,
			Logger:        opts.Logger,
		})
	}
	newHome := func() screen.Screen {
		return home.New(newPractice, opts.EventRepo)
	}

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = newHome()
	} else {
		initial = welcome.New(newHome)
	}
	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Update(msg)

	case router.PushScreenMsg, router.ReplaceScreenMsg:
		// New screens learn the terminal size from a replayed resize.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.resize())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) resize() tea.Cmd {
	if m.width == 0 || m.height == 0 {
		return nil
	}
	size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
	return func() tea.Msg { return size }
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.TooSmall(m.width, m.height) {
		v.SetContent(layout.SizeWarning(m.width, m.height))
		return v
	}

	active := m.router.Active()
	chrome := layout.Chrome{Hints: m.footerHints(active)}
	if active != nil {
		chrome.Title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		chrome.Status = sp.Status()
	}

	frame := chrome.Render(m.width, m.height, m.router.View)
	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		return append(kp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and closes every open screen when it
// exits, so an unfinished session is logged.
func Run(opts Options) error {
	model := newAppModel(opts)
	defer model.router.CloseAll()

	p := tea.NewProgram(model)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
