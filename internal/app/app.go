package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/balancer/internal/assessment"
	"github.com/abhisek/balancer/internal/router"
	"github.com/abhisek/balancer/internal/screen"
	"github.com/abhisek/balancer/internal/screens/help"
	"github.com/abhisek/balancer/internal/ui/layout"
)

// Options holds dependencies for the app.
type Options struct {
	// Session must be started before Run.
	Session *assessment.Session

	// ExportPath receives the session document on completion when set.
	ExportPath string

	Logger *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	route  func() screen.Screen
	router *router.Router
	log    *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel positioned on the session's current screen.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	route := newRoute(opts)
	return AppModel{
		opts:   opts,
		route:  route,
		router: router.New(route(), log),
		log:    log,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Dismiss() {
				return m, nil
			}
			return m, m.back()
		case "ctrl+z":
			if m.router.HasOverlay() {
				return m, nil
			}
			return m, m.undo()
		case "?":
			if !m.router.HasOverlay() && !m.capturingText() {
				return m, m.router.Open(help.New())
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// back retreats the session one step and shows the screen for the new position.
func (m AppModel) back() tea.Cmd {
	if s, ok := m.router.Base().(screen.PendingSaver); ok {
		s.SavePending()
	}
	before, err := m.opts.Session.Current()
	if err != nil {
		return nil
	}
	after, err := m.opts.Session.Back(context.Background())
	if err != nil {
		m.log.Warn("back failed", zap.Error(err))
		return nil
	}
	if after.CurrentSection == before.CurrentSection && after.CurrentScenario == before.CurrentScenario {
		return nil
	}
	return m.router.Show(m.route())
}

// undo restores the previous session state and rebuilds the screen for it.
func (m AppModel) undo() tea.Cmd {
	if !m.opts.Session.CanUndo() {
		return nil
	}
	if _, err := m.opts.Session.Undo(context.Background()); err != nil {
		m.log.Warn("undo failed", zap.Error(err))
		return nil
	}
	return m.router.Show(m.route())
}

// capturingText reports whether the base screen is taking free text.
func (m AppModel) capturingText() bool {
	c, ok := m.router.Base().(screen.InputCapturer)
	return ok && c.CapturesText()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)

	footerHints := []layout.KeyHint{{Key: "Enter", Description: "Select"}}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	if !m.router.HasOverlay() {
		footerHints = append(footerHints, layout.KeyHint{Key: "?", Description: "Help"})
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(dedupeHints(footerHints), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// status is the header progress text for the current position.
func (m AppModel) status() string {
	st, err := m.opts.Session.Current()
	if err != nil {
		return ""
	}
	if st.Completed {
		return "Complete"
	}
	pos := assessment.Describe(st, m.opts.Session.Catalog())
	return layout.ProgressStatus(pos.SectionNumber, pos.SectionCount, pos.Progress)
}

func dedupeHints(hints []layout.KeyHint) []layout.KeyHint {
	seen := make(map[string]bool, len(hints))
	out := hints[:0:0]
	for _, h := range hints {
		if seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		out = append(out, h)
	}
	return out
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	return run(opts)
}

func run(opts Options, progOpts ...tea.ProgramOption) error {
	if _, err := opts.Session.Current(); err != nil {
		return err
	}
	m := newAppModel(opts)
	p := tea.NewProgram(m, progOpts...)
	if _, err := p.Run(); err != nil {
		m.log.Error("program exited with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
