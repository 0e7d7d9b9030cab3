package scenario

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/balancer/internal/assessment"
	"github.com/abhisek/balancer/internal/catalog"
	"github.com/abhisek/balancer/internal/router"
	"github.com/abhisek/balancer/internal/screen"
	"github.com/abhisek/balancer/internal/ui/components"
	"github.com/abhisek/balancer/internal/ui/layout"
	"github.com/abhisek/balancer/internal/ui/theme"
)

// ScenarioScreen presents one scenario: its situation and questions, with a
// Continue button that advances once the required questions are answered.
type ScenarioScreen struct {
	sess     *assessment.Session
	route    func() screen.Screen
	pos      assessment.Position
	scenario catalog.Scenario
	widgets  []widget
	focus    int // len(widgets) is the Continue button
	notice   string
	advanced bool
}

var _ screen.Screen = (*ScenarioScreen)(nil)
var _ screen.KeyHintProvider = (*ScenarioScreen)(nil)
var _ screen.InputCapturer = (*ScenarioScreen)(nil)
var _ screen.PendingSaver = (*ScenarioScreen)(nil)

// New creates a ScenarioScreen for the session's current scenario,
// pre-filled with any answers already recorded.
func New(sess *assessment.Session, route func() screen.Screen) *ScenarioScreen {
	st := sess.MustCurrent()
	pos := assessment.Describe(st, sess.Catalog())

	s := &ScenarioScreen{sess: sess, route: route, pos: pos}
	if pos.Scenario != nil {
		s.scenario = *pos.Scenario
	}
	for _, q := range s.scenario.Questions {
		prior, ok := st.Answer(q.ID)
		s.widgets = append(s.widgets, newWidget(q, prior, ok))
	}
	return s
}

func (s *ScenarioScreen) Init() tea.Cmd {
	if len(s.widgets) == 0 {
		return nil
	}
	return s.widgets[0].focus()
}

func (s *ScenarioScreen) Title() string {
	return s.pos.Section.Title
}

func (s *ScenarioScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Choose"},
	}
	if s.onButton() {
		hints[1].Description = "Continue"
	}
	return append(hints,
		layout.KeyHint{Key: "Esc", Description: "Back"},
		layout.KeyHint{Key: "Ctrl+Z", Description: "Undo"},
	)
}

// CapturesText is true while a free-text question has focus.
func (s *ScenarioScreen) CapturesText() bool {
	return !s.onButton() && s.widgets[s.focus].q.Type == catalog.TypeText
}

func (s *ScenarioScreen) onButton() bool {
	return s.focus >= len(s.widgets)
}

func (s *ScenarioScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.onButton() {
			return s, nil
		}
		// Cursor blink and other component messages.
		_, _, cmd := s.widgets[s.focus].update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "tab":
		return s, s.moveFocus(1)
	case "shift+tab":
		return s, s.moveFocus(-1)
	}

	if s.onButton() {
		if kmsg.String() == "enter" {
			return s, s.advance()
		}
		return s, nil
	}

	w := &s.widgets[s.focus]
	if w.q.Type == catalog.TypeText && kmsg.String() == "enter" {
		return s, s.moveFocus(1)
	}

	answer, changed, cmd := w.update(msg)
	if changed {
		s.record(w.q.ID, answer)
	}
	return s, cmd
}

// moveFocus saves pending text and moves focus by delta, wrapping around.
func (s *ScenarioScreen) moveFocus(delta int) tea.Cmd {
	if !s.onButton() {
		w := &s.widgets[s.focus]
		s.savePending(w)
		w.blur()
	}
	n := len(s.widgets) + 1
	s.focus = ((s.focus+delta)%n + n) % n
	if s.onButton() {
		return nil
	}
	return s.widgets[s.focus].focus()
}

// SavePending records every edited but unsaved free-text answer.
func (s *ScenarioScreen) SavePending() {
	for i := range s.widgets {
		s.savePending(&s.widgets[i])
	}
}

func (s *ScenarioScreen) savePending(w *widget) {
	if a, ok := w.pendingText(); ok {
		if s.record(w.q.ID, a) {
			w.text.MarkSaved()
		}
	}
}

func (s *ScenarioScreen) record(id string, a assessment.Answer) bool {
	if _, err := s.sess.Answer(context.Background(), id, a); err != nil {
		s.notice = err.Error()
		return false
	}
	s.notice = ""
	return true
}

func (s *ScenarioScreen) advance() tea.Cmd {
	if s.advanced {
		return nil
	}
	s.SavePending()

	_, err := s.sess.Next(context.Background())
	switch {
	case errors.Is(err, assessment.ErrBlocked):
		s.notice = "Answer the required questions first: " + s.missingList(s.sess.Missing())
		return nil
	case err != nil:
		s.notice = err.Error()
		return nil
	}

	s.advanced = true
	return router.Show(s.route())
}

// missingList names questions by their number on this screen.
func (s *ScenarioScreen) missingList(qs []catalog.Question) string {
	nums := make([]string, 0, len(qs))
	for _, q := range qs {
		for i, w := range s.widgets {
			if w.q.ID == q.ID {
				nums = append(nums, fmt.Sprintf("#%d", i+1))
			}
		}
	}
	return strings.Join(nums, ", ")
}

func (s *ScenarioScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder

	heading := fmt.Sprintf("Scenario %d of %d  ·  %s",
		s.pos.ScenarioIndex+1, s.pos.ScenarioCount, s.scenario.Title)
	b.WriteString(theme.Heading.Render(heading))
	b.WriteString("\n")
	if s.scenario.Description != "" {
		b.WriteString(theme.Hint.Render(s.scenario.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(components.Card(
		lipgloss.NewStyle().Foreground(theme.Text).Width(cw-6).Render(s.scenario.Situation), cw))
	b.WriteString("\n\n")

	answers := s.sess.MustCurrent().Answers
	for i := range s.widgets {
		w := &s.widgets[i]
		focused := i == s.focus

		label := fmt.Sprintf("%d. %s", i+1, w.q.Text)
		if w.q.Required {
			label += theme.Required.Render(" *")
		}
		if answers.Has(w.q.ID) {
			label += theme.Chosen.Render("  ✓")
		}

		body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(label) + "\n" + w.view()
		if focused {
			body += "\n" + theme.Hint.Render(w.hint())
		}
		b.WriteString(components.FocusCard(body, cw, focused))
		b.WriteString("\n")
	}

	label := "Continue"
	if s.pos.LastStep {
		label = "Finish"
	}
	b.WriteString("\n")
	b.WriteString(components.Button(label, s.onButton()))

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Notice.Width(cw).Render(s.notice))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}
