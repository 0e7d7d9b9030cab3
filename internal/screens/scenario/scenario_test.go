package scenario

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/balancer/internal/assessment"
	"github.com/abhisek/balancer/internal/catalog"
	"github.com/abhisek/balancer/internal/router"
	"github.com/abhisek/balancer/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "next" }
func (s *stubScreen) Title() string                          { return "Next" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func tab() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyTab}
}

// newTestScenario starts a session on the first scenario of the default catalog.
func newTestScenario(t *testing.T) (*ScenarioScreen, *assessment.Session) {
	t.Helper()
	sess := assessment.NewSession(catalog.Default())
	ctx := context.Background()
	_, err := sess.Start(ctx)
	require.NoError(t, err)
	_, err = sess.Next(ctx)
	require.NoError(t, err)

	s := New(sess, func() screen.Screen { return &stubScreen{} })
	s.Init()
	return s, sess
}

func TestScenario_Layout(t *testing.T) {
	s, _ := newTestScenario(t)

	assert.Equal(t, "Scenario Analysis", s.Title())
	require.Len(t, s.widgets, 3)
	assert.Equal(t, "q1-priority", s.widgets[0].q.ID)
	assert.Equal(t, 0, s.focus)

	view := s.View(100, 60)
	assert.Contains(t, view, "Scenario 1 of 3")
	assert.Contains(t, view, "Continue")
}

func TestScenario_ChoiceRecordsAnswer(t *testing.T) {
	s, sess := newTestScenario(t)
	q := s.widgets[0].q

	s.Update(keyPress('2'))

	a, ok := sess.MustCurrent().Answer(q.ID)
	require.True(t, ok)
	v, _ := a.Choice()
	assert.Equal(t, q.Options[1], v)
}

func TestScenario_BlockedUntilRequiredAnswered(t *testing.T) {
	s, sess := newTestScenario(t)

	s.Update(tab())
	s.Update(tab())
	s.Update(tab())
	require.True(t, s.onButton())

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Contains(t, s.notice, "#1")
	assert.Equal(t, 0, sess.MustCurrent().CurrentScenario)
}

func TestScenario_FullFlowAdvances(t *testing.T) {
	s, sess := newTestScenario(t)

	s.Update(keyPress('1'))

	s.Update(tab())
	s.Update(specialKey(tea.KeyEnter)) // confirm default ranking order

	s.Update(tab())
	s.widgets[2].text.Model.SetValue("Call the client and explain the delay")
	s.Update(tab()) // leaving the text field saves it
	require.True(t, s.onButton())

	st := sess.MustCurrent()
	assert.Equal(t, 3, st.AnsweredCount())
	text, _ := st.Answers["q1-communication"].Text()
	assert.True(t, strings.HasPrefix(text, "Call the client"))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	_, ok := cmd().(router.ShowMsg)
	assert.True(t, ok, "expected ShowMsg")
	assert.Equal(t, 1, sess.MustCurrent().CurrentScenario)
}

func TestScenario_ShiftTabWraps(t *testing.T) {
	s, _ := newTestScenario(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.True(t, s.onButton())
	s.Update(tab())
	assert.Equal(t, 0, s.focus)
}

func TestScenario_RestoresRecordedAnswers(t *testing.T) {
	s, sess := newTestScenario(t)
	_, err := sess.Answer(context.Background(), "q1-communication", assessment.TextAnswer("draft"))
	require.NoError(t, err)

	again := New(sess, s.route)
	assert.Equal(t, "draft", again.widgets[2].text.Value())
	assert.False(t, again.widgets[2].text.Dirty())
}

func TestScenario_KeyHints(t *testing.T) {
	s, _ := newTestScenario(t)
	hints := s.KeyHints()
	require.NotEmpty(t, hints)
	assert.Equal(t, "Choose", hints[1].Description)

	s.focus = len(s.widgets)
	assert.Equal(t, "Continue", s.KeyHints()[1].Description)
}

func TestScenario_CapturesTextOnFreeText(t *testing.T) {
	s, _ := newTestScenario(t)
	assert.False(t, s.CapturesText())

	s.Update(tab())
	s.Update(tab())
	assert.True(t, s.CapturesText())

	s.Update(tab())
	assert.False(t, s.CapturesText())
}

func TestScenario_SavePendingRecordsEditedText(t *testing.T) {
	s, sess := newTestScenario(t)
	s.widgets[2].text.Model.SetValue("unsaved")

	s.SavePending()

	text, ok := sess.MustCurrent().Answers["q1-communication"].Text()
	require.True(t, ok)
	assert.Equal(t, "unsaved", text)
	assert.False(t, s.widgets[2].text.Dirty())
}
