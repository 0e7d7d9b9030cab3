package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/balancer/internal/screen"
)

type stubScreen struct {
	title   string
	inits   int
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestShow_ReplacesBaseAndDropsOverlays(t *testing.T) {
	intro := &stubScreen{title: "intro"}
	r := New(intro, nil)
	r.Open(&stubScreen{title: "help"})
	require.True(t, r.HasOverlay())

	next := &stubScreen{title: "scenario"}
	r.Show(next)

	assert.False(t, r.HasOverlay())
	assert.Same(t, next, r.Base())
	assert.Same(t, next, r.Active())
	assert.Equal(t, 1, next.inits)
}

func TestOverlay_ReceivesInput(t *testing.T) {
	base := &stubScreen{title: "base"}
	help := &stubScreen{title: "help"}
	r := New(base, nil)
	r.Open(help)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Equal(t, 1, help.updates)
	assert.Equal(t, 0, base.updates)
	assert.Equal(t, "help", r.View(80, 24))

	assert.True(t, r.Dismiss())
	assert.False(t, r.Dismiss())
	assert.Equal(t, "base", r.View(80, 24))

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Equal(t, 1, base.updates)
}

func TestUpdate_NavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "a"}, nil)

	help := &stubScreen{title: "help"}
	r.Update(OverlayMsg{Screen: help})
	assert.Same(t, help, r.Active())
	assert.Equal(t, 1, help.inits)

	r.Update(DismissMsg{})
	assert.Equal(t, "a", r.Active().Title())

	b := &stubScreen{title: "b"}
	r.Update(ShowMsg{Screen: b})
	assert.Same(t, b, r.Active())
}

func TestCommandHelpers(t *testing.T) {
	s := &stubScreen{title: "s"}

	msg, ok := Show(s)().(ShowMsg)
	require.True(t, ok)
	assert.Same(t, s, msg.Screen)

	omsg, ok := Overlay(s)().(OverlayMsg)
	require.True(t, ok)
	assert.Same(t, s, omsg.Screen)
}

func TestNilBase(t *testing.T) {
	r := New(nil, nil)
	assert.Nil(t, r.Active())
	assert.Nil(t, r.Update(tea.KeyPressMsg{Code: 'x'}))
	assert.Equal(t, "", r.View(80, 24))
}
