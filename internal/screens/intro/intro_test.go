package intro

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/balancer/internal/assessment"
	"github.com/abhisek/balancer/internal/catalog"
	"github.com/abhisek/balancer/internal/router"
	"github.com/abhisek/balancer/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "next" }
func (s *stubScreen) Title() string                          { return "Next" }

func newTestIntro(t *testing.T) (*IntroScreen, *assessment.Session, *int) {
	t.Helper()
	sess := assessment.NewSession(catalog.Default())
	if _, err := sess.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	calls := 0
	route := func() screen.Screen {
		calls++
		return &stubScreen{}
	}
	return New(sess, route), sess, &calls
}

func sendTicks(s *IntroScreen, n int) {
	for i := 0; i < n; i++ {
		s.Update(tickMsg(time.Now()))
	}
}

func TestIntro_AnimationReveals(t *testing.T) {
	s, _, _ := newTestIntro(t)

	if strings.Contains(s.View(100, 40), "press Enter") {
		t.Error("hint should not be visible at start")
	}

	sendTicks(s, int(totalDur/tickInterval))
	view := s.View(100, 40)
	if !strings.Contains(view, "press Enter to begin") {
		t.Error("hint should be visible after the animation")
	}
	if !strings.Contains(view, "Practical Skills") {
		t.Error("overview should list the scored sections")
	}
}

func TestIntro_KeypressSkipsAnimation(t *testing.T) {
	s, sess, calls := newTestIntro(t)
	sendTicks(s, 2)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("first keypress should only finish the animation")
	}
	if s.animating() {
		t.Error("expected animation to be finished")
	}
	if *calls != 0 || sess.MustCurrent().CurrentSection != 0 {
		t.Error("session must not advance while skipping the animation")
	}
}

func TestIntro_EnterBegins(t *testing.T) {
	s, sess, calls := newTestIntro(t)
	sendTicks(s, int(totalDur/tickInterval))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command after Enter")
	}
	if _, ok := cmd().(router.ShowMsg); !ok {
		t.Fatal("expected ShowMsg")
	}
	if got := sess.MustCurrent().CurrentSection; got != 1 {
		t.Errorf("CurrentSection = %d, want 1", got)
	}

	// A second Enter must not advance again.
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil || *calls != 1 {
		t.Errorf("expected a single transition, got %d", *calls)
	}
}

func TestIntro_Title(t *testing.T) {
	s, _, _ := newTestIntro(t)
	if s.Title() != "Introduction" {
		t.Errorf("Title = %q", s.Title())
	}
}
