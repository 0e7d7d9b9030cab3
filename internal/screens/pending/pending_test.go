package pending

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

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

// sessionAt starts a session and jumps to section idx.
func sessionAt(t *testing.T, idx int) *assessment.Session {
	t.Helper()
	sess := assessment.NewSession(catalog.Default())
	ctx := context.Background()
	if _, err := sess.Start(ctx); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < idx; i++ {
		if _, err := sess.Dispatch(ctx, assessment.NextSection()); err != nil {
			t.Fatal(err)
		}
	}
	return sess
}

func TestPending_ContinuesToNextSection(t *testing.T) {
	sess := sessionAt(t, 2)
	p := New(sess, func() screen.Screen { return &stubScreen{} })

	if p.Title() != "Practical Skills" {
		t.Errorf("Title = %q", p.Title())
	}
	if !strings.Contains(p.View(100, 30), "Coming Soon") {
		t.Error("expected coming soon message")
	}

	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command after Enter")
	}
	if _, ok := cmd().(router.ShowMsg); !ok {
		t.Fatal("expected ShowMsg")
	}
	if got := sess.MustCurrent().CurrentSection; got != 3 {
		t.Errorf("CurrentSection = %d, want 3", got)
	}
}

func TestPending_LastSectionCompletes(t *testing.T) {
	sess := sessionAt(t, 4)
	p := New(sess, func() screen.Screen { return &stubScreen{} })

	if p.KeyHints()[0].Description != "See results" {
		t.Errorf("hint = %q, want See results", p.KeyHints()[0].Description)
	}

	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	st := sess.MustCurrent()
	if !st.Completed || st.Result == nil {
		t.Fatal("expected the session to complete")
	}
	if st.Result.OverallScore != 0 {
		t.Errorf("OverallScore = %d, want 0 with no answers", st.Result.OverallScore)
	}
}
