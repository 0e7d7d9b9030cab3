package results

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
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

// completedSession answers every question of the default catalog and finishes.
func completedSession(t *testing.T) *assessment.Session {
	t.Helper()
	cat := catalog.Default()
	sess := assessment.NewSession(cat)
	ctx := context.Background()
	_, err := sess.Start(ctx)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		st := sess.MustCurrent()
		if st.Completed {
			return sess
		}
		if scn, ok := cat.Scenario(st.CurrentSection, st.CurrentScenario); ok {
			for _, q := range scn.Questions {
				var a assessment.Answer
				switch q.Type {
				case catalog.TypeRanking:
					a = assessment.RankingAnswer(q.Options)
				case catalog.TypeText:
					a = assessment.TextAnswer("because")
				case catalog.TypeScale:
					a = assessment.ScaleAnswer(q.Options[2])
				default:
					a = assessment.ChoiceAnswer(q.Options[0])
				}
				_, err := sess.Answer(ctx, q.ID, a)
				require.NoError(t, err)
			}
		}
		_, err := sess.Next(ctx)
		require.NoError(t, err)
	}
	t.Fatal("session did not complete")
	return nil
}

func TestResults_View(t *testing.T) {
	s := New(completedSession(t), func() screen.Screen { return &stubScreen{} }, "")
	assert.Nil(t, s.Init())

	view := s.View(100, 60)
	assert.Contains(t, view, "100 / 100")
	assert.Contains(t, view, "Balanced Performer")
	assert.Contains(t, view, "Time Management")
	assert.Contains(t, view, "Decision Making")
	assert.Contains(t, view, "Improve time estimation skills")
}

func TestResults_ExportsOnInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "result.json")
	s := New(completedSession(t), func() screen.Screen { return &stubScreen{} }, path)

	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
	assert.Contains(t, s.exportNote, "Results saved to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, true, doc["completed"])
	assert.Len(t, doc["answers"], 9)
	assert.Equal(t, "v1.0.0", doc["catalogVersion"])
}

func TestResults_QuitAndRestart(t *testing.T) {
	sess := completedSession(t)
	s := New(sess, func() screen.Screen { return &stubScreen{} }, "")

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok = cmd().(router.ShowMsg)
	assert.True(t, ok)

	st := sess.MustCurrent()
	assert.False(t, st.Completed)
	assert.Equal(t, 0, st.CurrentSection)
}
