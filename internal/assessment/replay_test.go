package assessment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/balancer/internal/journal"
)

func TestReplay_MatchesLiveSession(t *testing.T) {
	s, repo := newTestSession(t)
	cat := s.Catalog()
	ctx := context.Background()

	_, err := s.Start(ctx)
	require.NoError(t, err)
	steps := []func() error{
		func() error { _, err := s.Next(ctx); return err },
		func() error { _, err := s.Answer(ctx, "a-choice", ChoiceAnswer("Careful")); return err },
		func() error { _, err := s.Next(ctx); return err },
		func() error { _, err := s.Back(ctx); return err },
		func() error { _, err := s.Undo(ctx); return err },
		func() error { _, err := s.Answer(ctx, "a-rank", RankingAnswer([]string{"Two", "One", "Three"})); return err },
		func() error { _, err := s.Answer(ctx, "a-scale", ScaleAnswer("4")); return err },
		func() error { _, err := s.Next(ctx); return err },
		func() error { _, err := s.Next(ctx); return err },
		func() error { _, err := s.Undo(ctx); return err },
		func() error { _, err := s.Next(ctx); return err },
		func() error { _, err := s.Next(ctx); return err },
	}
	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
	}
	live := s.MustCurrent()
	require.True(t, live.Completed)

	entries, err := repo.Entries(ctx, s.ID())
	require.NoError(t, err)

	replayed, err := Replay(cat, entries)
	require.NoError(t, err)

	assert.True(t, replayed.TimeStarted.Equal(live.TimeStarted))
	replayed.TimeStarted = live.TimeStarted
	assert.Equal(t, live, replayed)
}

func TestReplay_Errors(t *testing.T) {
	cat := testCatalog(t)

	_, err := Replay(cat, nil)
	assert.ErrorIs(t, err, ErrEmptyJournal)

	_, err = Replay(cat, []journal.Entry{{EntryData: journal.EntryData{Kind: string(ActionNextSection)}}})
	assert.Error(t, err, "first entry must be start")

	start := journal.Entry{EntryData: journal.EntryData{Kind: journal.KindStart, Timestamp: testStart}}

	_, err = Replay(cat, []journal.Entry{start, {EntryData: journal.EntryData{Kind: KindUndo}}})
	assert.ErrorIs(t, err, ErrNothingToUndo)

	_, err = Replay(cat, []journal.Entry{start, {EntryData: journal.EntryData{Kind: "teleport"}}})
	assert.Error(t, err)

	unknown := journal.Entry{EntryData: journal.EntryData{
		Kind:       string(ActionSaveAnswer),
		QuestionID: "ghost",
		Payload:    `{"answer":{"kind":"text","value":"boo"}}`,
	}}
	_, err = Replay(cat, []journal.Entry{start, unknown})
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}
