package assessment

import (
	"errors"
	"fmt"

	"github.com/abhisek/balancer/internal/catalog"
	"github.com/abhisek/balancer/internal/journal"
)

var ErrEmptyJournal = errors.New("journal has no entries for session")

// Replay rebuilds the final state of a session from its journal entries.
// The first entry must be the session's start. Undo entries rewind to the
// state before the last user action, the same way Session.Undo does.
func Replay(cat *catalog.Catalog, entries []journal.Entry) (State, error) {
	if len(entries) == 0 {
		return State{}, ErrEmptyJournal
	}
	if entries[0].Kind != journal.KindStart {
		return State{}, fmt.Errorf("entry %d: expected %q, got %q",
			entries[0].Sequence, journal.KindStart, entries[0].Kind)
	}

	st := New(entries[0].Timestamp)
	var history []State
	paired := false // previous entry was an automatic track-time

	for _, e := range entries[1:] {
		if e.Kind == KindUndo {
			if len(history) == 0 {
				return st, fmt.Errorf("entry %d: %w", e.Sequence, ErrNothingToUndo)
			}
			st = history[len(history)-1]
			history = history[:len(history)-1]
			paired = false
			continue
		}

		a, err := ActionFromEntry(e)
		if err != nil {
			return st, err
		}
		if a.Kind == ActionSaveAnswer {
			if _, ok := cat.Question(a.QuestionID); !ok {
				return st, fmt.Errorf("entry %d: %w: %q", e.Sequence, ErrUnknownQuestion, a.QuestionID)
			}
		}

		if !paired {
			history = append(history, st)
		}
		paired = a.Kind == ActionTrackTime && a.auto
		st = Reduce(st, a)
	}
	return st, nil
}
