package assessment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/balancer/internal/catalog"
	"github.com/abhisek/balancer/internal/journal"
	"github.com/abhisek/balancer/internal/scoring"
)

var (
	ErrSessionNotInitialized = errors.New("assessment session not initialized")
	ErrUnknownQuestion       = errors.New("unknown question")
	ErrAnswerKind            = errors.New("answer does not fit question type")
	ErrNothingToUndo         = errors.New("nothing to undo")
)

// Option configures a Session.
type Option func(*Session)

// WithJournal appends every accepted action to repo.
func WithJournal(repo journal.Repo) Option {
	return func(s *Session) { s.repo = repo }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

func WithPresence(p PresencePolicy) Option {
	return func(s *Session) { s.presence = p }
}

// Session owns the single current State of one assessment run and the
// history of states behind it.
type Session struct {
	cat      *catalog.Catalog
	repo     journal.Repo
	now      func() time.Time
	log      *zap.Logger
	presence PresencePolicy

	mu        sync.Mutex
	id        string
	state     *State
	history   []State
	enteredAt time.Time // when the current section was entered
}

// NewSession creates a session over cat. Call Start before anything else.
func NewSession(cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		cat: cat,
		now: time.Now,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a fresh run with a new session id, discarding any earlier one.
func (s *Session) Start(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	st := New(now)
	s.id = uuid.NewString()
	s.state = &st
	s.history = nil
	s.enteredAt = now

	s.record(ctx, journal.EntryData{
		SessionID: s.id,
		Kind:      journal.KindStart,
		Timestamp: now,
	})
	s.log.Info("assessment started",
		zap.String("session_id", s.id),
		zap.String("catalog_version", s.cat.Version),
		zap.Stringer("presence", s.presence),
	)
	return st, nil
}

// ID returns the session id, empty before Start.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

func (s *Session) Catalog() *catalog.Catalog { return s.cat }

func (s *Session) Presence() PresencePolicy { return s.presence }

// Current returns the current state.
func (s *Session) Current() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return State{}, ErrSessionNotInitialized
	}
	return *s.state, nil
}

// MustCurrent is Current for callers that have already started the session.
func (s *Session) MustCurrent() State {
	st, err := s.Current()
	if err != nil {
		panic(err)
	}
	return st
}

// Position describes the current state against the catalog.
func (s *Session) Position() (Position, error) {
	st, err := s.Current()
	if err != nil {
		return Position{}, err
	}
	return Describe(st, s.cat), nil
}

// CanAdvance reports whether Next would be accepted. False before Start.
func (s *Session) CanAdvance() bool {
	st, err := s.Current()
	if err != nil || st.Completed {
		return false
	}
	return CanAdvance(st, s.cat, s.presence)
}

// Missing lists the unanswered required questions of the active scenario.
func (s *Session) Missing() []catalog.Question {
	st, err := s.Current()
	if err != nil {
		return nil
	}
	return MissingRequired(st, s.cat, s.presence)
}

// Result returns the final result once the assessment is complete.
func (s *Session) Result() (*scoring.Result, bool) {
	st, err := s.Current()
	if err != nil || !st.Completed {
		return nil, false
	}
	return st.Result, st.Result != nil
}

// CanUndo reports whether Undo would restore an earlier state.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != nil && !s.state.Completed && len(s.history) > 0
}

// Dispatch applies a to the current state. Section changes first accrue the
// time spent in the section being left.
func (s *Session) Dispatch(ctx context.Context, a Action) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatch(ctx, a)
}

func (s *Session) dispatch(ctx context.Context, a Action) (State, error) {
	if s.state == nil {
		return State{}, ErrSessionNotInitialized
	}
	if s.state.Completed {
		return *s.state, ErrAlreadyCompleted
	}

	prev := *s.state
	st := prev
	now := s.now()

	if a.ChangesSection() {
		if sec, ok := s.cat.Section(st.CurrentSection); ok {
			track := TrackTimeFor(sec.ID, now.Sub(s.enteredAt))
			track.auto = true
			s.journal(ctx, track, st, now)
			st = Reduce(st, track)
		}
	}

	s.journal(ctx, a, st, now)
	st = Reduce(st, a)

	s.history = append(s.history, prev)
	s.state = &st
	if st.CurrentSection != prev.CurrentSection {
		s.enteredAt = now
	}

	s.log.Debug("action applied",
		zap.String("session_id", s.id),
		zap.String("kind", string(a.Kind)),
		zap.Int("section", st.CurrentSection),
		zap.Int("scenario", st.CurrentScenario),
	)
	if st.Completed && st.Result != nil {
		s.log.Info("assessment completed",
			zap.String("session_id", s.id),
			zap.Int("overall_score", st.Result.OverallScore),
			zap.String("profile", string(st.Result.Profile)),
			zap.Int("answered", st.AnsweredCount()),
		)
	}
	return st, nil
}

// Answer records v for questionID after checking it against the catalog.
func (s *Session) Answer(ctx context.Context, questionID string, v Answer) (State, error) {
	q, ok := s.cat.Question(questionID)
	if !ok {
		st, _ := s.Current()
		return st, fmt.Errorf("%w: %q", ErrUnknownQuestion, questionID)
	}
	if !v.Fits(q) {
		st, _ := s.Current()
		return st, fmt.Errorf("%w: %q is %s, got %s", ErrAnswerKind, questionID, q.Type, v.Kind())
	}
	return s.Dispatch(ctx, SaveAnswer(questionID, v))
}

// Next continues to the next scenario, section or the results.
func (s *Session) Next(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return State{}, ErrSessionNotInitialized
	}
	a, err := NextAction(*s.state, s.cat, s.presence)
	if err != nil {
		return *s.state, err
	}
	return s.dispatch(ctx, a)
}

// Back steps to the previous scenario or section. On the first step it
// returns the state unchanged.
func (s *Session) Back(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return State{}, ErrSessionNotInitialized
	}
	a, ok := BackAction(*s.state)
	if !ok {
		return *s.state, nil
	}
	return s.dispatch(ctx, a)
}

// Undo restores the state before the last accepted action.
func (s *Session) Undo(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return State{}, ErrSessionNotInitialized
	}
	if s.state.Completed {
		return *s.state, ErrAlreadyCompleted
	}
	if len(s.history) == 0 {
		return *s.state, ErrNothingToUndo
	}

	now := s.now()
	prev := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	s.record(ctx, journal.EntryData{
		SessionID:     s.id,
		Kind:          KindUndo,
		SectionIndex:  s.state.CurrentSection,
		ScenarioIndex: s.state.CurrentScenario,
		Timestamp:     now,
	})
	if prev.CurrentSection != s.state.CurrentSection {
		s.enteredAt = now
	}
	s.state = &prev
	return prev, nil
}

func (s *Session) journal(ctx context.Context, a Action, at State, now time.Time) {
	data, err := a.entryData(s.id, at, now)
	if err != nil {
		s.log.Warn("journal encode failed", zap.String("kind", string(a.Kind)), zap.Error(err))
		return
	}
	s.record(ctx, data)
}

func (s *Session) record(ctx context.Context, data journal.EntryData) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Append(ctx, data); err != nil {
		s.log.Warn("journal append failed",
			zap.String("session_id", data.SessionID),
			zap.String("kind", data.Kind),
			zap.Error(err),
		)
	}
}

// Export renders the current state as a session document.
func (s *Session) Export() (Document, error) {
	st, err := s.Current()
	if err != nil {
		return Document{}, err
	}
	doc := Export(st)
	doc.SessionID = s.ID()
	doc.CatalogVersion = s.cat.Version
	return doc, nil
}
