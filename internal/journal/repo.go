package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Entry kinds the journal itself knows about. Other kinds are opaque.
const (
	KindStart    = "start"
	KindComplete = "complete"
)

// EntryData is what a caller appends: one applied action and the position
// the session was at when it was applied.
type EntryData struct {
	SessionID     string
	Kind          string
	SectionIndex  int
	ScenarioIndex int
	QuestionID    string
	Payload       string    // JSON-encoded action payload, may be empty
	Timestamp     time.Time // zero means "now"
}

// Entry is a stored journal row.
type Entry struct {
	EntryData
	ID       int64
	Sequence int64
}

// QueryOpts configures session listing.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// SessionSummary aggregates the entries of one session.
type SessionSummary struct {
	SessionID string
	Entries   int
	FirstAt   time.Time
	LastAt    time.Time
	Completed bool
}

// Repo provides append and query access to journal entries.
type Repo interface {
	// Append records a new entry at the next global sequence number.
	Append(ctx context.Context, data EntryData) error

	// Entries returns all entries for a session in sequence order.
	Entries(ctx context.Context, sessionID string) ([]Entry, error)

	// Sessions lists sessions, most recently active first.
	Sessions(ctx context.Context, opts QueryOpts) ([]SessionSummary, error)
}

type entryRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *entryRepo) Append(ctx context.Context, data EntryData) error {
	if data.SessionID == "" {
		return fmt.Errorf("append entry: empty session id")
	}
	if data.Kind == "" {
		return fmt.Errorf("append entry: empty kind")
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO journal_entries
			(sequence, timestamp_ns, session_id, kind, section_index, scenario_index, question_id, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, ts.UTC().UnixNano(), data.SessionID, data.Kind,
		data.SectionIndex, data.ScenarioIndex, data.QuestionID, data.Payload,
	)
	if err != nil {
		return fmt.Errorf("save journal entry: %w", err)
	}
	return nil
}

func (r *entryRepo) Entries(ctx context.Context, sessionID string) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sequence, timestamp_ns, session_id, kind, section_index, scenario_index, question_id, payload
		FROM journal_entries
		WHERE session_id = ?
		ORDER BY sequence ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query journal entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ns int64
		if err := rows.Scan(&e.ID, &e.Sequence, &ns, &e.SessionID, &e.Kind,
			&e.SectionIndex, &e.ScenarioIndex, &e.QuestionID, &e.Payload); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		e.Timestamp = time.Unix(0, ns).UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal entries: %w", err)
	}
	return entries, nil
}

func (r *entryRepo) Sessions(ctx context.Context, opts QueryOpts) ([]SessionSummary, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT session_id,
			COUNT(*),
			MIN(timestamp_ns),
			MAX(timestamp_ns),
			MAX(CASE WHEN kind = ? THEN 1 ELSE 0 END)
		FROM journal_entries
		GROUP BY session_id
		ORDER BY MAX(sequence) DESC
		LIMIT ?`,
		KindComplete, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var s SessionSummary
		var first, last int64
		var completed int
		if err := rows.Scan(&s.SessionID, &s.Entries, &first, &last, &completed); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.FirstAt = time.Unix(0, first).UTC()
		s.LastAt = time.Unix(0, last).UTC()
		s.Completed = completed == 1
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}
