package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rjoshi/ecourts"
)

// Compile-time interface verification.
var _ ecourts.SessionService = (*SessionService)(nil)

// SessionService implements ecourts.SessionService using SQLite.
type SessionService struct {
	db *DB
}

// NewSessionService creates a new SessionService.
func NewSessionService(db *DB) *SessionService {
	return &SessionService{db: db}
}

// CreateSession records a completed session. The capture measures its own
// start and completion times; only zero timestamps fall back to the wall
// clock.
func (s *SessionService) CreateSession(ctx context.Context, session *ecourts.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	session.ID = uuid.New().String()
	now := time.Now().UTC()
	if session.StartedAt.IsZero() {
		session.StartedAt = now
	}
	if session.CompletedAt.IsZero() {
		session.CompletedAt = now
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, kind, cnr, list_date, source, outcome, records, dropped,
			content_hash, data_path, summary_path, started_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, session.ID, string(session.Kind), session.CNR, session.ListDate, string(session.Source),
		session.Outcome, session.Records, session.Dropped, session.ContentHash,
		session.DataPath, session.SummaryPath,
		session.StartedAt.UTC().Format(time.RFC3339), session.CompletedAt.UTC().Format(time.RFC3339))

	return err
}

// FindSessionByID retrieves a session by ID.
func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*ecourts.Session, error) {
	var session ecourts.Session
	var kind, source, startedAt, completedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, kind, cnr, list_date, source, outcome, records, dropped,
			content_hash, data_path, summary_path, started_at, completed_at
		FROM sessions
		WHERE id = ?
	`, id).Scan(&session.ID, &kind, &session.CNR, &session.ListDate, &source,
		&session.Outcome, &session.Records, &session.Dropped, &session.ContentHash,
		&session.DataPath, &session.SummaryPath, &startedAt, &completedAt)

	if err == sql.ErrNoRows {
		return nil, ecourts.Errorf(ecourts.ENOTFOUND, "session not found")
	}
	if err != nil {
		return nil, err
	}

	session.Kind = ecourts.QueryKind(kind)
	session.Source = ecourts.ResultSource(source)
	if session.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if session.CompletedAt, err = parseRFC3339(completedAt, "completed_at"); err != nil {
		return nil, err
	}

	return &session, nil
}

// FindSessions retrieves sessions matching the filter, newest first.
func (s *SessionService) FindSessions(ctx context.Context, filter ecourts.SessionFilter) ([]*ecourts.Session, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, kind, cnr, list_date, source, outcome, records, dropped,
		content_hash, data_path, summary_path, started_at, completed_at
		FROM sessions WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, string(*filter.Kind))
	}
	if filter.Outcome != nil {
		query.WriteString(" AND outcome = ?")
		args = append(args, *filter.Outcome)
	}

	query.WriteString(" ORDER BY started_at DESC, id DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*ecourts.Session
	for rows.Next() {
		var session ecourts.Session
		var kind, source, startedAt, completedAt string

		if err := rows.Scan(&session.ID, &kind, &session.CNR, &session.ListDate, &source,
			&session.Outcome, &session.Records, &session.Dropped, &session.ContentHash,
			&session.DataPath, &session.SummaryPath, &startedAt, &completedAt); err != nil {
			return nil, err
		}

		session.Kind = ecourts.QueryKind(kind)
		session.Source = ecourts.ResultSource(source)
		if session.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if session.CompletedAt, err = parseRFC3339(completedAt, "completed_at"); err != nil {
			return nil, err
		}

		sessions = append(sessions, &session)
	}

	return sessions, rows.Err()
}

// DeleteSession permanently removes a session.
func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ecourts.Errorf(ecourts.ENOTFOUND, "session not found")
	}

	return nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp column.
func parseRFC3339(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses if the values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
