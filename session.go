package ecourts

import (
	"context"
	"time"
)

// QueryKind identifies which portal query a session ran.
type QueryKind string

// Query kinds.
const (
	QueryCauseList  QueryKind = "causelist"
	QueryCaseStatus QueryKind = "status"
)

// Valid reports whether k is a known query kind.
func (k QueryKind) Valid() bool {
	return k == QueryCauseList || k == QueryCaseStatus
}

// Session outcomes. Every invocation records exactly one, including the
// not-found and failure cases, so silent data loss is never invisible.
const (
	OutcomeCaptured     = "captured"
	OutcomeNoResults    = "no_results"
	OutcomeMarkerAbsent = "marker_absent"
	OutcomeFailed       = "failed"
)

// Session records one user-triggered portal interaction end to end.
type Session struct {
	ID   string    `json:"id"`
	Kind QueryKind `json:"kind"`

	// CNR is set for status queries, ListDate for cause-list queries.
	CNR      string `json:"cnr"`
	ListDate string `json:"listDate"`

	Source  ResultSource `json:"source"`
	Outcome string       `json:"outcome"`

	// Records and Dropped account for every normalized row: retained plus
	// dropped equals rows extracted.
	Records int `json:"records"`
	Dropped int `json:"dropped"`

	// ContentHash fingerprints the captured HTML.
	ContentHash string `json:"contentHash"`

	DataPath    string `json:"dataPath"`
	SummaryPath string `json:"summaryPath"`

	StartedAt   time.Time `json:"startedAt"`
	CompletedAt time.Time `json:"completedAt"`
}

// Validate returns an error if the session contains invalid fields.
func (s *Session) Validate() error {
	if !s.Kind.Valid() {
		return Errorf(EINVALID, "session kind %q invalid", s.Kind)
	}
	if s.Outcome == "" {
		return Errorf(EINVALID, "session outcome required")
	}
	return nil
}

// SessionService represents a service for recording and querying past
// search sessions.
type SessionService interface {
	// CreateSession records a completed session.
	CreateSession(ctx context.Context, session *Session) error

	// FindSessionByID retrieves a session by ID.
	// Returns ENOTFOUND if session does not exist.
	FindSessionByID(ctx context.Context, id string) (*Session, error)

	// FindSessions retrieves sessions matching the filter, newest first.
	FindSessions(ctx context.Context, filter SessionFilter) ([]*Session, error)

	// DeleteSession permanently removes a session.
	// Returns ENOTFOUND if session does not exist.
	DeleteSession(ctx context.Context, id string) error
}

// SessionFilter represents a filter for FindSessions.
type SessionFilter struct {
	ID      *string    `json:"id"`
	Kind    *QueryKind `json:"kind"`
	Outcome *string    `json:"outcome"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
