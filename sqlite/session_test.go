package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/rjoshi/ecourts"
	"github.com/rjoshi/ecourts/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func causeListSession(startedAt time.Time) *ecourts.Session {
	return &ecourts.Session{
		Kind:        ecourts.QueryCauseList,
		ListDate:    "21-08-2026",
		Source:      ecourts.SourceFrame,
		Outcome:     ecourts.OutcomeCaptured,
		Records:     12,
		Dropped:     1,
		ContentHash: "9c5f1a2b3d4e5f60",
		DataPath:    "cause_lists/causelist_21_08_2026_10_30_00.json",
		SummaryPath: "cause_lists/causelist_21_08_2026_10_30_00.txt",
		StartedAt:   startedAt,
		CompletedAt: startedAt.Add(30 * time.Second),
	}
}

func TestSessionService_CreateSession(t *testing.T) {
	t.Parallel()

	t.Run("creates session with generated ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		session := causeListSession(time.Date(2026, 8, 21, 10, 30, 0, 0, time.UTC))

		err := svc.CreateSession(ctx, session)
		require.NoError(t, err)

		assert.NotEmpty(t, session.ID, "ID should be generated")
	})

	t.Run("preserves measured timestamps", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		startedAt := time.Date(2026, 8, 21, 10, 30, 0, 0, time.UTC)
		session := causeListSession(startedAt)
		require.NoError(t, svc.CreateSession(ctx, session))

		found, err := svc.FindSessionByID(ctx, session.ID)
		require.NoError(t, err)
		assert.True(t, found.StartedAt.Equal(startedAt))
		assert.True(t, found.CompletedAt.Equal(startedAt.Add(30*time.Second)))
	})

	t.Run("fills zero timestamps with the wall clock", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		session := &ecourts.Session{
			Kind:    ecourts.QueryCaseStatus,
			CNR:     "DLND010012342024",
			Outcome: ecourts.OutcomeNoResults,
		}
		require.NoError(t, svc.CreateSession(ctx, session))

		assert.False(t, session.StartedAt.IsZero())
		assert.False(t, session.CompletedAt.IsZero())
	})

	t.Run("returns error for invalid session", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		session := &ecourts.Session{Kind: "unknown", Outcome: ecourts.OutcomeCaptured}

		err := svc.CreateSession(ctx, session)
		require.Error(t, err)
		assert.Equal(t, ecourts.EINVALID, ecourts.ErrorCode(err))
	})
}

func TestSessionService_FindSessionByID(t *testing.T) {
	t.Parallel()

	t.Run("returns session when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		session := causeListSession(time.Date(2026, 8, 21, 10, 30, 0, 0, time.UTC))
		require.NoError(t, svc.CreateSession(ctx, session))

		found, err := svc.FindSessionByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, session.ID, found.ID)
		assert.Equal(t, ecourts.QueryCauseList, found.Kind)
		assert.Equal(t, "21-08-2026", found.ListDate)
		assert.Equal(t, ecourts.SourceFrame, found.Source)
		assert.Equal(t, ecourts.OutcomeCaptured, found.Outcome)
		assert.Equal(t, 12, found.Records)
		assert.Equal(t, 1, found.Dropped)
		assert.Equal(t, session.ContentHash, found.ContentHash)
		assert.Equal(t, session.DataPath, found.DataPath)
		assert.Equal(t, session.SummaryPath, found.SummaryPath)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		_, err := svc.FindSessionByID(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, ecourts.ENOTFOUND, ecourts.ErrorCode(err))
	})
}

func TestSessionService_FindSessions(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc *sqlite.SessionService) []*ecourts.Session {
		t.Helper()
		ctx := context.Background()
		base := time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC)

		sessions := []*ecourts.Session{
			causeListSession(base),
			{
				Kind:      ecourts.QueryCaseStatus,
				CNR:       "DLND010012342024",
				Source:    ecourts.SourceInline,
				Outcome:   ecourts.OutcomeCaptured,
				Records:   1,
				StartedAt: base.Add(time.Minute),
			},
			{
				Kind:      ecourts.QueryCaseStatus,
				CNR:       "DLND010056782024",
				Source:    ecourts.SourceNone,
				Outcome:   ecourts.OutcomeNoResults,
				StartedAt: base.Add(2 * time.Minute),
			},
		}
		for _, s := range sessions {
			require.NoError(t, svc.CreateSession(ctx, s))
		}
		return sessions
	}

	t.Run("returns all sessions newest first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		seeded := seed(t, svc)

		found, err := svc.FindSessions(context.Background(), ecourts.SessionFilter{})
		require.NoError(t, err)
		require.Len(t, found, 3)
		assert.Equal(t, seeded[2].ID, found[0].ID)
		assert.Equal(t, seeded[1].ID, found[1].ID)
		assert.Equal(t, seeded[0].ID, found[2].ID)
	})

	t.Run("filters by kind", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		seed(t, svc)

		kind := ecourts.QueryCaseStatus
		found, err := svc.FindSessions(context.Background(), ecourts.SessionFilter{Kind: &kind})
		require.NoError(t, err)
		require.Len(t, found, 2)
		for _, s := range found {
			assert.Equal(t, ecourts.QueryCaseStatus, s.Kind)
		}
	})

	t.Run("filters by outcome", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		seed(t, svc)

		outcome := ecourts.OutcomeNoResults
		found, err := svc.FindSessions(context.Background(), ecourts.SessionFilter{Outcome: &outcome})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "DLND010056782024", found[0].CNR)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		seeded := seed(t, svc)

		found, err := svc.FindSessions(context.Background(), ecourts.SessionFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, seeded[1].ID, found[0].ID)
	})

	t.Run("returns empty result when nothing matches", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)

		outcome := ecourts.OutcomeFailed
		found, err := svc.FindSessions(context.Background(), ecourts.SessionFilter{Outcome: &outcome})
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestSessionService_DeleteSession(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing session", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		session := causeListSession(time.Date(2026, 8, 21, 10, 30, 0, 0, time.UTC))
		require.NoError(t, svc.CreateSession(ctx, session))

		require.NoError(t, svc.DeleteSession(ctx, session.ID))

		_, err := svc.FindSessionByID(ctx, session.ID)
		assert.Equal(t, ecourts.ENOTFOUND, ecourts.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing session", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)

		err := svc.DeleteSession(context.Background(), "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, ecourts.ENOTFOUND, ecourts.ErrorCode(err))
	})
}
