package postgres

import (
	"context"
	"testing"
	"time"

	"catermatch/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRepository_CreateMatches_SingleBatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMatchRepository(db)
	requestID := uuid.New()

	matches := []*entity.Match{
		{ID: uuid.New(), RequestID: requestID, CatererID: uuid.New(), OverallScore: 0.9, Rank: 1,
			Reasons: map[string]string{"tier": "pro tier covers a pro budget"}, Status: entity.MatchStatusPending},
		{ID: uuid.New(), RequestID: requestID, CatererID: uuid.New(), OverallScore: 0.7, Rank: 2,
			Reasons: map[string]string{}, Status: entity.MatchStatusPending},
	}

	mock.ExpectExec(`INSERT INTO "matches" .* VALUES \(.+\),\(.+\)`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.CreateMatches(context.Background(), matches))
}

func TestMatchRepository_CreateMatches_Empty(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewMatchRepository(db)

	require.NoError(t, repo.CreateMatches(context.Background(), nil))
}

func TestMatchRepository_DeleteMatchesByRequest(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMatchRepository(db)
	requestID := uuid.New()

	mock.ExpectExec(`DELETE FROM "matches" WHERE request_id = \$1`).
		WithArgs(requestID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeleteMatchesByRequest(context.Background(), requestID))
}

func TestMatchRepository_FindMatchesByRequest(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMatchRepository(db)
	requestID := uuid.New()
	now := time.Now()

	columns := []string{
		"id", "request_id", "caterer_id", "semantic_score", "distance_score", "compatibility_score",
		"overall_score", "distance_km", "rank", "reasons", "status", "created_at",
	}

	mock.ExpectQuery(`SELECT \* FROM "matches" WHERE request_id = \$1 ORDER BY rank ASC`).
		WithArgs(requestID).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.New(), requestID, uuid.New(), 0.3, 0.1, 0.55, 0.95, 2.4, 1,
				[]byte(`{"cuisine":"offers indian"}`), "pending", now).
			AddRow(uuid.New(), requestID, uuid.New(), 0.15, 0.0, 0.55, 0.7, 50, 2,
				[]byte(`{}`), "viewed", now))

	got, err := repo.FindMatchesByRequest(context.Background(), requestID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, "offers indian", got[0].Reasons["cuisine"])
	assert.Equal(t, entity.MatchStatusViewed, got[1].Status)
}
