package postgres

import (
	"context"
	"testing"
	"time"

	"catermatch/internal/domain/entity"
	"catermatch/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationEvalRepository_RecordEval(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationEvalRepository(db)

	mock.ExpectQuery(`INSERT INTO "location_evals" \("input","city","province","confidence","source","created_at"\)`).
		WithArgs("jozi", "Johannesburg", "Gauteng", "high", "alias", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	err := repo.RecordEval(context.Background(), &entity.LocationEval{
		Input:      "jozi",
		City:       "Johannesburg",
		Province:   "Gauteng",
		Confidence: entity.ConfidenceHigh,
		Source:     entity.LocationSourceAlias,
		CreatedAt:  time.Now(),
	})

	require.NoError(t, err)
}

func TestLocationEvalRepository_RecordEval_Failure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationEvalRepository(db)

	mock.ExpectQuery(`INSERT INTO "location_evals"`).
		WillReturnError(errors.New("disk full"))

	err := repo.RecordEval(context.Background(), &entity.LocationEval{Input: "x", City: "y"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
