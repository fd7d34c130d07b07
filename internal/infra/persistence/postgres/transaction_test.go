package postgres

import (
	"context"
	"testing"

	"catermatch/internal/domain/repository"
	"catermatch/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)
	requestID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "matches"`).WithArgs(requestID).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE "event_requests" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		if err := f.NewMatchRepository().DeleteMatchesByRequest(context.Background(), requestID); err != nil {
			return err
		}

		return f.NewEventRequestRepository().MarkRequestMatched(context.Background(), requestID, "Pretoria")
	})

	require.NoError(t, err)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return boom
	})

	assert.True(t, errors.Is(err, boom))
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("unexpected")
		})
	})
}
