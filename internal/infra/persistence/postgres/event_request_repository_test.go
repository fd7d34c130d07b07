package postgres

import (
	"context"
	"testing"
	"time"

	"catermatch/internal/domain/entity"
	"catermatch/internal/domain/repository"
	"catermatch/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventRequestColumns = []string{
	"id", "customer_id", "event_type", "event_date", "event_time", "guest_count", "city",
	"normalized_city", "cuisine_preferences", "dietary_requirements", "service_style",
	"budget_total", "budget_per_person", "budget_max", "status", "created_at", "updated_at",
}

func TestEventRequestRepository_FindRequestByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRequestRepository(db)
	ctx := context.Background()
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "event_requests" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(eventRequestColumns).AddRow(
			id, uuid.New(), "wedding", now, "16:00", 120, "Sandton, Johannesburg",
			"", []byte(`["Indian","Italian"]`), []byte(`["halal"]`), "buffet",
			nil, 350.0, nil, "pending", now, now,
		))

	got, err := repo.FindRequestByID(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, 120, got.GuestCount)
	assert.Equal(t, []string{"Indian", "Italian"}, got.CuisinePreferences)
	assert.Equal(t, []string{"halal"}, got.DietaryRequirements)
	assert.Nil(t, got.BudgetTotal)
	require.NotNil(t, got.BudgetPerPerson)
	assert.InDelta(t, 350.0, *got.BudgetPerPerson, 1e-9)
	assert.Equal(t, entity.RequestStatusPending, got.Status)
	assert.InDelta(t, 42000.0, got.TotalBudget(), 1e-9)
}

func TestEventRequestRepository_FindRequestByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRequestRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "event_requests" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(eventRequestColumns))

	got, err := repo.FindRequestByID(context.Background(), uuid.New())

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, repository.ErrEventRequestNotFound))
}

func TestEventRequestRepository_UpdateRequestStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRequestRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "event_requests" SET "status"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs("matching", sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateRequestStatus(context.Background(), id, entity.RequestStatusMatching))
}

func TestEventRequestRepository_UpdateRequestStatus_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRequestRepository(db)

	mock.ExpectExec(`UPDATE "event_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateRequestStatus(context.Background(), uuid.New(), entity.RequestStatusMatching)

	assert.True(t, errors.Is(err, repository.ErrEventRequestNotFound))
}

func TestEventRequestRepository_MarkRequestMatched(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRequestRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "event_requests" SET "normalized_city"=\$1,"status"=\$2,"updated_at"=\$3 WHERE id = \$4`).
		WithArgs("Johannesburg", "matched", sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkRequestMatched(context.Background(), id, "Johannesburg"))
}

func TestEventRequestRepository_UpdateFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRequestRepository(db)

	mock.ExpectExec(`UPDATE "event_requests" SET`).
		WillReturnError(errors.New("connection reset"))

	err := repo.MarkRequestMatched(context.Background(), uuid.New(), "Durban")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}
