// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"catermatch/internal/domain/entity"
	domainerrors "catermatch/internal/domain/errors"
	"catermatch/internal/domain/repository"
	"catermatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// eventRequestRepository implements the repository.EventRequestRepository interface.
type eventRequestRepository struct {
	db *gorm.DB
}

// NewEventRequestRepository is the constructor for eventRequestRepository.
func NewEventRequestRepository(db *gorm.DB) repository.EventRequestRepository {
	return &eventRequestRepository{
		db: db,
	}
}

// FindRequestByID retrieves an event request by its unique ID.
// It reads from the primary since the status gates a write that follows.
func (repo *eventRequestRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.EventRequest, error) {
	var requestM model.EventRequestModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find event request by ID")
	}

	return toEventRequestDomain(&requestM), nil
}

// UpdateRequestStatus sets the status of an event request.
func (repo *eventRequestRepository) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error {
	return repo.update(ctx, id, map[string]any{
		"status":     status.String(),
		"updated_at": time.Now(),
	})
}

// MarkRequestMatched stores the resolved city and sets the status to matched.
func (repo *eventRequestRepository) MarkRequestMatched(ctx context.Context, id uuid.UUID, normalizedCity string) error {
	return repo.update(ctx, id, map[string]any{
		"status":          entity.RequestStatusMatched.String(),
		"normalized_city": normalizedCity,
		"updated_at":      time.Now(),
	})
}

func (repo *eventRequestRepository) update(ctx context.Context, id uuid.UUID, values map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventRequestModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update event request")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventRequestNotFound
	}

	return nil
}

func toEventRequestDomain(data *model.EventRequestModel) *entity.EventRequest {
	if data == nil {
		return nil
	}

	return &entity.EventRequest{
		ID:                  data.ID,
		CustomerID:          data.CustomerID,
		EventType:           data.EventType,
		EventDate:           data.EventDate,
		EventTime:           data.EventTime,
		GuestCount:          data.GuestCount,
		City:                data.City,
		NormalizedCity:      data.NormalizedCity,
		CuisinePreferences:  []string(data.CuisinePreferences),
		DietaryRequirements: []string(data.DietaryRequirements),
		ServiceStyle:        data.ServiceStyle,
		BudgetTotal:         data.BudgetTotal,
		BudgetPerPerson:     data.BudgetPerPerson,
		BudgetMax:           data.BudgetMax,
		Status:              entity.RequestStatus(data.Status),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
