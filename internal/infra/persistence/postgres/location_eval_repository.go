package postgres

import (
	"context"

	"catermatch/internal/domain/entity"
	domainerrors "catermatch/internal/domain/errors"
	"catermatch/internal/domain/repository"
	"catermatch/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// locationEvalRepository implements the repository.LocationEvalRepository interface.
type locationEvalRepository struct {
	db *gorm.DB
}

// NewLocationEvalRepository is the constructor for locationEvalRepository.
func NewLocationEvalRepository(db *gorm.DB) repository.LocationEvalRepository {
	return &locationEvalRepository{
		db: db,
	}
}

// RecordEval appends one evaluation record.
func (repo *locationEvalRepository) RecordEval(ctx context.Context, eval *entity.LocationEval) error {
	evalM := &model.LocationEvalModel{
		Input:      eval.Input,
		City:       eval.City,
		Province:   eval.Province,
		Confidence: string(eval.Confidence),
		Source:     string(eval.Source),
		CreatedAt:  eval.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(evalM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record location eval")
	}

	return nil
}
