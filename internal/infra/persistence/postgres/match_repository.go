package postgres

import (
	"context"

	"catermatch/internal/domain/entity"
	domainerrors "catermatch/internal/domain/errors"
	"catermatch/internal/domain/repository"
	"catermatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// matchInsertBatchSize keeps one run's matches in a single INSERT.
const matchInsertBatchSize = 100

// matchRepository implements the repository.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// CreateMatches inserts all matches in a single batch.
func (repo *matchRepository) CreateMatches(ctx context.Context, matches []*entity.Match) error {
	if len(matches) == 0 {
		return nil
	}

	matchModels := make([]*model.MatchModel, 0, len(matches))
	for _, m := range matches {
		matchModels = append(matchModels, fromMatchDomain(m))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(matchModels, matchInsertBatchSize).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrMatchPersistenceFailed.WrapMessage("duplicate rank or caterer for request")
		}

		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMatchPersistenceFailed.WrapMessage("invalid request or caterer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create matches")
	}

	for i, m := range matches {
		m.CreatedAt = matchModels[i].CreatedAt
	}

	return nil
}

// DeleteMatchesByRequest removes every match of a request.
func (repo *matchRepository) DeleteMatchesByRequest(ctx context.Context, requestID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Delete(&model.MatchModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete matches")
	}

	return nil
}

// FindMatchesByRequest retrieves the matches of a request ordered by rank.
func (repo *matchRepository) FindMatchesByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.Match, error) {
	var matchModels []*model.MatchModel

	if err := repo.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("rank ASC").
		Find(&matchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find matches by request")
	}

	matches := make([]*entity.Match, 0, len(matchModels))
	for _, matchM := range matchModels {
		matches = append(matches, toMatchDomain(matchM))
	}

	return matches, nil
}

func fromMatchDomain(data *entity.Match) *model.MatchModel {
	if data == nil {
		return nil
	}

	reasons := make(datatypes.JSONMap, len(data.Reasons))
	for k, v := range data.Reasons {
		reasons[k] = v
	}

	return &model.MatchModel{
		ID:                 data.ID,
		RequestID:          data.RequestID,
		CatererID:          data.CatererID,
		SemanticScore:      data.SemanticScore,
		DistanceScore:      data.DistanceScore,
		CompatibilityScore: data.CompatibilityScore,
		OverallScore:       data.OverallScore,
		DistanceKm:         data.DistanceKm,
		Rank:               data.Rank,
		Reasons:            reasons,
		Status:             string(data.Status),
		CreatedAt:          data.CreatedAt,
	}
}

func toMatchDomain(data *model.MatchModel) *entity.Match {
	if data == nil {
		return nil
	}

	reasons := make(map[string]string, len(data.Reasons))
	for k, v := range data.Reasons {
		if s, ok := v.(string); ok {
			reasons[k] = s
		}
	}

	return &entity.Match{
		ID:                 data.ID,
		RequestID:          data.RequestID,
		CatererID:          data.CatererID,
		SemanticScore:      data.SemanticScore,
		DistanceScore:      data.DistanceScore,
		CompatibilityScore: data.CompatibilityScore,
		OverallScore:       data.OverallScore,
		DistanceKm:         data.DistanceKm,
		Rank:               data.Rank,
		Reasons:            reasons,
		Status:             entity.MatchStatus(data.Status),
		CreatedAt:          data.CreatedAt,
	}
}
