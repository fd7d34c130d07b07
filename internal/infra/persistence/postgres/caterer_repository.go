package postgres

import (
	"context"

	"catermatch/internal/domain/entity"
	"catermatch/internal/domain/repository"
	"catermatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catererRepository implements the repository.CatererRepository interface.
type catererRepository struct {
	db *gorm.DB
}

// NewCatererRepository is the constructor for catererRepository.
func NewCatererRepository(db *gorm.DB) repository.CatererRepository {
	return &catererRepository{
		db: db,
	}
}

// FindActiveCaterers retrieves every active caterer. The order is stable so that
// score ties rank the same way on every run.
func (repo *catererRepository) FindActiveCaterers(ctx context.Context) ([]*entity.Caterer, error) {
	var catererModels []*model.CatererModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Order("id ASC").
		Find(&catererModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active caterers")
	}

	caterers := make([]*entity.Caterer, 0, len(catererModels))
	for _, catererM := range catererModels {
		caterers = append(caterers, toCatererDomain(catererM))
	}

	return caterers, nil
}

func toCatererDomain(data *model.CatererModel) *entity.Caterer {
	if data == nil {
		return nil
	}

	caterer := &entity.Caterer{
		ID:                  data.ID,
		BusinessName:        data.BusinessName,
		IsActive:            data.IsActive,
		Tier:                entity.Tier(data.Tier),
		CuisineTypes:        []string(data.CuisineTypes),
		DietaryCapabilities: []string(data.DietaryCapabilities),
		ServiceStyles:       []string(data.ServiceStyles),
		MinGuests:           data.MinGuests,
		MaxGuests:           data.MaxGuests,
		City:                data.City,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}

	if data.Latitude != nil && data.Longitude != nil {
		caterer.Location = &entity.Coordinates{
			Latitude:  *data.Latitude,
			Longitude: *data.Longitude,
		}
	}

	return caterer
}
