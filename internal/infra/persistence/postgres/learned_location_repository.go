package postgres

import (
	"context"
	"time"

	"catermatch/internal/domain/entity"
	domainerrors "catermatch/internal/domain/errors"
	"catermatch/internal/domain/repository"
	"catermatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const touchLearnedLocationSQL = `UPDATE learned_locations
SET use_count = use_count + 1, last_used = ?
WHERE alias = ?
RETURNING alias, city, province, latitude, longitude, use_count, last_used, added_by, created_at`

// learnedLocationRepository implements the repository.LearnedLocationRepository interface.
type learnedLocationRepository struct {
	db *gorm.DB
}

// NewLearnedLocationRepository is the constructor for learnedLocationRepository.
func NewLearnedLocationRepository(db *gorm.DB) repository.LearnedLocationRepository {
	return &learnedLocationRepository{
		db: db,
	}
}

// TouchLearnedLocation increments the use count of an alias and returns the updated row
// in a single UPDATE ... RETURNING statement.
func (repo *learnedLocationRepository) TouchLearnedLocation(ctx context.Context, alias string) (*entity.LearnedLocation, error) {
	var locationM model.LearnedLocationModel

	result := repo.db.WithContext(ctx).
		Raw(touchLearnedLocationSQL, time.Now(), alias).
		Scan(&locationM)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to touch learned location")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrLearnedLocationNotFound
	}

	return toLearnedLocationDomain(&locationM), nil
}

// UpsertLearnedLocation inserts the alias or increments its use count with
// INSERT ... ON CONFLICT (alias) DO UPDATE. Overriding provenances also replace the place.
func (repo *learnedLocationRepository) UpsertLearnedLocation(ctx context.Context, location *entity.LearnedLocation) (*entity.LearnedLocation, error) {
	now := time.Now()
	locationM := fromLearnedLocationDomain(location)
	locationM.UseCount = 1
	locationM.LastUsed = now
	locationM.CreatedAt = now

	assignments := map[string]any{
		"use_count": gorm.Expr("learned_locations.use_count + 1"),
		"last_used": gorm.Expr("EXCLUDED.last_used"),
	}

	if location.AddedBy.Overrides() {
		assignments["city"] = gorm.Expr("EXCLUDED.city")
		assignments["province"] = gorm.Expr("EXCLUDED.province")
		assignments["latitude"] = gorm.Expr("EXCLUDED.latitude")
		assignments["longitude"] = gorm.Expr("EXCLUDED.longitude")
		assignments["added_by"] = gorm.Expr("EXCLUDED.added_by")
	}

	if err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "alias"}},
				DoUpdates: clause.Assignments(assignments),
			},
			clause.Returning{},
		).
		Create(locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrInvalidLocation.WrapMessage("missing learned location fields")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert learned location")
	}

	return toLearnedLocationDomain(locationM), nil
}

// ListLearnedLocations returns the most used aliases first.
func (repo *learnedLocationRepository) ListLearnedLocations(ctx context.Context, limit int) ([]*entity.LearnedLocation, error) {
	var locationModels []*model.LearnedLocationModel

	if err := repo.db.WithContext(ctx).
		Order("use_count DESC").
		Order("alias ASC").
		Limit(limit).
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list learned locations")
	}

	locations := make([]*entity.LearnedLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLearnedLocationDomain(locationM))
	}

	return locations, nil
}

func fromLearnedLocationDomain(data *entity.LearnedLocation) *model.LearnedLocationModel {
	if data == nil {
		return nil
	}

	return &model.LearnedLocationModel{
		Alias:     data.Alias,
		City:      data.City,
		Province:  data.Province,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		UseCount:  data.UseCount,
		LastUsed:  data.LastUsed,
		AddedBy:   string(data.AddedBy),
		CreatedAt: data.CreatedAt,
	}
}

func toLearnedLocationDomain(data *model.LearnedLocationModel) *entity.LearnedLocation {
	if data == nil {
		return nil
	}

	return &entity.LearnedLocation{
		Alias:     data.Alias,
		City:      data.City,
		Province:  data.Province,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		UseCount:  data.UseCount,
		LastUsed:  data.LastUsed,
		AddedBy:   entity.AddedBy(data.AddedBy),
		CreatedAt: data.CreatedAt,
	}
}
