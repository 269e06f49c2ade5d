package postgres

import (
	"context"

	"foodiecircle/internal/domain/entity"
	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/infra/persistence/model"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tastePreferenceRepository implements the repository.TastePreferenceRepository interface.
type tastePreferenceRepository struct {
	db *gorm.DB
}

// NewTastePreferenceRepository is the constructor for tastePreferenceRepository.
func NewTastePreferenceRepository(db *gorm.DB) repository.TastePreferenceRepository {
	return &tastePreferenceRepository{
		db: db,
	}
}

// ScanTastePreferences returns preferences matching pred.
func (repo *tastePreferenceRepository) ScanTastePreferences(ctx context.Context, pred repository.Predicate, limit int) ([]*entity.TastePreference, error) {
	query, err := scanQuery(repo.db.WithContext(ctx).Model(&model.TastePreferenceModel{}), tastePreferenceColumns, preferenceOrder, pred, limit)
	if err != nil {
		return nil, storeError("scan", collectionTastePreferences, err)
	}

	var prefModels []*model.TastePreferenceModel
	if err := query.Find(&prefModels).Error; err != nil {
		return nil, storeError("scan", collectionTastePreferences, err)
	}

	prefs := make([]*entity.TastePreference, 0, len(prefModels))
	for _, prefM := range prefModels {
		prefs = append(prefs, &entity.TastePreference{
			UserID:           prefM.UserID,
			FavoriteCuisines: []string(prefM.FavoriteCuisine),
			UpdatedAt:        prefM.UpdatedAt,
		})
	}

	return prefs, nil
}

// UpsertTastePreference replaces the favourite cuisines of pref.UserID.
func (repo *tastePreferenceRepository) UpsertTastePreference(ctx context.Context, pref *entity.TastePreference) error {
	prefM := &model.TastePreferenceModel{
		UserID:          pref.UserID,
		FavoriteCuisine: pq.StringArray(pref.FavoriteCuisines),
		UpdatedAt:       pref.UpdatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: repository.FieldUserID}},
			DoUpdates: clause.AssignmentColumns([]string{repository.FieldFavoriteCuisine, "updated_at"}),
		}).
		Create(prefM).Error; err != nil {
		return storeError("upsert", collectionTastePreferences, err)
	}

	pref.UpdatedAt = prefM.UpdatedAt

	return nil
}

// DistinctCuisines returns every cuisine tag in use, sorted.
func (repo *tastePreferenceRepository) DistinctCuisines(ctx context.Context) ([]string, error) {
	var cuisines []string
	if err := repo.db.WithContext(ctx).
		Raw("SELECT DISTINCT tag FROM taste_preferences, unnest(favorite_cuisine) AS tag WHERE tag <> '' ORDER BY tag").
		Scan(&cuisines).Error; err != nil {
		return nil, storeError("distinct", collectionTastePreferences, err)
	}

	return cuisines, nil
}
