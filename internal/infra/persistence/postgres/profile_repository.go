package postgres

import (
	"context"

	"foodiecircle/internal/domain/entity"
	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

func (repo *profileRepository) ScanProfiles(ctx context.Context, pred repository.Predicate, limit int) ([]*entity.Profile, error) {
	query, err := scanQuery(repo.db.WithContext(ctx).Model(&model.ProfileModel{}), profileColumns, insertionOrder, pred, limit)
	if err != nil {
		return nil, storeError("scan", collectionProfiles, err)
	}

	var profileModels []*model.ProfileModel
	if err := query.Find(&profileModels).Error; err != nil {
		return nil, storeError("scan", collectionProfiles, err)
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, &entity.Profile{
			ID:        profileM.ID,
			Username:  profileM.Username,
			AvatarURL: profileM.AvatarURL,
			CreatedAt: profileM.CreatedAt,
		})
	}

	return profiles, nil
}

func (repo *profileRepository) CreateProfile(ctx context.Context, profile *entity.Profile) error {
	profileM := &model.ProfileModel{
		ID:        profile.ID,
		Username:  profile.Username,
		AvatarURL: profile.AvatarURL,
		CreatedAt: profile.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return storeError("insert", collectionProfiles, err)
	}
	profile.CreatedAt = profileM.CreatedAt

	return nil
}
