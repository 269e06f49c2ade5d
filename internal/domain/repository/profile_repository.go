package repository

import (
	"context"

	"foodiecircle/internal/domain/entity"
)

// ProfileRepository reads user profiles for people search and follow-by-username.
type ProfileRepository interface {
	ScanProfiles(ctx context.Context, pred Predicate, limit int) ([]*entity.Profile, error)
	CreateProfile(ctx context.Context, profile *entity.Profile) error
}
