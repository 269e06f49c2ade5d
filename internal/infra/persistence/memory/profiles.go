package memory

import (
	"context"

	"foodiecircle/internal/domain/entity"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/repository"
)

type profileRepository struct{ s *Store }

var profileFields = fields(
	repository.FieldID, repository.FieldUsername,
)

func profileField(p *entity.Profile, field string) (any, bool, bool) {
	switch field {
	case repository.FieldID:
		return p.ID, true, true
	case repository.FieldUsername:
		return p.Username, true, true
	default:
		return nil, false, false
	}
}

func cloneProfile(p *entity.Profile) *entity.Profile {
	c := *p

	return &c
}

func (r profileRepository) ScanProfiles(ctx context.Context, pred repository.Predicate, limit int) ([]*entity.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if err := r.s.check(ctx, "scan", CollectionProfiles); err != nil {
		return nil, err
	}
	out, err := scan(r.s.profiles, pred, limit, profileFields, profileField, cloneProfile)
	if err != nil {
		return nil, domainerrors.NewStoreError("scan", CollectionProfiles, err)
	}

	return out, nil
}

func (r profileRepository) CreateProfile(ctx context.Context, profile *entity.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.check(ctx, "insert", CollectionProfiles); err != nil {
		return err
	}
	profile.ID = ensureID(profile.ID)
	profile.CreatedAt = r.s.stamp(profile.CreatedAt)
	r.s.profiles = append(r.s.profiles, cloneProfile(profile))

	return nil
}
