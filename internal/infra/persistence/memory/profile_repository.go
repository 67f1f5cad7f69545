package memory

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
)

type profileRepository struct {
	v view
}

func (repo *profileRepository) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var (
		profile entity.Profile
		found   bool
	)
	repo.v.read(func(d *dataset) {
		profile, found = d.profiles[userID]
		if found {
			profile = cloneProfile(profile)
		}
	})
	if !found {
		return nil, repository.ErrProfileNotFound
	}

	return &profile, nil
}

func (repo *profileRepository) UpsertOnboarding(_ context.Context, profile *entity.Profile) error {
	now := time.Now()

	return repo.v.write(func(d *dataset) error {
		next := cloneProfile(*profile)
		if existing, ok := d.profiles[profile.UserID]; ok {
			next.Tier = existing.Tier
			next.IsVerified = existing.IsVerified
			next.CreatedAt = existing.CreatedAt
		} else {
			next.CreatedAt = now
		}
		next.UpdatedAt = now
		d.profiles[profile.UserID] = next

		profile.UpdatedAt = now

		return nil
	})
}

func (repo *profileRepository) UpdateTier(_ context.Context, userID uuid.UUID, tier entity.Tier) error {
	return repo.v.write(func(d *dataset) error {
		profile, ok := d.profiles[userID]
		if !ok {
			return repository.ErrProfileNotFound
		}
		profile.Tier = tier
		profile.UpdatedAt = time.Now()
		d.profiles[userID] = profile

		return nil
	})
}

func (repo *profileRepository) CountByRole(_ context.Context, track entity.Track) (map[entity.Role]int64, error) {
	counts := make(map[entity.Role]int64)
	repo.v.read(func(d *dataset) {
		for _, p := range d.profiles {
			if p.Role != nil && matchesProfileTrack(p, track) {
				counts[*p.Role]++
			}
		}
	})

	return counts, nil
}

func (repo *profileRepository) CountByTier(_ context.Context, track entity.Track) (map[entity.Tier]int64, error) {
	counts := make(map[entity.Tier]int64)
	repo.v.read(func(d *dataset) {
		for _, p := range d.profiles {
			if matchesProfileTrack(p, track) {
				counts[p.Tier]++
			}
		}
	})

	return counts, nil
}

func matchesProfileTrack(p entity.Profile, track entity.Track) bool {
	if track == entity.TrackAll || !track.IsValid() {
		return true
	}

	return p.PreferredTrack != nil && *p.PreferredTrack == track
}
