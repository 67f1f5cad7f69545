package memory

import (
	"context"
	"sort"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

type roleGrantRepository struct {
	v view
}

func (repo *roleGrantRepository) HasRole(_ context.Context, userID uuid.UUID, role entity.Role) (bool, error) {
	var found bool
	repo.v.read(func(d *dataset) {
		_, found = d.grants[grantKey{userID: userID, role: role}]
	})

	return found, nil
}

func (repo *roleGrantRepository) ListByUserID(_ context.Context, userID uuid.UUID) ([]*entity.RoleGrant, error) {
	var grants []*entity.RoleGrant
	repo.v.read(func(d *dataset) {
		for key, grant := range d.grants {
			if key.userID == userID {
				g := grant
				grants = append(grants, &g)
			}
		}
	})
	sort.Slice(grants, func(i, j int) bool {
		return grants[i].GrantedAt.Before(grants[j].GrantedAt)
	})

	return grants, nil
}

func (repo *roleGrantRepository) Grant(_ context.Context, grant *entity.RoleGrant) error {
	return repo.v.write(func(d *dataset) error {
		key := grantKey{userID: grant.UserID, role: grant.Role}
		if _, exists := d.grants[key]; !exists {
			d.grants[key] = *grant
		}

		return nil
	})
}
