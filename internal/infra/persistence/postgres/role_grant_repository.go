package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roleGrantRepository implements the domain.RoleGrantRepository interface using GORM.
type roleGrantRepository struct {
	db *gorm.DB
}

// NewRoleGrantRepository is the constructor for roleGrantRepository.
func NewRoleGrantRepository(db *gorm.DB) repository.RoleGrantRepository {
	return &roleGrantRepository{db: db}
}

func (repo *roleGrantRepository) HasRole(ctx context.Context, userID uuid.UUID, role entity.Role) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.RoleGrantModel{}).
		Where("user_id = ? AND role = ?", userID, role.String()).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to look up role grant")
	}

	return count > 0, nil
}

func (repo *roleGrantRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RoleGrant, error) {
	var grantsM []model.RoleGrantModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("granted_at ASC").
		Find(&grantsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list role grants")
	}

	grants := make([]*entity.RoleGrant, 0, len(grantsM))
	for i := range grantsM {
		role, ok := entity.ParseRole(grantsM[i].Role)
		if !ok {
			continue
		}
		grants = append(grants, &entity.RoleGrant{
			UserID:    grantsM[i].UserID,
			Role:      role,
			GrantedBy: grantsM[i].GrantedBy,
			GrantedAt: grantsM[i].GrantedAt,
		})
	}

	return grants, nil
}

// Grant inserts the grant, ignoring an existing (user, role) pair.
func (repo *roleGrantRepository) Grant(ctx context.Context, grant *entity.RoleGrant) error {
	grantM := &model.RoleGrantModel{
		UserID:    grant.UserID,
		Role:      grant.Role.String(),
		GrantedBy: grant.GrantedBy,
		GrantedAt: grant.GrantedAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(grantM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("cannot grant a role to an unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to grant role")
	}

	return nil
}
