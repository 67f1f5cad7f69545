package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// onboardingColumns are the columns an onboarding upsert may overwrite on an existing row.
//
//nolint:gochecknoglobals
var onboardingColumns = []string{
	"role",
	"roles",
	"onboarding_status",
	"preferred_track",
	"display_name",
	"company_name",
	"updated_at",
}

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByUserID retrieves a profile and validates it before it leaves the persistence layer.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user id")
	}

	return toProfileDomain(&profileM)
}

// UpsertOnboarding inserts the profile or overwrites its onboarding-owned columns.
func (repo *profileRepository) UpsertOnboarding(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(onboardingColumns),
		}).
		Create(profileM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrProfileUpdateFailed.WrapMessage("profile violates table constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// UpdateTier changes the subscription tier of an existing profile.
func (repo *profileRepository) UpdateTier(ctx context.Context, userID uuid.UUID, tier entity.Tier) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"tier":       tier.String(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile tier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

type groupCount struct {
	Key   string
	Count int64
}

// CountByRole counts profiles by primary role.
func (repo *profileRepository) CountByRole(ctx context.Context, track entity.Track) (map[entity.Role]int64, error) {
	var rows []groupCount
	err := repo.byTrack(ctx, track).
		Select("role AS key, COUNT(*) AS count").
		Where("role IS NOT NULL").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count profiles by role")
	}

	counts := make(map[entity.Role]int64, len(rows))
	for _, row := range rows {
		if role, ok := entity.ParseRole(row.Key); ok {
			counts[role] = row.Count
		}
	}

	return counts, nil
}

// CountByTier counts profiles by subscription tier.
func (repo *profileRepository) CountByTier(ctx context.Context, track entity.Track) (map[entity.Tier]int64, error) {
	var rows []groupCount
	err := repo.byTrack(ctx, track).
		Select("tier AS key, COUNT(*) AS count").
		Group("tier").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count profiles by tier")
	}

	counts := make(map[entity.Tier]int64, len(rows))
	for _, row := range rows {
		if tier := entity.Tier(row.Key); tier.IsValid() {
			counts[tier] = row.Count
		}
	}

	return counts, nil
}

func (repo *profileRepository) byTrack(ctx context.Context, track entity.Track) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.ProfileModel{})
	if track != entity.TrackAll && track.IsValid() {
		query = query.Where("preferred_track = ?", track.String())
	}

	return query
}

// --- Mapper Functions ---

// toProfileDomain validates a stored row and converts it to a fully typed Profile.
// Unknown entries in the roles list are dropped; any other unknown enum value makes the row invalid.
func toProfileDomain(data *model.ProfileModel) (*entity.Profile, error) {
	if data == nil {
		return nil, repository.ErrProfileNotFound
	}

	profile := &entity.Profile{
		UserID:           data.UserID,
		Roles:            entity.RolesFromStrings(data.Roles),
		OnboardingStatus: entity.OnboardingStatus(data.OnboardingStatus),
		Tier:             entity.Tier(data.Tier),
		DisplayName:      data.DisplayName,
		CompanyName:      data.CompanyName,
		IsVerified:       data.IsVerified,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	if data.Role != nil {
		role, ok := entity.ParseRole(*data.Role)
		if !ok {
			return nil, errors.Wrapf(repository.ErrInvalidProfile, "unknown role %q", *data.Role)
		}
		profile.Role = &role
	}

	if data.PreferredTrack != nil {
		track := entity.Track(*data.PreferredTrack)
		if !track.IsValid() {
			return nil, errors.Wrapf(repository.ErrInvalidProfile, "unknown track %q", *data.PreferredTrack)
		}
		profile.PreferredTrack = &track
	}

	if !profile.OnboardingStatus.IsValid() {
		return nil, errors.Wrapf(repository.ErrInvalidProfile, "unknown onboarding status %q", data.OnboardingStatus)
	}

	if !profile.Tier.IsValid() {
		return nil, errors.Wrapf(repository.ErrInvalidProfile, "unknown tier %q", data.Tier)
	}

	return profile, nil
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	profileM := &model.ProfileModel{
		UserID:           data.UserID,
		Roles:            data.Roles.ToStrings(),
		OnboardingStatus: string(data.OnboardingStatus),
		Tier:             data.Tier.String(),
		DisplayName:      data.DisplayName,
		CompanyName:      data.CompanyName,
		IsVerified:       data.IsVerified,
	}

	if data.Role != nil {
		role := data.Role.String()
		profileM.Role = &role
	}

	if data.PreferredTrack != nil {
		track := data.PreferredTrack.String()
		profileM.PreferredTrack = &track
	}

	return profileM
}
