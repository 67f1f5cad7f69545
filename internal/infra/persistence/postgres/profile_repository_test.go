package postgres

import (
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestToProfileDomain(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name    string
		row     *model.ProfileModel
		wantErr error
		check   func(t *testing.T, p *entity.Profile)
	}{
		{
			name: "complete row",
			row: &model.ProfileModel{
				UserID:           userID,
				Role:             strPtr("seller"),
				Roles:            []string{"seller", "buyer"},
				OnboardingStatus: "completed",
				PreferredTrack:   strPtr("digital"),
				Tier:             "pro",
				DisplayName:      strPtr("Ada"),
				CreatedAt:        now,
				UpdatedAt:        now,
			},
			check: func(t *testing.T, p *entity.Profile) {
				require.NotNil(t, p.Role)
				assert.Equal(t, entity.RoleSeller, *p.Role)
				assert.Equal(t, entity.Roles{entity.RoleSeller, entity.RoleBuyer}, p.Roles)
				require.NotNil(t, p.PreferredTrack)
				assert.Equal(t, entity.TrackDigital, *p.PreferredTrack)
				assert.Equal(t, entity.TierPro, p.Tier)
				assert.True(t, p.IsOnboarded())
			},
		},
		{
			name: "unknown roles in list are dropped",
			row: &model.ProfileModel{
				UserID:           userID,
				Roles:            []string{"wizard", "partner"},
				OnboardingStatus: "in_progress",
				Tier:             "free",
			},
			check: func(t *testing.T, p *entity.Profile) {
				assert.Nil(t, p.Role)
				assert.Nil(t, p.PreferredTrack)
				assert.Equal(t, entity.Roles{entity.RolePartner}, p.Roles)
			},
		},
		{
			name: "unknown primary role",
			row: &model.ProfileModel{
				UserID: userID, Role: strPtr("superuser"), OnboardingStatus: "completed", Tier: "free",
			},
			wantErr: repository.ErrInvalidProfile,
		},
		{
			name: "unknown track",
			row: &model.ProfileModel{
				UserID: userID, PreferredTrack: strPtr("offline"), OnboardingStatus: "completed", Tier: "free",
			},
			wantErr: repository.ErrInvalidProfile,
		},
		{
			name:    "unknown status",
			row:     &model.ProfileModel{UserID: userID, OnboardingStatus: "done", Tier: "free"},
			wantErr: repository.ErrInvalidProfile,
		},
		{
			name:    "unknown tier",
			row:     &model.ProfileModel{UserID: userID, OnboardingStatus: "completed", Tier: "platinum"},
			wantErr: repository.ErrInvalidProfile,
		},
		{
			name:    "nil row",
			row:     nil,
			wantErr: repository.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := toProfileDomain(tt.row)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, profile)

				return
			}

			require.NoError(t, err)
			tt.check(t, profile)
		})
	}
}

func TestFromProfileDomain_RoundTripsOptionalFields(t *testing.T) {
	role := entity.RoleBuyer
	track := entity.TrackOperational
	profile := &entity.Profile{
		UserID:           uuid.New(),
		Role:             &role,
		Roles:            entity.Roles{entity.RoleBuyer},
		OnboardingStatus: entity.OnboardingCompleted,
		PreferredTrack:   &track,
		Tier:             entity.TierFree,
	}

	row := fromProfileDomain(profile)
	require.NotNil(t, row.Role)
	assert.Equal(t, "buyer", *row.Role)
	require.NotNil(t, row.PreferredTrack)
	assert.Equal(t, "operational", *row.PreferredTrack)
	assert.Equal(t, []string{"buyer"}, row.Roles)

	back, err := toProfileDomain(row)
	require.NoError(t, err)
	assert.Equal(t, profile.Role, back.Role)
	assert.Equal(t, profile.PreferredTrack, back.PreferredTrack)
}
