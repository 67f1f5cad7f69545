package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAccessService_Guard(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	identity := &entity.Identity{ID: userID, Email: "ops@example.com"}

	tests := []struct {
		name      string
		role      entity.Role
		setup     func(repos *testRepos)
		identity  *entity.Identity
		wantState entity.GuardState
	}{
		{
			name:      "no session is denied",
			role:      entity.RoleAdmin,
			wantState: entity.GuardDenied,
		},
		{
			name:     "primary role matches",
			role:     entity.RoleAdmin,
			identity: identity,
			setup: func(repos *testRepos) {
				repos.profiles.EXPECT().FindByUserID(ctx, userID).
					Return(&entity.Profile{UserID: userID, Role: rolePtr(entity.RoleAdmin)}, nil)
			},
			wantState: entity.GuardGranted,
		},
		{
			name:     "role grant matches",
			role:     entity.RoleFounder,
			identity: identity,
			setup: func(repos *testRepos) {
				repos.profiles.EXPECT().FindByUserID(ctx, userID).
					Return(onboardedProfile(userID, entity.RoleSeller, entity.TierPro), nil)
				repos.grants.EXPECT().HasRole(ctx, userID, entity.RoleFounder).Return(true, nil)
			},
			wantState: entity.GuardGranted,
		},
		{
			name:     "grant counts without a profile",
			role:     entity.RoleAdmin,
			identity: identity,
			setup: func(repos *testRepos) {
				repos.profiles.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
				repos.grants.EXPECT().HasRole(ctx, userID, entity.RoleAdmin).Return(true, nil)
			},
			wantState: entity.GuardGranted,
		},
		{
			name:     "roles list is not enough",
			role:     entity.RoleAdmin,
			identity: identity,
			setup: func(repos *testRepos) {
				repos.profiles.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{
					UserID: userID,
					Role:   rolePtr(entity.RoleBuyer),
					Roles:  entity.Roles{entity.RoleBuyer, entity.RoleAdmin},
				}, nil)
				repos.grants.EXPECT().HasRole(ctx, userID, entity.RoleAdmin).Return(false, nil)
			},
			wantState: entity.GuardDenied,
		},
		{
			name:     "grant lookup failure denies",
			role:     entity.RoleAdmin,
			identity: identity,
			setup: func(repos *testRepos) {
				repos.profiles.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
				repos.grants.EXPECT().HasRole(ctx, userID, entity.RoleAdmin).Return(false, errors.New("boom"))
			},
			wantState: entity.GuardDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txManager := mockRepo.NewMockTransactionManager(t)
			if tt.setup != nil {
				repos := newTestRepos(t)
				expectTx(txManager, repos)
				tt.setup(repos)
			}

			service := NewAccessService(txManager, newDiscardLogger())
			decision := service.Guard(ctx, tt.identity, tt.role)

			assert.Equal(t, tt.wantState, decision.State)
			assert.Equal(t, tt.role, decision.Role)
		})
	}
}

func TestAccessService_IsAdminAndIsFounder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	identity := &entity.Identity{ID: userID}

	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newTestRepos(t)
	expectTx(txManager, repos)
	repos.profiles.EXPECT().FindByUserID(ctx, userID).
		Return(&entity.Profile{UserID: userID, Role: rolePtr(entity.RoleFounder)}, nil)
	repos.grants.EXPECT().HasRole(ctx, userID, entity.RoleAdmin).Return(false, nil)

	service := NewAccessService(txManager, newDiscardLogger())

	assert.True(t, service.IsFounder(ctx, identity))
	assert.False(t, service.IsAdmin(ctx, identity))
	assert.False(t, service.IsAdmin(ctx, nil))
}
