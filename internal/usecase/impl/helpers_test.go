package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testRepos bundles the repository mocks handed out by a mocked RepositoryFactory.
type testRepos struct {
	factory  *mockRepo.MockRepositoryFactory
	profiles *mockRepo.MockProfileRepository
	grants   *mockRepo.MockRoleGrantRepository
	listings *mockRepo.MockListingRepository
	deals    *mockRepo.MockDealRepository
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()

	repos := &testRepos{
		factory:  mockRepo.NewMockRepositoryFactory(t),
		profiles: mockRepo.NewMockProfileRepository(t),
		grants:   mockRepo.NewMockRoleGrantRepository(t),
		listings: mockRepo.NewMockListingRepository(t),
		deals:    mockRepo.NewMockDealRepository(t),
	}
	repos.factory.EXPECT().ProfileRepo().Return(repos.profiles).Maybe()
	repos.factory.EXPECT().RoleGrantRepo().Return(repos.grants).Maybe()
	repos.factory.EXPECT().ListingRepo().Return(repos.listings).Maybe()
	repos.factory.EXPECT().DealRepo().Return(repos.deals).Maybe()

	return repos
}

// expectTx makes every Execute call run its function against the mocked factory.
func expectTx(txManager *mockRepo.MockTransactionManager, repos *testRepos) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		})
}

func rolePtr(r entity.Role) *entity.Role {
	return &r
}

func trackPtr(t entity.Track) *entity.Track {
	return &t
}

func onboardedProfile(userID uuid.UUID, role entity.Role, tier entity.Tier) *entity.Profile {
	return &entity.Profile{
		UserID:           userID,
		Role:             rolePtr(role),
		Roles:            entity.Roles{role},
		OnboardingStatus: entity.OnboardingCompleted,
		PreferredTrack:   trackPtr(entity.TrackAll),
		Tier:             tier,
	}
}
