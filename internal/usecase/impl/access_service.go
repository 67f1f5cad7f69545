package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
)

// accessService implements the AccessUsecase interface.
type accessService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAccessService is the constructor for accessService.
func NewAccessService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AccessUsecase {
	return &accessService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Guard decides once whether the identity may enter the section reserved for role.
// Store failures deny.
func (srv *accessService) Guard(ctx context.Context, identity *entity.Identity, role entity.Role) entity.GuardDecision {
	denied := entity.GuardDecision{State: entity.GuardDenied, Role: role}
	if identity == nil {
		return denied
	}

	granted := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.ProfileRepo().FindByUserID(ctx, identity.ID)
		switch {
		case err == nil:
			if profile.Role != nil && *profile.Role == role {
				granted = true

				return nil
			}
		case errors.Is(err, repository.ErrProfileNotFound), errors.Is(err, repository.ErrInvalidProfile):
		default:
			return errors.Wrap(err, "failed to find profile")
		}

		hasGrant, err := repoFactory.RoleGrantRepo().HasRole(ctx, identity.ID, role)
		if err != nil {
			return errors.Wrap(err, "failed to check role grant")
		}
		granted = hasGrant

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Section guard failed, denying access",
			slog.String("user_id", identity.ID.String()),
			slog.String("role", role.String()),
			slog.Any("error", err),
		)

		return denied
	}

	if !granted {
		return denied
	}

	return entity.GuardDecision{State: entity.GuardGranted, Role: role}
}

// IsAdmin reports whether the identity may enter the admin section.
func (srv *accessService) IsAdmin(ctx context.Context, identity *entity.Identity) bool {
	return srv.Guard(ctx, identity, entity.RoleAdmin).Granted()
}

// IsFounder reports whether the identity may enter the founder section.
func (srv *accessService) IsFounder(ctx context.Context, identity *entity.Identity) bool {
	return srv.Guard(ctx, identity, entity.RoleFounder).Granted()
}
