package profile

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/devconnect-io/devconnect-api/internal/domain/profile"
	"github.com/devconnect-io/devconnect-api/internal/domain/user"
)

// AccountUseCase deletes an identity together with its profile.
type AccountUseCase struct {
	userRepo    user.Repository
	profileRepo profile.Repository
}

func NewAccountUseCase(userRepo user.Repository, profileRepo profile.Repository) *AccountUseCase {
	return &AccountUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// ExecuteDelete issues both deletes concurrently. Each delete is idempotent,
// so an already-absent profile does not fail the operation; there is no
// transaction across the two, last error wins in the report.
func (uc *AccountUseCase) ExecuteDelete(ctx context.Context, userID uuid.UUID) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return uc.userRepo.DeleteByID(gctx, userID)
	})
	g.Go(func() error {
		return uc.profileRepo.DeleteByUserID(gctx, userID)
	})

	return g.Wait()
}
