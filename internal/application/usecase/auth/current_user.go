package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/devconnect-io/devconnect-api/internal/domain/user"
	"github.com/devconnect-io/devconnect-api/pkg/apperror"
)

type CurrentUserUseCase struct {
	userRepo user.Repository
}

func NewCurrentUserUseCase(repo user.Repository) *CurrentUserUseCase {
	return &CurrentUserUseCase{userRepo: repo}
}

type CurrentUserInput struct {
	UserID uuid.UUID
}

type CurrentUserOutput struct {
	User *user.User
}

func (uc *CurrentUserUseCase) Execute(ctx context.Context, input CurrentUserInput) (*CurrentUserOutput, error) {
	u, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// the token outlived the identity it was issued for
			return nil, apperror.NewUnauthorized("Token is not valid", "identity behind a valid token no longer exists")
		}
		return nil, err
	}
	return &CurrentUserOutput{User: u}, nil
}
