package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/devconnect-io/devconnect-api/internal/domain/user"
	"github.com/devconnect-io/devconnect-api/pkg/apperror"
	"github.com/devconnect-io/devconnect-api/pkg/auth"
	"github.com/devconnect-io/devconnect-api/pkg/gravatar"
	"github.com/devconnect-io/devconnect-api/pkg/logger"
)

type RegisterUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewRegisterUseCase(repo user.Repository, jwtSvc *auth.JWTService, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: repo,
		jwtSvc:   jwtSvc,
		logger:   log,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterOutput struct {
	Token string
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {

	ctx, span := tracer.Start(ctx, "Register")
	defer span.End()

	// explicit duplicate check before insert
	_, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, apperror.NewDuplicateEmail(input.Email)
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		span.RecordError(err)
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		uc.logger.Error("Failed to hash password", err)
		err = apperror.NewInternal("failed to hash password", err)
		span.RecordError(err)
		return nil, err
	}

	u := &user.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Avatar:       gravatar.URL(input.Email),
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.Issue(u.ID)
	if err != nil {
		uc.logger.Error("Failed to issue token", err, zap.String("user_id", u.ID.String()))
		err = apperror.NewInternal("failed to issue token", err)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	return &RegisterOutput{Token: token}, nil
}
