package auth

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/devconnect-io/devconnect-api/internal/domain/user"
	"github.com/devconnect-io/devconnect-api/pkg/apperror"
	"github.com/devconnect-io/devconnect-api/pkg/auth"
	"github.com/devconnect-io/devconnect-api/pkg/logger"
)

var tracer = otel.Tracer("auth_usecase")

type LoginUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewLoginUseCase(repo user.Repository, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		userRepo: repo,
		jwtSvc:   jwtSvc,
		logger:   log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Token string
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {

	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	u, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// same response as a wrong password
			return nil, apperror.NewInvalidCredentials("unknown email")
		}
		span.RecordError(err)
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, u.PasswordHash) {
		return nil, apperror.NewInvalidCredentials("incorrect password")
	}

	token, err := uc.jwtSvc.Issue(u.ID)
	if err != nil {
		uc.logger.Error("Failed to issue token", err, zap.String("user_id", u.ID.String()))
		err = apperror.NewInternal("failed to issue token", err)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	return &LoginOutput{Token: token}, nil
}
