package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/devconnect-io/devconnect-api/internal/domain/profile"
	"github.com/devconnect-io/devconnect-api/pkg/apperror"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
}

func NewProfileUseCase(repo profile.Repository) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: repo}
}

type GetProfileInput struct {
	UserID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGet(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNoProfile("no profile for user " + input.UserID.String())
		}
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}

type ListProfilesOutput struct {
	Profiles []*profile.Profile
}

func (uc *ProfileUseCase) ExecuteList(ctx context.Context) (*ListProfilesOutput, error) {
	profiles, err := uc.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ListProfilesOutput{Profiles: profiles}, nil
}

type UpsertProfileInput struct {
	UserID uuid.UUID
	Update profile.Update
}

type UpsertProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteUpsert(ctx context.Context, input UpsertProfileInput) (*UpsertProfileOutput, error) {
	p, err := uc.profileRepo.Upsert(ctx, input.UserID, input.Update)
	if err != nil {
		return nil, err
	}
	return &UpsertProfileOutput{Profile: p}, nil
}
