package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/devconnect-io/devconnect-api/internal/domain/profile"
	"github.com/devconnect-io/devconnect-api/pkg/apperror"
)

// EntryUseCase covers the experience and education sub-lists of a profile.
type EntryUseCase struct {
	profileRepo profile.Repository
}

func NewEntryUseCase(repo profile.Repository) *EntryUseCase {
	return &EntryUseCase{profileRepo: repo}
}

func (uc *EntryUseCase) wrap(p *profile.Profile, err error, userID uuid.UUID) (*profile.Profile, error) {
	if err == nil {
		return p, nil
	}
	if errors.Is(err, profile.ErrProfileNotFound) {
		return nil, apperror.NewNoProfile("no profile for user " + userID.String())
	}
	if errors.Is(err, profile.ErrEntryNotFound) {
		return nil, apperror.NewEntryNotFound("entry id not present in list")
	}
	return nil, err
}

func (uc *EntryUseCase) AddExperience(ctx context.Context, userID uuid.UUID, e profile.Experience) (*profile.Profile, error) {
	e.ID = uuid.New()
	p, err := uc.profileRepo.PushExperience(ctx, userID, e)
	return uc.wrap(p, err, userID)
}

func (uc *EntryUseCase) RemoveExperience(ctx context.Context, userID, entryID uuid.UUID) (*profile.Profile, error) {
	p, err := uc.profileRepo.RemoveExperience(ctx, userID, entryID)
	return uc.wrap(p, err, userID)
}

func (uc *EntryUseCase) AddEducation(ctx context.Context, userID uuid.UUID, e profile.Education) (*profile.Profile, error) {
	e.ID = uuid.New()
	p, err := uc.profileRepo.PushEducation(ctx, userID, e)
	return uc.wrap(p, err, userID)
}

func (uc *EntryUseCase) RemoveEducation(ctx context.Context, userID, entryID uuid.UUID) (*profile.Profile, error) {
	p, err := uc.profileRepo.RemoveEducation(ctx, userID, entryID)
	return uc.wrap(p, err, userID)
}
