package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/devconnect-io/devconnect-api/internal/domain/profile"
	"github.com/devconnect-io/devconnect-api/pkg/apperror"
	"github.com/devconnect-io/devconnect-api/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var profileColumns = []string{
	"p.user_id", "p.company", "p.website", "p.location", "p.bio", "p.status",
	"p.github_username", "p.skills", "p.social", "p.experience", "p.education",
	"p.updated_at", "u.name", "u.avatar",
}

func (r *postgresProfileRepo) scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	owner := &profile.Owner{}
	var skillsBytes, socialBytes, experienceBytes, educationBytes []byte

	err := row.Scan(
		&p.UserID, &p.Company, &p.Website, &p.Location, &p.Bio, &p.Status,
		&p.GithubUsername, &skillsBytes, &socialBytes, &experienceBytes,
		&educationBytes, &p.UpdatedAt, &owner.Name, &owner.Avatar,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, apperror.NewInternal("failed to scan profile row", err)
	}

	owner.ID = p.UserID
	p.Owner = owner

	if err := json.Unmarshal(skillsBytes, &p.Skills); err != nil {
		r.logger.Warn("Failed to unmarshal skills", zap.String("user_id", p.UserID.String()), zap.Error(err))
		p.Skills = []string{}
	}
	if err := json.Unmarshal(socialBytes, &p.Social); err != nil {
		r.logger.Warn("Failed to unmarshal social", zap.String("user_id", p.UserID.String()), zap.Error(err))
		p.Social = profile.Social{}
	}
	if err := json.Unmarshal(experienceBytes, &p.Experience); err != nil {
		r.logger.Warn("Failed to unmarshal experience", zap.String("user_id", p.UserID.String()), zap.Error(err))
		p.Experience = []profile.Experience{}
	}
	if err := json.Unmarshal(educationBytes, &p.Education); err != nil {
		r.logger.Warn("Failed to unmarshal education", zap.String("user_id", p.UserID.String()), zap.Error(err))
		p.Education = []profile.Education{}
	}

	return p, nil
}

func (r *postgresProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	query, args, err := psql.
		Select(profileColumns...).
		From("profiles p").
		Join("users u ON u.id = p.user_id").
		Where(sq.Eq{"p.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build profile query", err)
	}

	return r.scanProfile(r.db.QueryRow(ctx, query, args...))
}

func (r *postgresProfileRepo) FindAll(ctx context.Context) ([]*profile.Profile, error) {
	query, args, err := psql.
		Select(profileColumns...).
		From("profiles p").
		Join("users u ON u.id = p.user_id").
		OrderBy("p.updated_at DESC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build profiles query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query profiles", err)
	}
	defer rows.Close()

	profiles := make([]*profile.Profile, 0)
	for rows.Next() {
		p, err := r.scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating profile rows", err)
	}

	return profiles, nil
}

func (r *postgresProfileRepo) save(ctx context.Context, p *profile.Profile) error {
	skillsBytes, err := json.Marshal(p.Skills)
	if err != nil {
		return apperror.NewInternal("failed to marshal skills", err)
	}
	socialBytes, err := json.Marshal(p.Social)
	if err != nil {
		return apperror.NewInternal("failed to marshal social", err)
	}
	experienceBytes, err := json.Marshal(p.Experience)
	if err != nil {
		return apperror.NewInternal("failed to marshal experience", err)
	}
	educationBytes, err := json.Marshal(p.Education)
	if err != nil {
		return apperror.NewInternal("failed to marshal education", err)
	}

	query := `
		INSERT INTO profiles (user_id, company, website, location, bio, status,
			github_username, skills, social, experience, education, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO UPDATE SET
			company = EXCLUDED.company,
			website = EXCLUDED.website,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			status = EXCLUDED.status,
			github_username = EXCLUDED.github_username,
			skills = EXCLUDED.skills,
			social = EXCLUDED.social,
			experience = EXCLUDED.experience,
			education = EXCLUDED.education,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.db.Exec(ctx, query,
		p.UserID, p.Company, p.Website, p.Location, p.Bio, p.Status,
		p.GithubUsername, skillsBytes, socialBytes, experienceBytes,
		educationBytes, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, userID uuid.UUID, u profile.Update) (*profile.Profile, error) {
	p, err := r.FindByUserID(ctx, userID)
	if errors.Is(err, profile.ErrProfileNotFound) {
		p = &profile.Profile{
			UserID:     userID,
			Skills:     []string{},
			Experience: []profile.Experience{},
			Education:  []profile.Education{},
		}
	} else if err != nil {
		return nil, err
	}

	p.Apply(u)
	p.UpdatedAt = time.Now().UTC()

	if err := r.save(ctx, p); err != nil {
		return nil, err
	}

	// re-read for the joined owner fields on first creation
	return r.FindByUserID(ctx, userID)
}

func (r *postgresProfileRepo) PushExperience(ctx context.Context, userID uuid.UUID, e profile.Experience) (*profile.Profile, error) {
	p, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p.AddExperience(e)
	p.UpdatedAt = time.Now().UTC()

	if err := r.save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresProfileRepo) PushEducation(ctx context.Context, userID uuid.UUID, e profile.Education) (*profile.Profile, error) {
	p, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p.AddEducation(e)
	p.UpdatedAt = time.Now().UTC()

	if err := r.save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresProfileRepo) RemoveExperience(ctx context.Context, userID, entryID uuid.UUID) (*profile.Profile, error) {
	p, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !p.RemoveExperience(entryID) {
		return nil, profile.ErrEntryNotFound
	}
	p.UpdatedAt = time.Now().UTC()

	if err := r.save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresProfileRepo) RemoveEducation(ctx context.Context, userID, entryID uuid.UUID) (*profile.Profile, error) {
	p, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !p.RemoveEducation(entryID) {
		return nil, profile.ErrEntryNotFound
	}
	p.UpdatedAt = time.Now().UTC()

	if err := r.save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresProfileRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query, args, err := psql.
		Delete("profiles").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build profile delete", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return apperror.NewInternal("failed to delete profile", err)
	}
	return nil
}
