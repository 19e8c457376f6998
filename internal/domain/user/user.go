package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"created_at"`
}

type Repository interface {
	// FindByEmail returns the full identity, password hash included; it
	// backs both the duplicate-registration check and login.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindByID never selects the password hash.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	Create(ctx context.Context, u *User) error
	// DeleteByID is idempotent: deleting an absent identity is not an error.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
