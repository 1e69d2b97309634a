package repository

import (
	"context"

	"task-manager/internal/domain"
)

// UserRepository defines persistence operations for User entities. Email
// uniqueness is enforced here, at the persistence boundary: Create returns
// domain.ErrDuplicateEmail when the email is already taken, including when
// two concurrent registrations race.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// UserTokenRepository manages the per-user session token set. Tokens are
// append-only during registration and login; Remove invalidates a single
// session. Neither operation touches any other user column.
type UserTokenRepository interface {
	Init(ctx context.Context) error
	Append(ctx context.Context, userID, token string) error
	Remove(ctx context.Context, userID, token string) error
	ListByUser(ctx context.Context, userID string) ([]string, error)
}
