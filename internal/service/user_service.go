package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"task-manager/internal/auth"
	"task-manager/internal/domain"
	"task-manager/internal/repository"
	"task-manager/internal/validation"
)

// RegisterInput carries the fields a client may supply when creating an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Age      int
}

// UserService describes user lifecycle and credential operations.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetByToken(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, userID, token string) error
}

type userService struct {
	users  repository.UserRepository
	tokens repository.UserTokenRepository
	hasher *auth.PasswordHasher
	issuer *auth.TokenManager
}

func NewUserService(users repository.UserRepository, tokens repository.UserTokenRepository, hasher *auth.PasswordHasher, issuer *auth.TokenManager) UserService {
	return &userService{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		issuer: issuer,
	}
}

// Register validates, hashes the password exactly once, persists the user,
// and issues a first session token. Duplicate emails are rejected by the
// persistence layer's unique constraint, which also settles races between
// concurrent registrations.
func (s *userService) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	candidate := validation.UserInput(in)
	validation.NormalizeUserInput(&candidate)
	if err := validation.ValidateUser(candidate); err != nil {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(candidate.Password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         candidate.Name,
		Email:        candidate.Email,
		PasswordHash: hash,
		Age:          candidate.Age,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.appendToken(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return sanitizeUser(user), token, nil
}

// Login authenticates credentials. Unknown email and wrong password are
// indistinguishable to the caller; both read as ErrInvalidCredentials.
func (s *userService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	in := validation.UserInput{Email: email, Password: password}
	validation.NormalizeUserInput(&in)
	if in.Email == "" || in.Password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !s.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.appendToken(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return sanitizeUser(user), token, nil
}

// GetByToken resolves a bearer token to its user. The signature must verify
// and the token must still be present in the user's persisted token set, so
// a removed token no longer authenticates.
func (s *userService) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.issuer.Verify(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	tokens, err := s.tokens.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Tokens = tokens
	if !user.HasToken(token) {
		return nil, domain.ErrUnauthorized
	}

	return sanitizeUser(user), nil
}

// Logout removes a single session token, invalidating that session only.
func (s *userService) Logout(ctx context.Context, userID, token string) error {
	return s.tokens.Remove(ctx, userID, token)
}

func (s *userService) appendToken(ctx context.Context, user *domain.User) (string, error) {
	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return "", err
	}
	if err := s.tokens.Append(ctx, user.ID, token); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}
	return token, nil
}

// sanitizeUser strips the fields that must never leave the system boundary.
func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Age:   user.Age,
	}
}
