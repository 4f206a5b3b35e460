package services

import (
	"context"
	"errors"

	"todo-app/backend/internal/auth"
	"todo-app/backend/internal/models"
	"todo-app/backend/internal/repositories"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (string, *models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

type AuthServiceImpl struct {
	users      *repositories.UserStore
	tokens     *auth.TokenManager
	bcryptCost int
}

func NewAuthService(users *repositories.UserStore, tokens *auth.TokenManager, bcryptCost int) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Register creates an account and returns a token bound to it. Hashing
// happens before any write; a duplicate email short-circuits with no
// partial user row.
func (s *AuthServiceImpl) Register(ctx context.Context, email, password string) (string, *models.User, error) {
	passwordHash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return "", nil, err
	}

	user, err := s.users.Create(ctx, email, passwordHash)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login authenticates by email and password. An unknown email and a
// wrong password are indistinguishable to the caller; the inactive check
// runs only after the password has been proved.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", nil, ErrInactiveAccount
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
