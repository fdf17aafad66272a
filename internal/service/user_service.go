package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "edutech/internal/errors"
	"edutech/internal/model"
	"edutech/internal/repository"
)

const bcryptCost = 10

// ErrInvalidCredentials is returned when a username or password does not match.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserService manages staff accounts.
type UserService interface {
	EnsureUser(ctx context.Context, username, password string) (user *model.User, created bool, err error)
	CheckPassword(ctx context.Context, username, password string) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService over repo.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// EnsureUser creates username with a bcrypt hash of password unless it
// already exists. An existing user is returned untouched.
func (s *userService) EnsureUser(ctx context.Context, username, password string) (*model.User, bool, error) {
	if username == "" || password == "" {
		return nil, false, fmt.Errorf("username and password are required: %w", apperrors.ErrInvalidInput)
	}

	existing, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("create user: %w", err)
	}
	return user, true, nil
}

// CheckPassword returns the user when password matches the stored hash.
func (s *userService) CheckPassword(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
