package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "stayspots/internal/errors"
	"stayspots/internal/model"
	"stayspots/internal/repository"
)

const bcryptCost = 10

// UserService handles signup, login and session lookups.
type UserService interface {
	Signup(ctx context.Context, email, username, firstName, lastName, password string) (*model.User, error)
	Login(ctx context.Context, credential, password string) (*model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Signup creates a new user with a hashed credential. Email and username
// must both be unused.
func (s *userService) Signup(ctx context.Context, email, username, firstName, lastName, password string) (*model.User, error) {
	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperrors.ErrEmailExists
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check email existence: %w", err)
	}

	if existing, err := s.userRepo.FindByUsername(ctx, username); err == nil && existing != nil {
		return nil, apperrors.ErrUsernameExists
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check username existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:          email,
		Username:       username,
		FirstName:      firstName,
		LastName:       lastName,
		HashedPassword: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login authenticates by username or email plus password.
func (s *userService) Login(ctx context.Context, credential, password string) (*model.User, error) {
	user, err := s.userRepo.FindByCredential(ctx, credential)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// Get loads a user by id.
func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
