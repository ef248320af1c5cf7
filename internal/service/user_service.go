package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"cityfashion/internal/domain"
	"cityfashion/internal/port"
)

// CreateUserInput is the DTO for operator creation.
type CreateUserInput struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	FullName string          `json:"full_name" binding:"required"`
	Role     domain.UserRole `json:"role" binding:"required"`
}

// UserService manages console operators.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	ChangePassword(ctx context.Context, id uuid.UUID, current, next string) error
}

type userService struct {
	repo port.UserRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(repo port.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if input.Role != domain.RoleAdmin && input.Role != domain.RoleCashier {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, input.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("userService.Create hash: %w", err)
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(input.FullName),
		Role:         input.Role,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("userService.Create: %w", err)
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context, offset, limit int) ([]domain.User, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *userService) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.IsActive = active
	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("userService.SetActive: %w", err)
	}
	return nil
}

func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, current, next string) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("userService.ChangePassword hash: %w", err)
	}
	user.PasswordHash = string(hash)
	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("userService.ChangePassword: %w", err)
	}
	return nil
}
