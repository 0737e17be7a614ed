package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/iamshakil01/clubsphere-servers/internal/service/ports"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Create registers a member. It returns domain.ErrUserExists together with
// the stored user when the email is already known.
func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, domain.Detailf(domain.ErrValidation, "email is required")
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return existing, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("check user: %w", err)
	}

	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     email,
		PhotoURL:  input.PhotoURL,
		Role:      domain.RoleMember,
		CreatedAt: time.Now().UTC(),
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	if !role.Valid() {
		return domain.Detailf(domain.ErrValidation, "unknown role %q", role)
	}
	return s.repo.UpdateRole(ctx, id, role)
}

// Role returns the role of email, defaulting to member for unknown users.
func (s *UserService) Role(ctx context.Context, email string) (domain.Role, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.RoleMember, nil
		}
		return "", fmt.Errorf("get user: %w", err)
	}
	return user.Role, nil
}
