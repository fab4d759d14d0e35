package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bawadev/dhaana/internal/domain"
	"github.com/bawadev/dhaana/internal/service/ports"
	"github.com/google/uuid"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	roles := input.Roles
	if len(roles) == 0 {
		roles = []domain.Role{domain.RoleDonor}
	}
	for _, r := range roles {
		if !domain.ValidRole(r) {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, r)
		}
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       input.Username,
		Roles:          roles,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
