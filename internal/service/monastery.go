package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bawadev/dhaana/internal/domain"
	"github.com/bawadev/dhaana/internal/service/ports"
	"github.com/google/uuid"
)

type MonasteryService struct {
	repo     ports.MonasteryRepo
	userRepo ports.UserRepo
}

func NewMonasteryService(repo ports.MonasteryRepo, userRepo ports.UserRepo) *MonasteryService {
	return &MonasteryService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *MonasteryService) Create(ctx context.Context, input domain.CreateMonasteryInput, actor domain.Actor) (*domain.Monastery, error) {
	if !actor.HasRole(domain.RoleSuperAdmin) {
		return nil, fmt.Errorf("%w: only platform admins may register monasteries", domain.ErrUnauthorized)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.MaxCapacity != nil && *input.MaxCapacity <= 0 {
		return nil, fmt.Errorf("%w: max_capacity must be positive", domain.ErrValidation)
	}

	admin, err := s.userRepo.GetByID(ctx, input.AdminID)
	if err != nil {
		return nil, fmt.Errorf("check admin: %w", err)
	}
	if !admin.Actor().HasRole(domain.RoleMonasteryAdmin) {
		return nil, fmt.Errorf("%w: admin user must hold the monastery_admin role", domain.ErrValidation)
	}

	now := time.Now().UTC()
	monastery := &domain.Monastery{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		AdminID:     admin.ID,
		MaxCapacity: input.MaxCapacity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, monastery); err != nil {
		return nil, fmt.Errorf("create monastery: %w", err)
	}

	return monastery, nil
}

func (s *MonasteryService) GetByID(ctx context.Context, id string) (*domain.Monastery, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MonasteryService) List(ctx context.Context) ([]*domain.Monastery, error) {
	return s.repo.List(ctx)
}
