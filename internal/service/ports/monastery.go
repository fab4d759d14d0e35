package ports

import (
	"context"

	"github.com/bawadev/dhaana/internal/domain"
)

type MonasteryRepo interface {
	Create(ctx context.Context, m *domain.Monastery) error
	GetByID(ctx context.Context, id string) (*domain.Monastery, error)
	List(ctx context.Context) ([]*domain.Monastery, error)
}
