package ports

import (
	"context"

	"github.com/bawadev/dhaana/internal/domain"
)

type SlotRepo interface {
	Create(ctx context.Context, s *domain.Slot) error
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
	GetDetails(ctx context.Context, id string) (*domain.SlotDetails, error)
	ListUpcoming(ctx context.Context) ([]*domain.Slot, error)
	ListByMonastery(ctx context.Context, monasteryID string) ([]*domain.Slot, error)
	CloseExpired(ctx context.Context) ([]*domain.Slot, error)
}
