package ports

import (
	"context"

	"github.com/bawadev/dhaana/internal/domain"
)

type BookingRepo interface {
	// Create performs the capacity-checked insert atomically with the
	// capacity read.
	Create(ctx context.Context, b *domain.Booking) error
	// ApplyTransition re-reads the booking under lock, authorizes the
	// transition against the fresh state, and applies it conditionally.
	// The second return value is the status the booking left.
	ApplyTransition(ctx context.Context, bookingID string, name domain.TransitionName, actor domain.Actor, input domain.TransitionInput) (*domain.Booking, domain.BookingStatus, error)
	GetWithAccess(ctx context.Context, id string) (*domain.Booking, *domain.BookingAccess, error)
	ListByDonor(ctx context.Context, donorID string) ([]*domain.Booking, error)
	ListBySlot(ctx context.Context, slotID string) ([]*domain.Booking, error)
}
