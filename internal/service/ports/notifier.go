package ports

import (
	"context"

	"github.com/bawadev/dhaana/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, recipient *domain.User, b *domain.Booking, s *domain.Slot)
	NotifyBookingApproved(ctx context.Context, recipient *domain.User, b *domain.Booking, s *domain.Slot)
	NotifyBookingCancelled(ctx context.Context, recipient *domain.User, b *domain.Booking, s *domain.Slot)
}
