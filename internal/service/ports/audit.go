package ports

import (
	"context"

	"github.com/bawadev/dhaana/internal/domain"
)

type AuditRepo interface {
	Append(ctx context.Context, e *domain.AuditEntry) error
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.AuditEntry, error)
}
