package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/bawadev/dhaana/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AuditRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAuditRepo(db *dbpg.DB) *AuditRepository {
	return &AuditRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AuditRepository) Append(ctx context.Context, e *domain.AuditEntry) error {
	query := `INSERT INTO booking_audit (id, booking_id, from_status, to_status, transition, actor_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.BookingID, e.FromStatus, e.ToStatus, e.Transition, e.ActorID, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	return nil
}

func (r *AuditRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.AuditEntry, error) {
	query := `SELECT id, booking_id, from_status, to_status, transition, actor_id, created_at
			  FROM booking_audit
			  WHERE booking_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var res []*domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		if err = rows.Scan(&e.ID, &e.BookingID, &e.FromStatus, &e.ToStatus, &e.Transition, &e.ActorID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
