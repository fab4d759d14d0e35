package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bawadev/dhaana/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const slotColumns = `id, monastery_id, slot_date, time_of_day, capacity,
		special_requirements, is_available, created_at, updated_at`

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var s domain.Slot
	err := row.Scan(
		&s.ID, &s.MonasteryID, &s.Date, &s.TimeOfDay, &s.Capacity,
		&s.SpecialRequirements, &s.IsAvailable, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SlotRepository) Create(ctx context.Context, s *domain.Slot) error {
	query := `INSERT INTO donation_slots (id, monastery_id, slot_date, time_of_day, capacity,
				special_requirements, is_available, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.MonasteryID, s.Date, s.TimeOfDay, s.Capacity,
		s.SpecialRequirements, s.IsAvailable, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrMonasteryNotFound
		}
		return fmt.Errorf("insert slot: %w", err)
	}

	return nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM donation_slots
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	s, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return s, nil
}

// GetDetails returns the slot with remaining capacity derived from its
// capacity-consuming bookings, honoring the monastery capacity override.
func (r *SlotRepository) GetDetails(ctx context.Context, id string) (*domain.SlotDetails, error) {
	query := `
		SELECT
			s.id, s.monastery_id, s.slot_date, s.time_of_day, s.capacity,
			s.special_requirements, s.is_available, s.created_at, s.updated_at,
			COALESCE(m.max_capacity, s.capacity) - COALESCE(SUM(b.serving_count), 0) AS remaining
		FROM donation_slots s
		JOIN monasteries m ON m.id = s.monastery_id
		LEFT JOIN bookings b
			ON b.slot_id = s.id
			AND b.status = ANY($2)
		WHERE s.id = $1
		GROUP BY s.id, m.max_capacity`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, pq.Array(domain.CapacityConsumingStatuses))
	if err != nil {
		return nil, fmt.Errorf("get slot details: %w", err)
	}

	var d domain.SlotDetails
	err = row.Scan(
		&d.Slot.ID, &d.Slot.MonasteryID, &d.Slot.Date, &d.Slot.TimeOfDay, &d.Slot.Capacity,
		&d.Slot.SpecialRequirements, &d.Slot.IsAvailable, &d.Slot.CreatedAt, &d.Slot.UpdatedAt,
		&d.Remaining,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot details: %w", err)
	}

	return &d, nil
}

func (r *SlotRepository) ListUpcoming(ctx context.Context) ([]*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM donation_slots
			  WHERE is_available AND slot_date >= CURRENT_DATE
			  ORDER BY slot_date, time_of_day`

	return r.list(ctx, query)
}

func (r *SlotRepository) ListByMonastery(ctx context.Context, monasteryID string) ([]*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM donation_slots
			  WHERE monastery_id = $1
			  ORDER BY slot_date DESC, time_of_day`

	return r.list(ctx, query, monasteryID)
}

// CloseExpired flips availability off for past-dated slots that are still
// open, returning the ones it closed.
func (r *SlotRepository) CloseExpired(ctx context.Context) ([]*domain.Slot, error) {
	query := `UPDATE donation_slots
			  SET is_available = false, updated_at = now()
			  WHERE is_available AND slot_date < CURRENT_DATE
			  RETURNING ` + slotColumns

	return r.list(ctx, query)
}

func (r *SlotRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Slot, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query slots: %w", err)
	}
	defer rows.Close()

	var res []*domain.Slot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}
