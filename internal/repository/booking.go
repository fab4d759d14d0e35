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

const bookingColumns = `id, slot_id, donor_id, guest_name, food_description, serving_count,
		contact_phone, notes, status, approved_at, approved_by, donor_confirmed_at,
		delivery_confirmed_at, delivery_confirmed_by, delivery_outcome, delivery_notes,
		created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var outcome sql.NullString
	err := row.Scan(
		&b.ID, &b.SlotID, &b.DonorID, &b.GuestName, &b.FoodDescription, &b.ServingCount,
		&b.ContactPhone, &b.Notes, &b.Status, &b.ApprovedAt, &b.ApprovedBy, &b.DonorConfirmedAt,
		&b.DeliveryConfirmedAt, &b.DeliveryConfirmedBy, &outcome, &b.DeliveryNotes,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if outcome.Valid {
		o := domain.DeliveryOutcome(outcome.String)
		b.DeliveryOutcome = &o
	}
	return &b, nil
}

// Create inserts a new booking after re-checking remaining capacity against
// the slot row held under lock. The capacity read, the committed-servings
// aggregate, and the insert run in one transaction so that concurrent
// requests against a near-full slot cannot jointly overshoot capacity.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	slotQuery := `SELECT s.capacity, s.is_available, m.max_capacity
				  FROM donation_slots s
				  JOIN monasteries m ON m.id = s.monastery_id
				  WHERE s.id = $1
				  FOR UPDATE OF s`
	var capacity int
	var available bool
	var override sql.NullInt64
	if err = tx.QueryRowContext(ctx, slotQuery, b.SlotID).Scan(&capacity, &available, &override); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSlotNotFound
		}
		return fmt.Errorf("get slot capacity: %w", err)
	}
	if !available {
		return domain.ErrSlotUnavailable
	}
	if override.Valid {
		capacity = int(override.Int64)
	}

	committedQuery := `SELECT COALESCE(SUM(serving_count), 0) FROM bookings
					   WHERE slot_id = $1 AND status = ANY($2)`
	var committed int
	if err = tx.QueryRowContext(
		ctx, committedQuery, b.SlotID,
		pq.Array(domain.CapacityConsumingStatuses),
	).Scan(&committed); err != nil {
		return fmt.Errorf("sum committed servings: %w", err)
	}

	remaining := capacity - committed
	if b.ServingCount > remaining {
		return fmt.Errorf("%w: %d servings remaining", domain.ErrCapacityExceeded, remaining)
	}

	query := `INSERT INTO bookings (id, slot_id, donor_id, guest_name, food_description,
				serving_count, contact_phone, notes, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.SlotID, b.DonorID, b.GuestName, b.FoodDescription,
		b.ServingCount, b.ContactPhone, b.Notes, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

// ApplyTransition authorizes and applies a workflow transition in one
// transaction against the freshly-read booking row, so that two concurrent
// attempts on the same booking cannot both succeed from a status only one
// of them observed.
func (r *BookingRepository) ApplyTransition(
	ctx context.Context,
	bookingID string,
	name domain.TransitionName,
	actor domain.Actor,
	input domain.TransitionInput,
) (*domain.Booking, domain.BookingStatus, error) {
	rule, ok := domain.RuleFor(name)
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", domain.ErrInvalidTransition, name)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT b.status, b.serving_count, b.donor_id, m.admin_id,
						 s.capacity, m.max_capacity
				  FROM bookings b
				  JOIN donation_slots s ON s.id = b.slot_id
				  JOIN monasteries m ON m.id = s.monastery_id
				  WHERE b.id = $1
				  FOR UPDATE OF b, s`
	var status domain.BookingStatus
	var servingCount int
	var access domain.BookingAccess
	var capacity int
	var override sql.NullInt64
	err = tx.QueryRowContext(ctx, lockQuery, bookingID).Scan(
		&status, &servingCount, &access.DonorID, &access.MonasteryAdminID,
		&capacity, &override,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", domain.ErrBookingNotFound
		}
		return nil, "", fmt.Errorf("lock booking: %w", err)
	}

	if _, err = domain.AuthorizeTransition(name, status, actor, access); err != nil {
		return nil, "", err
	}

	// reopen puts the booking back into a capacity-consuming status, so
	// remaining room must hold against bookings created since cancellation
	if name == domain.TransitionReopen {
		if override.Valid {
			capacity = int(override.Int64)
		}
		var committed int
		committedQuery := `SELECT COALESCE(SUM(bs.serving_count), 0) FROM bookings bs
						   WHERE bs.slot_id = (SELECT slot_id FROM bookings WHERE id = $1)
							 AND bs.id <> $1 AND bs.status = ANY($2)`
		if err = tx.QueryRowContext(
			ctx, committedQuery, bookingID,
			pq.Array(domain.CapacityConsumingStatuses),
		).Scan(&committed); err != nil {
			return nil, "", fmt.Errorf("sum committed servings: %w", err)
		}
		if remaining := capacity - committed; servingCount > remaining {
			return nil, "", fmt.Errorf("%w: %d servings remaining", domain.ErrCapacityExceeded, remaining)
		}
	}

	var updateQuery string
	args := []any{bookingID, rule.To, status}
	switch name {
	case domain.TransitionApprove:
		updateQuery = `UPDATE bookings
					   SET status = $2, approved_at = now(), approved_by = $4, updated_at = now()
					   WHERE id = $1 AND status = $3
					   RETURNING ` + bookingColumns
		args = append(args, actor.ID)
	case domain.TransitionConfirm:
		updateQuery = `UPDATE bookings
					   SET status = $2, donor_confirmed_at = now(), updated_at = now()
					   WHERE id = $1 AND status = $3
					   RETURNING ` + bookingColumns
	case domain.TransitionMarkDelivered, domain.TransitionMarkNotDelivered:
		outcome := domain.DeliveryOutcomeReceived
		if name == domain.TransitionMarkNotDelivered {
			outcome = domain.DeliveryOutcomeNotReceived
		}
		updateQuery = `UPDATE bookings
					   SET status = $2, delivery_confirmed_at = now(), delivery_confirmed_by = $4,
						   delivery_outcome = $5, delivery_notes = $6, updated_at = now()
					   WHERE id = $1 AND status = $3
					   RETURNING ` + bookingColumns
		args = append(args, actor.ID, outcome, input.DeliveryNotes)
	case domain.TransitionReopen:
		updateQuery = `UPDATE bookings
					   SET status = $2, approved_at = NULL, approved_by = NULL,
						   donor_confirmed_at = NULL, updated_at = now()
					   WHERE id = $1 AND status = $3
					   RETURNING ` + bookingColumns
	default: // cancel
		updateQuery = `UPDATE bookings
					   SET status = $2, updated_at = now()
					   WHERE id = $1 AND status = $3
					   RETURNING ` + bookingColumns
	}

	updated, err := scanBooking(tx.QueryRowContext(ctx, updateQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// the row lock makes this unreachable in practice; kept as the
			// conditional-update backstop
			return nil, "", fmt.Errorf("%w: cannot %s a %s booking", domain.ErrInvalidStateTransition, name, status)
		}
		return nil, "", fmt.Errorf("apply transition: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, "", fmt.Errorf("commit transition: %w", err)
	}

	return updated, status, nil
}

func (r *BookingRepository) GetWithAccess(ctx context.Context, id string) (*domain.Booking, *domain.BookingAccess, error) {
	query := `SELECT b.id, b.slot_id, b.donor_id, b.guest_name, b.food_description, b.serving_count,
					 b.contact_phone, b.notes, b.status, b.approved_at, b.approved_by, b.donor_confirmed_at,
					 b.delivery_confirmed_at, b.delivery_confirmed_by, b.delivery_outcome, b.delivery_notes,
					 b.created_at, b.updated_at,
					 m.admin_id
			  FROM bookings b
			  JOIN donation_slots s ON s.id = b.slot_id
			  JOIN monasteries m ON m.id = s.monastery_id
			  WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	var outcome sql.NullString
	var adminID string
	err = row.Scan(
		&b.ID, &b.SlotID, &b.DonorID, &b.GuestName, &b.FoodDescription, &b.ServingCount,
		&b.ContactPhone, &b.Notes, &b.Status, &b.ApprovedAt, &b.ApprovedBy, &b.DonorConfirmedAt,
		&b.DeliveryConfirmedAt, &b.DeliveryConfirmedBy, &outcome, &b.DeliveryNotes,
		&b.CreatedAt, &b.UpdatedAt,
		&adminID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrBookingNotFound
		}
		return nil, nil, fmt.Errorf("scan booking: %w", err)
	}
	if outcome.Valid {
		o := domain.DeliveryOutcome(outcome.String)
		b.DeliveryOutcome = &o
	}

	return &b, &domain.BookingAccess{DonorID: b.DonorID, MonasteryAdminID: adminID}, nil
}

func (r *BookingRepository) ListByDonor(ctx context.Context, donorID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE donor_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, donorID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by donor: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListBySlot(ctx context.Context, slotID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE slot_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, slotID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by slot: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
