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

type MonasteryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMonasteryRepo(db *dbpg.DB) *MonasteryRepository {
	return &MonasteryRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *MonasteryRepository) Create(ctx context.Context, m *domain.Monastery) error {
	query := `INSERT INTO monasteries (id, name, description, admin_id, max_capacity, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		m.ID, m.Name, m.Description, m.AdminID, m.MaxCapacity, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert monastery: %w", err)
	}

	return nil
}

func (r *MonasteryRepository) GetByID(ctx context.Context, id string) (*domain.Monastery, error) {
	query := `SELECT id, name, description, admin_id, max_capacity, created_at, updated_at
			  FROM monasteries
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get monastery: %w", err)
	}

	var m domain.Monastery
	if err = row.Scan(&m.ID, &m.Name, &m.Description, &m.AdminID, &m.MaxCapacity, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMonasteryNotFound
		}
		return nil, fmt.Errorf("scan monastery: %w", err)
	}

	return &m, nil
}

func (r *MonasteryRepository) List(ctx context.Context) ([]*domain.Monastery, error) {
	query := `SELECT id, name, description, admin_id, max_capacity, created_at, updated_at
			  FROM monasteries
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list monasteries: %w", err)
	}
	defer rows.Close()

	var res []*domain.Monastery
	for rows.Next() {
		var m domain.Monastery
		if err = rows.Scan(&m.ID, &m.Name, &m.Description, &m.AdminID, &m.MaxCapacity, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan monastery: %w", err)
		}
		res = append(res, &m)
	}

	return res, rows.Err()
}
