package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Metas-api/internal/domain/entity"
	"github.com/jhoicas/Metas-api/internal/domain/repository"
	"github.com/jhoicas/Metas-api/internal/domain/target"
)

var _ repository.HolidayRepository = (*HolidayRepo)(nil)

// HolidayRepo calendario de feriados sobre PostgreSQL (una fila por fecha).
type HolidayRepo struct {
	pool *pgxpool.Pool
}

// NewHolidayRepository construye el adaptador.
func NewHolidayRepository(pool *pgxpool.Pool) *HolidayRepo {
	return &HolidayRepo{pool: pool}
}

// ListByMonth lista los feriados del mes ordenados por fecha.
func (r *HolidayRepo) ListByMonth(ctx context.Context, year int, month time.Month) ([]*entity.Holiday, error) {
	from := target.Date(year, month, 1)
	to := from.AddDate(0, 1, 0)
	rows, err := r.pool.Query(ctx, `
		SELECT id, date, name, COALESCE(multiplier, 0), created_at
		FROM holidays WHERE date >= $1 AND date < $2 ORDER BY date`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	defer rows.Close()
	var out []*entity.Holiday
	for rows.Next() {
		var h entity.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.Multiplier, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan holiday: %w", err)
		}
		out = append(out, &h)
	}
	return out, rows.Err()
}

// Upsert crea el feriado o reemplaza nombre y multiplicador del existente en la misma fecha.
func (r *HolidayRepo) Upsert(ctx context.Context, h *entity.Holiday) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	var multiplier *float64
	if h.Multiplier > 0 {
		multiplier = &h.Multiplier
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO holidays (id, date, name, multiplier, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (date) DO UPDATE SET name = EXCLUDED.name, multiplier = EXCLUDED.multiplier`,
		h.ID, h.Date, h.Name, multiplier, h.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert holiday %s: %w", h.Date.Format(target.DateLayout), err)
	}
	return nil
}
