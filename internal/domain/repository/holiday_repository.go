package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Metas-api/internal/domain/entity"
)

// HolidayRepository puerto del calendario de feriados.
type HolidayRepository interface {
	ListByMonth(ctx context.Context, year int, month time.Month) ([]*entity.Holiday, error)
	Upsert(ctx context.Context, h *entity.Holiday) error
}
