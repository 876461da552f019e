package repository

import (
	"context"

	"github.com/jhoicas/Metas-api/internal/domain/entity"
)

// MonthlyTargetFilter filtros del listado de metas.
type MonthlyTargetFilter struct {
	CompanyID string
	BranchID  string // opcional
	Year      int    // opcional, 0 = todos
	Limit     int
	Offset    int
}

// MonthlyTargetRepository define el puerto de persistencia para metas mensuales.
type MonthlyTargetRepository interface {
	// Upsert crea la meta o reemplaza la existente del mismo periodo (empresa, sucursal, mes, año).
	// Los días y días especiales se reescriben completos. Devuelve el ID efectivo.
	Upsert(ctx context.Context, t *entity.MonthlyTarget) (string, error)
	GetByID(ctx context.Context, id string) (*entity.MonthlyTarget, error)
	GetByPeriod(ctx context.Context, companyID, branchID string, month, year int) (*entity.MonthlyTarget, error)
	List(ctx context.Context, f MonthlyTargetFilter) ([]*entity.MonthlyTarget, int, error)
}
