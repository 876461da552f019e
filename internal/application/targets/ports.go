// Package targets contiene los casos de uso de metas mensuales: vista previa de la
// distribución, envío y persistencia, consulta, avance contra ventas reales y exportación.
package targets

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Metas-api/internal/application/dto"
	"github.com/jhoicas/Metas-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con el repositorio de metas atado a ella.
type TxRunner interface {
	RunTargets(ctx context.Context, fn func(repo repository.MonthlyTargetRepository) error) error
}

// ProgressCache caché del reporte de avance (meta vs venta real).
// Una implementación deshabilitada nunca encuentra nada.
type ProgressCache interface {
	GetProgress(ctx context.Context, targetID string) (*dto.TargetProgressDTO, bool, error)
	SetProgress(ctx context.Context, targetID string, progress *dto.TargetProgressDTO) error
	InvalidateTarget(ctx context.Context, targetID string) error
}

// ScheduleRow fila del cronograma exportado.
type ScheduleRow struct {
	Date       time.Time
	Multiplier float64
	SpecialDay string
	Amount     decimal.Decimal
}

// ScheduleReport datos del cronograma de metas para PDF/Excel.
type ScheduleReport struct {
	BranchCode   string
	BranchName   string
	Month        time.Month
	Year         int
	TargetAmount decimal.Decimal
	Total        decimal.Decimal
	Average      decimal.Decimal
	Max          decimal.Decimal
	Min          decimal.Decimal
	Rows         []ScheduleRow
	GeneratedAt  time.Time
}

// ScheduleRenderer genera el documento del cronograma en un formato concreto.
type ScheduleRenderer interface {
	Render(ctx context.Context, report *ScheduleReport) ([]byte, error)
	ContentType() string
	Extension() string
}
