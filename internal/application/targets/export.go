package targets

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Metas-api/internal/domain"
	"github.com/jhoicas/Metas-api/internal/domain/entity"
	"github.com/jhoicas/Metas-api/internal/domain/repository"
)

// ExportedFile documento listo para descargar.
type ExportedFile struct {
	Content     []byte
	ContentType string
	FileName    string
}

// ExportUseCase genera el cronograma de metas diarias en PDF o Excel.
type ExportUseCase struct {
	repo      repository.MonthlyTargetRepository
	branches  repository.BranchRepository
	renderers map[string]ScheduleRenderer
	now       func() time.Time
}

// NewExportUseCase construye el caso de uso. renderers se indexa por formato ("pdf", "xlsx").
func NewExportUseCase(
	repo repository.MonthlyTargetRepository,
	branches repository.BranchRepository,
	renderers map[string]ScheduleRenderer,
) *ExportUseCase {
	return &ExportUseCase{repo: repo, branches: branches, renderers: renderers, now: time.Now}
}

// Export devuelve el documento de la meta en el formato pedido.
// ErrInvalidInput si el formato no está soportado; nil si la meta no existe.
func (uc *ExportUseCase) Export(ctx context.Context, companyID, id, format string) (*ExportedFile, error) {
	renderer, ok := uc.renderers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("formato %q: %w", format, domain.ErrInvalidInput)
	}
	mt, err := loadOwned(ctx, uc.repo, companyID, id)
	if err != nil || mt == nil {
		return nil, err
	}
	branch, err := uc.branches.GetByID(mt.BranchID)
	if err != nil {
		return nil, fmt.Errorf("export: obtener sucursal: %w", err)
	}

	report := buildScheduleReport(mt, branch, uc.now())
	content, err := renderer.Render(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("export: generar %s: %w", format, err)
	}
	code := mt.BranchID
	if branch != nil && branch.Code != "" {
		code = branch.Code
	}
	return &ExportedFile{
		Content:     content,
		ContentType: renderer.ContentType(),
		FileName:    fmt.Sprintf("metas_%s_%d-%02d.%s", code, mt.Year, mt.Month, renderer.Extension()),
	}, nil
}

func buildScheduleReport(mt *entity.MonthlyTarget, branch *entity.Branch, now time.Time) *ScheduleReport {
	rows := make([]ScheduleRow, 0, len(mt.Days))
	for _, d := range mt.Days {
		rows = append(rows, ScheduleRow{
			Date:       d.Date,
			Multiplier: d.Multiplier,
			SpecialDay: d.SpecialDayName,
			Amount:     d.Amount,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })

	r := &ScheduleReport{
		Month:        time.Month(mt.Month),
		Year:         mt.Year,
		TargetAmount: mt.TargetAmount,
		Rows:         rows,
		GeneratedAt:  now,
	}
	if branch != nil {
		r.BranchCode = branch.Code
		r.BranchName = branch.Name
	}
	if len(rows) == 0 {
		return r
	}
	r.Max, r.Min = rows[0].Amount, rows[0].Amount
	for _, row := range rows {
		r.Total = r.Total.Add(row.Amount)
		if row.Amount.GreaterThan(r.Max) {
			r.Max = row.Amount
		}
		if row.Amount.LessThan(r.Min) {
			r.Min = row.Amount
		}
	}
	r.Average = r.Total.Div(decimal.NewFromInt(int64(len(rows))))
	return r
}
