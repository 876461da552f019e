package targets

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Metas-api/internal/application/dto"
	"github.com/jhoicas/Metas-api/internal/domain/repository"
	"github.com/jhoicas/Metas-api/internal/domain/target"
)

var hundred = decimal.NewFromInt(100)

// ProgressUseCase compara la meta diaria contra la venta registrada en los diarios.
// Solo lee: no agrega ventas, toma el total ya cerrado de cada día.
type ProgressUseCase struct {
	repo  repository.MonthlyTargetRepository
	sales repository.SalesRepository
	cache ProgressCache
	now   func() time.Time
}

// NewProgressUseCase construye el caso de uso.
func NewProgressUseCase(
	repo repository.MonthlyTargetRepository,
	sales repository.SalesRepository,
	cache ProgressCache,
) *ProgressUseCase {
	return &ProgressUseCase{repo: repo, sales: sales, cache: cache, now: time.Now}
}

// WithClock reemplaza el reloj usado para calcular el corte "a la fecha".
func (uc *ProgressUseCase) WithClock(now func() time.Time) *ProgressUseCase {
	uc.now = now
	return uc
}

// Progress devuelve el avance de la meta; nil si no existe o es de otra empresa.
func (uc *ProgressUseCase) Progress(ctx context.Context, companyID, id string) (*dto.TargetProgressDTO, error) {
	mt, err := loadOwned(ctx, uc.repo, companyID, id)
	if err != nil || mt == nil {
		return nil, err
	}

	now := uc.now().UTC()
	asOf := target.Date(now.Year(), now.Month(), now.Day())

	// Una entrada de otro día ya no refleja el corte "a la fecha".
	if cached, ok, err := uc.cache.GetProgress(ctx, mt.ID); err != nil {
		log.Warn().Err(err).Str("target_id", mt.ID).Msg("lectura de caché de avance")
	} else if ok && cached.AsOf == asOf.Format(target.DateLayout) {
		return cached, nil
	}

	from := target.Date(mt.Year, time.Month(mt.Month), 1)
	to := target.Date(mt.Year, time.Month(mt.Month), target.DaysInMonth(mt.Year, time.Month(mt.Month)))
	sales, err := uc.sales.GetDailySales(ctx, mt.BranchID, from, to)
	if err != nil {
		return nil, fmt.Errorf("progreso: ventas diarias: %w", err)
	}
	actualByDay := make(map[string]decimal.Decimal, len(sales))
	for _, s := range sales {
		key := s.Date.Format(target.DateLayout)
		actualByDay[key] = actualByDay[key].Add(s.TotalSales)
	}

	days := make([]dto.DayProgressDTO, 0, len(mt.Days))
	sorted := append(mt.Days[:0:0], mt.Days...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	targetToDate, actualToDate, actualMonth := decimal.Zero, decimal.Zero, decimal.Zero
	for _, d := range sorted {
		key := d.Date.Format(target.DateLayout)
		actual, has := actualByDay[key]
		days = append(days, dto.DayProgressDTO{
			Date:        key,
			Target:      d.Amount.Round(2),
			Actual:      actual.Round(2),
			Difference:  actual.Sub(d.Amount).Round(2),
			Achievement: achievement(actual, d.Amount),
			HasSales:    has,
		})
		actualMonth = actualMonth.Add(actual)
		if !d.Date.After(asOf) {
			targetToDate = targetToDate.Add(d.Amount)
			actualToDate = actualToDate.Add(actual)
		}
	}

	out := &dto.TargetProgressDTO{
		TargetID:          mt.ID,
		BranchID:          mt.BranchID,
		Month:             mt.Month,
		Year:              mt.Year,
		TargetAmount:      mt.TargetAmount,
		TargetToDate:      targetToDate.Round(2),
		ActualToDate:      actualToDate.Round(2),
		AchievementToDate: achievement(actualToDate, targetToDate),
		MonthAchievement:  achievement(actualMonth, mt.TargetAmount),
		AsOf:              asOf.Format(target.DateLayout),
		Days:              days,
	}

	if err := uc.cache.SetProgress(ctx, mt.ID, out); err != nil {
		log.Warn().Err(err).Str("target_id", mt.ID).Msg("escritura de caché de avance")
	}
	return out, nil
}

// achievement porcentaje actual/meta con dos decimales; cero si la meta es cero.
func achievement(actual, goal decimal.Decimal) decimal.Decimal {
	if goal.IsZero() {
		return decimal.Zero
	}
	return actual.Div(goal).Mul(hundred).Round(2)
}
