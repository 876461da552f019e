package targets

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Metas-api/internal/application/dto"
	"github.com/jhoicas/Metas-api/internal/domain/entity"
	"github.com/jhoicas/Metas-api/internal/domain/repository"
	"github.com/jhoicas/Metas-api/internal/domain/target"
)

// QueryUseCase consultas de metas persistidas, siempre acotadas a la empresa del token.
type QueryUseCase struct {
	repo repository.MonthlyTargetRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(repo repository.MonthlyTargetRepository) *QueryUseCase {
	return &QueryUseCase{repo: repo}
}

// Get devuelve la meta por ID o nil si no existe o pertenece a otra empresa.
func (uc *QueryUseCase) Get(ctx context.Context, companyID, id string) (*dto.MonthlyTargetResponse, error) {
	mt, err := loadOwned(ctx, uc.repo, companyID, id)
	if err != nil || mt == nil {
		return nil, err
	}
	return toMonthlyTargetResponse(mt), nil
}

// List lista las metas de la empresa, opcionalmente filtradas por sucursal y año.
func (uc *QueryUseCase) List(
	ctx context.Context,
	companyID, branchID string,
	year, limit, offset int,
) (*dto.MonthlyTargetListResponse, error) {
	list, total, err := uc.repo.List(ctx, repository.MonthlyTargetFilter{
		CompanyID: companyID,
		BranchID:  branchID,
		Year:      year,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, fmt.Errorf("listar metas: %w", err)
	}
	items := make([]dto.MonthlyTargetHeaderDTO, 0, len(list))
	for _, mt := range list {
		items = append(items, toMonthlyTargetHeader(mt))
	}
	return &dto.MonthlyTargetListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// SuggestionUseCase sugiere días especiales a partir del calendario de feriados.
type SuggestionUseCase struct {
	holidays          repository.HolidayRepository
	defaultMultiplier float64
}

// NewSuggestionUseCase construye el caso de uso. defaultMultiplier se aplica a los feriados
// sin multiplicador propio.
func NewSuggestionUseCase(holidays repository.HolidayRepository, defaultMultiplier float64) *SuggestionUseCase {
	if defaultMultiplier <= 0 {
		defaultMultiplier = target.DefaultWeight
	}
	return &SuggestionUseCase{holidays: holidays, defaultMultiplier: defaultMultiplier}
}

// Suggest devuelve los feriados del mes como días especiales de categoría holiday.
func (uc *SuggestionUseCase) Suggest(ctx context.Context, year int, month time.Month) (*dto.SpecialDaySuggestionsResponse, error) {
	list, err := uc.holidays.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("feriados del mes: %w", err)
	}
	items := make([]dto.SpecialDayDTO, 0, len(list))
	for _, h := range list {
		m := h.Multiplier
		if m <= 0 {
			m = uc.defaultMultiplier
		}
		items = append(items, dto.SpecialDayDTO{
			Date:       h.Date.Format(target.DateLayout),
			Name:       h.Name,
			Multiplier: m,
			Category:   string(target.CategoryHoliday),
		})
	}
	return &dto.SpecialDaySuggestionsResponse{Year: year, Month: int(month), Items: items}, nil
}

func loadOwned(ctx context.Context, repo repository.MonthlyTargetRepository, companyID, id string) (*entity.MonthlyTarget, error) {
	mt, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener meta: %w", err)
	}
	if mt == nil || mt.CompanyID != companyID {
		return nil, nil
	}
	return mt, nil
}
