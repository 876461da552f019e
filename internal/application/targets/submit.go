package targets

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Metas-api/internal/application/dto"
	"github.com/jhoicas/Metas-api/internal/domain"
	"github.com/jhoicas/Metas-api/internal/domain/entity"
	"github.com/jhoicas/Metas-api/internal/domain/repository"
	"github.com/jhoicas/Metas-api/internal/domain/target"
)

// SubmitUseCase valida, recalcula y persiste la meta mensual enviada por el formulario.
//
// La distribución diaria siempre se recalcula en el servidor a partir de la especificación;
// el mapa que envía el cliente no se guarda. No hay reintentos: si la persistencia falla
// el error vuelve al cliente, que conserva el formulario para reenviarlo.
type SubmitUseCase struct {
	tx       TxRunner
	branches repository.BranchRepository
	cache    ProgressCache
	limits   target.FormLimits
	now      func() time.Time
}

// NewSubmitUseCase construye el caso de uso con los límites del formulario por defecto.
func NewSubmitUseCase(tx TxRunner, branches repository.BranchRepository, cache ProgressCache) *SubmitUseCase {
	return &SubmitUseCase{
		tx:       tx,
		branches: branches,
		cache:    cache,
		limits:   target.DefaultFormLimits,
		now:      time.Now,
	}
}

// WithLimits reemplaza los rangos del formulario usados al validar.
func (uc *SubmitUseCase) WithLimits(l target.FormLimits) *SubmitUseCase {
	uc.limits = l
	return uc
}

// Submit persiste la meta del periodo. Si ya existía una para la misma sucursal, mes y año,
// se reemplaza por completo.
func (uc *SubmitUseCase) Submit(
	ctx context.Context,
	companyID, userID string,
	in dto.MonthlyTargetRequest,
) (*dto.MonthlyTargetResponse, error) {
	spec, err := ToSpecification(in)
	if err != nil {
		return nil, err
	}
	if errs := target.Validate(spec, uc.limits); len(errs) > 0 {
		return nil, &target.ValidationError{Fields: errs}
	}

	branch, err := uc.branches.GetByID(spec.BranchID)
	if err != nil {
		return nil, fmt.Errorf("submit: obtener sucursal: %w", err)
	}
	if branch == nil || branch.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if !branch.IsActive() {
		return nil, domain.ErrBranchInactive
	}

	now := uc.now()
	mt := &entity.MonthlyTarget{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		BranchID:     branch.ID,
		Month:        int(spec.Month),
		Year:         spec.Year,
		TargetAmount: decimal.NewFromFloat(spec.TotalAmount),
		Weights:      spec.Weights,
		SpecialDays:  spec.SpecialDays,
		CreatedBy:    userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	mt.SetAllocation(target.Allocate(spec))

	var stored *entity.MonthlyTarget
	err = uc.tx.RunTargets(ctx, func(repo repository.MonthlyTargetRepository) error {
		id, err := repo.Upsert(ctx, mt)
		if err != nil {
			return err
		}
		stored, err = repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if stored == nil {
			return fmt.Errorf("meta %s no encontrada tras guardar", id)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("submit: guardar meta: %w", err)
	}

	if err := uc.cache.InvalidateTarget(ctx, stored.ID); err != nil {
		log.Warn().Err(err).Str("target_id", stored.ID).Msg("no se pudo invalidar el caché de avance")
	}
	return toMonthlyTargetResponse(stored), nil
}
