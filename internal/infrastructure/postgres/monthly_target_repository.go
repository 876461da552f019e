package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Metas-api/internal/domain/entity"
	"github.com/jhoicas/Metas-api/internal/domain/repository"
	"github.com/jhoicas/Metas-api/internal/domain/target"
)

var _ repository.MonthlyTargetRepository = (*MonthlyTargetRepo)(nil)

// MonthlyTargetRepo metas mensuales sobre PostgreSQL (usable con pool o tx).
// Tablas: monthly_targets (cabecera, única por empresa/sucursal/mes/año),
// monthly_target_days y monthly_target_special_days.
type MonthlyTargetRepo struct {
	q Querier
}

// NewMonthlyTargetRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMonthlyTargetRepository(q Querier) *MonthlyTargetRepo {
	return &MonthlyTargetRepo{q: q}
}

const monthlyTargetColumns = `id, company_id, branch_id, month, year, target_amount, weekday_weights, created_by, created_at, updated_at`

// Upsert inserta la cabecera o actualiza la del mismo periodo y reescribe días y días especiales.
// Debe ejecutarse dentro de una transacción (ver TxRunner.RunTargets).
func (r *MonthlyTargetRepo) Upsert(ctx context.Context, t *entity.MonthlyTarget) (string, error) {
	weights, err := json.Marshal(t.Weights)
	if err != nil {
		return "", fmt.Errorf("encode weekday weights: %w", err)
	}
	query := `
		INSERT INTO monthly_targets (` + monthlyTargetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (company_id, branch_id, month, year)
		DO UPDATE SET target_amount = EXCLUDED.target_amount,
			weekday_weights = EXCLUDED.weekday_weights,
			updated_at = EXCLUDED.updated_at
		RETURNING id`
	var id string
	err = r.q.QueryRow(ctx, query,
		t.ID, t.CompanyID, t.BranchID, t.Month, t.Year, t.TargetAmount, string(weights),
		t.CreatedBy, t.CreatedAt, t.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("upsert monthly target: %w", err)
	}

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM monthly_target_days WHERE target_id = $1`, id)
	batch.Queue(`DELETE FROM monthly_target_special_days WHERE target_id = $1`, id)
	for _, d := range t.Days {
		batch.Queue(`
			INSERT INTO monthly_target_days (target_id, date, multiplier, special_day_name, amount)
			VALUES ($1, $2, $3, $4, $5)`,
			id, d.Date, d.Multiplier, d.SpecialDayName, d.Amount)
	}
	for i, sd := range t.SpecialDays {
		batch.Queue(`
			INSERT INTO monthly_target_special_days (target_id, position, date, name, multiplier, category)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			id, i, sd.Date, sd.Name, sd.Multiplier, string(sd.Category))
	}
	br := r.q.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return "", fmt.Errorf("write monthly target rows: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return "", fmt.Errorf("close batch: %w", err)
	}
	return id, nil
}

// GetByID obtiene la meta con sus días y días especiales. nil si no existe.
func (r *MonthlyTargetRepo) GetByID(ctx context.Context, id string) (*entity.MonthlyTarget, error) {
	row := r.q.QueryRow(ctx, `SELECT `+monthlyTargetColumns+` FROM monthly_targets WHERE id = $1`, id)
	return r.loadFull(ctx, row)
}

// GetByPeriod obtiene la meta de una sucursal para un mes. nil si no existe.
func (r *MonthlyTargetRepo) GetByPeriod(ctx context.Context, companyID, branchID string, month, year int) (*entity.MonthlyTarget, error) {
	row := r.q.QueryRow(ctx, `
		SELECT `+monthlyTargetColumns+` FROM monthly_targets
		WHERE company_id = $1 AND branch_id = $2 AND month = $3 AND year = $4`,
		companyID, branchID, month, year)
	return r.loadFull(ctx, row)
}

// List devuelve solo cabeceras (sin días) y el total de filas que cumplen el filtro.
func (r *MonthlyTargetRepo) List(ctx context.Context, f repository.MonthlyTargetFilter) ([]*entity.MonthlyTarget, int, error) {
	where := []string{"company_id = $1"}
	args := []any{f.CompanyID}
	pos := 2
	if f.BranchID != "" {
		where = append(where, fmt.Sprintf("branch_id = $%d", pos))
		args = append(args, f.BranchID)
		pos++
	}
	if f.Year != 0 {
		where = append(where, fmt.Sprintf("year = $%d", pos))
		args = append(args, f.Year)
		pos++
	}
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() FROM monthly_targets
		WHERE %s
		ORDER BY year DESC, month DESC, branch_id
		LIMIT $%d OFFSET $%d`,
		monthlyTargetColumns, strings.Join(where, " AND "), pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list monthly targets: %w", err)
	}
	defer rows.Close()
	var (
		list  []*entity.MonthlyTarget
		total int
	)
	for rows.Next() {
		mt, err := scanMonthlyTarget(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, mt)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list monthly targets: %w", err)
	}
	return list, total, nil
}

func (r *MonthlyTargetRepo) loadFull(ctx context.Context, row pgx.Row) (*entity.MonthlyTarget, error) {
	mt, err := scanMonthlyTarget(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	if mt.Days, err = r.days(ctx, mt.ID); err != nil {
		return nil, err
	}
	if mt.SpecialDays, err = r.specialDays(ctx, mt.ID); err != nil {
		return nil, err
	}
	return mt, nil
}

func (r *MonthlyTargetRepo) days(ctx context.Context, targetID string) ([]entity.MonthlyTargetDay, error) {
	rows, err := r.q.Query(ctx, `
		SELECT date, multiplier, special_day_name, amount
		FROM monthly_target_days WHERE target_id = $1 ORDER BY date`, targetID)
	if err != nil {
		return nil, fmt.Errorf("get monthly target days: %w", err)
	}
	defer rows.Close()
	var out []entity.MonthlyTargetDay
	for rows.Next() {
		var d entity.MonthlyTargetDay
		if err := rows.Scan(&d.Date, &d.Multiplier, &d.SpecialDayName, &d.Amount); err != nil {
			return nil, fmt.Errorf("scan monthly target day: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *MonthlyTargetRepo) specialDays(ctx context.Context, targetID string) ([]target.SpecialDay, error) {
	rows, err := r.q.Query(ctx, `
		SELECT date, name, multiplier, category
		FROM monthly_target_special_days WHERE target_id = $1 ORDER BY position`, targetID)
	if err != nil {
		return nil, fmt.Errorf("get special days: %w", err)
	}
	defer rows.Close()
	var out []target.SpecialDay
	for rows.Next() {
		var (
			sd       target.SpecialDay
			category string
		)
		if err := rows.Scan(&sd.Date, &sd.Name, &sd.Multiplier, &category); err != nil {
			return nil, fmt.Errorf("scan special day: %w", err)
		}
		sd.Category = target.Category(category)
		out = append(out, sd)
	}
	return out, rows.Err()
}

// scanMonthlyTarget lee una cabecera; extra recibe columnas adicionales al final (ej. COUNT(*) OVER()).
func scanMonthlyTarget(row pgx.Row, extra ...any) (*entity.MonthlyTarget, error) {
	var (
		mt      entity.MonthlyTarget
		weights []byte
	)
	dest := append([]any{
		&mt.ID, &mt.CompanyID, &mt.BranchID, &mt.Month, &mt.Year, &mt.TargetAmount, &weights,
		&mt.CreatedBy, &mt.CreatedAt, &mt.UpdatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		if isNoRows(err) {
			return nil, err
		}
		return nil, fmt.Errorf("scan monthly target: %w", err)
	}
	mt.Weights = target.DefaultWeekdayWeights()
	if len(weights) > 0 {
		if err := json.Unmarshal(weights, &mt.Weights); err != nil {
			return nil, fmt.Errorf("decode weekday weights: %w", err)
		}
	}
	return &mt, nil
}
