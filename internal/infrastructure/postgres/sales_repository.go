package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Metas-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo lectura de los diarios de venta (daily_journals). Esta API no los escribe.
type SalesRepo struct {
	pool *pgxpool.Pool
}

// NewSalesRepository construye el adaptador de solo lectura.
func NewSalesRepository(pool *pgxpool.Pool) *SalesRepo {
	return &SalesRepo{pool: pool}
}

// GetDailySales devuelve la venta total por día de la sucursal en [from, to], ordenada por fecha.
func (r *SalesRepo) GetDailySales(ctx context.Context, branchID string, from, to time.Time) ([]repository.DailySalesResult, error) {
	query := `
		SELECT journal_date, COALESCE(SUM(total_sales), 0)
		FROM daily_journals
		WHERE branch_id = $1 AND journal_date BETWEEN $2 AND $3
		GROUP BY journal_date
		ORDER BY journal_date`
	rows, err := r.pool.Query(ctx, query, branchID, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily sales: %w", err)
	}
	defer rows.Close()
	var out []repository.DailySalesResult
	for rows.Next() {
		var d repository.DailySalesResult
		if err := rows.Scan(&d.Date, &d.TotalSales); err != nil {
			return nil, fmt.Errorf("scan daily sales: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
