package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesResult venta registrada en el diario de un día para una sucursal.
// Lo produce la DB; el use case lo compara contra la meta diaria.
type DailySalesResult struct {
	Date       time.Time
	TotalSales decimal.Decimal
}

// SalesRepository consultas de solo lectura sobre los diarios de venta existentes.
type SalesRepository interface {
	// GetDailySales devuelve las ventas por día de la sucursal en el rango [from, to].
	// Los días sin diario no aparecen en el resultado.
	GetDailySales(ctx context.Context, branchID string, from, to time.Time) ([]DailySalesResult, error)
}
