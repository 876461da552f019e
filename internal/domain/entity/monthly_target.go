package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Metas-api/internal/domain/target"
)

// MonthlyTarget meta mensual persistida de una sucursal (única por empresa/sucursal/mes/año).
// Guarda la especificación completa y la distribución diaria calculada al momento de enviar.
type MonthlyTarget struct {
	ID           string
	CompanyID    string
	BranchID     string
	Month        int
	Year         int
	TargetAmount decimal.Decimal
	Weights      target.WeekdayWeights
	SpecialDays  []target.SpecialDay
	Days         []MonthlyTargetDay
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MonthlyTargetDay meta asignada a un día del mes.
type MonthlyTargetDay struct {
	Date           time.Time
	Multiplier     float64
	SpecialDayName string // vacío si el día usa el peso semanal
	Amount         decimal.Decimal
}

// Specification reconstruye la especificación de entrada del motor de distribución.
func (m *MonthlyTarget) Specification() target.Specification {
	amount, _ := m.TargetAmount.Float64()
	special := make([]target.SpecialDay, len(m.SpecialDays))
	copy(special, m.SpecialDays)
	return target.Specification{
		BranchID:    m.BranchID,
		Month:       time.Month(m.Month),
		Year:        m.Year,
		TotalAmount: amount,
		Weights:     m.Weights,
		SpecialDays: special,
	}
}

// SetAllocation reemplaza por completo los días con la distribución calculada.
// Los montos se convierten a decimal sin redondear.
func (m *MonthlyTarget) SetAllocation(days []target.DayAllocation) {
	m.Days = make([]MonthlyTargetDay, 0, len(days))
	for _, d := range days {
		row := MonthlyTargetDay{
			Date:       d.Date,
			Multiplier: d.Multiplier,
			Amount:     decimal.NewFromFloat(d.Amount),
		}
		if d.Special != nil {
			row.SpecialDayName = d.Special.Name
		}
		m.Days = append(m.Days, row)
	}
}

// DayAmount devuelve la meta del día indicado (cero si no existe).
func (m *MonthlyTarget) DayAmount(date time.Time) decimal.Decimal {
	key := date.Format(target.DateLayout)
	for _, d := range m.Days {
		if d.Date.Format(target.DateLayout) == key {
			return d.Amount
		}
	}
	return decimal.Zero
}
