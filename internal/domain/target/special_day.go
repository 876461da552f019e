package target

import (
	"fmt"
	"time"
)

// DateLayout formato ISO de las claves del mapa de metas diarias.
const DateLayout = "2006-01-02"

// Category clasifica un día especial.
type Category string

// Categorías válidas de día especial.
const (
	CategoryHoliday   Category = "holiday"
	CategoryPromotion Category = "promotion"
	CategoryEvent     Category = "event"
)

// IsValid indica si la categoría es una de las conocidas.
func (c Category) IsValid() bool {
	switch c {
	case CategoryHoliday, CategoryPromotion, CategoryEvent:
		return true
	}
	return false
}

// SpecialDay sobrescribe el peso de una fecha concreta. Su multiplicador reemplaza
// (no multiplica) el peso del día de la semana.
type SpecialDay struct {
	Date       time.Time
	Name       string
	Multiplier float64
	Category   Category
}

// Key devuelve la fecha del día especial en formato YYYY-MM-DD.
func (s SpecialDay) Key() string {
	return s.Date.Format(DateLayout)
}

// Date construye una fecha a medianoche UTC (precisión de día).
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate interpreta una fecha YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return t, nil
}

// DaysInMonth devuelve la cantidad de días del mes en el calendario gregoriano.
func DaysInMonth(year int, month time.Month) int {
	// El día 0 del mes siguiente es el último día del mes pedido.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
