// Package target contiene el motor de distribución de metas mensuales: reparte una meta
// de ventas del mes entre cada día calendario según el peso del día de la semana y los
// días especiales (feriados, promociones, eventos).
//
// El paquete es puro: sin I/O, sin estado compartido y sin dependencias de infraestructura.
package target

import (
	"math"
	"time"
)

// DefaultWeight peso usado para un día de la semana sin valor explícito.
const DefaultWeight = 1.0

// WeekdayWeights multiplicador por día de la semana, indexado por time.Weekday (0=domingo).
// Al ser un arreglo de tamaño fijo, los siete días siempre están presentes.
type WeekdayWeights [7]float64

// DefaultWeekdayWeights devuelve los pesos por defecto del formulario de metas.
func DefaultWeekdayWeights() WeekdayWeights {
	return WeekdayWeights{
		time.Sunday:    1.0,
		time.Monday:    0.8,
		time.Tuesday:   0.8,
		time.Wednesday: 0.9,
		time.Thursday:  1.0,
		time.Friday:    1.5,
		time.Saturday:  1.2,
	}
}

// WeekdayWeightsFromMap construye el vector a partir de un mapa parcial.
// Los días ausentes toman DefaultWeight (política de respaldo, no error).
func WeekdayWeightsFromMap(m map[time.Weekday]float64) WeekdayWeights {
	var w WeekdayWeights
	for d := time.Sunday; d <= time.Saturday; d++ {
		v, ok := m[d]
		if !ok {
			v = DefaultWeight
		}
		w[d] = v
	}
	return w
}

// Weight devuelve el peso del día indicado.
func (w WeekdayWeights) Weight(d time.Weekday) float64 {
	if d < time.Sunday || d > time.Saturday {
		return DefaultWeight
	}
	return w[d]
}

// With devuelve una copia con el peso de un día reemplazado.
func (w WeekdayWeights) With(d time.Weekday, v float64) WeekdayWeights {
	if d >= time.Sunday && d <= time.Saturday {
		w[d] = v
	}
	return w
}

// Map devuelve los pesos como mapa (serialización hacia la capa de persistencia).
func (w WeekdayWeights) Map() map[time.Weekday]float64 {
	m := make(map[time.Weekday]float64, len(w))
	for i, v := range w {
		m[time.Weekday(i)] = v
	}
	return m
}

// IsValid indica si todos los pesos son finitos y no negativos.
func (w WeekdayWeights) IsValid() bool {
	for _, v := range w {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
