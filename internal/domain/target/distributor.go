package target

import (
	"sort"
	"time"
)

// Specification entrada inmutable del motor de distribución (meta mensual de una sucursal).
type Specification struct {
	BranchID    string
	Month       time.Month
	Year        int
	TotalAmount float64
	Weights     WeekdayWeights
	SpecialDays []SpecialDay
}

// DayAllocation meta asignada a un día, con el multiplicador efectivo que la produjo.
type DayAllocation struct {
	Date       time.Time
	Weekday    time.Weekday
	Multiplier float64
	Special    *SpecialDay // nil si el día usa el peso de su día de la semana
	Amount     float64
}

// Key devuelve la fecha en formato YYYY-MM-DD.
func (d DayAllocation) Key() string {
	return d.Date.Format(DateLayout)
}

// DailyTargets mapa fecha ISO -> meta diaria. Siempre se reemplaza completo.
type DailyTargets map[string]float64

// Keys devuelve las fechas ordenadas cronológicamente.
func (t DailyTargets) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ComputeDailyTargets reparte la meta mensual entre todos los días del mes.
//
// Si TotalAmount <= 0 devuelve un mapa vacío. Si todos los multiplicadores son cero,
// devuelve un mapa con cada día del mes en cero.
func ComputeDailyTargets(spec Specification) DailyTargets {
	days := Allocate(spec)
	out := make(DailyTargets, len(days))
	for _, d := range days {
		out[d.Key()] = d.Amount
	}
	return out
}

// Allocate ejecuta la distribución proporcional en dos pasadas y devuelve los días en orden.
//
//  1. Suma de pesos: multiplicador efectivo de cada día (día especial o peso semanal).
//  2. Asignación: meta * multiplicador / pesoTotal.
//
// No se redondea a centavos: la suma coincide con la meta salvo error de punto flotante.
func Allocate(spec Specification) []DayAllocation {
	if !(spec.TotalAmount > 0) || spec.Month < time.January || spec.Month > time.December {
		return nil
	}

	overrides := indexSpecialDays(spec.SpecialDays)
	n := DaysInMonth(spec.Year, spec.Month)
	days := make([]DayAllocation, n)

	var totalWeight float64
	for i := 0; i < n; i++ {
		date := Date(spec.Year, spec.Month, i+1)
		d := DayAllocation{Date: date, Weekday: date.Weekday()}
		if sd, ok := overrides[date.Format(DateLayout)]; ok {
			d.Multiplier = sd.Multiplier
			d.Special = sd
		} else {
			d.Multiplier = spec.Weights.Weight(d.Weekday)
		}
		totalWeight += d.Multiplier
		days[i] = d
	}

	if totalWeight <= 0 {
		return days
	}
	for i := range days {
		days[i].Amount = spec.TotalAmount * days[i].Multiplier / totalWeight
	}
	return days
}

// indexSpecialDays indexa los días especiales por fecha. Ante fechas repetidas gana la primera.
func indexSpecialDays(list []SpecialDay) map[string]*SpecialDay {
	idx := make(map[string]*SpecialDay, len(list))
	for i := range list {
		key := list[i].Key()
		if _, seen := idx[key]; seen {
			continue
		}
		sd := list[i]
		idx[key] = &sd
	}
	return idx
}
