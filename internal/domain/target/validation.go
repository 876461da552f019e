package target

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Códigos de error de validación.
const (
	CodeRequired     = "REQUIRED"
	CodeOutOfRange   = "OUT_OF_RANGE"
	CodeNotPositive  = "NOT_POSITIVE"
	CodeOutsideMonth = "OUTSIDE_MONTH"
	CodeDuplicate    = "DUPLICATE"
	CodeInvalid      = "INVALID"
)

// FormLimits rangos que el formulario de metas permite editar.
// El motor de distribución acepta cualquier valor no negativo; estos límites solo
// aplican al validar una solicitud.
type FormLimits struct {
	MinWeekdayWeight float64
	MaxWeekdayWeight float64
	MinMultiplier    float64
	MaxMultiplier    float64
}

// DefaultFormLimits rangos de los controles del formulario.
var DefaultFormLimits = FormLimits{
	MinWeekdayWeight: 0.5,
	MaxWeekdayWeight: 2.5,
	MinMultiplier:    0.5,
	MaxMultiplier:    3.0,
}

// FieldError error de un campo concreto de la especificación.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError agrupa los errores de campo de una especificación.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "especificación inválida: " + strings.Join(parts, "; ")
}

// CheckNonNegative revisa solo lo que exige el motor de distribución: pesos y
// multiplicadores finitos y no negativos. No aplica los rangos del formulario.
func CheckNonNegative(spec Specification) []FieldError {
	var errs []FieldError
	for d := time.Sunday; d <= time.Saturday; d++ {
		if !nonNegative(spec.Weights[d]) {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("weekday_weights.%d", int(d)),
				Code:    CodeInvalid,
				Message: fmt.Sprintf("el peso de %s debe ser un número no negativo", d),
			})
		}
	}
	for i, sd := range spec.SpecialDays {
		if !nonNegative(sd.Multiplier) {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("special_days[%d].multiplier", i),
				Code:    CodeInvalid,
				Message: "el multiplicador debe ser un número no negativo",
			})
		}
	}
	return errs
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Validate revisa la especificación contra las reglas del formulario.
// Devuelve nil si no hay errores. No forma parte del cálculo de distribución.
func Validate(spec Specification, limits FormLimits) []FieldError {
	var errs []FieldError
	add := func(field, code, format string, args ...any) {
		errs = append(errs, FieldError{Field: field, Code: code, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(spec.BranchID) == "" {
		add("branch_id", CodeRequired, "la sucursal es requerida")
	}
	monthOK := spec.Month >= time.January && spec.Month <= time.December
	if !monthOK {
		add("month", CodeOutOfRange, "el mes debe estar entre 1 y 12")
	}
	if spec.Year <= 0 {
		add("year", CodeNotPositive, "el año debe ser positivo")
	}
	if !(spec.TotalAmount > 0) || math.IsInf(spec.TotalAmount, 0) {
		add("target_amount", CodeNotPositive, "la meta mensual debe ser mayor que cero")
	}

	for d := time.Sunday; d <= time.Saturday; d++ {
		w := spec.Weights[d]
		field := fmt.Sprintf("weekday_weights.%d", int(d))
		if !nonNegative(w) {
			add(field, CodeInvalid, "el peso de %s debe ser un número no negativo", d)
			continue
		}
		if w < limits.MinWeekdayWeight || w > limits.MaxWeekdayWeight {
			add(field, CodeOutOfRange, "el peso de %s debe estar entre %.1f y %.1f",
				d, limits.MinWeekdayWeight, limits.MaxWeekdayWeight)
		}
	}

	seen := make(map[string]int, len(spec.SpecialDays))
	for i, sd := range spec.SpecialDays {
		prefix := fmt.Sprintf("special_days[%d]", i)
		if sd.Date.IsZero() {
			add(prefix+".date", CodeRequired, "la fecha es requerida")
		} else {
			if monthOK && (sd.Date.Year() != spec.Year || sd.Date.Month() != spec.Month) {
				add(prefix+".date", CodeOutsideMonth, "la fecha %s no pertenece al mes %02d/%d",
					sd.Key(), int(spec.Month), spec.Year)
			}
			if j, dup := seen[sd.Key()]; dup {
				add(prefix+".date", CodeDuplicate, "la fecha %s ya está en special_days[%d]", sd.Key(), j)
			} else {
				seen[sd.Key()] = i
			}
		}
		if strings.TrimSpace(sd.Name) == "" {
			add(prefix+".name", CodeRequired, "el nombre es requerido")
		}
		if !sd.Category.IsValid() {
			add(prefix+".category", CodeInvalid, "categoría %q no válida (holiday, promotion, event)", sd.Category)
		}
		m := sd.Multiplier
		switch {
		case !nonNegative(m):
			add(prefix+".multiplier", CodeInvalid, "el multiplicador debe ser un número no negativo")
		case m < limits.MinMultiplier || m > limits.MaxMultiplier:
			add(prefix+".multiplier", CodeOutOfRange, "el multiplicador debe estar entre %.1f y %.1f",
				limits.MinMultiplier, limits.MaxMultiplier)
		}
	}
	return errs
}
