package target_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Metas-api/internal/domain/target"
)

func fieldCodes(errs []target.FieldError) map[string]string {
	m := make(map[string]string, len(errs))
	for _, e := range errs {
		m[e.Field] = e.Code
	}
	return m
}

func TestValidate_EspecificacionValida(t *testing.T) {
	spec := april2025(target.SpecialDay{
		Date: target.Date(2025, time.April, 10), Name: "Feriado", Multiplier: 2.5, Category: target.CategoryHoliday,
	})
	assert.Empty(t, target.Validate(spec, target.DefaultFormLimits))
}

func TestValidate_CamposBasicos(t *testing.T) {
	spec := target.Specification{Month: 13, Year: 0, TotalAmount: 0, Weights: target.DefaultWeekdayWeights()}

	codes := fieldCodes(target.Validate(spec, target.DefaultFormLimits))

	assert.Equal(t, target.CodeRequired, codes["branch_id"])
	assert.Equal(t, target.CodeOutOfRange, codes["month"])
	assert.Equal(t, target.CodeNotPositive, codes["year"])
	assert.Equal(t, target.CodeNotPositive, codes["target_amount"])
}

func TestValidate_PesosFueraDeRango(t *testing.T) {
	spec := april2025()
	spec.Weights = spec.Weights.With(time.Monday, 0.1).With(time.Friday, 3).With(time.Sunday, math.NaN())

	codes := fieldCodes(target.Validate(spec, target.DefaultFormLimits))

	assert.Equal(t, target.CodeOutOfRange, codes["weekday_weights.1"])
	assert.Equal(t, target.CodeOutOfRange, codes["weekday_weights.5"])
	assert.Equal(t, target.CodeInvalid, codes["weekday_weights.0"])
	assert.NotContains(t, codes, "weekday_weights.2")
}

func TestValidate_DiasEspeciales(t *testing.T) {
	spec := april2025(
		target.SpecialDay{Date: target.Date(2025, time.April, 5), Name: "Promo", Multiplier: 1.2, Category: target.CategoryPromotion},
		target.SpecialDay{Date: target.Date(2025, time.April, 5), Name: "", Multiplier: 4, Category: "fiesta"},
		target.SpecialDay{Date: target.Date(2025, time.May, 1), Name: "Mayo", Multiplier: 1, Category: target.CategoryHoliday},
		target.SpecialDay{Name: "Sin fecha", Multiplier: -1, Category: target.CategoryEvent},
	)

	errs := target.Validate(spec, target.DefaultFormLimits)
	codes := fieldCodes(errs)

	assert.NotContains(t, codes, "special_days[0].date")
	assert.Equal(t, target.CodeDuplicate, codes["special_days[1].date"])
	assert.Equal(t, target.CodeRequired, codes["special_days[1].name"])
	assert.Equal(t, target.CodeInvalid, codes["special_days[1].category"])
	assert.Equal(t, target.CodeOutOfRange, codes["special_days[1].multiplier"])
	assert.Equal(t, target.CodeOutsideMonth, codes["special_days[2].date"])
	assert.Equal(t, target.CodeRequired, codes["special_days[3].date"])
	assert.Equal(t, target.CodeInvalid, codes["special_days[3].multiplier"])
}

func TestCheckNonNegative_IgnoraRangosDelFormulario(t *testing.T) {
	spec := april2025(
		target.SpecialDay{Date: target.Date(2025, time.April, 10), Name: "Feriado", Multiplier: -5, Category: target.CategoryHoliday},
		target.SpecialDay{Date: target.Date(2025, time.April, 12), Name: "Promo", Multiplier: 9, Category: target.CategoryPromotion},
	)
	spec.Weights = spec.Weights.With(time.Friday, -3).With(time.Monday, 10).With(time.Sunday, math.Inf(1))

	codes := fieldCodes(target.CheckNonNegative(spec))

	assert.Equal(t, target.CodeInvalid, codes["weekday_weights.5"])
	assert.Equal(t, target.CodeInvalid, codes["weekday_weights.0"])
	assert.Equal(t, target.CodeInvalid, codes["special_days[0].multiplier"])
	assert.NotContains(t, codes, "weekday_weights.1")
	assert.NotContains(t, codes, "special_days[1].multiplier")
	assert.Len(t, codes, 3)
}

func TestValidationError_Mensaje(t *testing.T) {
	err := &target.ValidationError{Fields: []target.FieldError{
		{Field: "month", Code: target.CodeOutOfRange, Message: "fuera de rango"},
	}}
	require.Error(t, err)
	assert.Contains(t, err.Error(), "month: fuera de rango")
}

func TestWeekdayWeightsFromMap_DiasFaltantesUsanUno(t *testing.T) {
	w := target.WeekdayWeightsFromMap(map[time.Weekday]float64{time.Friday: 1.5})

	assert.Equal(t, 1.5, w.Weight(time.Friday))
	for _, d := range []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Saturday} {
		assert.Equal(t, target.DefaultWeight, w.Weight(d), "%s", d)
	}
	assert.True(t, w.IsValid())
	assert.False(t, w.With(time.Monday, -0.1).IsValid())
}

func TestWeekdayWeights_MapRoundTrip(t *testing.T) {
	w := target.DefaultWeekdayWeights()
	assert.Equal(t, w, target.WeekdayWeightsFromMap(w.Map()))
}
