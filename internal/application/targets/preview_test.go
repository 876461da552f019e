package targets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Metas-api/internal/application/targets"
	"github.com/jhoicas/Metas-api/internal/domain/target"
)

func TestPreview_DistribuyeYResume(t *testing.T) {
	uc := targets.NewPreviewUseCase()

	out, err := uc.Preview(aprilRequest())
	require.NoError(t, err)

	assert.Len(t, out.DailyTargets, 30)
	require.Len(t, out.Days, 30)
	assert.Equal(t, "2025-04-01", out.Days[0].Date)
	assert.Equal(t, 2, out.Days[0].Weekday, "1 de abril de 2025 es martes")

	holiday := out.Days[9]
	assert.Equal(t, "2025-04-10", holiday.Date)
	assert.Equal(t, "Feriado", holiday.SpecialDay)
	assert.Equal(t, "holiday", holiday.Category)
	assert.Equal(t, 2.5, holiday.Multiplier)

	assert.InEpsilon(t, 30000.0, out.Summary.Total, 1e-6)
	assert.InEpsilon(t, 1000.0, out.Summary.Average, 1e-6)
}

func TestPreview_MetaCeroDevuelveVacio(t *testing.T) {
	in := aprilRequest()
	in.TargetAmount = 0

	out, err := targets.NewPreviewUseCase().Preview(in)
	require.NoError(t, err)
	assert.Empty(t, out.DailyTargets)
	assert.Empty(t, out.Days)
	assert.Zero(t, out.Summary.Total)
}

func TestPreview_NoExigeRangosDelFormulario(t *testing.T) {
	in := aprilRequest()
	in.BranchID = ""
	in.WeekdayWeights = map[string]float64{"5": 10}

	out, err := targets.NewPreviewUseCase().Preview(in)
	require.NoError(t, err)
	assert.Len(t, out.DailyTargets, 30)
}

func TestPreview_MesInvalido(t *testing.T) {
	in := aprilRequest()
	in.Month = 0

	_, err := targets.NewPreviewUseCase().Preview(in)
	var vErr *target.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestPreview_PesoNegativoDevuelveErrorDeValidacion(t *testing.T) {
	in := aprilRequest()
	in.WeekdayWeights["5"] = -3
	in.SpecialDays[0].Multiplier = -5

	out, err := targets.NewPreviewUseCase().Preview(in)
	assert.Nil(t, out, "no se devuelven metas diarias negativas")

	var vErr *target.ValidationError
	require.ErrorAs(t, err, &vErr)
	codes := map[string]string{}
	for _, fe := range vErr.Fields {
		codes[fe.Field] = fe.Code
	}
	assert.Equal(t, target.CodeInvalid, codes["weekday_weights.5"])
	assert.Equal(t, target.CodeInvalid, codes["special_days[0].multiplier"])
}
