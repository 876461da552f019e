package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Metas-api/internal/application/targets"
	"github.com/jhoicas/Metas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Metas-api/pkg/numfmt"
)

func sampleReport() *targets.ScheduleReport {
	r := &targets.ScheduleReport{
		BranchCode:   "CEN",
		BranchName:   "Centro",
		Month:        time.April,
		Year:         2025,
		TargetAmount: decimal.NewFromInt(30000),
		GeneratedAt:  time.Date(2025, time.March, 28, 9, 0, 0, 0, time.UTC),
	}
	for d := 1; d <= 30; d++ {
		row := targets.ScheduleRow{
			Date:       time.Date(2025, time.April, d, 0, 0, 0, 0, time.UTC),
			Multiplier: 1,
			Amount:     decimal.NewFromInt(1000),
		}
		if d == 10 {
			row.SpecialDay = "Feriado"
			row.Multiplier = 2.5
		}
		r.Rows = append(r.Rows, row)
	}
	r.Total = decimal.NewFromInt(30000)
	r.Average, r.Max, r.Min = decimal.NewFromInt(1000), decimal.NewFromInt(1000), decimal.NewFromInt(1000)
	return r
}

func TestMarotoScheduleRenderer_GeneraPDF(t *testing.T) {
	g := pdf.NewMarotoScheduleRenderer(numfmt.New("es-CO", "$"))

	out, err := g.Render(context.Background(), sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
	assert.Equal(t, "application/pdf", g.ContentType())
	assert.Equal(t, "pdf", g.Extension())
}
