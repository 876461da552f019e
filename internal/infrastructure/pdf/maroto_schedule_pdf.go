// Package pdf genera el cronograma de metas diarias de una sucursal.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Sucursal + código   │  Mes / Año                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Meta mensual | Promedio | Máximo | Mínimo          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Día | Multiplicador | Día especial | Meta    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL distribuido + fecha de generación                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Metas-api/internal/application/targets"
	"github.com/jhoicas/Metas-api/pkg/numfmt"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorSpecial = &props.Color{Red: 255, Green: 243, Blue: 214}
)

var monthNames = [...]string{"", "Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"}

var weekdayNames = [...]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

var _ targets.ScheduleRenderer = (*MarotoScheduleRenderer)(nil)

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoScheduleRenderer implementa targets.ScheduleRenderer usando Maroto v2.
type MarotoScheduleRenderer struct {
	fmt *numfmt.Formatter
}

// NewMarotoScheduleRenderer construye el generador con el formato de montos del reporte.
func NewMarotoScheduleRenderer(f *numfmt.Formatter) *MarotoScheduleRenderer {
	return &MarotoScheduleRenderer{fmt: f}
}

// ContentType MIME del documento.
func (g *MarotoScheduleRenderer) ContentType() string { return "application/pdf" }

// Extension extensión del archivo descargado.
func (g *MarotoScheduleRenderer) Extension() string { return "pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoScheduleRenderer) Render(_ context.Context, r *targets.ScheduleReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Metas diarias %s %d", monthName(int(r.Month)), r.Year), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(r.Rows)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.footerRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoScheduleRenderer) headerRow(r *targets.ScheduleReport) core.Row {
	branch := nonEmpty(r.BranchName, "Sucursal")
	if r.BranchCode != "" {
		branch += " (" + r.BranchCode + ")"
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(branch, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Cronograma de metas diarias", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("%s %d", monthName(int(r.Month)), r.Year), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
		),
	)
}

func (g *MarotoScheduleRenderer) summaryRow(r *targets.ScheduleReport) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Size: 10, Top: 5}),
		)
	}
	return row.New(12).Add(
		cell("META MENSUAL", g.fmt.Money(r.TargetAmount)),
		cell("PROMEDIO DIARIO", g.fmt.Money(r.Average)),
		cell("DÍA MÁS ALTO", g.fmt.Money(r.Max)),
		cell("DÍA MÁS BAJO", g.fmt.Money(r.Min)),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Día", 1, align.Center),
		h("Mult.", 2, align.Center),
		h("Día especial", 4, align.Left),
		h("Meta", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func (g *MarotoScheduleRenderer) tableRows(list []targets.ScheduleRow) []core.Row {
	out := make([]core.Row, 0, len(list))
	for _, d := range list {
		r := row.New(6).Add(
			col.New(2).Add(text.New(d.Date.Format("02/01/2006"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(weekdayNames[d.Date.Weekday()], props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(g.fmt.Multiplier(d.Multiplier), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(d.SpecialDay, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(g.fmt.Money(d.Amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		)
		if d.SpecialDay != "" {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorSpecial})
		}
		out = append(out, r)
	}
	return out
}

func (g *MarotoScheduleRenderer) footerRow(r *targets.ScheduleReport) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("Generado: "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Color: colorGray, Top: 3,
			}),
		),
		col.New(6).Add(
			text.New("TOTAL DISTRIBUIDO: "+g.fmt.Money(r.Total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func monthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthNames[m]
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
