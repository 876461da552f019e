// Package excel genera el cronograma de metas diarias como libro .xlsx.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Metas-api/internal/application/targets"
	"github.com/jhoicas/Metas-api/internal/domain/target"
)

// SheetName hoja donde queda el cronograma.
const SheetName = "Metas"

// headerRow fila de encabezados de la tabla; los días empiezan en la siguiente.
const headerRow = 3

var headings = []string{"Fecha", "Día", "Multiplicador", "Día especial", "Meta"}

var weekdayNames = [...]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

var _ targets.ScheduleRenderer = (*ScheduleRenderer)(nil)

// ScheduleRenderer implementa targets.ScheduleRenderer con excelize.
// Los montos se escriben como números para que la hoja pueda recalcular.
type ScheduleRenderer struct{}

// NewScheduleRenderer construye el generador.
func NewScheduleRenderer() *ScheduleRenderer { return &ScheduleRenderer{} }

// ContentType MIME del libro.
func (ScheduleRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension extensión del archivo descargado.
func (ScheduleRenderer) Extension() string { return "xlsx" }

// Render genera el libro y devuelve sus bytes.
func (ScheduleRenderer) Render(_ context.Context, r *targets.ScheduleReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"00467F"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}

	title := fmt.Sprintf("%s (%s) - %02d/%d", r.BranchName, r.BranchCode, int(r.Month), r.Year)
	set := func(cell string, v any) {
		if err == nil {
			err = f.SetCellValue(SheetName, cell, v)
		}
	}
	set("A1", title)
	set("D1", "Meta mensual")
	set("E1", r.TargetAmount.InexactFloat64())

	for i, h := range headings {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		set(cell, h)
	}

	for i, d := range r.Rows {
		n := headerRow + 1 + i
		set(fmt.Sprintf("A%d", n), d.Date.Format(target.DateLayout))
		set(fmt.Sprintf("B%d", n), weekdayNames[d.Date.Weekday()])
		set(fmt.Sprintf("C%d", n), d.Multiplier)
		set(fmt.Sprintf("D%d", n), d.SpecialDay)
		set(fmt.Sprintf("E%d", n), d.Amount.InexactFloat64())
	}
	if err != nil {
		return nil, fmt.Errorf("excel: escribir celdas: %w", err)
	}

	first, last := headerRow+1, headerRow+len(r.Rows)
	totalRow := last + 1
	if len(r.Rows) == 0 {
		totalRow = first
	}
	set(fmt.Sprintf("D%d", totalRow), "Total")
	if len(r.Rows) > 0 {
		err = f.SetCellFormula(SheetName, fmt.Sprintf("E%d", totalRow), fmt.Sprintf("SUM(E%d:E%d)", first, last))
	}
	if err != nil {
		return nil, fmt.Errorf("excel: fila de total: %w", err)
	}

	headFrom, _ := excelize.CoordinatesToCellName(1, headerRow)
	headTo, _ := excelize.CoordinatesToCellName(len(headings), headerRow)
	styles := []struct {
		from, to string
		style    int
	}{
		{"A1", "A1", bold},
		{"E1", "E1", money},
		{headFrom, headTo, header},
		{fmt.Sprintf("E%d", first), fmt.Sprintf("E%d", totalRow), money},
		{fmt.Sprintf("D%d", totalRow), fmt.Sprintf("D%d", totalRow), bold},
	}
	for _, s := range styles {
		if err := f.SetCellStyle(SheetName, s.from, s.to, s.style); err != nil {
			return nil, fmt.Errorf("excel: aplicar estilo: %w", err)
		}
	}
	if err := f.SetColWidth(SheetName, "A", "A", 12); err != nil {
		return nil, fmt.Errorf("excel: ancho de columna: %w", err)
	}
	if err := f.SetColWidth(SheetName, "D", "E", 22); err != nil {
		return nil, fmt.Errorf("excel: ancho de columna: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
