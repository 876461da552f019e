package targets

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Metas-api/internal/application/dto"
	"github.com/jhoicas/Metas-api/internal/domain/entity"
	"github.com/jhoicas/Metas-api/internal/domain/target"
)

// ToSpecification convierte la solicitud del formulario en una especificación del motor.
// Devuelve *target.ValidationError si alguna clave de peso o fecha no se puede interpretar;
// las reglas de negocio (rangos, meta > 0) se revisan aparte con target.Validate.
func ToSpecification(in dto.MonthlyTargetRequest) (target.Specification, error) {
	var fields []target.FieldError

	weights := target.DefaultWeekdayWeights()
	if in.WeekdayWeights != nil {
		m := make(map[time.Weekday]float64, len(in.WeekdayWeights))
		for k, v := range in.WeekdayWeights {
			d, ok := parseWeekdayKey(k)
			if !ok {
				fields = append(fields, target.FieldError{
					Field:   "weekday_weights." + k,
					Code:    target.CodeInvalid,
					Message: "clave de día inválida (use 0=domingo … 6=sábado)",
				})
				continue
			}
			m[d] = v
		}
		weights = target.WeekdayWeightsFromMap(m)
	}

	special := make([]target.SpecialDay, 0, len(in.SpecialDays))
	for i, sd := range in.SpecialDays {
		date, err := target.ParseDate(strings.TrimSpace(sd.Date))
		if err != nil {
			fields = append(fields, target.FieldError{
				Field:   fmt.Sprintf("special_days[%d].date", i),
				Code:    target.CodeInvalid,
				Message: "fecha inválida, formato esperado YYYY-MM-DD",
			})
			continue
		}
		special = append(special, target.SpecialDay{
			Date:       date,
			Name:       strings.TrimSpace(sd.Name),
			Multiplier: sd.Multiplier,
			Category:   target.Category(strings.ToLower(strings.TrimSpace(sd.Category))),
		})
	}

	if len(fields) > 0 {
		return target.Specification{}, &target.ValidationError{Fields: fields}
	}
	return target.Specification{
		BranchID:    strings.TrimSpace(in.BranchID),
		Month:       time.Month(in.Month),
		Year:        in.Year,
		TotalAmount: in.TargetAmount,
		Weights:     weights,
		SpecialDays: special,
	}, nil
}

func parseWeekdayKey(k string) (time.Weekday, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(k))
	if err != nil || n < 0 || n > 6 {
		return 0, false
	}
	return time.Weekday(n), true
}

func weightsToDTO(w target.WeekdayWeights) map[string]float64 {
	out := make(map[string]float64, len(w))
	for i, v := range w {
		out[strconv.Itoa(i)] = v
	}
	return out
}

func specialDaysToDTO(list []target.SpecialDay) []dto.SpecialDayDTO {
	out := make([]dto.SpecialDayDTO, 0, len(list))
	for _, sd := range list {
		out = append(out, dto.SpecialDayDTO{
			Date:       sd.Key(),
			Name:       sd.Name,
			Multiplier: sd.Multiplier,
			Category:   string(sd.Category),
		})
	}
	return out
}

func allocationToDTO(days []target.DayAllocation) []dto.DailyTargetDTO {
	out := make([]dto.DailyTargetDTO, 0, len(days))
	for _, d := range days {
		row := dto.DailyTargetDTO{
			Date:       d.Key(),
			Weekday:    int(d.Weekday),
			Multiplier: d.Multiplier,
			Amount:     d.Amount,
		}
		if d.Special != nil {
			row.SpecialDay = d.Special.Name
			row.Category = string(d.Special.Category)
		}
		out = append(out, row)
	}
	return out
}

func summaryToDTO(s target.Summary) dto.TargetSummaryDTO {
	return dto.TargetSummaryDTO{Total: s.Total, Average: s.Average, Max: s.Max, Min: s.Min}
}

func toMonthlyTargetResponse(m *entity.MonthlyTarget) *dto.MonthlyTargetResponse {
	if m == nil {
		return nil
	}
	days := make([]dto.MonthlyTargetDayDTO, 0, len(m.Days))
	daily := make(map[string]decimal.Decimal, len(m.Days))
	floats := make(target.DailyTargets, len(m.Days))
	sorted := make([]entity.MonthlyTargetDay, len(m.Days))
	copy(sorted, m.Days)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })
	for _, d := range sorted {
		key := d.Date.Format(target.DateLayout)
		days = append(days, dto.MonthlyTargetDayDTO{
			Date:       key,
			Multiplier: d.Multiplier,
			SpecialDay: d.SpecialDayName,
			Amount:     d.Amount,
		})
		daily[key] = d.Amount
		floats[key], _ = d.Amount.Float64()
	}
	return &dto.MonthlyTargetResponse{
		ID:             m.ID,
		CompanyID:      m.CompanyID,
		BranchID:       m.BranchID,
		Month:          m.Month,
		Year:           m.Year,
		TargetAmount:   m.TargetAmount,
		WeekdayWeights: weightsToDTO(m.Weights),
		SpecialDays:    specialDaysToDTO(m.SpecialDays),
		DailyTargets:   daily,
		Days:           days,
		Summary:        summaryToDTO(target.Summarize(floats)),
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toMonthlyTargetHeader(m *entity.MonthlyTarget) dto.MonthlyTargetHeaderDTO {
	return dto.MonthlyTargetHeaderDTO{
		ID:           m.ID,
		BranchID:     m.BranchID,
		Month:        m.Month,
		Year:         m.Year,
		TargetAmount: m.TargetAmount,
		UpdatedAt:    m.UpdatedAt,
	}
}
