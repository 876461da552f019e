package targets

import (
	"github.com/jhoicas/Metas-api/internal/application/dto"
	"github.com/jhoicas/Metas-api/internal/domain/target"
)

// PreviewUseCase calcula la distribución para la gráfica del formulario sin persistir.
// Se invoca en cada cambio de entrada; no tiene estado.
type PreviewUseCase struct{}

// NewPreviewUseCase construye el caso de uso.
func NewPreviewUseCase() *PreviewUseCase { return &PreviewUseCase{} }

// Preview devuelve el mapa de metas diarias, los días ordenados y el resumen.
// Con meta <= 0 la respuesta viene vacía (el formulario oculta la vista previa).
// Falla si la solicitud no se puede interpretar (claves o fechas inválidas, mes fuera de rango)
// o si algún peso o multiplicador es negativo. Los rangos del formulario no aplican aquí.
func (uc *PreviewUseCase) Preview(in dto.MonthlyTargetRequest) (*dto.PreviewResponse, error) {
	spec, err := ToSpecification(in)
	if err != nil {
		return nil, err
	}
	if spec.Month < 1 || spec.Month > 12 || spec.Year <= 0 {
		return nil, &target.ValidationError{Fields: []target.FieldError{{
			Field: "month", Code: target.CodeOutOfRange, Message: "mes/año fuera de rango",
		}}}
	}
	if fields := target.CheckNonNegative(spec); len(fields) > 0 {
		return nil, &target.ValidationError{Fields: fields}
	}

	days := target.Allocate(spec)
	daily := make(map[string]float64, len(days))
	for _, d := range days {
		daily[d.Key()] = d.Amount
	}
	return &dto.PreviewResponse{
		DailyTargets: daily,
		Days:         allocationToDTO(days),
		Summary:      summaryToDTO(target.Summarize(daily)),
	}, nil
}
