package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Metas-api/internal/application/dto"
	"github.com/jhoicas/Metas-api/internal/application/targets"
	"github.com/jhoicas/Metas-api/internal/domain"
	"github.com/jhoicas/Metas-api/internal/domain/target"
)

// TargetHandler endpoints del formulario de metas mensuales (protegido).
type TargetHandler struct {
	preview     *targets.PreviewUseCase
	submit      *targets.SubmitUseCase
	query       *targets.QueryUseCase
	progress    *targets.ProgressUseCase
	export      *targets.ExportUseCase
	suggestions *targets.SuggestionUseCase
}

// NewTargetHandler construye el handler.
func NewTargetHandler(
	preview *targets.PreviewUseCase,
	submit *targets.SubmitUseCase,
	query *targets.QueryUseCase,
	progress *targets.ProgressUseCase,
	export *targets.ExportUseCase,
	suggestions *targets.SuggestionUseCase,
) *TargetHandler {
	return &TargetHandler{
		preview:     preview,
		submit:      submit,
		query:       query,
		progress:    progress,
		export:      export,
		suggestions: suggestions,
	}
}

// Preview godoc
// @Summary      Vista previa de la distribución diaria
// @Description  Calcula la meta de cada día sin guardar. Con target_amount <= 0 devuelve un mapa vacío.
// @Tags         monthly-targets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MonthlyTargetRequest  true  "Meta, pesos y días especiales"
// @Success      200   {object}  dto.PreviewResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/monthly-targets/preview [post]
func (h *TargetHandler) Preview(c *fiber.Ctx) error {
	var in dto.MonthlyTargetRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if fields := validateSpecialDays(in.SpecialDays); len(fields) > 0 {
		return validationFailed(c, fields)
	}
	out, err := h.preview.Preview(in)
	if err != nil {
		return h.targetError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Guardar meta mensual
// @Description  Valida, recalcula la distribución y reemplaza la meta de la sucursal para ese mes.
// @Tags         monthly-targets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MonthlyTargetRequest  true  "Meta, pesos y días especiales"
// @Success      201   {object}  dto.MonthlyTargetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/monthly-targets [post]
func (h *TargetHandler) Submit(c *fiber.Ctx) error {
	var in dto.MonthlyTargetRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if fields := validateStruct(in); len(fields) > 0 {
		return validationFailed(c, fields)
	}
	out, err := h.submit.Submit(c.UserContext(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return h.targetError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar metas mensuales
// @Tags         monthly-targets
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "Filtrar por sucursal"
// @Param        year       query  int     false  "Filtrar por año"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {object}  dto.MonthlyTargetListResponse
// @Router       /api/monthly-targets [get]
func (h *TargetHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.query.List(c.UserContext(), GetCompanyID(c), c.Query("branch_id"), c.QueryInt("year", 0), limit, offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener meta mensual
// @Tags         monthly-targets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la meta"
// @Success      200  {object}  dto.MonthlyTargetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/monthly-targets/{id} [get]
func (h *TargetHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.Get(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "meta no encontrada")
	}
	return c.JSON(out)
}

// Progress godoc
// @Summary      Avance de la meta contra la venta real
// @Tags         monthly-targets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la meta"
// @Success      200  {object}  dto.TargetProgressDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/monthly-targets/{id}/progress [get]
func (h *TargetHandler) Progress(c *fiber.Ctx) error {
	out, err := h.progress.Progress(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return notFound(c, "meta no encontrada")
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Descargar cronograma de metas diarias
// @Tags         monthly-targets
// @Security     Bearer
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id      path   string  true   "ID de la meta"
// @Param        format  query  string  false  "pdf | xlsx"  default(pdf)
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/monthly-targets/{id}/export [get]
func (h *TargetHandler) Export(c *fiber.Ctx) error {
	file, err := h.export.Export(c.UserContext(), GetCompanyID(c), c.Params("id"), c.Query("format", "pdf"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "UNSUPPORTED_FORMAT", "formatos soportados: pdf, xlsx")
		}
		return internalError(c, err)
	}
	if file == nil {
		return notFound(c, "meta no encontrada")
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.FileName))
	return c.Send(file.Content)
}

// Suggestions godoc
// @Summary      Feriados del mes como días especiales sugeridos
// @Tags         special-days
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  true  "Año"
// @Param        month  query  int  true  "Mes (1-12)"
// @Success      200    {object}  dto.SpecialDaySuggestionsResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/special-days/suggestions [get]
func (h *TargetHandler) Suggestions(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	if year <= 0 || month < 1 || month > 12 {
		return badRequest(c, "VALIDATION", "year y month (1-12) son requeridos")
	}
	out, err := h.suggestions.Suggest(c.UserContext(), year, time.Month(month))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

func (h *TargetHandler) targetError(c *fiber.Ctx, err error) error {
	var vErr *target.ValidationError
	switch {
	case errors.As(err, &vErr):
		return validationFailed(c, vErr.Fields)
	case errors.Is(err, domain.ErrNotFound):
		return notFound(c, "sucursal no encontrada")
	case errors.Is(err, domain.ErrBranchInactive):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "BRANCH_INACTIVE", Message: "la sucursal no está activa"})
	}
	return internalError(c, err)
}
