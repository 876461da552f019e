package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Metas-api/internal/application/dto"
	"github.com/jhoicas/Metas-api/internal/domain/target"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Los errores se reportan con el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct valida la forma del DTO según sus tags `validate`.
func validateStruct(in any) []target.FieldError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []target.FieldError{{Field: "body", Code: target.CodeInvalid, Message: err.Error()}}
	}
	out := make([]target.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, target.FieldError{
			Field:   fieldPath(fe.Namespace()),
			Code:    tagCode(fe.Tag()),
			Message: tagMessage(fe),
		})
	}
	return out
}

// validateSpecialDays aplica los tags de cada día especial sin exigir el resto del
// formulario (sucursal, rangos de mes). Es lo que valida la vista previa.
func validateSpecialDays(days []dto.SpecialDayDTO) []target.FieldError {
	var out []target.FieldError
	for i, sd := range days {
		prefix := fmt.Sprintf("special_days[%d].", i)
		for _, fe := range validateStruct(sd) {
			fe.Field = prefix + fe.Field
			out = append(out, fe)
		}
	}
	return out
}

// fieldPath quita el nombre del struct raíz: "MonthlyTargetRequest.special_days[0].date" → "special_days[0].date".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func tagCode(tag string) string {
	switch tag {
	case "required":
		return target.CodeRequired
	case "min", "max", "gte", "lte", "gt", "lt":
		return target.CodeOutOfRange
	default:
		return target.CodeInvalid
	}
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo requerido"
	case "min", "gte":
		return "debe ser al menos " + fe.Param()
	case "max", "lte":
		return "debe ser como máximo " + fe.Param()
	case "oneof":
		return "valores permitidos: " + fe.Param()
	case "uuid":
		return "debe ser un UUID"
	case "email":
		return "email inválido"
	case "datetime":
		return "formato de fecha esperado " + fe.Param()
	default:
		return "valor inválido"
	}
}

func validationFailed(c *fiber.Ctx, fields []target.FieldError) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
		Code:    "VALIDATION",
		Message: "la solicitud tiene errores de validación",
		Errors:  fields,
	})
}
