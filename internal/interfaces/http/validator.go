package http

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
)

// Reglas de forma heredadas del contrato de la API pública.
var (
	reUsername     = regexp.MustCompile(`^[a-zA-Z]{3,20}$`)
	reCategoryName = regexp.MustCompile(`^[a-zA-Z\s]{3,20}$`)
	reCategorySlug = regexp.MustCompile(`^([a-z]|-|_)+$`)
	reProductName  = regexp.MustCompile(`^[a-zA-Z0-9\s]{3,50}$`)
	reProductSlug  = regexp.MustCompile(`^([a-z0-9]|-|_)+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "username", reUsername)
	mustRegister(v, "category_name", reCategoryName)
	mustRegister(v, "category_slug", reCategorySlug)
	mustRegister(v, "product_name", reProductName)
	mustRegister(v, "product_slug", reProductSlug)
	return v
}

func mustRegister(v *validator.Validate, tag string, re *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// validationError responde 422 con el detalle de la validación fallida.
func validationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
		Code:    "VALIDATION",
		Message: err.Error(),
	})
}
