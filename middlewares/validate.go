package middlewares

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BindAndValidate parses the request body into dst and validates it.
// Returns fiber.ErrBadRequest for parse errors and a validator.ValidationErrors for validation issues.
func BindAndValidate(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return validate.Struct(dst)
}

// BindAndValidateEach parses a JSON array body into dst (a pointer to a slice
// of DTOs) and runs normalize, then validation, per element. Batch endpoints
// (product catalog loads) go through this. An empty batch is rejected.
func BindAndValidateEach[T any](c *fiber.Ctx, dst *[]T, normalize func(*T)) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(*dst) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "empty batch")
	}
	for i := range *dst {
		if normalize != nil {
			normalize(&(*dst)[i])
		}
		if err := validate.Struct((*dst)[i]); err != nil {
			return err
		}
	}
	return nil
}
