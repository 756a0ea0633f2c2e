// file: internals/helpers/response.go
package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/faturgautama/unggas-berjaya-backend/internals/helpers/apperr"
)

/* ===============================
   Envelope standar {status, message, data}
=================================*/

type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ✅ Sukses (200); juga dipakai business rejection dengan status:false
func JsonOK(c *fiber.Ctx, status bool, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ✅ Sukses create (201)
func JsonCreated(c *fiber.Ctx, status bool, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ✅ List dengan meta pagination
func JsonList(c *fiber.Ctx, message string, data interface{}, meta Meta) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  true,
		"message": message,
		"data":    data,
		"meta":    meta,
	})
}

// ✅ Error infrastruktur: kind dipetakan ke status HTTP, data selalu null
func JsonError(c *fiber.Ctx, err error) error {
	return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{
		"status":  false,
		"message": err.Error(),
		"data":    nil,
	})
}

// ✅ Error dengan status eksplisit (auth middleware dsb.)
func JsonErrorWithCode(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  false,
		"message": message,
		"data":    nil,
	})
}

// ✅ Khusus error validasi (validator.v10)
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonErrorWithCode(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  false,
		"message": "Validasi gagal",
		"data":    nil,
		"errors":  errorsMap,
	})
}
