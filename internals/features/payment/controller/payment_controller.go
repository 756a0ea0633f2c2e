// file: internals/features/payment/controller/payment_controller.go
package controller

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "github.com/faturgautama/unggas-berjaya-backend/internals/features/payment/dto"
	service "github.com/faturgautama/unggas-berjaya-backend/internals/features/payment/service"
	helper "github.com/faturgautama/unggas-berjaya-backend/internals/helpers"
	helperAuth "github.com/faturgautama/unggas-berjaya-backend/internals/middlewares/auth"
)

type PaymentController struct {
	Service   *service.PaymentService
	Validator *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		Service:   service.NewPaymentService(db),
		Validator: validator.New(),
	}
}

// GET /payment
func (ctl *PaymentController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := dto.ListPaymentQuery{
		PaymentMethod: c.Query("payment_method"),
		Search:        c.Query("search"),
		Page:          paging.Page,
		Limit:         paging.Limit,
		Offset:        paging.Offset,
	}
	if raw := c.Query("id_pelanggan"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			q.IDPelanggan = &id
		}
	}
	if raw := c.Query("payment_date"); raw != "" {
		if d, err := time.Parse("2006-01-02", raw); err == nil {
			q.PaymentDate = &d
		}
	}

	items, total, err := ctl.Service.GetAll(q)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonList(c, "OK", items, helper.BuildMeta(total, paging))
}

// GET /payment/:id
func (ctl *PaymentController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonOK(c, false, "Payment tidak ditemukan", nil)
	}

	res, err := ctl.Service.GetByID(id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, res.Status, res.Message, res.Data)
}

// POST /payment
func (ctl *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res, err := ctl.Service.Create(req, helperAuth.GetUserID(c))
	if err != nil {
		return helper.JsonError(c, err)
	}
	if !res.Status {
		return helper.JsonOK(c, false, res.Message, nil)
	}
	return helper.JsonCreated(c, res.Status, res.Message, res.Data)
}

// PUT /payment
func (ctl *PaymentController) Update(c *fiber.Ctx) error {
	var req dto.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res, err := ctl.Service.Update(req, helperAuth.GetUserID(c))
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, res.Status, res.Message, res.Data)
}

// DELETE /payment/:id
func (ctl *PaymentController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonOK(c, false, "Payment tidak ditemukan", nil)
	}

	res, err := ctl.Service.Delete(id, helperAuth.GetUserID(c))
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, res.Status, res.Message, nil)
}
