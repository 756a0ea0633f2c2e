// file: internals/features/invoice/controller/invoice_controller.go
package controller

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "github.com/faturgautama/unggas-berjaya-backend/internals/features/invoice/dto"
	service "github.com/faturgautama/unggas-berjaya-backend/internals/features/invoice/service"
	helper "github.com/faturgautama/unggas-berjaya-backend/internals/helpers"
)

type InvoiceController struct {
	Service   *service.InvoiceService
	Validator *validator.Validate
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{
		Service:   service.NewInvoiceService(db),
		Validator: validator.New(),
	}
}

// GET /invoice
func (ctl *InvoiceController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := dto.ListInvoiceQuery{
		InvoiceNumber: c.Query("invoice_number"),
		InvoiceStatus: c.Query("invoice_status"),
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
	if raw := c.Query("invoice_date"); raw != "" {
		if d, err := time.Parse("2006-01-02", raw); err == nil {
			q.InvoiceDate = &d
		}
	}

	items, total, err := ctl.Service.GetAll(q)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonList(c, "OK", items, helper.BuildMeta(total, paging))
}

// GET /invoice/:id
func (ctl *InvoiceController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonOK(c, false, "Faktur Penjualan Tidak Ditemukan", nil)
	}

	res, err := ctl.Service.GetByID(id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, res.Status, res.Message, res.Data)
}

// GET /invoice/numbers
func (ctl *InvoiceController) GetInvoiceNumbers(c *fiber.Ctx) error {
	numbers, err := ctl.Service.GetInvoiceNumbers()
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, true, "OK", numbers)
}

// POST /invoice/sync
func (ctl *InvoiceController) Sync(c *fiber.Ctx) error {
	var req dto.SyncInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res, err := ctl.Service.SyncAll(req)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, res.Status, res.Message, res.Data)
}
