// file: internals/features/pelanggan/controller/pelanggan_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "github.com/faturgautama/unggas-berjaya-backend/internals/features/pelanggan/dto"
	service "github.com/faturgautama/unggas-berjaya-backend/internals/features/pelanggan/service"
	helper "github.com/faturgautama/unggas-berjaya-backend/internals/helpers"
	helperAuth "github.com/faturgautama/unggas-berjaya-backend/internals/middlewares/auth"
)

type PelangganController struct {
	Service   *service.PelangganService
	Validator *validator.Validate
}

func NewPelangganController(db *gorm.DB) *PelangganController {
	return &PelangganController{
		Service:   service.NewPelangganService(db),
		Validator: validator.New(),
	}
}

// GET /pelanggan?search=&is_active=
func (ctl *PelangganController) GetAll(c *fiber.Ctx) error {
	q := dto.ListPelangganQuery{
		Search: strings.TrimSpace(c.Query("search")),
	}
	if raw := c.Query("is_active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "is_active invalid")
		}
		q.IsActive = &v
	}

	res, err := ctl.Service.GetAll(q)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, res.Status, res.Message, res.Data)
}

// GET /pelanggan/:id
func (ctl *PelangganController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "id_pelanggan invalid")
	}

	res, err := ctl.Service.GetByID(id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, res.Status, res.Message, res.Data)
}

// POST /pelanggan
func (ctl *PelangganController) Create(c *fiber.Ctx) error {
	var req dto.CreatePelangganRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res, err := ctl.Service.Create(req, helperAuth.GetUserID(c))
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonCreated(c, res.Status, res.Message, res.Data)
}

// PUT /pelanggan
func (ctl *PelangganController) Update(c *fiber.Ctx) error {
	var req dto.UpdatePelangganRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, err.Error())
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

// DELETE /pelanggan/:id
func (ctl *PelangganController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "id_pelanggan invalid")
	}

	res, err := ctl.Service.Delete(id, helperAuth.GetUserID(c))
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, res.Status, res.Message, res.Data)
}

// POST /pelanggan/sync
func (ctl *PelangganController) Sync(c *fiber.Ctx) error {
	var req dto.SyncPelangganRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, err.Error())
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
