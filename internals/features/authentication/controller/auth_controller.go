// file: internals/features/authentication/controller/auth_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "github.com/faturgautama/unggas-berjaya-backend/internals/features/authentication/dto"
	service "github.com/faturgautama/unggas-berjaya-backend/internals/features/authentication/service"
	helper "github.com/faturgautama/unggas-berjaya-backend/internals/helpers"
	helperAuth "github.com/faturgautama/unggas-berjaya-backend/internals/middlewares/auth"
)

type AuthController struct {
	Service   *service.AuthService
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		Service:   service.NewAuthService(db),
		Validator: validator.New(),
	}
}

// POST /authentication/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res, err := ctl.Service.Login(req)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, res.Status, res.Message, res.Data)
}

// POST /authentication/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	res, err := ctl.Service.Logout(helperAuth.GetUserID(c))
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, res.Status, res.Message, nil)
}

// POST /authentication/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res, err := ctl.Service.Register(req, helperAuth.GetUserID(c))
	if err != nil {
		return helper.JsonError(c, err)
	}
	if !res.Status {
		return helper.JsonOK(c, false, res.Message, nil)
	}
	return helper.JsonCreated(c, res.Status, res.Message, res.Data)
}

// GET /authentication/profile
func (ctl *AuthController) GetProfile(c *fiber.Ctx) error {
	res, err := ctl.Service.GetProfile(helperAuth.GetUserID(c))
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, res.Status, res.Message, res.Data)
}

// PUT /authentication/profile
func (ctl *AuthController) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res, err := ctl.Service.UpdateProfile(helperAuth.GetUserID(c), req)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, res.Status, res.Message, res.Data)
}
