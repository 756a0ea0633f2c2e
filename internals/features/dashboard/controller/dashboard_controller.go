// file: internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "github.com/faturgautama/unggas-berjaya-backend/internals/features/dashboard/service"
	helper "github.com/faturgautama/unggas-berjaya-backend/internals/helpers"
)

type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{Service: service.NewDashboardService(db)}
}

// GET /dashboard/summary
func (ctl *DashboardController) Summary(c *fiber.Ctx) error {
	out, err := ctl.Service.Summary(time.Now())
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, true, "OK", out)
}

// GET /dashboard/pembayaran?period=weekly|monthly
func (ctl *DashboardController) PaymentSeries(c *fiber.Ctx) error {
	var (
		points interface{}
		err    error
	)
	switch c.Query("period", "weekly") {
	case "monthly":
		points, err = ctl.Service.PaymentSeriesMonthly(time.Now())
	case "weekly":
		points, err = ctl.Service.PaymentSeriesWeekly(time.Now())
	default:
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "Parameter period tidak valid")
	}
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, true, "OK", points)
}
