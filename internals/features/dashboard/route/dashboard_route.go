// file: internals/features/dashboard/route/dashboard_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/faturgautama/unggas-berjaya-backend/internals/features/dashboard/controller"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db)

	dashboard := api.Group("/dashboard")
	dashboard.Get("/summary", ctl.Summary)
	dashboard.Get("/pembayaran", ctl.PaymentSeries)
}
