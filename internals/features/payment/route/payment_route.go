// file: internals/features/payment/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/faturgautama/unggas-berjaya-backend/internals/features/payment/controller"
)

func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)

	payment := api.Group("/payment")
	payment.Get("/", ctl.GetAll)
	payment.Get("/:id", ctl.GetByID)
	payment.Post("/", ctl.Create)
	payment.Put("/", ctl.Update)
	payment.Delete("/:id", ctl.Delete)
}
