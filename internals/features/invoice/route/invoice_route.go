// file: internals/features/invoice/route/invoice_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/faturgautama/unggas-berjaya-backend/internals/features/invoice/controller"
)

func InvoiceRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewInvoiceController(db)

	invoice := api.Group("/invoice")
	invoice.Get("/", ctl.GetAll)
	invoice.Get("/numbers", ctl.GetInvoiceNumbers)
	invoice.Get("/:id", ctl.GetByID)
	invoice.Post("/sync", ctl.Sync)
}
