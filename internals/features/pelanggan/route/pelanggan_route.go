// file: internals/features/pelanggan/route/pelanggan_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/faturgautama/unggas-berjaya-backend/internals/features/pelanggan/controller"
)

func PelangganRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPelangganController(db)

	r := api.Group("/pelanggan")
	r.Get("/", ctl.GetAll)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/", ctl.Update)
	r.Delete("/:id", ctl.Delete)
	r.Post("/sync", ctl.Sync)
}
