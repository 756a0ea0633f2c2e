// file: internals/features/authentication/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/faturgautama/unggas-berjaya-backend/internals/features/authentication/controller"
	authMiddleware "github.com/faturgautama/unggas-berjaya-backend/internals/middlewares/auth"
)

// AuthRoutes memasang endpoint publik (login) langsung di app,
// sisanya di belakang middleware auth.
func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	auth := app.Group("/authentication")
	auth.Post("/login", ctl.Login)

	protected := auth.Group("", authMiddleware.AuthMiddleware())
	protected.Post("/logout", ctl.Logout)
	protected.Post("/register", ctl.Register)
	protected.Get("/profile", ctl.GetProfile)
	protected.Put("/profile", ctl.UpdateProfile)
}
