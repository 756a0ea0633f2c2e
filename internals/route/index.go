// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "github.com/faturgautama/unggas-berjaya-backend/internals/features/authentication/route"
	dashboardRoute "github.com/faturgautama/unggas-berjaya-backend/internals/features/dashboard/route"
	invoiceRoute "github.com/faturgautama/unggas-berjaya-backend/internals/features/invoice/route"
	laporanRoute "github.com/faturgautama/unggas-berjaya-backend/internals/features/laporan/route"
	paymentRoute "github.com/faturgautama/unggas-berjaya-backend/internals/features/payment/route"
	pelangganRoute "github.com/faturgautama/unggas-berjaya-backend/internals/features/pelanggan/route"
	"github.com/faturgautama/unggas-berjaya-backend/internals/middlewares"
	activityMiddleware "github.com/faturgautama/unggas-berjaya-backend/internals/middlewares/activity"
	authMiddleware "github.com/faturgautama/unggas-berjaya-backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	app.Use("/authentication/login", middlewares.LoginRateLimiter())
	authRoute.AuthRoutes(app, db)

	// ===================== API (JWT wajib) =====================
	log.Println("[INFO] Setting up API group...")

	// batch sync dari legacy dibatasi terpisah
	app.Use("/api/invoice/sync", middlewares.SyncRateLimiter())
	app.Use("/api/pelanggan/sync", middlewares.SyncRateLimiter())

	api := app.Group("/api",
		authMiddleware.AuthMiddleware(),
		activityMiddleware.ActivityLogger(db),
	)

	pelangganRoute.PelangganRoutes(api, db)
	invoiceRoute.InvoiceRoutes(api, db)
	paymentRoute.PaymentRoutes(api, db)
	laporanRoute.LaporanRoutes(api, db)
	dashboardRoute.DashboardRoutes(api, db)
}
