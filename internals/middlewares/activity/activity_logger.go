// file: internals/middlewares/activity/activity_logger.go
package activity

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "github.com/faturgautama/unggas-berjaya-backend/internals/features/activity/model"
)

// path yang tidak dicatat: login membawa kredensial, batch sync
// membawa payload besar yang tidak berguna di log audit
var skippedPaths = []string{
	"/authentication/login",
	"/sync",
}

func skipped(path string) bool {
	for _, p := range skippedPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// ActivityLogger mencatat setiap request tulis (POST/PUT/PATCH/DELETE) ke
// log_activity_user. Pencatatan best-effort: kegagalan insert tidak
// boleh menggagalkan request utamanya.
func ActivityLogger(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		method := c.Method()
		switch method {
		case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
		default:
			return c.Next()
		}
		if skipped(c.Path()) {
			return c.Next()
		}

		entry := model.LogActivityUser{
			Endpoint:  c.OriginalURL(),
			Method:    method,
			IPAddress: c.IP(),
			Browser:   c.Get(fiber.HeaderUserAgent),
			CreateAt:  time.Now(),
		}
		if body := c.Body(); len(body) > 0 {
			entry.RequestBody = datatypes.JSON(append([]byte(nil), body...))
		}

		err := c.Next()

		// id_user baru tersedia setelah middleware auth berjalan
		if id, ok := c.Locals("id_user").(int64); ok {
			entry.IDUser = &id
		}

		if dbErr := db.Create(&entry).Error; dbErr != nil {
			log.Printf("[WARN] gagal mencatat aktivitas %s %s: %v", method, entry.Endpoint, dbErr)
		}
		return err
	}
}
