// file: internals/middlewares/activity/activity_logger_test.go
package activity

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "github.com/faturgautama/unggas-berjaya-backend/internals/features/activity/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.LogActivityUser{}))
	return db
}

func setupApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Use(ActivityLogger(db))
	handler := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/pelanggan", handler)
	app.Post("/pelanggan", handler)
	app.Patch("/pelanggan", handler)
	app.Post("/authentication/login", handler)
	return app
}

func countLog(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.LogActivityUser{}).Count(&n).Error)
	return n
}

func TestActivityLogger_MencatatSemuaMetodeTulis(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	for _, method := range []string{fiber.MethodPost, fiber.MethodPatch} {
		req := httptest.NewRequest(method, "/pelanggan", strings.NewReader(`{"full_name":"Budi"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	require.Equal(t, int64(2), countLog(t, db))

	var entries []model.LogActivityUser
	require.NoError(t, db.Order("id_log_activity ASC").Find(&entries).Error)
	assert.Equal(t, fiber.MethodPost, entries[0].Method)
	assert.Equal(t, fiber.MethodPatch, entries[1].Method)
	assert.Equal(t, "/pelanggan", entries[0].Endpoint)
}

func TestActivityLogger_GetDanLoginTidakDicatat(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/pelanggan", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(fiber.MethodPost, "/authentication/login", strings.NewReader(`{"username":"admin"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, int64(0), countLog(t, db))
}
