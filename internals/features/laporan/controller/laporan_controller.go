// file: internals/features/laporan/controller/laporan_controller.go
package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "github.com/faturgautama/unggas-berjaya-backend/internals/features/laporan/service"
	helper "github.com/faturgautama/unggas-berjaya-backend/internals/helpers"
)

type LaporanController struct {
	Service *service.LaporanService
}

func NewLaporanController(db *gorm.DB) *LaporanController {
	return &LaporanController{Service: service.NewLaporanService(db)}
}

// GET /laporan/piutang
func (ctl *LaporanController) PiutangPerPelanggan(c *fiber.Ctx) error {
	rows, err := ctl.Service.PiutangPerPelanggan()
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, true, "OK", rows)
}

// GET /laporan/piutang/top?limit=10
func (ctl *LaporanController) TopPiutang(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	rows, err := ctl.Service.TopPiutang(limit)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, true, "OK", rows)
}

// GET /laporan/piutang/umur
func (ctl *LaporanController) UmurPiutang(c *fiber.Ctx) error {
	resp, err := ctl.Service.UmurPiutang(time.Now())
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, true, "OK", resp)
}

// GET /laporan/pembayaran?start=2025-01-01&end=2025-02-01
func (ctl *LaporanController) PembayaranMasuk(c *fiber.Ctx) error {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "Parameter start tidak valid")
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "Parameter end tidak valid")
	}

	resp, err := ctl.Service.PembayaranMasuk(start, end)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, true, "OK", resp)
}

// GET /laporan/penjualan?year=2025
func (ctl *LaporanController) RekapPenjualan(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 {
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "Parameter year tidak valid")
	}

	rows, err := ctl.Service.RekapPenjualan(year)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, true, "OK", rows)
}

// GET /laporan/pembayaran/pelanggan/:id
func (ctl *LaporanController) RiwayatPembayaran(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "Parameter id tidak valid")
	}

	rows, err := ctl.Service.RiwayatPembayaran(id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, true, "OK", rows)
}
