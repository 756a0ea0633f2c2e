// file: internals/features/laporan/route/laporan_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/faturgautama/unggas-berjaya-backend/internals/features/laporan/controller"
)

func LaporanRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewLaporanController(db)

	laporan := api.Group("/laporan")
	laporan.Get("/piutang", ctl.PiutangPerPelanggan)
	laporan.Get("/piutang/top", ctl.TopPiutang)
	laporan.Get("/piutang/umur", ctl.UmurPiutang)
	laporan.Get("/pembayaran", ctl.PembayaranMasuk)
	laporan.Get("/pembayaran/pelanggan/:id", ctl.RiwayatPembayaran)
	laporan.Get("/penjualan", ctl.RekapPenjualan)
}
