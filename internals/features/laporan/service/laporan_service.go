// file: internals/features/laporan/service/laporan_service.go
package service

import (
	"time"

	"gorm.io/gorm"

	dto "github.com/faturgautama/unggas-berjaya-backend/internals/features/laporan/dto"
	"github.com/faturgautama/unggas-berjaya-backend/internals/helpers/apperr"
)

type LaporanService struct {
	DB *gorm.DB
}

func NewLaporanService(db *gorm.DB) *LaporanService {
	return &LaporanService{DB: db}
}

var namaBulan = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

/* =========================================================
   Piutang per pelanggan
========================================================= */

func (s *LaporanService) PiutangPerPelanggan() ([]dto.PiutangPelangganRow, error) {
	var rows []dto.PiutangPelangganRow
	err := s.DB.Table("invoice").
		Joins("JOIN pelanggan ON pelanggan.id_pelanggan = invoice.id_pelanggan").
		Where("invoice.is_deleted = ? AND invoice.is_lunas = ?", false, false).
		Select("invoice.id_pelanggan, pelanggan.full_name, " +
			"COUNT(invoice.id_invoice) AS jumlah_invoice, " +
			"SUM(invoice.total) AS total_tagihan, " +
			"SUM(invoice.bayar) AS total_bayar, " +
			"SUM(invoice.total - invoice.bayar) AS sisa_piutang").
		Group("invoice.id_pelanggan, pelanggan.full_name").
		Order("sisa_piutang DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal menyusun laporan piutang", err)
	}
	return rows, nil
}

// TopPiutang mengambil N pelanggan dengan sisa piutang terbesar.
func (s *LaporanService) TopPiutang(limit int) ([]dto.PiutangPelangganRow, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.PiutangPerPelanggan()
	if err != nil {
		return nil, err
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

/* =========================================================
   Umur piutang (aging 30/60/90)
========================================================= */

func (s *LaporanService) UmurPiutang(now time.Time) (*dto.UmurPiutangResponse, error) {
	type invoiceRow struct {
		InvoiceDate time.Time
		Total       float64
		Bayar       float64
	}
	var invoices []invoiceRow
	err := s.DB.Table("invoice").
		Where("is_deleted = ? AND is_lunas = ?", false, false).
		Select("invoice_date, total, bayar").
		Scan(&invoices).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal menyusun umur piutang", err)
	}

	buckets := []dto.UmurPiutangBucket{
		{Label: "0-30"},
		{Label: "31-60"},
		{Label: "61-90"},
		{Label: ">90"},
	}
	var totalSisa float64

	for _, inv := range invoices {
		sisa := inv.Total - inv.Bayar
		umur := int(now.Sub(inv.InvoiceDate).Hours() / 24)

		idx := 3
		switch {
		case umur <= 30:
			idx = 0
		case umur <= 60:
			idx = 1
		case umur <= 90:
			idx = 2
		}
		buckets[idx].JumlahInvoice++
		buckets[idx].SisaPiutang += sisa
		totalSisa += sisa
	}

	return &dto.UmurPiutangResponse{
		Buckets:     buckets,
		TotalSisa:   totalSisa,
		GeneratedAt: now,
	}, nil
}

/* =========================================================
   Pembayaran masuk per periode
========================================================= */

func (s *LaporanService) PembayaranMasuk(start, end time.Time) (*dto.PembayaranMasukResponse, error) {
	var rows []dto.PembayaranMasukRow
	err := s.DB.Table("payment").
		Joins("JOIN invoice ON invoice.id_invoice = payment.id_invoice").
		Joins("JOIN pelanggan ON pelanggan.id_pelanggan = payment.id_pelanggan").
		Where("payment.is_delete = ?", false).
		Where("payment.payment_date >= ? AND payment.payment_date < ?", start, end).
		Select("payment.id_payment, payment.payment_number, payment.payment_date, " +
			"payment.payment_method, invoice.invoice_number, pelanggan.full_name, " +
			"payment.payment_amount, payment.potongan, payment.total").
		Order("payment.payment_date ASC, payment.id_payment ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal menyusun laporan pembayaran", err)
	}

	resp := dto.PembayaranMasukResponse{Rows: rows}
	for _, r := range rows {
		resp.TotalDiterima += r.Total - r.Potongan
		resp.TotalPotongan += r.Potongan
	}
	return &resp, nil
}

/* =========================================================
   Rekapitulasi penjualan per bulan dalam satu tahun
========================================================= */

func (s *LaporanService) RekapPenjualan(year int) ([]dto.RekapPenjualanRow, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(1, 0, 0)

	type invoiceRow struct {
		InvoiceDate time.Time
		Total       float64
		Bayar       float64
	}
	var invoices []invoiceRow
	err := s.DB.Table("invoice").
		Where("is_deleted = ?", false).
		Where("invoice_date >= ? AND invoice_date < ?", start, end).
		Select("invoice_date, total, bayar").
		Scan(&invoices).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal menyusun rekap penjualan", err)
	}

	rows := make([]dto.RekapPenjualanRow, 12)
	for i := range rows {
		rows[i] = dto.RekapPenjualanRow{Bulan: i + 1, NamaBulan: namaBulan[i]}
	}
	for _, inv := range invoices {
		i := int(inv.InvoiceDate.Month()) - 1
		rows[i].JumlahInvoice++
		rows[i].TotalTagihan += inv.Total
		rows[i].TotalBayar += inv.Bayar
		rows[i].SisaPiutang += inv.Total - inv.Bayar
	}
	return rows, nil
}

/* =========================================================
   Riwayat pembayaran satu pelanggan
========================================================= */

func (s *LaporanService) RiwayatPembayaran(idPelanggan int64) ([]dto.RiwayatPembayaranRow, error) {
	var rows []dto.RiwayatPembayaranRow
	err := s.DB.Table("payment").
		Joins("JOIN invoice ON invoice.id_invoice = payment.id_invoice").
		Where("payment.is_delete = ? AND payment.id_pelanggan = ?", false, idPelanggan).
		Select("payment.id_payment, payment.payment_number, payment.payment_date, " +
			"payment.payment_method, invoice.invoice_number, " +
			"payment.payment_amount, payment.potongan, payment.total, payment.notes").
		Order("payment.payment_date DESC, payment.id_payment DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal mengambil riwayat pembayaran", err)
	}
	return rows, nil
}
