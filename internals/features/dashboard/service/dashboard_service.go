// file: internals/features/dashboard/service/dashboard_service.go
package service

import (
	"time"

	"gorm.io/gorm"

	dto "github.com/faturgautama/unggas-berjaya-backend/internals/features/dashboard/dto"
	invoiceModel "github.com/faturgautama/unggas-berjaya-backend/internals/features/invoice/model"
	pelangganModel "github.com/faturgautama/unggas-berjaya-backend/internals/features/pelanggan/model"
	paymentModel "github.com/faturgautama/unggas-berjaya-backend/internals/features/payment/model"
	"github.com/faturgautama/unggas-berjaya-backend/internals/helpers/apperr"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

func (s *DashboardService) Summary(now time.Time) (*dto.DashboardSummary, error) {
	var out dto.DashboardSummary

	err := s.DB.Model(&pelangganModel.Pelanggan{}).
		Where("is_delete = ? AND is_active = ?", false, true).
		Count(&out.TotalPelangganAktif).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal menghitung pelanggan", err)
	}

	err = s.DB.Model(&invoiceModel.Invoice{}).
		Where("is_deleted = ?", false).
		Count(&out.TotalInvoice).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal menghitung invoice", err)
	}

	err = s.DB.Model(&invoiceModel.Invoice{}).
		Where("is_deleted = ? AND is_lunas = ?", false, false).
		Count(&out.InvoiceBelumLunas).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal menghitung invoice belum lunas", err)
	}
	out.InvoiceLunas = out.TotalInvoice - out.InvoiceBelumLunas

	err = s.DB.Model(&invoiceModel.Invoice{}).
		Where("is_deleted = ? AND is_lunas = ?", false, false).
		Select("COALESCE(SUM(total - bayar), 0)").
		Scan(&out.TotalPiutang).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal menghitung piutang", err)
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	err = s.DB.Model(&paymentModel.Payment{}).
		Where("is_delete = ?", false).
		Where("payment_date >= ? AND payment_date < ?", monthStart, monthStart.AddDate(0, 1, 0)).
		Select("COALESCE(SUM(total - COALESCE(potongan, 0)), 0)").
		Scan(&out.PembayaranBulanIni).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal menghitung pembayaran bulan ini", err)
	}

	return &out, nil
}

// PaymentSeriesWeekly: 7 hari terakhir termasuk hari ini.
func (s *DashboardService) PaymentSeriesWeekly(now time.Time) ([]dto.SeriesPoint, error) {
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -7)
	return s.paymentSeries(start, end)
}

// PaymentSeriesMonthly: seluruh hari pada bulan berjalan.
func (s *DashboardService) PaymentSeriesMonthly(now time.Time) ([]dto.SeriesPoint, error) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0)
	return s.paymentSeries(start, end)
}

// paymentSeries membangun deret harian [start, end) dengan nol untuk
// hari tanpa pembayaran.
func (s *DashboardService) paymentSeries(start, end time.Time) ([]dto.SeriesPoint, error) {
	type paymentRow struct {
		PaymentDate time.Time
		Total       float64
		Potongan    float64
	}
	var rows []paymentRow
	err := s.DB.Table("payment").
		Where("is_delete = ?", false).
		Where("payment_date >= ? AND payment_date < ?", start, end).
		Select("payment_date, total, potongan").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal mengambil deret pembayaran", err)
	}

	points := make([]dto.SeriesPoint, 0)
	index := make(map[string]int)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		index[key] = len(points)
		points = append(points, dto.SeriesPoint{Tanggal: key})
	}

	for _, r := range rows {
		key := r.PaymentDate.Format("2006-01-02")
		if i, ok := index[key]; ok {
			points[i].Jumlah++
			points[i].Total += r.Total - r.Potongan
		}
	}
	return points, nil
}
