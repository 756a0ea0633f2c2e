// file: internals/features/payment/service/payment_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	invoiceModel "github.com/faturgautama/unggas-berjaya-backend/internals/features/invoice/model"
	dto "github.com/faturgautama/unggas-berjaya-backend/internals/features/payment/dto"
	model "github.com/faturgautama/unggas-berjaya-backend/internals/features/payment/model"
	"github.com/faturgautama/unggas-berjaya-backend/internals/helpers/apperr"
)

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

/* =========================================================
   LIST & DETAIL
========================================================= */

func (s *PaymentService) GetAll(q dto.ListPaymentQuery) ([]dto.PaymentListItem, int64, error) {
	base := s.DB.Table("payment").
		Joins("JOIN invoice ON invoice.id_invoice = payment.id_invoice").
		Joins("JOIN pelanggan ON pelanggan.id_pelanggan = payment.id_pelanggan").
		Where("payment.is_delete = ?", false)

	if q.IDPelanggan != nil {
		base = base.Where("payment.id_pelanggan = ?", *q.IDPelanggan)
	}
	if q.PaymentMethod != "" {
		base = base.Where("payment.payment_method = ?", q.PaymentMethod)
	}
	if q.PaymentDate != nil {
		start := time.Date(q.PaymentDate.Year(), q.PaymentDate.Month(), 1, 0, 0, 0, 0, q.PaymentDate.Location())
		end := start.AddDate(0, 1, 0)
		base = base.Where("payment.payment_date >= ? AND payment.payment_date < ?", start, end)
	}
	if q.Search != "" {
		base = base.Where("pelanggan.full_name ILIKE ? OR invoice.invoice_number ILIKE ?",
			"%"+q.Search+"%", "%"+q.Search+"%")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, apperr.Wrap(apperr.KindInternal, "gagal menghitung payment", err)
	}

	var items []dto.PaymentListItem
	err := base.Session(&gorm.Session{}).
		Select("payment.*, invoice.invoice_number, pelanggan.full_name").
		Order("payment.payment_date ASC, payment.id_payment ASC").
		Limit(q.Limit).Offset(q.Offset).
		Scan(&items).Error
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.KindInternal, "gagal mengambil payment", err)
	}
	return items, total, nil
}

func (s *PaymentService) GetByID(id int64) (*dto.PaymentResult, error) {
	var payment model.Payment
	err := model.ScopeAlive(s.DB).Where("id_payment = ?", id).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.PaymentResult{Status: false, Message: "Payment tidak ditemukan"}, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal mengambil payment", err)
	}
	return &dto.PaymentResult{Status: true, Message: "OK", Data: &payment}, nil
}

/* =========================================================
   CREATE / UPDATE / DELETE
   Setiap mutasi diakhiri recompute penuh terhadap invoice terkait,
   dijalankan dalam satu transaksi (baca-hitung-tulis satu unit).
========================================================= */

func (s *PaymentService) Create(req dto.CreatePaymentRequest, actorID int64) (*dto.PaymentResult, error) {
	var result dto.PaymentResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var invoice invoiceModel.Invoice
		err := invoiceModel.ScopeAlive(tx).
			Where("id_invoice = ?", req.IDInvoice).
			First(&invoice).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result = dto.PaymentResult{Status: false, Message: "Invoice tidak ditemukan"}
			return nil
		}
		if err != nil {
			return apperr.Wrap(apperr.KindInternal, "gagal mengambil invoice", err)
		}
		if invoice.IsLunas {
			result = dto.PaymentResult{Status: false, Message: "Invoice sudah terbayar"}
			return nil
		}

		number, err := s.nextPaymentNumber(tx, invoice.IDPelanggan, req.PaymentDate)
		if err != nil {
			return err
		}

		payment := model.Payment{
			IDInvoice:     invoice.IDInvoice,
			IDPelanggan:   invoice.IDPelanggan,
			PaymentDate:   req.PaymentDate,
			PaymentMethod: req.PaymentMethod,
			PaymentNumber: number,
			PaymentAmount: req.PaymentAmount,
			Potongan:      req.Potongan,
			Total:         req.Total,
			Notes:         req.Notes,
			CreateAt:      time.Now(),
			CreateBy:      actorID,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return apperr.Wrap(apperr.KindInternal, "gagal menyimpan payment", err)
		}

		if err := s.Recompute(tx, invoice.IDInvoice, actorID); err != nil {
			return err
		}

		result = dto.PaymentResult{Status: true, Message: "Payment berhasil dibuat", Data: &payment}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// nextPaymentNumber membangun nomor PMB-{seq}-{id_pelanggan}-{tahun}.
// seq dihitung per pelanggan per bulan kalender dari tanggal pembayaran
// itu sendiri (bukan bulan invoice), hanya payment yang masih hidup.
func (s *PaymentService) nextPaymentNumber(tx *gorm.DB, idPelanggan int64, paymentDate time.Time) (string, error) {
	start := time.Date(paymentDate.Year(), paymentDate.Month(), 1, 0, 0, 0, 0, paymentDate.Location())
	end := start.AddDate(0, 1, 0)

	var count int64
	err := tx.Model(&model.Payment{}).
		Where("id_pelanggan = ? AND is_delete = ?", idPelanggan, false).
		Where("payment_date >= ? AND payment_date < ?", start, end).
		Count(&count).Error
	if err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "gagal menghitung nomor payment", err)
	}

	return fmt.Sprintf("PMB-%d-%d-%d", count+1, idPelanggan, paymentDate.Year()), nil
}

func (s *PaymentService) Update(req dto.UpdatePaymentRequest, actorID int64) (*dto.PaymentResult, error) {
	var result dto.PaymentResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var payment model.Payment
		err := model.ScopeAlive(tx).Where("id_payment = ?", req.IDPayment).First(&payment).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result = dto.PaymentResult{Status: false, Message: "Payment tidak ditemukan"}
			return nil
		}
		if err != nil {
			return apperr.Wrap(apperr.KindInternal, "gagal mengambil payment", err)
		}

		now := time.Now()
		payment.PaymentDate = req.PaymentDate
		payment.PaymentMethod = req.PaymentMethod
		payment.PaymentAmount = req.PaymentAmount
		payment.Potongan = req.Potongan
		payment.Total = req.Total
		payment.Notes = req.Notes
		payment.UpdateAt = &now
		payment.UpdateBy = &actorID

		if err := tx.Save(&payment).Error; err != nil {
			return apperr.Wrap(apperr.KindInternal, "gagal mengubah payment", err)
		}

		if err := s.Recompute(tx, payment.IDInvoice, actorID); err != nil {
			return err
		}

		result = dto.PaymentResult{Status: true, Message: "Payment berhasil diubah", Data: &payment}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *PaymentService) Delete(id int64, actorID int64) (*dto.DeletePaymentResult, error) {
	var result dto.DeletePaymentResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var payment model.Payment
		err := model.ScopeAlive(tx).Where("id_payment = ?", id).First(&payment).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result = dto.DeletePaymentResult{Status: false, Message: "Payment tidak ditemukan"}
			return nil
		}
		if err != nil {
			return apperr.Wrap(apperr.KindInternal, "gagal mengambil payment", err)
		}

		now := time.Now()
		err = tx.Model(&model.Payment{}).
			Where("id_payment = ?", payment.IDPayment).
			Updates(map[string]interface{}{
				"is_delete": true,
				"delete_at": now,
				"delete_by": actorID,
			}).Error
		if err != nil {
			return apperr.Wrap(apperr.KindInternal, "gagal menghapus payment", err)
		}

		if err := s.Recompute(tx, payment.IDInvoice, actorID); err != nil {
			return err
		}

		result = dto.DeletePaymentResult{Status: true, Message: "Payment berhasil dihapus"}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

/* =========================================================
   RECONCILIATION ENGINE
========================================================= */

// Recompute menghitung ulang posisi bayar sebuah invoice dari nol:
// bayar = SUM(total - potongan) seluruh payment hidup, lalu status
// lunas (is_lunas, invoice_status, lunas_at) diset atomik bersama
// bayar. Recompute penuh, bukan delta — satu kali recompute selalu
// memulihkan konsistensi apa pun riwayat sebelumnya.
func (s *PaymentService) Recompute(tx *gorm.DB, idInvoice int64, actorID int64) error {
	var invoice invoiceModel.Invoice
	err := invoiceModel.ScopeAlive(tx).
		Where("id_invoice = ?", idInvoice).
		First(&invoice).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.KindNotFound, "Invoice tidak ditemukan")
	}
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "gagal mengambil invoice", err)
	}

	var paid float64
	err = tx.Model(&model.Payment{}).
		Where("id_invoice = ? AND is_delete = ?", idInvoice, false).
		Select("COALESCE(SUM(total - COALESCE(potongan, 0)), 0)").
		Scan(&paid).Error
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "gagal menjumlahkan payment", err)
	}

	now := time.Now()
	lunas := paid >= invoice.Total

	updates := map[string]interface{}{
		"bayar":          paid,
		"is_lunas":       lunas,
		"invoice_status": invoiceModel.StatusFromLunas(lunas),
		"source":         invoiceModel.SourceSystem,
		"update_at":      now,
		"update_by":      actorID,
	}
	if lunas {
		updates["lunas_at"] = now
	} else {
		updates["lunas_at"] = nil
	}

	err = tx.Model(&invoiceModel.Invoice{}).
		Where("id_invoice = ?", idInvoice).
		Updates(updates).Error
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "gagal memperbarui posisi bayar invoice", err)
	}
	return nil
}
