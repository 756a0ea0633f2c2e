// file: internals/features/invoice/service/invoice_service.go
package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/faturgautama/unggas-berjaya-backend/internals/constants"
	dto "github.com/faturgautama/unggas-berjaya-backend/internals/features/invoice/dto"
	model "github.com/faturgautama/unggas-berjaya-backend/internals/features/invoice/model"
	"github.com/faturgautama/unggas-berjaya-backend/internals/helpers/apperr"
)

type InvoiceService struct {
	DB *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db}
}

/* =========================================================
   LIST & DETAIL
========================================================= */

func (s *InvoiceService) GetAll(q dto.ListInvoiceQuery) ([]dto.InvoiceListItem, int64, error) {
	base := s.DB.Table("invoice").
		Joins("JOIN pelanggan ON pelanggan.id_pelanggan = invoice.id_pelanggan").
		Where("invoice.is_deleted = ?", false)

	if q.InvoiceNumber != "" {
		base = base.Where("invoice.invoice_number ILIKE ?", "%"+q.InvoiceNumber+"%")
	}
	if q.InvoiceStatus != "" {
		base = base.Where("invoice.invoice_status = ?", q.InvoiceStatus)
	}
	if q.IDPelanggan != nil {
		base = base.Where("invoice.id_pelanggan = ?", *q.IDPelanggan)
	}
	if q.InvoiceDate != nil {
		// filter per bulan kalender dari tanggal yang dikirim
		start := time.Date(q.InvoiceDate.Year(), q.InvoiceDate.Month(), 1, 0, 0, 0, 0, q.InvoiceDate.Location())
		end := start.AddDate(0, 1, 0)
		base = base.Where("invoice.invoice_date >= ? AND invoice.invoice_date < ?", start, end)
	}
	if q.Search != "" {
		base = base.Where("pelanggan.full_name ILIKE ?", "%"+q.Search+"%")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, apperr.Wrap(apperr.KindInternal, "gagal menghitung invoice", err)
	}

	var items []dto.InvoiceListItem
	err := base.Session(&gorm.Session{}).
		Select("invoice.*, pelanggan.full_name").
		Order("invoice.invoice_date DESC, invoice.id_invoice DESC").
		Limit(q.Limit).Offset(q.Offset).
		Scan(&items).Error
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.KindInternal, "gagal mengambil invoice", err)
	}

	if err := s.attachFirstPayment(items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// attachFirstPayment mengisi kolom pembayaran pertama (non-deleted, terlama)
// untuk setiap invoice pada halaman yang sedang ditampilkan.
func (s *InvoiceService) attachFirstPayment(items []dto.InvoiceListItem) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.IDInvoice)
	}

	type paymentRow struct {
		IDPayment     int64
		IDInvoice     int64
		PaymentDate   time.Time
		PaymentMethod string
	}
	var rows []paymentRow
	err := s.DB.Table("payment").
		Select("id_payment, id_invoice, payment_date, payment_method").
		Where("id_invoice IN ? AND is_delete = ?", ids, false).
		Order("payment_date ASC, id_payment ASC").
		Scan(&rows).Error
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "gagal mengambil pembayaran invoice", err)
	}

	first := make(map[int64]paymentRow, len(rows))
	for _, r := range rows {
		if _, ok := first[r.IDInvoice]; !ok {
			first[r.IDInvoice] = r
		}
	}

	for i := range items {
		if r, ok := first[items[i].IDInvoice]; ok {
			id := r.IDPayment
			pd := r.PaymentDate
			pm := r.PaymentMethod
			items[i].IDPayment = &id
			items[i].PaymentDate = &pd
			items[i].PaymentMethod = &pm
		}
	}
	return nil
}

func (s *InvoiceService) GetByID(id int64) (*dto.InvoiceResult, error) {
	type headerRow struct {
		dto.InvoiceListItem
		Phone  string
		Alamat string
	}
	var header headerRow
	err := s.DB.Table("invoice").
		Joins("JOIN pelanggan ON pelanggan.id_pelanggan = invoice.id_pelanggan").
		Select("invoice.*, pelanggan.full_name, pelanggan.phone, pelanggan.alamat").
		Where("invoice.id_invoice = ? AND invoice.is_deleted = ?", id, false).
		Scan(&header).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal mengambil invoice", err)
	}
	if header.IDInvoice == 0 {
		return &dto.InvoiceResult{Status: false, Message: "Faktur Penjualan Tidak Ditemukan"}, nil
	}

	var details []model.InvoiceDetail
	err = s.DB.
		Where("id_invoice = ? AND is_deleted = ?", id, false).
		Order("id_invoice_detail ASC").
		Find(&details).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal mengambil detail invoice", err)
	}
	if err := s.fillFirstPayment(&header.InvoiceListItem); err != nil {
		return nil, err
	}

	item := dto.InvoiceDetailResponse{
		InvoiceListItem: header.InvoiceListItem,
		Phone:           header.Phone,
		Alamat:          header.Alamat,
		Detail:          details,
	}
	return &dto.InvoiceResult{Status: true, Message: "OK", Data: &item}, nil
}

func (s *InvoiceService) fillFirstPayment(item *dto.InvoiceListItem) error {
	rows := []dto.InvoiceListItem{*item}
	if err := s.attachFirstPayment(rows); err != nil {
		return err
	}
	*item = rows[0]
	return nil
}

// GetInvoiceNumbers mengembalikan seluruh invoice_number yang masih hidup,
// dipakai klien sync legacy untuk menentukan batch insert/update.
func (s *InvoiceService) GetInvoiceNumbers() ([]string, error) {
	var numbers []string
	err := s.DB.Model(&model.Invoice{}).
		Where("is_deleted = ?", false).
		Order("invoice_number ASC").
		Pluck("invoice_number", &numbers).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal mengambil nomor invoice", err)
	}
	return numbers, nil
}

/* =========================================================
   SYNC ENGINE
   Tiga pass: insert (idempoten), update (source-freeze + diff),
   softDelete (bulk). Counts = ukuran batch yang diterima.
========================================================= */

func (s *InvoiceService) SyncAll(req dto.SyncInvoiceRequest) (*dto.SyncInvoiceResult, error) {
	counts := dto.SyncInvoiceCounts{
		Inserted:    len(req.Insert),
		Updated:     len(req.Update),
		SoftDeleted: len(req.SoftDelete),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Insert {
			if err := s.syncInsertOne(tx, item); err != nil {
				return err
			}
		}
		for _, item := range req.Update {
			if err := s.syncUpdateOne(tx, item); err != nil {
				return err
			}
		}
		if len(req.SoftDelete) > 0 {
			if err := s.syncSoftDelete(tx, req.SoftDelete); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.SyncInvoiceResult{Status: true, Message: "OK", Data: &counts}, nil
}

func (s *InvoiceService) syncInsertOne(tx *gorm.DB, item dto.SyncInvoiceItem) error {
	var existing model.Invoice
	err := tx.Where("invoice_number = ?", item.InvoiceNumber).First(&existing).Error
	if err == nil {
		// sudah pernah masuk — batch insert boleh diulang tanpa duplikat
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Wrap(apperr.KindInternal, "gagal memeriksa invoice "+item.InvoiceNumber, err)
	}

	now := time.Now()
	src := model.SourceLegacy
	inv := model.Invoice{
		InvoiceNumber: item.InvoiceNumber,
		InvoiceDate:   item.InvoiceDate,
		IDPelanggan:   item.IDPelanggan,
		Total:         item.Total,
		Bayar:         item.Bayar,
		Koreksi:       item.Koreksi,
		Kembali:       item.Kembali,
		IsCash:        item.IsCash,
		InvoiceStatus: model.StatusFromLunas(item.IsLunas),
		IsLunas:       item.IsLunas,
		LunasAt:       item.LunasAt,
		Source:        &src,
		SourceSyncAt:  &now,
		CreateAt:      now,
		CreateBy:      item.CreateBy,
	}
	if err := tx.Create(&inv).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "gagal menyimpan invoice "+item.InvoiceNumber, err)
	}

	return s.insertDetails(tx, inv.IDInvoice, item.InvoiceDetail, now)
}

func (s *InvoiceService) insertDetails(tx *gorm.DB, idInvoice int64, items []dto.SyncInvoiceDetailItem, now time.Time) error {
	if len(items) == 0 {
		return nil
	}
	details := make([]model.InvoiceDetail, 0, len(items))
	for _, d := range items {
		details = append(details, model.InvoiceDetail{
			IDInvoice:        idInvoice,
			KodeProduct:      d.KodeProduct,
			NamaProduct:      d.NamaProduct,
			Price:            d.Price,
			Qty:              d.Qty,
			Weight:           d.Weight,
			DiskonPercentage: d.DiskonPercentage,
			DiskonRupiah:     d.DiskonRupiah,
			Total:            d.Total,
			CreateAt:         now,
			CreateBy:         d.CreateBy,
		})
	}
	if err := tx.Create(&details).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "gagal menyimpan detail invoice", err)
	}
	return nil
}

func (s *InvoiceService) syncUpdateOne(tx *gorm.DB, item dto.SyncInvoiceItem) error {
	var existing model.Invoice
	err := tx.Where("invoice_number = ? AND is_deleted = ?", item.InvoiceNumber, false).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil // tidak ada yang bisa diupdate
	}
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "gagal memeriksa invoice "+item.InvoiceNumber, err)
	}

	// source-freeze: invoice yang sudah diambil alih sistem (source="system")
	// tidak boleh ditimpa lagi oleh sync legacy
	if existing.Source != nil && *existing.Source != model.SourceLegacy {
		return nil
	}

	var details []model.InvoiceDetail
	err = tx.Where("id_invoice = ? AND is_deleted = ?", existing.IDInvoice, false).
		Order("id_invoice_detail ASC").
		Find(&details).Error
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "gagal mengambil detail invoice "+item.InvoiceNumber, err)
	}

	if invoiceEqual(existing, item) && detailsEqual(details, item.InvoiceDetail) {
		return nil // tidak ada perubahan, jangan sentuh update_at
	}

	now := time.Now()
	updates := map[string]interface{}{
		"invoice_date":   item.InvoiceDate,
		"id_pelanggan":   item.IDPelanggan,
		"total":          item.Total,
		"bayar":          item.Bayar,
		"koreksi":        item.Koreksi,
		"kembali":        item.Kembali,
		"is_cash":        item.IsCash,
		"invoice_status": model.StatusFromLunas(item.IsLunas),
		"is_lunas":       item.IsLunas,
		"lunas_at":       item.LunasAt,
		"source":         model.SourceLegacy,
		"source_sync_at": now,
		"update_at":      now,
		"update_by":      constants.SystemActorID,
	}
	err = tx.Model(&model.Invoice{}).
		Where("id_invoice = ?", existing.IDInvoice).
		Updates(updates).Error
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "gagal mengubah invoice "+item.InvoiceNumber, err)
	}

	// detail diganti borongan: hapus semua lalu tulis ulang sesuai batch
	err = tx.Where("id_invoice = ?", existing.IDInvoice).
		Delete(&model.InvoiceDetail{}).Error
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "gagal menghapus detail invoice "+item.InvoiceNumber, err)
	}
	return s.insertDetails(tx, existing.IDInvoice, item.InvoiceDetail, now)
}

func (s *InvoiceService) syncSoftDelete(tx *gorm.DB, numbers []string) error {
	now := time.Now()
	err := tx.Model(&model.Invoice{}).
		Where("invoice_number IN ? AND is_deleted = ?", numbers, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"delete_at":  now,
			"delete_by":  constants.SystemActorID,
		}).Error
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "gagal menghapus invoice sync", err)
	}
	return nil
}

/* =========================================================
   Pembanding diff untuk pass update
========================================================= */

func invoiceEqual(inv model.Invoice, item dto.SyncInvoiceItem) bool {
	return inv.InvoiceDate.Equal(item.InvoiceDate) &&
		inv.IDPelanggan == item.IDPelanggan &&
		inv.Total == item.Total &&
		inv.Bayar == item.Bayar &&
		floatPtrEqual(inv.Koreksi, item.Koreksi) &&
		floatPtrEqual(inv.Kembali, item.Kembali) &&
		inv.IsCash == item.IsCash &&
		inv.IsLunas == item.IsLunas &&
		timePtrEqual(inv.LunasAt, item.LunasAt)
}

// detailsEqual membandingkan baris detail sebagai urutan berposisi:
// jumlah dan isi per indeks harus sama persis.
func detailsEqual(existing []model.InvoiceDetail, incoming []dto.SyncInvoiceDetailItem) bool {
	if len(existing) != len(incoming) {
		return false
	}
	for i := range existing {
		e, in := existing[i], incoming[i]
		if e.KodeProduct != in.KodeProduct ||
			e.NamaProduct != in.NamaProduct ||
			e.Price != in.Price ||
			e.Qty != in.Qty ||
			e.Weight != in.Weight ||
			e.DiskonPercentage != in.DiskonPercentage ||
			e.DiskonRupiah != in.DiskonRupiah ||
			e.Total != in.Total {
			return false
		}
	}
	return true
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
