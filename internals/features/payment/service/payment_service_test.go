// file: internals/features/payment/service/payment_service_test.go
package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	invoiceModel "github.com/faturgautama/unggas-berjaya-backend/internals/features/invoice/model"
	dto "github.com/faturgautama/unggas-berjaya-backend/internals/features/payment/dto"
	model "github.com/faturgautama/unggas-berjaya-backend/internals/features/payment/model"
	pelangganModel "github.com/faturgautama/unggas-berjaya-backend/internals/features/pelanggan/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&pelangganModel.Pelanggan{},
		&invoiceModel.Invoice{},
		&invoiceModel.InvoiceDetail{},
		&model.Payment{},
	))
	return db
}

func seedPelanggan(t *testing.T, db *gorm.DB, name string) pelangganModel.Pelanggan {
	t.Helper()
	p := pelangganModel.Pelanggan{
		RefID:    fmt.Sprintf("REF-%s", name),
		FullName: name,
		Alamat:   "Belum Diatur",
		Phone:    "Belum Diatur",
		IsActive: true,
		CreateAt: time.Now(),
		CreateBy: 1,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func seedInvoice(t *testing.T, db *gorm.DB, idPelanggan int64, number string, total float64) invoiceModel.Invoice {
	t.Helper()
	inv := invoiceModel.Invoice{
		InvoiceNumber: number,
		InvoiceDate:   time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		IDPelanggan:   idPelanggan,
		Total:         total,
		InvoiceStatus: invoiceModel.StatusBelumTerbayar,
		CreateAt:      time.Now(),
		CreateBy:      1,
	}
	require.NoError(t, db.Create(&inv).Error)
	return inv
}

func reloadInvoice(t *testing.T, db *gorm.DB, id int64) invoiceModel.Invoice {
	t.Helper()
	var inv invoiceModel.Invoice
	require.NoError(t, db.First(&inv, "id_invoice = ?", id).Error)
	return inv
}

func createReq(idInvoice int64, total, potongan float64, date time.Time) dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{
		IDInvoice:     idInvoice,
		PaymentDate:   date,
		PaymentMethod: "TRANSFER",
		PaymentAmount: total,
		Potongan:      potongan,
		Total:         total,
	}
}

func TestCreatePayment_InvoiceTidakDitemukan(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db)

	res, err := svc.Create(createReq(999, 100, 0, time.Now()), 1)
	require.NoError(t, err)
	assert.False(t, res.Status)
	assert.Equal(t, "Invoice tidak ditemukan", res.Message)
}

func TestCreatePayment_InvoiceSudahTerbayar(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db)

	p := seedPelanggan(t, db, "Budi")
	inv := seedInvoice(t, db, p.IDPelanggan, "INV-100", 500)

	res, err := svc.Create(createReq(inv.IDInvoice, 500, 0, time.Now()), 1)
	require.NoError(t, err)
	require.True(t, res.Status)

	// invoice kini lunas, pembayaran berikutnya harus ditolak
	res, err = svc.Create(createReq(inv.IDInvoice, 100, 0, time.Now()), 1)
	require.NoError(t, err)
	assert.False(t, res.Status)
	assert.Equal(t, "Invoice sudah terbayar", res.Message)
}

func TestReconciliation_BayarBertahapSampaiLunas(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db)

	p := seedPelanggan(t, db, "Budi")
	inv := seedInvoice(t, db, p.IDPelanggan, "INV-001", 1000)

	resA, err := svc.Create(createReq(inv.IDInvoice, 600, 0, time.Now()), 7)
	require.NoError(t, err)
	require.True(t, resA.Status)

	after := reloadInvoice(t, db, inv.IDInvoice)
	assert.Equal(t, float64(600), after.Bayar)
	assert.False(t, after.IsLunas)
	assert.Equal(t, invoiceModel.StatusBelumTerbayar, after.InvoiceStatus)
	assert.Nil(t, after.LunasAt)
	require.NotNil(t, after.Source)
	assert.Equal(t, invoiceModel.SourceSystem, *after.Source)
	require.NotNil(t, after.UpdateBy)
	assert.Equal(t, int64(7), *after.UpdateBy)

	resB, err := svc.Create(createReq(inv.IDInvoice, 400, 0, time.Now()), 7)
	require.NoError(t, err)
	require.True(t, resB.Status)

	after = reloadInvoice(t, db, inv.IDInvoice)
	assert.Equal(t, float64(1000), after.Bayar)
	assert.True(t, after.IsLunas)
	assert.Equal(t, invoiceModel.StatusLunas, after.InvoiceStatus)
	assert.NotNil(t, after.LunasAt)

	// soft-delete pembayaran terakhir mengembalikan status belum terbayar
	del, err := svc.Delete(resB.Data.IDPayment, 7)
	require.NoError(t, err)
	require.True(t, del.Status)

	after = reloadInvoice(t, db, inv.IDInvoice)
	assert.Equal(t, float64(600), after.Bayar)
	assert.False(t, after.IsLunas)
	assert.Equal(t, invoiceModel.StatusBelumTerbayar, after.InvoiceStatus)
	assert.Nil(t, after.LunasAt)
}

func TestReconciliation_PotonganMengurangiKontribusi(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db)

	p := seedPelanggan(t, db, "Siti")
	inv := seedInvoice(t, db, p.IDPelanggan, "INV-002", 1000)

	res, err := svc.Create(createReq(inv.IDInvoice, 600, 50, time.Now()), 1)
	require.NoError(t, err)
	require.True(t, res.Status)

	after := reloadInvoice(t, db, inv.IDInvoice)
	assert.Equal(t, float64(550), after.Bayar)
	assert.False(t, after.IsLunas)
}

func TestUpdatePayment_RecomputeUlang(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db)

	p := seedPelanggan(t, db, "Budi")
	inv := seedInvoice(t, db, p.IDPelanggan, "INV-003", 1000)

	res, err := svc.Create(createReq(inv.IDInvoice, 400, 0, time.Now()), 1)
	require.NoError(t, err)
	require.True(t, res.Status)

	upd, err := svc.Update(dto.UpdatePaymentRequest{
		IDPayment:     res.Data.IDPayment,
		PaymentDate:   res.Data.PaymentDate,
		PaymentMethod: "CASH",
		PaymentAmount: 1000,
		Potongan:      0,
		Total:         1000,
	}, 2)
	require.NoError(t, err)
	require.True(t, upd.Status)

	after := reloadInvoice(t, db, inv.IDInvoice)
	assert.Equal(t, float64(1000), after.Bayar)
	assert.True(t, after.IsLunas)

	// nomor dan invoice tidak berubah walau field lain diubah
	assert.Equal(t, res.Data.PaymentNumber, upd.Data.PaymentNumber)
	assert.Equal(t, res.Data.IDInvoice, upd.Data.IDInvoice)
}

func TestDeletePayment_TidakDitemukan(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db)

	res, err := svc.Delete(12345, 1)
	require.NoError(t, err)
	assert.False(t, res.Status)
	assert.Equal(t, "Payment tidak ditemukan", res.Message)
}

func TestPaymentNumber_UrutanPerPelangganPerBulan(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db)

	p := seedPelanggan(t, db, "Budi")
	march := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)

	// tiga invoice berbeda, pembayaran di bulan yang sama
	var numbers []string
	for i := 0; i < 3; i++ {
		inv := seedInvoice(t, db, p.IDPelanggan, fmt.Sprintf("INV-N%d", i), 100)
		res, err := svc.Create(createReq(inv.IDInvoice, 50, 0, march.AddDate(0, 0, i)), 1)
		require.NoError(t, err)
		require.True(t, res.Status)
		numbers = append(numbers, res.Data.PaymentNumber)
	}
	assert.Equal(t, fmt.Sprintf("PMB-1-%d-2025", p.IDPelanggan), numbers[0])
	assert.Equal(t, fmt.Sprintf("PMB-2-%d-2025", p.IDPelanggan), numbers[1])
	assert.Equal(t, fmt.Sprintf("PMB-3-%d-2025", p.IDPelanggan), numbers[2])

	// bulan berikutnya urutan kembali ke 1
	invApril := seedInvoice(t, db, p.IDPelanggan, "INV-N9", 100)
	res, err := svc.Create(createReq(invApril.IDInvoice, 50, 0, march.AddDate(0, 1, 0)), 1)
	require.NoError(t, err)
	require.True(t, res.Status)
	assert.Equal(t, fmt.Sprintf("PMB-1-%d-2025", p.IDPelanggan), res.Data.PaymentNumber)
}

func TestPaymentNumber_PaymentTerhapusTidakDihitung(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db)

	p := seedPelanggan(t, db, "Budi")
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	inv1 := seedInvoice(t, db, p.IDPelanggan, "INV-D1", 100)
	res1, err := svc.Create(createReq(inv1.IDInvoice, 50, 0, date), 1)
	require.NoError(t, err)
	require.True(t, res1.Status)

	_, err = svc.Delete(res1.Data.IDPayment, 1)
	require.NoError(t, err)

	inv2 := seedInvoice(t, db, p.IDPelanggan, "INV-D2", 100)
	res2, err := svc.Create(createReq(inv2.IDInvoice, 50, 0, date), 1)
	require.NoError(t, err)
	require.True(t, res2.Status)
	assert.Equal(t, fmt.Sprintf("PMB-1-%d-2025", p.IDPelanggan), res2.Data.PaymentNumber)
}

func TestGetAllPayment_JoinDanFilterMetode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db)

	p := seedPelanggan(t, db, "Budi")
	inv := seedInvoice(t, db, p.IDPelanggan, "INV-L1", 1000)

	res, err := svc.Create(createReq(inv.IDInvoice, 100, 0, time.Now()), 1)
	require.NoError(t, err)
	require.True(t, res.Status)

	cash := createReq(inv.IDInvoice, 200, 0, time.Now())
	cash.PaymentMethod = "CASH"
	_, err = svc.Create(cash, 1)
	require.NoError(t, err)

	items, total, err := svc.GetAll(dto.ListPaymentQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, "INV-L1", items[0].InvoiceNumber)
	assert.Equal(t, "Budi", items[0].FullName)

	items, total, err = svc.GetAll(dto.ListPaymentQuery{PaymentMethod: "CASH", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "CASH", items[0].PaymentMethod)
}

func TestGetAllPayment_UrutTanggalNaik(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db)

	p := seedPelanggan(t, db, "Budi")
	inv := seedInvoice(t, db, p.IDPelanggan, "INV-O1", 1000)

	baru := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)
	lama := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(createReq(inv.IDInvoice, 100, 0, baru), 1)
	require.NoError(t, err)
	_, err = svc.Create(createReq(inv.IDInvoice, 200, 0, lama), 1)
	require.NoError(t, err)

	items, _, err := svc.GetAll(dto.ListPaymentQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, lama.Format("2006-01-02"), items[0].PaymentDate.Format("2006-01-02"))
	assert.Equal(t, baru.Format("2006-01-02"), items[1].PaymentDate.Format("2006-01-02"))
}

func TestGetByID_PaymentTerhapusTidakTampil(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db)

	p := seedPelanggan(t, db, "Budi")
	inv := seedInvoice(t, db, p.IDPelanggan, "INV-G1", 100)
	res, err := svc.Create(createReq(inv.IDInvoice, 50, 0, time.Now()), 1)
	require.NoError(t, err)

	_, err = svc.Delete(res.Data.IDPayment, 1)
	require.NoError(t, err)

	got, err := svc.GetByID(res.Data.IDPayment)
	require.NoError(t, err)
	assert.False(t, got.Status)
	assert.Equal(t, "Payment tidak ditemukan", got.Message)
}
