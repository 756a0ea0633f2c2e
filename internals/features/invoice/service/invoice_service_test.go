// file: internals/features/invoice/service/invoice_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/faturgautama/unggas-berjaya-backend/internals/constants"
	dto "github.com/faturgautama/unggas-berjaya-backend/internals/features/invoice/dto"
	model "github.com/faturgautama/unggas-berjaya-backend/internals/features/invoice/model"
	paymentModel "github.com/faturgautama/unggas-berjaya-backend/internals/features/payment/model"
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
		&model.Invoice{},
		&model.InvoiceDetail{},
		&paymentModel.Payment{},
	))
	return db
}

func seedPelanggan(t *testing.T, db *gorm.DB) pelangganModel.Pelanggan {
	t.Helper()
	p := pelangganModel.Pelanggan{
		RefID:    "REF-1",
		FullName: "Budi",
		Alamat:   "Belum Diatur",
		Phone:    "Belum Diatur",
		IsActive: true,
		CreateAt: time.Now(),
		CreateBy: 1,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func syncItem(idPelanggan int64, number string, total float64) dto.SyncInvoiceItem {
	return dto.SyncInvoiceItem{
		InvoiceNumber: number,
		InvoiceDate:   time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		IDPelanggan:   idPelanggan,
		Total:         total,
		CreateBy:      constants.SystemActorID,
		InvoiceDetail: []dto.SyncInvoiceDetailItem{
			{KodeProduct: "AYM-01", NamaProduct: "Ayam Broiler", Price: total, Qty: 1, Weight: 1.5, Total: total, CreateBy: constants.SystemActorID},
		},
	}
}

func loadInvoice(t *testing.T, db *gorm.DB, number string) model.Invoice {
	t.Helper()
	var inv model.Invoice
	require.NoError(t, db.First(&inv, "invoice_number = ?", number).Error)
	return inv
}

func TestSyncInsert_Idempoten(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvoiceService(db)
	p := seedPelanggan(t, db)

	req := dto.SyncInvoiceRequest{Insert: []dto.SyncInvoiceItem{syncItem(p.IDPelanggan, "INV-001", 1000)}}

	res, err := svc.SyncAll(req)
	require.NoError(t, err)
	require.True(t, res.Status)
	assert.Equal(t, 1, res.Data.Inserted)

	// batch yang sama dikirim ulang: tidak boleh ada duplikat
	res, err = svc.SyncAll(req)
	require.NoError(t, err)
	require.True(t, res.Status)

	var count int64
	require.NoError(t, db.Model(&model.Invoice{}).Where("invoice_number = ?", "INV-001").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var detailCount int64
	require.NoError(t, db.Model(&model.InvoiceDetail{}).Count(&detailCount).Error)
	assert.Equal(t, int64(1), detailCount)

	inv := loadInvoice(t, db, "INV-001")
	require.NotNil(t, inv.Source)
	assert.Equal(t, model.SourceLegacy, *inv.Source)
	assert.Equal(t, model.StatusBelumTerbayar, inv.InvoiceStatus)
}

func TestSyncInsert_StatusDariIsLunas(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvoiceService(db)
	p := seedPelanggan(t, db)

	lunasAt := time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC)
	item := syncItem(p.IDPelanggan, "INV-LNS", 1000)
	item.Bayar = 1000
	item.IsLunas = true
	item.LunasAt = &lunasAt

	_, err := svc.SyncAll(dto.SyncInvoiceRequest{Insert: []dto.SyncInvoiceItem{item}})
	require.NoError(t, err)

	inv := loadInvoice(t, db, "INV-LNS")
	assert.True(t, inv.IsLunas)
	assert.Equal(t, model.StatusLunas, inv.InvoiceStatus)
	require.NotNil(t, inv.LunasAt)
}

func TestSyncUpdate_SourceFreeze(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvoiceService(db)
	p := seedPelanggan(t, db)

	_, err := svc.SyncAll(dto.SyncInvoiceRequest{Insert: []dto.SyncInvoiceItem{syncItem(p.IDPelanggan, "INV-FRZ", 1000)}})
	require.NoError(t, err)

	// invoice diambil alih sistem (mis. setelah pembayaran manual)
	src := model.SourceSystem
	require.NoError(t, db.Model(&model.Invoice{}).
		Where("invoice_number = ?", "INV-FRZ").
		Update("source", src).Error)

	changed := syncItem(p.IDPelanggan, "INV-FRZ", 9999)
	_, err = svc.SyncAll(dto.SyncInvoiceRequest{Update: []dto.SyncInvoiceItem{changed}})
	require.NoError(t, err)

	inv := loadInvoice(t, db, "INV-FRZ")
	assert.Equal(t, float64(1000), inv.Total) // tidak tertimpa
	require.NotNil(t, inv.Source)
	assert.Equal(t, model.SourceSystem, *inv.Source)
}

func TestSyncUpdate_NoOpTidakMenulis(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvoiceService(db)
	p := seedPelanggan(t, db)

	item := syncItem(p.IDPelanggan, "INV-NOP", 1000)
	_, err := svc.SyncAll(dto.SyncInvoiceRequest{Insert: []dto.SyncInvoiceItem{item}})
	require.NoError(t, err)

	before := loadInvoice(t, db, "INV-NOP")
	assert.Nil(t, before.UpdateAt)

	// batch update dengan isi persis sama: update_at harus tetap kosong
	_, err = svc.SyncAll(dto.SyncInvoiceRequest{Update: []dto.SyncInvoiceItem{item}})
	require.NoError(t, err)

	after := loadInvoice(t, db, "INV-NOP")
	assert.Nil(t, after.UpdateAt)
}

func TestSyncUpdate_PerubahanFieldDanDetail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvoiceService(db)
	p := seedPelanggan(t, db)

	item := syncItem(p.IDPelanggan, "INV-UPD", 1000)
	_, err := svc.SyncAll(dto.SyncInvoiceRequest{Insert: []dto.SyncInvoiceItem{item}})
	require.NoError(t, err)

	item.Total = 1500
	item.InvoiceDetail = []dto.SyncInvoiceDetailItem{
		{KodeProduct: "AYM-01", NamaProduct: "Ayam Broiler", Price: 1000, Qty: 1, Weight: 1.5, Total: 1000, CreateBy: constants.SystemActorID},
		{KodeProduct: "AYM-02", NamaProduct: "Ayam Kampung", Price: 500, Qty: 1, Weight: 1.0, Total: 500, CreateBy: constants.SystemActorID},
	}

	res, err := svc.SyncAll(dto.SyncInvoiceRequest{Update: []dto.SyncInvoiceItem{item}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Data.Updated)

	inv := loadInvoice(t, db, "INV-UPD")
	assert.Equal(t, float64(1500), inv.Total)
	require.NotNil(t, inv.UpdateAt)
	require.NotNil(t, inv.UpdateBy)
	assert.Equal(t, constants.SystemActorID, *inv.UpdateBy)

	// detail diganti borongan sesuai batch terakhir
	var details []model.InvoiceDetail
	require.NoError(t, db.Where("id_invoice = ?", inv.IDInvoice).Order("id_invoice_detail ASC").Find(&details).Error)
	require.Len(t, details, 2)
	assert.Equal(t, "AYM-02", details[1].KodeProduct)
}

func TestSyncUpdate_UrutanDetailBerbedaDianggapBerubah(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvoiceService(db)
	p := seedPelanggan(t, db)

	item := syncItem(p.IDPelanggan, "INV-ORD", 1000)
	item.InvoiceDetail = []dto.SyncInvoiceDetailItem{
		{KodeProduct: "A", NamaProduct: "Produk A", Price: 600, Qty: 1, Total: 600},
		{KodeProduct: "B", NamaProduct: "Produk B", Price: 400, Qty: 1, Total: 400},
	}
	_, err := svc.SyncAll(dto.SyncInvoiceRequest{Insert: []dto.SyncInvoiceItem{item}})
	require.NoError(t, err)

	// isi sama, urutan dibalik
	item.InvoiceDetail = []dto.SyncInvoiceDetailItem{
		{KodeProduct: "B", NamaProduct: "Produk B", Price: 400, Qty: 1, Total: 400},
		{KodeProduct: "A", NamaProduct: "Produk A", Price: 600, Qty: 1, Total: 600},
	}
	_, err = svc.SyncAll(dto.SyncInvoiceRequest{Update: []dto.SyncInvoiceItem{item}})
	require.NoError(t, err)

	inv := loadInvoice(t, db, "INV-ORD")
	assert.NotNil(t, inv.UpdateAt)
}

func TestSyncUpdate_InvoiceTidakAdaDilewati(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvoiceService(db)
	p := seedPelanggan(t, db)

	res, err := svc.SyncAll(dto.SyncInvoiceRequest{Update: []dto.SyncInvoiceItem{syncItem(p.IDPelanggan, "INV-GHOST", 100)}})
	require.NoError(t, err)
	require.True(t, res.Status)

	var count int64
	require.NoError(t, db.Model(&model.Invoice{}).Count(&count).Error)
	assert.Equal(t, int64(0), count) // update tidak pernah membuat baris baru
}

func TestSyncSoftDelete_Bulk(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvoiceService(db)
	p := seedPelanggan(t, db)

	_, err := svc.SyncAll(dto.SyncInvoiceRequest{Insert: []dto.SyncInvoiceItem{
		syncItem(p.IDPelanggan, "INV-A", 100),
		syncItem(p.IDPelanggan, "INV-B", 200),
	}})
	require.NoError(t, err)

	res, err := svc.SyncAll(dto.SyncInvoiceRequest{SoftDelete: []string{"INV-A", "INV-X"}})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Data.SoftDeleted)

	invA := loadInvoice(t, db, "INV-A")
	assert.True(t, invA.IsDeleted)
	require.NotNil(t, invA.DeleteBy)
	assert.Equal(t, constants.SystemActorID, *invA.DeleteBy)

	invB := loadInvoice(t, db, "INV-B")
	assert.False(t, invB.IsDeleted)

	numbers, err := svc.GetInvoiceNumbers()
	require.NoError(t, err)
	assert.Equal(t, []string{"INV-B"}, numbers)
}

func TestGetAll_PaginasiDanKolomPembayaran(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvoiceService(db)
	p := seedPelanggan(t, db)

	_, err := svc.SyncAll(dto.SyncInvoiceRequest{Insert: []dto.SyncInvoiceItem{
		syncItem(p.IDPelanggan, "INV-P1", 100),
		syncItem(p.IDPelanggan, "INV-P2", 200),
		syncItem(p.IDPelanggan, "INV-P3", 300),
	}})
	require.NoError(t, err)

	invP1 := loadInvoice(t, db, "INV-P1")
	pay := paymentModel.Payment{
		IDInvoice:   invP1.IDInvoice,
		IDPelanggan: p.IDPelanggan,
		PaymentDate: time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC),
		PaymentMethod: "TRANSFER", PaymentNumber: "PMB-1-1-2025",
		PaymentAmount: 50, Total: 50,
		CreateAt: time.Now(), CreateBy: 1,
	}
	require.NoError(t, db.Create(&pay).Error)

	items, total, err := svc.GetAll(dto.ListInvoiceQuery{Page: 1, Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 2)
	assert.Equal(t, "Budi", items[0].FullName)

	items, _, err = svc.GetAll(dto.ListInvoiceQuery{Page: 2, Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, items, 1)

	// kolom pembayaran pertama ikut terisi untuk invoice yang punya payment
	all, _, err := svc.GetAll(dto.ListInvoiceQuery{Page: 1, Limit: 10, Offset: 0})
	require.NoError(t, err)
	var found bool
	for _, it := range all {
		if it.InvoiceNumber == "INV-P1" {
			found = true
			require.NotNil(t, it.IDPayment)
			assert.Equal(t, pay.IDPayment, *it.IDPayment)
			require.NotNil(t, it.PaymentMethod)
			assert.Equal(t, "TRANSFER", *it.PaymentMethod)
		} else {
			assert.Nil(t, it.IDPayment)
		}
	}
	assert.True(t, found)
}

func TestGetByID_TidakDitemukan(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvoiceService(db)

	res, err := svc.GetByID(4242)
	require.NoError(t, err)
	assert.False(t, res.Status)
	assert.Equal(t, "Faktur Penjualan Tidak Ditemukan", res.Message)
}
