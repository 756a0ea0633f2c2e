// file: internals/features/invoice/dto/invoice_dto.go
package dto

import (
	"time"

	model "github.com/faturgautama/unggas-berjaya-backend/internals/features/invoice/model"
)

/* =========================================================
   Query list
========================================================= */

type ListInvoiceQuery struct {
	InvoiceNumber string
	InvoiceStatus string
	InvoiceDate   *time.Time // difilter per bulan kalender
	IDPelanggan   *int64
	Search        string
	Page          int
	Limit         int
	Offset        int
}

/* =========================================================
   RESPONSE
========================================================= */

type InvoiceListItem struct {
	IDInvoice     int64      `json:"id_invoice"`
	InvoiceNumber string     `json:"invoice_number"`
	InvoiceDate   time.Time  `json:"invoice_date"`
	IDPelanggan   int64      `json:"id_pelanggan"`
	FullName      string     `json:"full_name"`
	Total         float64    `json:"total"`
	Bayar         float64    `json:"bayar"`
	Koreksi       *float64   `json:"koreksi"`
	Kembali       *float64   `json:"kembali"`
	IsCash        bool       `json:"is_cash"`
	InvoiceStatus string     `json:"invoice_status"`
	IDPayment     *int64     `json:"id_payment"`
	PaymentDate   *time.Time `json:"payment_date"`
	PaymentMethod *string    `json:"payment_method"`
	CreateAt      time.Time  `json:"create_at"`
	CreateBy      int64      `json:"create_by"`
	UpdateAt      *time.Time `json:"update_at"`
	UpdateBy      *int64     `json:"update_by"`
	IsDeleted     bool       `json:"is_deleted"`
	DeleteAt      *time.Time `json:"delete_at"`
	DeleteBy      *int64     `json:"delete_by"`
	IsLunas       bool       `json:"is_lunas"`
	LunasAt       *time.Time `json:"lunas_at"`
}

type InvoiceDetailResponse struct {
	InvoiceListItem
	Phone  string                `json:"phone"`
	Alamat string                `json:"alamat"`
	Detail []model.InvoiceDetail `json:"detail"`
}

type InvoiceResult struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message"`
	Data    *InvoiceDetailResponse `json:"data"`
}

/* =========================================================
   SYNC: tiga batch dari sistem legacy, dikunci invoice_number
========================================================= */

type SyncInvoiceDetailItem struct {
	KodeProduct      string  `json:"kode_product" validate:"required"`
	NamaProduct      string  `json:"nama_product" validate:"required"`
	Price            float64 `json:"price"`
	Qty              float64 `json:"qty"`
	Weight           float64 `json:"weight"`
	DiskonPercentage float64 `json:"diskon_percentage"`
	DiskonRupiah     float64 `json:"diskon_rupiah"`
	Total            float64 `json:"total"`
	CreateBy         int64   `json:"create_by"`
}

type SyncInvoiceItem struct {
	InvoiceNumber string                  `json:"invoice_number" validate:"required"`
	InvoiceDate   time.Time               `json:"invoice_date" validate:"required"`
	IDPelanggan   int64                   `json:"id_pelanggan" validate:"required"`
	Total         float64                 `json:"total"`
	Bayar         float64                 `json:"bayar"`
	Koreksi       *float64                `json:"koreksi"`
	Kembali       *float64                `json:"kembali"`
	IsCash        bool                    `json:"is_cash"`
	IsLunas       bool                    `json:"is_lunas"`
	LunasAt       *time.Time              `json:"lunas_at"`
	CreateBy      int64                   `json:"create_by"`
	InvoiceDetail []SyncInvoiceDetailItem `json:"invoice_detail" validate:"dive"`
}

type SyncInvoiceRequest struct {
	Insert     []SyncInvoiceItem `json:"insert" validate:"dive"`
	Update     []SyncInvoiceItem `json:"update" validate:"dive"`
	SoftDelete []string          `json:"softDelete"`
}

// Counts melaporkan ukuran batch yang diterima, bukan jumlah baris yang
// benar-benar berubah (skip/no-op tidak dikurangi).
type SyncInvoiceCounts struct {
	Inserted    int `json:"inserted"`
	Updated     int `json:"updated"`
	SoftDeleted int `json:"softDeleted"`
}

type SyncInvoiceResult struct {
	Status  bool               `json:"status"`
	Message string             `json:"message"`
	Data    *SyncInvoiceCounts `json:"data"`
}
