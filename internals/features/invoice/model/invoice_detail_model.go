// file: internals/features/invoice/model/invoice_detail_model.go
package model

import "time"

/* =========================
   Model: invoice_detail
   Item baris milik satu invoice; pada sync selalu
   diganti utuh (hapus semua, insert ulang), tidak pernah di-diff per baris.
========================= */

type InvoiceDetail struct {
	IDInvoiceDetail int64 `json:"id_invoice_detail" gorm:"column:id_invoice_detail;primaryKey;autoIncrement"`
	IDInvoice       int64 `json:"id_invoice" gorm:"column:id_invoice;not null;index"`

	KodeProduct      string  `json:"kode_product" gorm:"column:kode_product;type:varchar(60);not null"`
	NamaProduct      string  `json:"nama_product" gorm:"column:nama_product;type:text;not null"`
	Price            float64 `json:"price" gorm:"column:price;not null"`
	Qty              float64 `json:"qty" gorm:"column:qty;not null"`
	Weight           float64 `json:"weight" gorm:"column:weight"`
	DiskonPercentage float64 `json:"diskon_percentage" gorm:"column:diskon_percentage;not null;default:0"`
	DiskonRupiah     float64 `json:"diskon_rupiah" gorm:"column:diskon_rupiah;not null;default:0"`
	Total            float64 `json:"total" gorm:"column:total;not null"`

	IsDeleted bool       `json:"is_deleted" gorm:"column:is_deleted;not null;default:false"`
	CreateAt  time.Time  `json:"create_at" gorm:"column:create_at"`
	CreateBy  int64      `json:"create_by" gorm:"column:create_by"`
	UpdateAt  *time.Time `json:"update_at" gorm:"column:update_at"`
	UpdateBy  *int64     `json:"update_by" gorm:"column:update_by"`
}

func (InvoiceDetail) TableName() string { return "invoice_detail" }
