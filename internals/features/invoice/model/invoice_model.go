// file: internals/features/invoice/model/invoice_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

/* =========================
   Enum status & source
========================= */

const (
	StatusBelumTerbayar = "BELUM TERBAYAR"
	StatusLunas         = "LUNAS"
)

const (
	// SourceLegacy: baris masih milik sistem legacy, boleh ditimpa sync.
	SourceLegacy = "legacy"
	// SourceSystem: state finansial sudah diklaim aksi lokal, sync tidak boleh menimpa.
	SourceSystem = "system"
)

/* =========================
   Model: invoice
========================= */

type Invoice struct {
	IDInvoice int64 `json:"id_invoice" gorm:"column:id_invoice;primaryKey;autoIncrement"`

	InvoiceNumber string    `json:"invoice_number" gorm:"column:invoice_number;type:varchar(60);not null"`
	InvoiceDate   time.Time `json:"invoice_date" gorm:"column:invoice_date;not null"`
	IDPelanggan   int64     `json:"id_pelanggan" gorm:"column:id_pelanggan;not null"`

	Total   float64  `json:"total" gorm:"column:total;not null"`
	Bayar   float64  `json:"bayar" gorm:"column:bayar;not null;default:0"`
	Koreksi *float64 `json:"koreksi" gorm:"column:koreksi"`
	Kembali *float64 `json:"kembali" gorm:"column:kembali"`
	IsCash  bool     `json:"is_cash" gorm:"column:is_cash;not null;default:false"`

	// invoice_status, is_lunas, dan lunas_at selalu diubah bersama-sama.
	InvoiceStatus string     `json:"invoice_status" gorm:"column:invoice_status;type:varchar(30);not null"`
	IsLunas       bool       `json:"is_lunas" gorm:"column:is_lunas;not null;default:false"`
	LunasAt       *time.Time `json:"lunas_at" gorm:"column:lunas_at"`

	Source       *string    `json:"source" gorm:"column:source;type:varchar(20)"`
	SourceSyncAt *time.Time `json:"source_sync_at" gorm:"column:source_sync_at"`

	IsDeleted bool       `json:"is_deleted" gorm:"column:is_deleted;not null;default:false"`
	CreateAt  time.Time  `json:"create_at" gorm:"column:create_at"`
	CreateBy  int64      `json:"create_by" gorm:"column:create_by"`
	UpdateAt  *time.Time `json:"update_at" gorm:"column:update_at"`
	UpdateBy  *int64     `json:"update_by" gorm:"column:update_by"`
	DeleteAt  *time.Time `json:"delete_at" gorm:"column:delete_at"`
	DeleteBy  *int64     `json:"delete_by" gorm:"column:delete_by"`
}

func (Invoice) TableName() string { return "invoice" }

// StatusFromLunas menurunkan status dari flag is_lunas.
func StatusFromLunas(isLunas bool) string {
	if isLunas {
		return StatusLunas
	}
	return StatusBelumTerbayar
}

// ScopeAlive membatasi query ke invoice yang belum dihapus.
func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Model(&Invoice{}).Where("is_deleted = ?", false)
}
