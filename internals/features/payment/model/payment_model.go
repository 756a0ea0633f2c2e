// file: internals/features/payment/model/payment_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

/* =========================
   Model: payment
========================= */

type Payment struct {
	IDPayment int64 `json:"id_payment" gorm:"column:id_payment;primaryKey;autoIncrement"`

	IDInvoice int64 `json:"id_invoice" gorm:"column:id_invoice;not null;index"`
	// id_pelanggan disalin dari invoice saat create; hanya untuk kemudahan query,
	// tidak pernah diedit terpisah.
	IDPelanggan int64 `json:"id_pelanggan" gorm:"column:id_pelanggan;not null;index"`

	PaymentDate   time.Time `json:"payment_date" gorm:"column:payment_date;not null"`
	PaymentMethod string    `json:"payment_method" gorm:"column:payment_method;type:varchar(30);not null"`
	// PMB-{urutan}-{id_pelanggan}-{tahun}; urutan per pelanggan per bulan kalender.
	PaymentNumber string  `json:"payment_number" gorm:"column:payment_number;type:varchar(60);not null"`
	PaymentAmount float64 `json:"payment_amount" gorm:"column:payment_amount;not null"`
	Potongan      float64 `json:"potongan" gorm:"column:potongan;not null;default:0"`
	Total         float64 `json:"total" gorm:"column:total;not null"`
	Notes         *string `json:"notes" gorm:"column:notes;type:text"`

	IsDelete bool       `json:"is_delete" gorm:"column:is_delete;not null;default:false"`
	CreateAt time.Time  `json:"create_at" gorm:"column:create_at"`
	CreateBy int64      `json:"create_by" gorm:"column:create_by"`
	UpdateAt *time.Time `json:"update_at" gorm:"column:update_at"`
	UpdateBy *int64     `json:"update_by" gorm:"column:update_by"`
	DeleteAt *time.Time `json:"delete_at" gorm:"column:delete_at"`
	DeleteBy *int64     `json:"delete_by" gorm:"column:delete_by"`
}

func (Payment) TableName() string { return "payment" }

// ScopeAlive membatasi query ke payment yang belum dihapus.
func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Model(&Payment{}).Where("is_delete = ?", false)
}
