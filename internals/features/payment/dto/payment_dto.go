// file: internals/features/payment/dto/payment_dto.go
package dto

import (
	"time"

	model "github.com/faturgautama/unggas-berjaya-backend/internals/features/payment/model"
)

/* =========================================================
   REQUEST
========================================================= */

type CreatePaymentRequest struct {
	IDInvoice     int64     `json:"id_invoice" validate:"required"`
	PaymentDate   time.Time `json:"payment_date" validate:"required"`
	PaymentMethod string    `json:"payment_method" validate:"required"`
	PaymentAmount float64   `json:"payment_amount" validate:"required,gt=0"`
	Potongan      float64   `json:"potongan" validate:"gte=0"`
	Total         float64   `json:"total" validate:"required,gt=0"`
	Notes         *string   `json:"notes"`
}

// id_invoice dan payment_number tidak boleh diubah setelah dibuat
type UpdatePaymentRequest struct {
	IDPayment     int64     `json:"id_payment" validate:"required"`
	PaymentDate   time.Time `json:"payment_date" validate:"required"`
	PaymentMethod string    `json:"payment_method" validate:"required"`
	PaymentAmount float64   `json:"payment_amount" validate:"required,gt=0"`
	Potongan      float64   `json:"potongan" validate:"gte=0"`
	Total         float64   `json:"total" validate:"required,gt=0"`
	Notes         *string   `json:"notes"`
}

type ListPaymentQuery struct {
	IDPelanggan   *int64
	PaymentMethod string
	PaymentDate   *time.Time // difilter per bulan kalender
	Search        string
	Page          int
	Limit         int
	Offset        int
}

/* =========================================================
   RESPONSE
========================================================= */

type PaymentListItem struct {
	IDPayment     int64      `json:"id_payment"`
	IDInvoice     int64      `json:"id_invoice"`
	InvoiceNumber string     `json:"invoice_number"`
	IDPelanggan   int64      `json:"id_pelanggan"`
	FullName      string     `json:"full_name"`
	PaymentDate   time.Time  `json:"payment_date"`
	PaymentMethod string     `json:"payment_method"`
	PaymentNumber string     `json:"payment_number"`
	PaymentAmount float64    `json:"payment_amount"`
	Potongan      float64    `json:"potongan"`
	Total         float64    `json:"total"`
	Notes         *string    `json:"notes"`
	CreateAt      time.Time  `json:"create_at"`
	CreateBy      int64      `json:"create_by"`
	UpdateAt      *time.Time `json:"update_at"`
	UpdateBy      *int64     `json:"update_by"`
}

type PaymentResult struct {
	Status  bool           `json:"status"`
	Message string         `json:"message"`
	Data    *model.Payment `json:"data"`
}

type DeletePaymentResult struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}
