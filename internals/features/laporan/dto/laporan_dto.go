// file: internals/features/laporan/dto/laporan_dto.go
package dto

import "time"

/* =========================================================
   Laporan piutang
========================================================= */

type PiutangPelangganRow struct {
	IDPelanggan   int64   `json:"id_pelanggan"`
	FullName      string  `json:"full_name"`
	JumlahInvoice int64   `json:"jumlah_invoice"`
	TotalTagihan  float64 `json:"total_tagihan"`
	TotalBayar    float64 `json:"total_bayar"`
	SisaPiutang   float64 `json:"sisa_piutang"`
}

// UmurPiutangBucket mengelompokkan sisa piutang berdasarkan umur
// invoice (hari sejak invoice_date) pada saat laporan dibuat.
type UmurPiutangBucket struct {
	Label         string  `json:"label"` // "0-30", "31-60", "61-90", ">90"
	JumlahInvoice int64   `json:"jumlah_invoice"`
	SisaPiutang   float64 `json:"sisa_piutang"`
}

type UmurPiutangResponse struct {
	Buckets     []UmurPiutangBucket `json:"buckets"`
	TotalSisa   float64             `json:"total_sisa"`
	GeneratedAt time.Time           `json:"generated_at"`
}

/* =========================================================
   Laporan pembayaran & penjualan
========================================================= */

type PembayaranMasukRow struct {
	IDPayment     int64     `json:"id_payment"`
	PaymentNumber string    `json:"payment_number"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod string    `json:"payment_method"`
	InvoiceNumber string    `json:"invoice_number"`
	FullName      string    `json:"full_name"`
	PaymentAmount float64   `json:"payment_amount"`
	Potongan      float64   `json:"potongan"`
	Total         float64   `json:"total"`
}

type PembayaranMasukResponse struct {
	Rows          []PembayaranMasukRow `json:"rows"`
	TotalDiterima float64              `json:"total_diterima"`
	TotalPotongan float64              `json:"total_potongan"`
}

type RekapPenjualanRow struct {
	Bulan         int     `json:"bulan"` // 1..12
	NamaBulan     string  `json:"nama_bulan"`
	JumlahInvoice int64   `json:"jumlah_invoice"`
	TotalTagihan  float64 `json:"total_tagihan"`
	TotalBayar    float64 `json:"total_bayar"`
	SisaPiutang   float64 `json:"sisa_piutang"`
}

type RiwayatPembayaranRow struct {
	IDPayment     int64     `json:"id_payment"`
	PaymentNumber string    `json:"payment_number"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod string    `json:"payment_method"`
	InvoiceNumber string    `json:"invoice_number"`
	PaymentAmount float64   `json:"payment_amount"`
	Potongan      float64   `json:"potongan"`
	Total         float64   `json:"total"`
	Notes         *string   `json:"notes"`
}
