// file: internals/features/dashboard/dto/dashboard_dto.go
package dto

type DashboardSummary struct {
	TotalPelangganAktif int64   `json:"total_pelanggan_aktif"`
	TotalInvoice        int64   `json:"total_invoice"`
	InvoiceBelumLunas   int64   `json:"invoice_belum_lunas"`
	InvoiceLunas        int64   `json:"invoice_lunas"`
	TotalPiutang        float64 `json:"total_piutang"`
	PembayaranBulanIni  float64 `json:"pembayaran_bulan_ini"`
}

// SeriesPoint satu titik per hari kalender; hari tanpa pembayaran
// tetap muncul dengan nilai nol.
type SeriesPoint struct {
	Tanggal string  `json:"tanggal"` // YYYY-MM-DD
	Jumlah  int64   `json:"jumlah"`
	Total   float64 `json:"total"`
}
