// file: internals/features/pelanggan/model/pelanggan_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

/* =========================
   Model: pelanggan
========================= */

type Pelanggan struct {
	IDPelanggan int64 `json:"id_pelanggan" gorm:"column:id_pelanggan;primaryKey;autoIncrement"`

	// ref_id: kunci natural untuk korelasi dengan sistem legacy.
	RefID          string  `json:"ref_id" gorm:"column:ref_id;type:varchar(60);not null"`
	FullName       string  `json:"full_name" gorm:"column:full_name;type:text;not null"`
	IdentityNumber *string `json:"identity_number" gorm:"column:identity_number;type:varchar(60)"`
	Alamat         string  `json:"alamat" gorm:"column:alamat;type:text"`
	Phone          string  `json:"phone" gorm:"column:phone;type:varchar(30)"`

	IsActive    bool `json:"is_active" gorm:"column:is_active;not null;default:true"`
	IsBlacklist bool `json:"is_blacklist" gorm:"column:is_blacklist;not null;default:false"`
	IsDelete    bool `json:"is_delete" gorm:"column:is_delete;not null;default:false"`

	CreateAt time.Time  `json:"create_at" gorm:"column:create_at"`
	CreateBy int64      `json:"create_by" gorm:"column:create_by"`
	UpdateAt *time.Time `json:"update_at" gorm:"column:update_at"`
	UpdateBy *int64     `json:"update_by" gorm:"column:update_by"`
	DeleteAt *time.Time `json:"delete_at" gorm:"column:delete_at"`
	DeleteBy *int64     `json:"delete_by" gorm:"column:delete_by"`
}

func (Pelanggan) TableName() string { return "pelanggan" }

// ScopeAlive membatasi query ke pelanggan yang belum dihapus.
func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Model(&Pelanggan{}).Where("is_delete = ?", false)
}
