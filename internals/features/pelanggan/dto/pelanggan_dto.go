// file: internals/features/pelanggan/dto/pelanggan_dto.go
package dto

import (
	model "github.com/faturgautama/unggas-berjaya-backend/internals/features/pelanggan/model"
)

/* =========================================================
   REQUEST
========================================================= */

type CreatePelangganRequest struct {
	FullName       string  `json:"full_name" validate:"required"`
	IdentityNumber *string `json:"identity_number"`
	Alamat         *string `json:"alamat"`
	Phone          *string `json:"phone"`
}

type UpdatePelangganRequest struct {
	IDPelanggan    int64   `json:"id_pelanggan" validate:"required"`
	FullName       string  `json:"full_name" validate:"required"`
	IdentityNumber *string `json:"identity_number"`
	Alamat         *string `json:"alamat"`
	Phone          *string `json:"phone"`
	IsActive       *bool   `json:"is_active" validate:"required"`
	IsBlacklist    *bool   `json:"is_blacklist" validate:"required"`
}

type ListPelangganQuery struct {
	Search   string
	IsActive *bool
}

/* =========================================================
   SYNC: tiga batch dari sistem legacy, dikunci ref_id
========================================================= */

type SyncPelangganItem struct {
	RefID    string `json:"ref_id" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
}

type SyncPelangganRequest struct {
	Insert     []SyncPelangganItem `json:"insert" validate:"dive"`
	Update     []SyncPelangganItem `json:"update" validate:"dive"`
	SoftDelete []string            `json:"softDelete"`
}

/* =========================================================
   RESULT (envelope {status, message, data})
========================================================= */

type PelangganResult struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    *model.Pelanggan  `json:"data"`
}

type PelangganListResult struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    []model.Pelanggan `json:"data"`
}

type DeletePelangganResult struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    *int64 `json:"data"`
}

type SyncPelangganCounts struct {
	Inserted    int `json:"inserted"`
	Updated     int `json:"updated"`
	SoftDeleted int `json:"softDeleted"`
}

type SyncPelangganResult struct {
	Status  bool                 `json:"status"`
	Message string               `json:"message"`
	Data    *SyncPelangganCounts `json:"data"`
}
