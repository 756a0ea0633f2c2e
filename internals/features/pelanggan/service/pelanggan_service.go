// file: internals/features/pelanggan/service/pelanggan_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/faturgautama/unggas-berjaya-backend/internals/constants"
	dto "github.com/faturgautama/unggas-berjaya-backend/internals/features/pelanggan/dto"
	model "github.com/faturgautama/unggas-berjaya-backend/internals/features/pelanggan/model"
	"github.com/faturgautama/unggas-berjaya-backend/internals/helpers/apperr"
)

type PelangganService struct {
	DB *gorm.DB
}

func NewPelangganService(db *gorm.DB) *PelangganService {
	return &PelangganService{DB: db}
}

func (s *PelangganService) GetAll(q dto.ListPelangganQuery) (*dto.PelangganListResult, error) {
	tx := model.ScopeAlive(s.DB)

	if q.IsActive != nil {
		tx = tx.Where("is_active = ?", *q.IsActive)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("full_name ILIKE ? OR alamat ILIKE ? OR phone ILIKE ?", like, like, like)
	}

	var rows []model.Pelanggan
	if err := tx.Order("id_pelanggan asc").Find(&rows).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal mengambil data pelanggan", err)
	}

	return &dto.PelangganListResult{Status: true, Message: "", Data: rows}, nil
}

func (s *PelangganService) GetByID(idPelanggan int64) (*dto.PelangganResult, error) {
	var row model.Pelanggan
	if err := s.DB.First(&row, "id_pelanggan = ?", idPelanggan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.PelangganResult{Status: false, Message: "Pelanggan tidak ditemukan"}, nil
		}
		return nil, apperr.Wrap(apperr.KindInternal, "gagal mengambil data pelanggan", err)
	}

	return &dto.PelangganResult{Status: true, Message: "", Data: &row}, nil
}

func (s *PelangganService) Create(req dto.CreatePelangganRequest, actorID int64) (*dto.PelangganResult, error) {
	row := model.Pelanggan{
		RefID:    fmt.Sprintf("UB%d", time.Now().UnixMilli()),
		FullName: req.FullName,
		CreateAt: time.Now(),
		CreateBy: actorID,
		IsActive: true,
	}
	if req.IdentityNumber != nil {
		row.IdentityNumber = req.IdentityNumber
	}
	if req.Alamat != nil {
		row.Alamat = *req.Alamat
	}
	if req.Phone != nil {
		row.Phone = *req.Phone
	}

	if err := s.DB.Create(&row).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal menyimpan pelanggan", err)
	}

	return &dto.PelangganResult{Status: true, Message: "", Data: &row}, nil
}

func (s *PelangganService) Update(req dto.UpdatePelangganRequest, actorID int64) (*dto.PelangganResult, error) {
	var row model.Pelanggan
	if err := s.DB.First(&row, "id_pelanggan = ?", req.IDPelanggan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.PelangganResult{Status: false, Message: "Pelanggan tidak ditemukan"}, nil
		}
		return nil, apperr.Wrap(apperr.KindInternal, "gagal mengambil data pelanggan", err)
	}

	now := time.Now()
	row.FullName = req.FullName
	row.IdentityNumber = req.IdentityNumber
	if req.Alamat != nil {
		row.Alamat = *req.Alamat
	}
	if req.Phone != nil {
		row.Phone = *req.Phone
	}
	if req.IsActive != nil {
		row.IsActive = *req.IsActive
	}
	if req.IsBlacklist != nil {
		row.IsBlacklist = *req.IsBlacklist
	}
	row.UpdateAt = &now
	row.UpdateBy = &actorID

	if err := s.DB.Save(&row).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal update pelanggan", err)
	}

	return &dto.PelangganResult{Status: true, Message: "", Data: &row}, nil
}

func (s *PelangganService) Delete(idPelanggan int64, actorID int64) (*dto.DeletePelangganResult, error) {
	now := time.Now()

	tx := model.ScopeAlive(s.DB).
		Where("id_pelanggan = ?", idPelanggan).
		Updates(map[string]interface{}{
			"is_active": false,
			"is_delete": true,
			"delete_at": now,
			"delete_by": actorID,
		})
	if tx.Error != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal menghapus pelanggan", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &dto.DeletePelangganResult{Status: false, Message: "Delete pelanggan failed"}, nil
	}

	return &dto.DeletePelangganResult{
		Status:  true,
		Message: "Delete pelanggan success",
		Data:    &idPelanggan,
	}, nil
}

/* =========================================================
   Sync/Merge pelanggan (batch dari sistem legacy)
   Urutan pass: insert → update → softDelete.
   Update diterapkan tanpa syarat (pelanggan tidak punya
   konsep kepemilikan source seperti invoice).
========================================================= */

func (s *PelangganService) SyncAll(req dto.SyncPelangganRequest) (*dto.SyncPelangganResult, error) {
	now := time.Now()

	for _, p := range req.Insert {
		row := model.Pelanggan{
			RefID:    p.RefID,
			FullName: p.FullName,
			Phone:    "Belum Diatur",
			Alamat:   "Belum Diatur",
			IsActive: true,
			CreateAt: now,
			CreateBy: constants.SystemActorID,
		}
		if err := s.DB.Create(&row).Error; err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "gagal insert pelanggan sync", err)
		}
	}

	for _, p := range req.Update {
		err := s.DB.Model(&model.Pelanggan{}).
			Where("ref_id = ?", p.RefID).
			Updates(map[string]interface{}{
				"full_name": p.FullName,
				"update_at": now,
				"update_by": constants.SystemActorID,
			}).Error
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "gagal update pelanggan sync", err)
		}
	}

	if len(req.SoftDelete) > 0 {
		err := s.DB.Model(&model.Pelanggan{}).
			Where("ref_id IN ? AND is_delete = ?", req.SoftDelete, false).
			Updates(map[string]interface{}{
				"is_delete": true,
				"delete_at": now,
				"delete_by": constants.SystemActorID,
			}).Error
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "gagal soft delete pelanggan sync", err)
		}
	}

	return &dto.SyncPelangganResult{
		Status:  true,
		Message: "OK",
		Data: &dto.SyncPelangganCounts{
			Inserted:    len(req.Insert),
			Updated:     len(req.Update),
			SoftDeleted: len(req.SoftDelete),
		},
	}, nil
}
