// file: internals/features/pelanggan/service/pelanggan_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/faturgautama/unggas-berjaya-backend/internals/constants"
	dto "github.com/faturgautama/unggas-berjaya-backend/internals/features/pelanggan/dto"
	model "github.com/faturgautama/unggas-berjaya-backend/internals/features/pelanggan/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Pelanggan{}))
	return db
}

func loadByRefID(t *testing.T, db *gorm.DB, refID string) model.Pelanggan {
	t.Helper()
	var p model.Pelanggan
	require.NoError(t, db.First(&p, "ref_id = ?", refID).Error)
	return p
}

func TestCreatePelanggan(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPelangganService(db)

	alamat := "Jl. Kenari 3"
	res, err := svc.Create(dto.CreatePelangganRequest{FullName: "Budi", Alamat: &alamat}, 1)
	require.NoError(t, err)
	require.True(t, res.Status)
	require.NotNil(t, res.Data)
	assert.True(t, res.Data.IsActive)
	assert.NotEmpty(t, res.Data.RefID)
	assert.Equal(t, int64(1), res.Data.CreateBy)
}

func TestGetPelangganByID_TidakDitemukan(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPelangganService(db)

	res, err := svc.GetByID(99)
	require.NoError(t, err)
	assert.False(t, res.Status)
	assert.Equal(t, "Pelanggan tidak ditemukan", res.Message)
}

func TestDeletePelanggan_SoftDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPelangganService(db)

	created, err := svc.Create(dto.CreatePelangganRequest{FullName: "Budi"}, 1)
	require.NoError(t, err)

	res, err := svc.Delete(created.Data.IDPelanggan, 2)
	require.NoError(t, err)
	assert.True(t, res.Status)

	var p model.Pelanggan
	require.NoError(t, db.First(&p, "id_pelanggan = ?", created.Data.IDPelanggan).Error)
	assert.True(t, p.IsDelete)
	assert.False(t, p.IsActive)
	require.NotNil(t, p.DeleteBy)
	assert.Equal(t, int64(2), *p.DeleteBy)

	// sudah terhapus: delete kedua gagal
	res, err = svc.Delete(created.Data.IDPelanggan, 2)
	require.NoError(t, err)
	assert.False(t, res.Status)
}

func TestSyncPelanggan_InsertDenganPlaceholder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPelangganService(db)

	res, err := svc.SyncAll(dto.SyncPelangganRequest{
		Insert: []dto.SyncPelangganItem{{RefID: "LGC-1", FullName: "Budi"}},
	})
	require.NoError(t, err)
	require.True(t, res.Status)
	assert.Equal(t, 1, res.Data.Inserted)

	p := loadByRefID(t, db, "LGC-1")
	assert.Equal(t, "Budi", p.FullName)
	assert.Equal(t, "Belum Diatur", p.Alamat)
	assert.Equal(t, "Belum Diatur", p.Phone)
	assert.Equal(t, constants.SystemActorID, p.CreateBy)
	assert.True(t, p.IsActive)
}

func TestSyncPelanggan_UpdateHanyaNama(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPelangganService(db)

	_, err := svc.SyncAll(dto.SyncPelangganRequest{
		Insert: []dto.SyncPelangganItem{{RefID: "LGC-2", FullName: "Budi"}},
	})
	require.NoError(t, err)

	alamat := "Jl. Melati 1"
	require.NoError(t, db.Model(&model.Pelanggan{}).
		Where("ref_id = ?", "LGC-2").
		Update("alamat", alamat).Error)

	_, err = svc.SyncAll(dto.SyncPelangganRequest{
		Update: []dto.SyncPelangganItem{{RefID: "LGC-2", FullName: "Budi Santoso"}},
	})
	require.NoError(t, err)

	p := loadByRefID(t, db, "LGC-2")
	assert.Equal(t, "Budi Santoso", p.FullName)
	assert.Equal(t, alamat, p.Alamat) // field lain tidak disentuh
}

func TestSyncPelanggan_SoftDeleteBulk(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPelangganService(db)

	_, err := svc.SyncAll(dto.SyncPelangganRequest{
		Insert: []dto.SyncPelangganItem{
			{RefID: "LGC-3", FullName: "Budi"},
			{RefID: "LGC-4", FullName: "Siti"},
		},
	})
	require.NoError(t, err)

	res, err := svc.SyncAll(dto.SyncPelangganRequest{SoftDelete: []string{"LGC-3"}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Data.SoftDeleted)

	p3 := loadByRefID(t, db, "LGC-3")
	assert.True(t, p3.IsDelete)
	require.NotNil(t, p3.DeleteBy)
	assert.Equal(t, constants.SystemActorID, *p3.DeleteBy)

	p4 := loadByRefID(t, db, "LGC-4")
	assert.False(t, p4.IsDelete)
}

func TestGetAllPelanggan_FilterAktif(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPelangganService(db)

	_, err := svc.SyncAll(dto.SyncPelangganRequest{
		Insert: []dto.SyncPelangganItem{
			{RefID: "LGC-5", FullName: "Budi"},
			{RefID: "LGC-6", FullName: "Siti"},
		},
	})
	require.NoError(t, err)

	inactive := loadByRefID(t, db, "LGC-6")
	require.NoError(t, db.Model(&model.Pelanggan{}).
		Where("id_pelanggan = ?", inactive.IDPelanggan).
		Update("is_active", false).Error)

	active := true
	res, err := svc.GetAll(dto.ListPelangganQuery{IsActive: &active})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Budi", res.Data[0].FullName)
}
