// file: internals/features/authentication/service/auth_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/faturgautama/unggas-berjaya-backend/internals/configs"
	dto "github.com/faturgautama/unggas-berjaya-backend/internals/features/authentication/dto"
	model "github.com/faturgautama/unggas-berjaya-backend/internals/features/authentication/model"
	"github.com/faturgautama/unggas-berjaya-backend/internals/helpers/apperr"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

const tokenLifetime = 12 * time.Hour

func toProfile(u model.User) dto.ProfileResponse {
	return dto.ProfileResponse{
		IDUser:    u.IDUser,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Address:   u.Address,
		Phone:     u.Phone,
		Whatsapp:  u.Whatsapp,
		Notes:     u.Notes,
		LastLogin: u.LastLogin,
	}
}

/* =========================================================
   LOGIN / LOGOUT
========================================================= */

func (s *AuthService) Login(req dto.LoginRequest) (*dto.LoginResult, error) {
	var user model.User
	err := s.DB.Where("username = ? AND is_active = ?", req.Username, true).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.LoginResult{Status: false, Message: "Username atau password salah"}, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal mengambil user", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return &dto.LoginResult{Status: false, Message: "Username atau password salah"}, nil
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id_user":   user.IDUser,
		"username":  user.Username,
		"full_name": user.FullName,
		"email":     user.Email,
		"phone":     user.Phone,
		"whatsapp":  user.Whatsapp,
		"notes":     user.Notes,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenLifetime).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal membuat token", err)
	}

	err = s.DB.Model(&model.User{}).
		Where("id_user = ?", user.IDUser).
		Updates(map[string]interface{}{
			"last_login":  now,
			"last_logout": nil,
		}).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal mencatat login", err)
	}
	user.LastLogin = &now
	user.LastLogout = nil

	return &dto.LoginResult{
		Status:  true,
		Message: "Login berhasil",
		Data:    &dto.LoginData{Token: token, Profile: toProfile(user)},
	}, nil
}

func (s *AuthService) Logout(idUser int64) (*dto.LogoutResult, error) {
	err := s.DB.Model(&model.User{}).
		Where("id_user = ?", idUser).
		Updates(map[string]interface{}{
			"last_logout": time.Now(),
			"last_login":  nil,
		}).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal mencatat logout", err)
	}
	return &dto.LogoutResult{Status: true, Message: "Logout berhasil"}, nil
}

/* =========================================================
   REGISTER & PROFILE
========================================================= */

func (s *AuthService) Register(req dto.RegisterRequest, actorID int64) (*dto.ProfileResult, error) {
	var count int64
	err := s.DB.Model(&model.User{}).Where("username = ?", req.Username).Count(&count).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal memeriksa username", err)
	}
	if count > 0 {
		return &dto.ProfileResult{Status: false, Message: "Username sudah digunakan"}, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal mengenkripsi password", err)
	}

	user := model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		FullName: req.FullName,
		Address:  req.Address,
		Phone:    req.Phone,
		Whatsapp: req.Whatsapp,
		Notes:    req.Notes,
		IsActive: true,
		CreateAt: time.Now(),
		CreateBy: &actorID,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal menyimpan user", err)
	}

	profile := toProfile(user)
	return &dto.ProfileResult{Status: true, Message: "Registrasi berhasil", Data: &profile}, nil
}

func (s *AuthService) GetProfile(idUser int64) (*dto.ProfileResult, error) {
	var user model.User
	err := s.DB.Where("id_user = ? AND is_active = ?", idUser, true).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.ProfileResult{Status: false, Message: "User tidak ditemukan"}, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal mengambil user", err)
	}

	profile := toProfile(user)
	return &dto.ProfileResult{Status: true, Message: "OK", Data: &profile}, nil
}

func (s *AuthService) UpdateProfile(idUser int64, req dto.UpdateProfileRequest) (*dto.ProfileResult, error) {
	var user model.User
	err := s.DB.Where("id_user = ? AND is_active = ?", idUser, true).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.ProfileResult{Status: false, Message: "User tidak ditemukan"}, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal mengambil user", err)
	}

	now := time.Now()
	user.FullName = req.FullName
	user.Email = req.Email
	user.Address = req.Address
	user.Phone = req.Phone
	user.Whatsapp = req.Whatsapp
	user.Notes = req.Notes
	user.UpdateAt = &now
	user.UpdateBy = &idUser

	if err := s.DB.Save(&user).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "gagal mengubah profil", err)
	}

	profile := toProfile(user)
	return &dto.ProfileResult{Status: true, Message: "Profil berhasil diubah", Data: &profile}, nil
}
