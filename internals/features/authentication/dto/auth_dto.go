// file: internals/features/authentication/dto/auth_dto.go
package dto

import "time"

/* =========================================================
   REQUEST
========================================================= */

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=4"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	FullName string  `json:"full_name" validate:"required"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Whatsapp *string `json:"whatsapp"`
	Notes    *string `json:"notes"`
}

type UpdateProfileRequest struct {
	FullName string  `json:"full_name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Whatsapp *string `json:"whatsapp"`
	Notes    *string `json:"notes"`
}

/* =========================================================
   RESPONSE
========================================================= */

type ProfileResponse struct {
	IDUser    int64      `json:"id_user"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Address   *string    `json:"address"`
	Phone     *string    `json:"phone"`
	Whatsapp  *string    `json:"whatsapp"`
	Notes     *string    `json:"notes"`
	LastLogin *time.Time `json:"last_login"`
}

type LoginData struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

type LoginResult struct {
	Status  bool       `json:"status"`
	Message string     `json:"message"`
	Data    *LoginData `json:"data"`
}

type ProfileResult struct {
	Status  bool             `json:"status"`
	Message string           `json:"message"`
	Data    *ProfileResponse `json:"data"`
}

type LogoutResult struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}
