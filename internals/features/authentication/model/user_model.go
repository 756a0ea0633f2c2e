// file: internals/features/authentication/model/user_model.go
package model

import "time"

/* =========================
   Model: users
========================= */

type User struct {
	IDUser   int64  `json:"id_user" gorm:"column:id_user;primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"column:username;type:varchar(60);not null;uniqueIndex"`
	Email    string `json:"email" gorm:"column:email;type:varchar(120)"`
	Password string `json:"-" gorm:"column:password;type:text;not null"`

	FullName string  `json:"full_name" gorm:"column:full_name;type:text;not null"`
	Address  *string `json:"address" gorm:"column:address;type:text"`
	Phone    *string `json:"phone" gorm:"column:phone;type:varchar(30)"`
	Whatsapp *string `json:"whatsapp" gorm:"column:whatsapp;type:varchar(30)"`
	Notes    *string `json:"notes" gorm:"column:notes;type:text"`

	IsActive   bool       `json:"is_active" gorm:"column:is_active;not null;default:true"`
	LastLogin  *time.Time `json:"last_login" gorm:"column:last_login"`
	LastLogout *time.Time `json:"last_logout" gorm:"column:last_logout"`

	CreateAt time.Time  `json:"create_at" gorm:"column:create_at"`
	CreateBy *int64     `json:"create_by" gorm:"column:create_by"`
	UpdateAt *time.Time `json:"update_at" gorm:"column:update_at"`
	UpdateBy *int64     `json:"update_by" gorm:"column:update_by"`
}

func (User) TableName() string { return "users" }
