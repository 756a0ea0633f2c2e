// file: internals/features/activity/model/log_activity_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

/* =========================
   Model: log_activity_user
========================= */

type LogActivityUser struct {
	IDLogActivity int64  `json:"id_log_activity" gorm:"column:id_log_activity;primaryKey;autoIncrement"`
	IDUser        *int64 `json:"id_user" gorm:"column:id_user;index"`

	Endpoint    string         `json:"endpoint" gorm:"column:endpoint;type:text;not null"`
	Method      string         `json:"method" gorm:"column:method;type:varchar(10);not null"`
	RequestBody datatypes.JSON `json:"request_body" gorm:"column:request_body;type:jsonb"`
	IPAddress   string         `json:"ip_address" gorm:"column:ip_address;type:varchar(45)"`
	Browser     string         `json:"browser" gorm:"column:browser;type:text"`

	CreateAt time.Time `json:"create_at" gorm:"column:create_at"`
}

func (LogActivityUser) TableName() string { return "log_activity_user" }
