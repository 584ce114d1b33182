package models

import "time"

// UserModel is the site owner's admin account.
type UserModel struct {
	Base
	Username      string     `json:"username"        gorm:"size:64;uniqueIndex;not null"`
	Password      string     `json:"-"               gorm:"not null"`
	Mail          string     `json:"mail"            gorm:"size:254"`
	LastLoginTime *time.Time `json:"last_login_time"`
	LastLoginIP   string     `json:"last_login_ip"   gorm:"size:64"`
}

func (UserModel) TableName() string { return "users" }
