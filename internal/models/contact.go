package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessageModel is a visitor submission from the public contact form.
// Only IsRead changes after creation.
type ContactMessageModel struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name"       gorm:"size:100;not null"`
	Email     string    `json:"email"      gorm:"size:254;not null"`
	Subject   string    `json:"subject"    gorm:"size:200;not null"`
	Message   string    `json:"message"    gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	IsRead    bool      `json:"is_read"    gorm:"index;not null;default:false"`
}

func (ContactMessageModel) TableName() string { return "contact_messages" }

func (m *ContactMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
