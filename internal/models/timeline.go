package models

import "time"

// EducationModel is one education entry; a nil EndDate means ongoing.
type EducationModel struct {
	Base
	Institution  string     `json:"institution"    gorm:"size:200;not null"`
	Degree       string     `json:"degree"         gorm:"size:200;not null"`
	FieldOfStudy string     `json:"field_of_study" gorm:"size:200"`
	StartDate    time.Time  `json:"start_date"     gorm:"type:date;not null"`
	EndDate      *time.Time `json:"end_date"       gorm:"type:date"`
	Description  string     `json:"description"    gorm:"type:text"`
	DisplayOrder int        `json:"display_order"  gorm:"not null;default:0"`
}

func (EducationModel) TableName() string { return "education" }

func (e *EducationModel) IsOngoing() bool { return e.EndDate == nil }

// ExperienceModel is one work experience entry; a nil EndDate means ongoing.
type ExperienceModel struct {
	Base
	Company      string     `json:"company"       gorm:"size:200;not null"`
	Title        string     `json:"title"         gorm:"size:200;not null"`
	StartDate    time.Time  `json:"start_date"    gorm:"type:date;not null"`
	EndDate      *time.Time `json:"end_date"      gorm:"type:date"`
	Description  string     `json:"description"   gorm:"type:text"`
	DisplayOrder int        `json:"display_order" gorm:"not null;default:0"`
}

func (ExperienceModel) TableName() string { return "experience" }

func (e *ExperienceModel) IsOngoing() bool { return e.EndDate == nil }
