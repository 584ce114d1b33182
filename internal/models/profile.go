package models

import "time"

// ProfileID is the primary key of the only profile row.
const ProfileID uint = 1

// ProfileModel holds the site owner's personal information and social links.
// The table has exactly one row, addressed by ProfileID.
type ProfileModel struct {
	ID           uint      `json:"-"             gorm:"primaryKey;autoIncrement:false"`
	Name         string    `json:"name"          gorm:"size:100;not null"`
	Title        string    `json:"title"         gorm:"size:100;not null"`
	Bio          string    `json:"bio"           gorm:"type:text"`
	Email        string    `json:"email"         gorm:"size:254"`
	Location     string    `json:"location"      gorm:"size:100"`
	GithubURL    string    `json:"github_url"    gorm:"size:200"`
	LinkedinURL  string    `json:"linkedin_url"  gorm:"size:200"`
	TwitterURL   string    `json:"twitter_url"   gorm:"size:200"`
	ProfileImage string    `json:"profile_image" gorm:"size:255"`
	Resume       string    `json:"resume"        gorm:"size:255"`
	UpdatedAt    time.Time `json:"modified"`
}

func (ProfileModel) TableName() string { return "profile" }
