package models

import (
	"strings"
	"time"
)

type ProjectStatus string

const (
	ProjectCompleted   ProjectStatus = "completed"
	ProjectDevelopment ProjectStatus = "development"
	ProjectPlanning    ProjectStatus = "planning"
)

var projectStatusLabels = map[ProjectStatus]string{
	ProjectCompleted:   "Completed",
	ProjectDevelopment: "In Development",
	ProjectPlanning:    "Planning Phase",
}

func (s ProjectStatus) Valid() bool {
	_, ok := projectStatusLabels[s]
	return ok
}

func (s ProjectStatus) Label() string {
	if label, ok := projectStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// ProjectModel stores a portfolio project.
type ProjectModel struct {
	Base
	Title          string              `json:"title"           gorm:"size:200;not null"`
	Description    string              `json:"description"     gorm:"type:text"`
	Image          string              `json:"image"           gorm:"size:255"`
	DemoURL        string              `json:"demo_url"        gorm:"size:200"`
	SourceCodeURL  string              `json:"source_code_url" gorm:"size:200"`
	Status         ProjectStatus       `json:"status"          gorm:"size:20;not null;default:development"`
	TechnologyList string              `json:"-"               gorm:"column:technologies;size:200"`
	CompletionDate time.Time           `json:"completion_date" gorm:"type:date;index"`
	IsFeatured     bool                `json:"is_featured"     gorm:"index;not null;default:false"`
	DisplayOrder   int                 `json:"display_order"   gorm:"not null;default:0"`
	Challenges     string              `json:"challenges"      gorm:"type:text"`
	Solution       string              `json:"solution"        gorm:"type:text"`
	Images         []ProjectImageModel `json:"images,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (ProjectModel) TableName() string { return "projects" }

// Technologies splits the comma-delimited technology list, trimming each
// entry and keeping the stored order.
func (p *ProjectModel) Technologies() []string {
	out := []string{}
	for _, part := range strings.Split(p.TechnologyList, ",") {
		if tech := strings.TrimSpace(part); tech != "" {
			out = append(out, tech)
		}
	}
	return out
}

func (p *ProjectModel) IsCompleted() bool {
	return p.Status == ProjectCompleted
}

// HasLiveLinks reports whether the demo or source link points somewhere real.
func (p *ProjectModel) HasLiveLinks() bool {
	return isLiveLink(p.DemoURL) || isLiveLink(p.SourceCodeURL)
}

func isLiveLink(raw string) bool {
	v := strings.TrimSpace(raw)
	return v != "" && v != "#"
}

// ProjectImageModel is one gallery screenshot owned by a project.
type ProjectImageModel struct {
	Base
	ProjectID    string `json:"project_id"    gorm:"type:char(36);index;not null"`
	Image        string `json:"image"         gorm:"size:255;not null"`
	Caption      string `json:"caption"       gorm:"size:200"`
	DisplayOrder int    `json:"display_order" gorm:"not null;default:0"`
}

func (ProjectImageModel) TableName() string { return "project_images" }
