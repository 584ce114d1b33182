package models

type SkillCategory string

const (
	SkillFrontend SkillCategory = "frontend"
	SkillBackend  SkillCategory = "backend"
	SkillDevOps   SkillCategory = "devops"
	SkillOther    SkillCategory = "other"
)

var skillCategoryLabels = map[SkillCategory]string{
	SkillFrontend: "Frontend",
	SkillBackend:  "Backend",
	SkillDevOps:   "DevOps",
	SkillOther:    "Other",
}

func (c SkillCategory) Valid() bool {
	_, ok := skillCategoryLabels[c]
	return ok
}

func (c SkillCategory) Label() string {
	if label, ok := skillCategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

const (
	MinProficiency = 1
	MaxProficiency = 100
)

// SkillModel is a named skill with a 1-100 proficiency.
type SkillModel struct {
	Base
	Name         string        `json:"name"          gorm:"size:50;not null"`
	Category     SkillCategory `json:"category"      gorm:"size:20;not null;default:other;index"`
	Proficiency  int           `json:"proficiency"   gorm:"not null"`
	DisplayOrder int           `json:"display_order" gorm:"not null;default:0"`
}

func (SkillModel) TableName() string { return "skills" }
