package skill

import "github.com/mx-space/portfolio/internal/models"

type CreateSkillDTO struct {
	Name         string               `json:"name"          binding:"required,max=50"`
	Category     models.SkillCategory `json:"category"`
	Proficiency  int                  `json:"proficiency"`
	DisplayOrder int                  `json:"display_order" binding:"min=0"`
}

type UpdateSkillDTO struct {
	Name         *string               `json:"name"          binding:"omitempty,max=50"`
	Category     *models.SkillCategory `json:"category"`
	Proficiency  *int                  `json:"proficiency"`
	DisplayOrder *int                  `json:"display_order" binding:"omitempty,min=0"`
}

type Response struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Category      models.SkillCategory `json:"category"`
	CategoryLabel string               `json:"category_label"`
	Proficiency   int                  `json:"proficiency"`
	DisplayOrder  int                  `json:"display_order"`
}

// Group is one category of skills in display order.
type Group struct {
	Category models.SkillCategory `json:"category"`
	Label    string               `json:"label"`
	Skills   []Response           `json:"skills"`
}

func ToResponse(s *models.SkillModel) Response {
	return Response{
		ID:            s.ID,
		Name:          s.Name,
		Category:      s.Category,
		CategoryLabel: s.Category.Label(),
		Proficiency:   s.Proficiency,
		DisplayOrder:  s.DisplayOrder,
	}
}

func ToResponses(items []models.SkillModel) []Response {
	out := make([]Response, len(items))
	for i := range items {
		out[i] = ToResponse(&items[i])
	}
	return out
}
