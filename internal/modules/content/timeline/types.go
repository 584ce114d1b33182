package timeline

import (
	"time"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/pkg/dateutil"
)

// newestFirst puts ongoing entries (no end date) first, then the most
// recently finished, then the most recently started.
const newestFirst = "end_date IS NULL DESC, end_date DESC, start_date DESC"

type EducationDTO struct {
	Institution  *string `json:"institution"    binding:"omitempty,max=200"`
	Degree       *string `json:"degree"         binding:"omitempty,max=200"`
	FieldOfStudy *string `json:"field_of_study" binding:"omitempty,max=200"`
	StartDate    *string `json:"start_date"`
	// EndDate "" clears the end date, marking the entry ongoing.
	EndDate      *string `json:"end_date"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"display_order"  binding:"omitempty,min=0"`
}

type ExperienceDTO struct {
	Company      *string `json:"company"       binding:"omitempty,max=200"`
	Title        *string `json:"title"         binding:"omitempty,max=200"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"display_order" binding:"omitempty,min=0"`
}

type EducationResponse struct {
	ID           string    `json:"id"`
	Institution  string    `json:"institution"`
	Degree       string    `json:"degree"`
	FieldOfStudy string    `json:"field_of_study"`
	StartDate    string    `json:"start_date"`
	EndDate      *string   `json:"end_date"`
	Ongoing      bool      `json:"ongoing"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
	Modified     time.Time `json:"modified"`
}

type ExperienceResponse struct {
	ID           string    `json:"id"`
	Company      string    `json:"company"`
	Title        string    `json:"title"`
	StartDate    string    `json:"start_date"`
	EndDate      *string   `json:"end_date"`
	Ongoing      bool      `json:"ongoing"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
	Modified     time.Time `json:"modified"`
}

func ToEducationResponse(e *models.EducationModel) EducationResponse {
	return EducationResponse{
		ID:           e.ID,
		Institution:  e.Institution,
		Degree:       e.Degree,
		FieldOfStudy: e.FieldOfStudy,
		StartDate:    dateutil.Format(e.StartDate),
		EndDate:      dateutil.FormatOptional(e.EndDate),
		Ongoing:      e.IsOngoing(),
		Description:  e.Description,
		DisplayOrder: e.DisplayOrder,
		Modified:     e.UpdatedAt,
	}
}

func ToExperienceResponse(e *models.ExperienceModel) ExperienceResponse {
	return ExperienceResponse{
		ID:           e.ID,
		Company:      e.Company,
		Title:        e.Title,
		StartDate:    dateutil.Format(e.StartDate),
		EndDate:      dateutil.FormatOptional(e.EndDate),
		Ongoing:      e.IsOngoing(),
		Description:  e.Description,
		DisplayOrder: e.DisplayOrder,
		Modified:     e.UpdatedAt,
	}
}

func ToEducationResponses(items []models.EducationModel) []EducationResponse {
	out := make([]EducationResponse, len(items))
	for i := range items {
		out[i] = ToEducationResponse(&items[i])
	}
	return out
}

func ToExperienceResponses(items []models.ExperienceModel) []ExperienceResponse {
	out := make([]ExperienceResponse, len(items))
	for i := range items {
		out[i] = ToExperienceResponse(&items[i])
	}
	return out
}
