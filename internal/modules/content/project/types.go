package project

import (
	"time"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/pkg/dateutil"
)

// FeaturedLimit caps the featured projects shown on the home page.
const FeaturedLimit = 3

type CreateProjectDTO struct {
	Title          string               `json:"title"           binding:"required,max=200"`
	Description    string               `json:"description"     binding:"required"`
	Image          string               `json:"image"`
	DemoURL        string               `json:"demo_url"        binding:"omitempty,max=200"`
	SourceCodeURL  string               `json:"source_code_url" binding:"omitempty,max=200"`
	Status         models.ProjectStatus `json:"status"`
	Technologies   string               `json:"technologies"    binding:"required,max=200"`
	CompletionDate string               `json:"completion_date" binding:"required"`
	IsFeatured     bool                 `json:"is_featured"`
	DisplayOrder   int                  `json:"display_order"   binding:"min=0"`
	Challenges     string               `json:"challenges"`
	Solution       string               `json:"solution"`
}

type UpdateProjectDTO struct {
	Title          *string               `json:"title"           binding:"omitempty,max=200"`
	Description    *string               `json:"description"`
	Image          *string               `json:"image"`
	DemoURL        *string               `json:"demo_url"        binding:"omitempty,max=200"`
	SourceCodeURL  *string               `json:"source_code_url" binding:"omitempty,max=200"`
	Status         *models.ProjectStatus `json:"status"`
	Technologies   *string               `json:"technologies"    binding:"omitempty,max=200"`
	CompletionDate *string               `json:"completion_date"`
	IsFeatured     *bool                 `json:"is_featured"`
	DisplayOrder   *int                  `json:"display_order"   binding:"omitempty,min=0"`
	Challenges     *string               `json:"challenges"`
	Solution       *string               `json:"solution"`
}

type CreateImageDTO struct {
	Image        string `json:"image"         binding:"required"`
	Caption      string `json:"caption"       binding:"max=200"`
	DisplayOrder int    `json:"display_order" binding:"min=0"`
}

type ImageResponse struct {
	ID           string `json:"id"`
	Image        string `json:"image"`
	Caption      string `json:"caption"`
	DisplayOrder int    `json:"display_order"`
}

type Response struct {
	ID             string               `json:"id"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Image          string               `json:"image"`
	DemoURL        string               `json:"demo_url"`
	SourceCodeURL  string               `json:"source_code_url"`
	Status         models.ProjectStatus `json:"status"`
	StatusLabel    string               `json:"status_label"`
	Technologies   []string             `json:"technologies"`
	CompletionDate string               `json:"completion_date"`
	IsFeatured     bool                 `json:"is_featured"`
	DisplayOrder   int                  `json:"display_order"`
	Challenges     string               `json:"challenges"`
	Solution       string               `json:"solution"`
	IsCompleted    bool                 `json:"is_completed"`
	HasLiveLinks   bool                 `json:"has_live_links"`
	Images         []ImageResponse      `json:"images,omitempty"`
	Created        time.Time            `json:"created"`
	Modified       time.Time            `json:"modified"`
}

func ToResponse(p *models.ProjectModel) Response {
	out := Response{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Image:          p.Image,
		DemoURL:        p.DemoURL,
		SourceCodeURL:  p.SourceCodeURL,
		Status:         p.Status,
		StatusLabel:    p.Status.Label(),
		Technologies:   p.Technologies(),
		CompletionDate: dateutil.Format(p.CompletionDate),
		IsFeatured:     p.IsFeatured,
		DisplayOrder:   p.DisplayOrder,
		Challenges:     p.Challenges,
		Solution:       p.Solution,
		IsCompleted:    p.IsCompleted(),
		HasLiveLinks:   p.HasLiveLinks(),
		Created:        p.CreatedAt,
		Modified:       p.UpdatedAt,
	}
	if p.Images != nil {
		out.Images = make([]ImageResponse, len(p.Images))
		for i := range p.Images {
			out.Images[i] = ToImageResponse(&p.Images[i])
		}
	}
	return out
}

func ToImageResponse(img *models.ProjectImageModel) ImageResponse {
	return ImageResponse{
		ID:           img.ID,
		Image:        img.Image,
		Caption:      img.Caption,
		DisplayOrder: img.DisplayOrder,
	}
}

func ToResponses(items []models.ProjectModel) []Response {
	out := make([]Response, len(items))
	for i := range items {
		out[i] = ToResponse(&items[i])
	}
	return out
}
