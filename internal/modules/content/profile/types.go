package profile

import (
	"time"

	"github.com/mx-space/portfolio/internal/models"
)

// UpdateProfileDTO carries a partial profile; nil fields keep their value.
type UpdateProfileDTO struct {
	Name         *string `json:"name"          binding:"omitempty,max=100"`
	Title        *string `json:"title"         binding:"omitempty,max=100"`
	Bio          *string `json:"bio"`
	Email        *string `json:"email"         binding:"omitempty,email,max=254"`
	Location     *string `json:"location"      binding:"omitempty,max=100"`
	GithubURL    *string `json:"github_url"    binding:"omitempty,url,max=200"`
	LinkedinURL  *string `json:"linkedin_url"  binding:"omitempty,url,max=200"`
	TwitterURL   *string `json:"twitter_url"   binding:"omitempty,url,max=200"`
	ProfileImage *string `json:"profile_image" binding:"omitempty,max=255"`
	Resume       *string `json:"resume"        binding:"omitempty,max=255"`
}

type Response struct {
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Bio          string    `json:"bio"`
	Email        string    `json:"email"`
	Location     string    `json:"location"`
	GithubURL    string    `json:"github_url"`
	LinkedinURL  string    `json:"linkedin_url"`
	TwitterURL   string    `json:"twitter_url"`
	ProfileImage string    `json:"profile_image"`
	Resume       string    `json:"resume"`
	Modified     time.Time `json:"modified"`
}

// ToResponse maps the profile row; a nil row yields nil.
func ToResponse(p *models.ProfileModel) *Response {
	if p == nil {
		return nil
	}
	return &Response{
		Name:         p.Name,
		Title:        p.Title,
		Bio:          p.Bio,
		Email:        p.Email,
		Location:     p.Location,
		GithubURL:    p.GithubURL,
		LinkedinURL:  p.LinkedinURL,
		TwitterURL:   p.TwitterURL,
		ProfileImage: p.ProfileImage,
		Resume:       p.Resume,
		Modified:     p.UpdatedAt,
	}
}
