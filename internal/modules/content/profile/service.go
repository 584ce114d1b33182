package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mx-space/portfolio/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalid wraps every input rejection from this service.
var ErrInvalid = errors.New("invalid profile")

// Service reads and writes the single profile row.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Get returns the profile, or (nil, nil) before one has been saved.
func (s *Service) Get() (*models.ProfileModel, error) {
	var p models.ProfileModel
	if err := s.db.First(&p, "id = ?", models.ProfileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Update merges dto into the stored profile and upserts the row.
func (s *Service) Update(dto *UpdateProfileDTO) (*models.ProfileModel, error) {
	current, err := s.Get()
	if err != nil {
		return nil, err
	}
	if current == nil {
		current = &models.ProfileModel{}
	}
	p := *current
	p.ID = models.ProfileID

	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	assign(&p.Name, dto.Name)
	assign(&p.Title, dto.Title)
	if dto.Bio != nil {
		p.Bio = *dto.Bio
	}
	assign(&p.Email, dto.Email)
	assign(&p.Location, dto.Location)
	assign(&p.GithubURL, dto.GithubURL)
	assign(&p.LinkedinURL, dto.LinkedinURL)
	assign(&p.TwitterURL, dto.TwitterURL)
	assign(&p.ProfileImage, dto.ProfileImage)
	assign(&p.Resume, dto.Resume)

	if p.Name == "" || p.Title == "" {
		return nil, fmt.Errorf("%w: name and title are required", ErrInvalid)
	}
	if err := s.Save(&p); err != nil {
		return nil, err
	}
	return s.Get()
}

// Save upserts p as the profile row regardless of the id it carries.
func (s *Service) Save(p *models.ProfileModel) error {
	p.ID = models.ProfileID
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(p).Error
}
