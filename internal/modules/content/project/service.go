package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/pkg/dateutil"
	"gorm.io/gorm"
)

// ErrInvalid wraps every input rejection from this service.
var ErrInvalid = errors.New("invalid project")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func orderImages(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC").Order("created_at ASC")
}

// ListFeatured returns up to limit featured projects, highest display order first.
func (s *Service) ListFeatured(limit int) ([]models.ProjectModel, error) {
	if limit <= 0 {
		limit = FeaturedLimit
	}
	var items []models.ProjectModel
	err := s.db.Where("is_featured = ?", true).
		Order("display_order DESC").
		Order("completion_date DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// List returns every project in listing order.
func (s *Service) List() ([]models.ProjectModel, error) {
	var items []models.ProjectModel
	err := s.db.Order("display_order ASC").
		Order("completion_date DESC").
		Find(&items).Error
	return items, err
}

// GetByID loads a project with its gallery. Returns (nil, nil) when missing.
func (s *Service) GetByID(id string) (*models.ProjectModel, error) {
	var p models.ProjectModel
	err := s.db.Preload("Images", orderImages).First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if p.Images == nil {
		p.Images = []models.ProjectImageModel{}
	}
	return &p, nil
}

func (s *Service) Create(dto *CreateProjectDTO) (*models.ProjectModel, error) {
	status := dto.Status
	if status == "" {
		status = models.ProjectDevelopment
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalid, status)
	}
	completion, err := dateutil.Parse(dto.CompletionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	p := models.ProjectModel{
		Title:          strings.TrimSpace(dto.Title),
		Description:    dto.Description,
		Image:          strings.TrimSpace(dto.Image),
		DemoURL:        strings.TrimSpace(dto.DemoURL),
		SourceCodeURL:  strings.TrimSpace(dto.SourceCodeURL),
		Status:         status,
		TechnologyList: strings.TrimSpace(dto.Technologies),
		CompletionDate: completion,
		IsFeatured:     dto.IsFeatured,
		DisplayOrder:   dto.DisplayOrder,
		Challenges:     dto.Challenges,
		Solution:       dto.Solution,
	}
	if p.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalid)
	}
	return &p, s.db.Create(&p).Error
}

func (s *Service) Update(id string, dto *UpdateProjectDTO) (*models.ProjectModel, error) {
	p, err := s.GetByID(id)
	if err != nil || p == nil {
		return p, err
	}
	updates := map[string]interface{}{}
	if dto.Title != nil {
		title := strings.TrimSpace(*dto.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title is required", ErrInvalid)
		}
		updates["title"] = title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Image != nil {
		updates["image"] = strings.TrimSpace(*dto.Image)
	}
	if dto.DemoURL != nil {
		updates["demo_url"] = strings.TrimSpace(*dto.DemoURL)
	}
	if dto.SourceCodeURL != nil {
		updates["source_code_url"] = strings.TrimSpace(*dto.SourceCodeURL)
	}
	if dto.Status != nil {
		if !dto.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalid, *dto.Status)
		}
		updates["status"] = *dto.Status
	}
	if dto.Technologies != nil {
		updates["technologies"] = strings.TrimSpace(*dto.Technologies)
	}
	if dto.CompletionDate != nil {
		completion, err := dateutil.Parse(*dto.CompletionDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		updates["completion_date"] = completion
	}
	if dto.IsFeatured != nil {
		updates["is_featured"] = *dto.IsFeatured
	}
	if dto.DisplayOrder != nil {
		updates["display_order"] = *dto.DisplayOrder
	}
	if dto.Challenges != nil {
		updates["challenges"] = *dto.Challenges
	}
	if dto.Solution != nil {
		updates["solution"] = *dto.Solution
	}
	if len(updates) > 0 {
		if err := s.db.Model(p).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// Delete removes a project and its gallery in one transaction.
// It reports false when the project does not exist.
func (s *Service) Delete(id string) (bool, error) {
	var deleted bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectImageModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.ProjectModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// AddImage attaches a screenshot. Returns (nil, nil) when the project is missing.
func (s *Service) AddImage(projectID string, dto *CreateImageDTO) (*models.ProjectImageModel, error) {
	var count int64
	if err := s.db.Model(&models.ProjectModel{}).Where("id = ?", projectID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	img := models.ProjectImageModel{
		ProjectID:    projectID,
		Image:        strings.TrimSpace(dto.Image),
		Caption:      strings.TrimSpace(dto.Caption),
		DisplayOrder: dto.DisplayOrder,
	}
	return &img, s.db.Create(&img).Error
}

func (s *Service) DeleteImage(projectID, imageID string) (bool, error) {
	res := s.db.Where("id = ? AND project_id = ?", imageID, projectID).Delete(&models.ProjectImageModel{})
	return res.RowsAffected > 0, res.Error
}
