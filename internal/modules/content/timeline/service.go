package timeline

import (
	"errors"

	"github.com/mx-space/portfolio/internal/models"
	"gorm.io/gorm"
)

// ErrInvalid wraps every input rejection from this service.
var ErrInvalid = errors.New("invalid timeline entry")

// Service manages education and work experience entries.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) ListEducation() ([]models.EducationModel, error) {
	var items []models.EducationModel
	err := s.db.Order(newestFirst).Find(&items).Error
	return items, err
}

func (s *Service) GetEducation(id string) (*models.EducationModel, error) {
	var item models.EducationModel
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *Service) CreateEducation(dto *EducationDTO) (*models.EducationModel, error) {
	institution, err := requireText("institution", dto.Institution, true)
	if err != nil {
		return nil, err
	}
	degree, err := requireText("degree", dto.Degree, true)
	if err != nil {
		return nil, err
	}
	field, err := requireText("field_of_study", dto.FieldOfStudy, true)
	if err != nil {
		return nil, err
	}
	start, err := parseStart(dto.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseEnd(dto.EndDate, start)
	if err != nil {
		return nil, err
	}

	item := models.EducationModel{
		Institution:  institution,
		Degree:       degree,
		FieldOfStudy: field,
		StartDate:    start,
		EndDate:      end,
	}
	if dto.Description != nil {
		item.Description = *dto.Description
	}
	if dto.DisplayOrder != nil {
		item.DisplayOrder = *dto.DisplayOrder
	}
	return &item, s.db.Create(&item).Error
}

func (s *Service) UpdateEducation(id string, dto *EducationDTO) (*models.EducationModel, error) {
	item, err := s.GetEducation(id)
	if err != nil || item == nil {
		return item, err
	}
	updates := map[string]interface{}{}
	if dto.Institution != nil {
		v, err := requireText("institution", dto.Institution, true)
		if err != nil {
			return nil, err
		}
		updates["institution"] = v
	}
	if dto.Degree != nil {
		v, err := requireText("degree", dto.Degree, true)
		if err != nil {
			return nil, err
		}
		updates["degree"] = v
	}
	if dto.FieldOfStudy != nil {
		v, err := requireText("field_of_study", dto.FieldOfStudy, true)
		if err != nil {
			return nil, err
		}
		updates["field_of_study"] = v
	}
	start := item.StartDate
	if dto.StartDate != nil {
		if start, err = parseStart(dto.StartDate); err != nil {
			return nil, err
		}
		updates["start_date"] = start
	}
	if dto.EndDate != nil {
		end, err := parseEnd(dto.EndDate, start)
		if err != nil {
			return nil, err
		}
		updates["end_date"] = end
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.DisplayOrder != nil {
		updates["display_order"] = *dto.DisplayOrder
	}
	if len(updates) > 0 {
		if err := s.db.Model(item).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetEducation(id)
}

func (s *Service) DeleteEducation(id string) (bool, error) {
	res := s.db.Delete(&models.EducationModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (s *Service) ListExperience() ([]models.ExperienceModel, error) {
	var items []models.ExperienceModel
	err := s.db.Order(newestFirst).Find(&items).Error
	return items, err
}

func (s *Service) GetExperience(id string) (*models.ExperienceModel, error) {
	var item models.ExperienceModel
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *Service) CreateExperience(dto *ExperienceDTO) (*models.ExperienceModel, error) {
	company, err := requireText("company", dto.Company, true)
	if err != nil {
		return nil, err
	}
	title, err := requireText("title", dto.Title, true)
	if err != nil {
		return nil, err
	}
	start, err := parseStart(dto.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseEnd(dto.EndDate, start)
	if err != nil {
		return nil, err
	}

	item := models.ExperienceModel{
		Company:   company,
		Title:     title,
		StartDate: start,
		EndDate:   end,
	}
	if dto.Description != nil {
		item.Description = *dto.Description
	}
	if dto.DisplayOrder != nil {
		item.DisplayOrder = *dto.DisplayOrder
	}
	return &item, s.db.Create(&item).Error
}

func (s *Service) UpdateExperience(id string, dto *ExperienceDTO) (*models.ExperienceModel, error) {
	item, err := s.GetExperience(id)
	if err != nil || item == nil {
		return item, err
	}
	updates := map[string]interface{}{}
	if dto.Company != nil {
		v, err := requireText("company", dto.Company, true)
		if err != nil {
			return nil, err
		}
		updates["company"] = v
	}
	if dto.Title != nil {
		v, err := requireText("title", dto.Title, true)
		if err != nil {
			return nil, err
		}
		updates["title"] = v
	}
	start := item.StartDate
	if dto.StartDate != nil {
		if start, err = parseStart(dto.StartDate); err != nil {
			return nil, err
		}
		updates["start_date"] = start
	}
	if dto.EndDate != nil {
		end, err := parseEnd(dto.EndDate, start)
		if err != nil {
			return nil, err
		}
		updates["end_date"] = end
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.DisplayOrder != nil {
		updates["display_order"] = *dto.DisplayOrder
	}
	if len(updates) > 0 {
		if err := s.db.Model(item).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetExperience(id)
}

func (s *Service) DeleteExperience(id string) (bool, error) {
	res := s.db.Delete(&models.ExperienceModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
