package skill

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mx-space/portfolio/internal/models"
	"gorm.io/gorm"
)

// ErrInvalid wraps every input rejection from this service.
var ErrInvalid = errors.New("invalid skill")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns skills ordered by category, then proficiency desc, then name.
func (s *Service) List() ([]models.SkillModel, error) {
	var items []models.SkillModel
	err := s.db.Order("category ASC").
		Order("proficiency DESC").
		Order("name ASC").
		Find(&items).Error
	return items, err
}

// Grouped buckets ordered skills by category. Group order follows the first
// appearance of each category, so flattening the groups gives back List.
func (s *Service) Grouped() ([]Group, error) {
	items, err := s.List()
	if err != nil {
		return nil, err
	}
	return GroupByCategory(items), nil
}

func GroupByCategory(items []models.SkillModel) []Group {
	groups := []Group{}
	index := map[models.SkillCategory]int{}
	for i := range items {
		item := &items[i]
		pos, ok := index[item.Category]
		if !ok {
			pos = len(groups)
			index[item.Category] = pos
			groups = append(groups, Group{
				Category: item.Category,
				Label:    item.Category.Label(),
				Skills:   []Response{},
			})
		}
		groups[pos].Skills = append(groups[pos].Skills, ToResponse(item))
	}
	return groups
}

func (s *Service) GetByID(id string) (*models.SkillModel, error) {
	var item models.SkillModel
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func validateProficiency(v int) error {
	if v < models.MinProficiency || v > models.MaxProficiency {
		return fmt.Errorf("%w: proficiency must be between %d and %d", ErrInvalid, models.MinProficiency, models.MaxProficiency)
	}
	return nil
}

func (s *Service) Create(dto *CreateSkillDTO) (*models.SkillModel, error) {
	category := dto.Category
	if category == "" {
		category = models.SkillOther
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalid, category)
	}
	if err := validateProficiency(dto.Proficiency); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}

	item := models.SkillModel{
		Name:         name,
		Category:     category,
		Proficiency:  dto.Proficiency,
		DisplayOrder: dto.DisplayOrder,
	}
	return &item, s.db.Create(&item).Error
}

func (s *Service) Update(id string, dto *UpdateSkillDTO) (*models.SkillModel, error) {
	item, err := s.GetByID(id)
	if err != nil || item == nil {
		return item, err
	}
	updates := map[string]interface{}{}
	if dto.Name != nil {
		name := strings.TrimSpace(*dto.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalid)
		}
		updates["name"] = name
	}
	if dto.Category != nil {
		if !dto.Category.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalid, *dto.Category)
		}
		updates["category"] = *dto.Category
	}
	if dto.Proficiency != nil {
		if err := validateProficiency(*dto.Proficiency); err != nil {
			return nil, err
		}
		updates["proficiency"] = *dto.Proficiency
	}
	if dto.DisplayOrder != nil {
		updates["display_order"] = *dto.DisplayOrder
	}
	if len(updates) > 0 {
		if err := s.db.Model(item).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.SkillModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
