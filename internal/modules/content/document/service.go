package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mx-space/portfolio/internal/models"
	"gorm.io/gorm"
)

// ErrInvalid wraps every input rejection from this service.
var ErrInvalid = errors.New("invalid document")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func listOrder(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC").Order("created_at DESC")
}

// ListPublic returns the documents visitors may see.
func (s *Service) ListPublic() ([]models.DocumentModel, error) {
	var items []models.DocumentModel
	err := listOrder(s.db.Where("is_public = ?", true)).Find(&items).Error
	return items, err
}

// ListAll includes private documents.
func (s *Service) ListAll() ([]models.DocumentModel, error) {
	var items []models.DocumentModel
	err := listOrder(s.db).Find(&items).Error
	return items, err
}

// GetPublic looks a document up among public ones only, so a private id
// behaves exactly like an unknown one: (nil, nil).
func (s *Service) GetPublic(id string) (*models.DocumentModel, error) {
	return s.first(s.db.Where("is_public = ?", true), id)
}

func (s *Service) GetByID(id string) (*models.DocumentModel, error) {
	return s.first(s.db, id)
}

func (s *Service) first(tx *gorm.DB, id string) (*models.DocumentModel, error) {
	var item models.DocumentModel
	if err := tx.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *Service) Create(dto *CreateDocumentDTO) (*models.DocumentModel, error) {
	docType := dto.DocumentType
	if docType == "" {
		docType = models.DocumentOther
	}
	if !docType.Valid() {
		return nil, fmt.Errorf("%w: unknown document_type %q", ErrInvalid, docType)
	}
	isPublic := true
	if dto.IsPublic != nil {
		isPublic = *dto.IsPublic
	}

	item := models.DocumentModel{
		Title:        strings.TrimSpace(dto.Title),
		Description:  dto.Description,
		DocumentType: docType,
		File:         strings.TrimSpace(dto.File),
		IsPublic:     isPublic,
		DisplayOrder: dto.DisplayOrder,
	}
	if item.Title == "" || item.File == "" {
		return nil, fmt.Errorf("%w: title and file are required", ErrInvalid)
	}
	return &item, s.db.Create(&item).Error
}

func (s *Service) Update(id string, dto *UpdateDocumentDTO) (*models.DocumentModel, error) {
	item, err := s.GetByID(id)
	if err != nil || item == nil {
		return item, err
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
	if dto.DocumentType != nil {
		if !dto.DocumentType.Valid() {
			return nil, fmt.Errorf("%w: unknown document_type %q", ErrInvalid, *dto.DocumentType)
		}
		updates["document_type"] = *dto.DocumentType
	}
	if dto.File != nil {
		file := strings.TrimSpace(*dto.File)
		if file == "" {
			return nil, fmt.Errorf("%w: file is required", ErrInvalid)
		}
		updates["file"] = file
	}
	if dto.IsPublic != nil {
		updates["is_public"] = *dto.IsPublic
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
	res := s.db.Delete(&models.DocumentModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
