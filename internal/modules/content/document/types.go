package document

import (
	"time"

	"github.com/mx-space/portfolio/internal/models"
)

type CreateDocumentDTO struct {
	Title        string              `json:"title"         binding:"required,max=200"`
	Description  string              `json:"description"`
	DocumentType models.DocumentType `json:"document_type"`
	File         string              `json:"file"          binding:"required,max=255"`
	// IsPublic defaults to true when omitted.
	IsPublic     *bool `json:"is_public"`
	DisplayOrder int   `json:"display_order" binding:"min=0"`
}

type UpdateDocumentDTO struct {
	Title        *string              `json:"title"         binding:"omitempty,max=200"`
	Description  *string              `json:"description"`
	DocumentType *models.DocumentType `json:"document_type"`
	File         *string              `json:"file"          binding:"omitempty,max=255"`
	IsPublic     *bool                `json:"is_public"`
	DisplayOrder *int                 `json:"display_order" binding:"omitempty,min=0"`
}

type Response struct {
	ID                string              `json:"id"`
	Title             string              `json:"title"`
	Description       string              `json:"description"`
	DocumentType      models.DocumentType `json:"document_type"`
	DocumentTypeLabel string              `json:"document_type_label"`
	File              string              `json:"file"`
	FileExtension     string              `json:"file_extension"`
	IsPDF             bool                `json:"is_pdf"`
	CanBeEmbedded     bool                `json:"can_be_embedded"`
	IsPublic          bool                `json:"is_public"`
	DisplayOrder      int                 `json:"display_order"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

func ToResponse(d *models.DocumentModel) Response {
	return Response{
		ID:                d.ID,
		Title:             d.Title,
		Description:       d.Description,
		DocumentType:      d.DocumentType,
		DocumentTypeLabel: d.DocumentType.Label(),
		File:              d.File,
		FileExtension:     d.FileExtension(),
		IsPDF:             d.IsPDF(),
		CanBeEmbedded:     d.CanBeEmbedded(),
		IsPublic:          d.IsPublic,
		DisplayOrder:      d.DisplayOrder,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func ToResponses(items []models.DocumentModel) []Response {
	out := make([]Response, len(items))
	for i := range items {
		out[i] = ToResponse(&items[i])
	}
	return out
}
