package models

import (
	"path"
	"strings"
)

type DocumentType string

const (
	DocumentResume      DocumentType = "resume"
	DocumentCertificate DocumentType = "certificate"
	DocumentTranscript  DocumentType = "transcript"
	DocumentPortfolio   DocumentType = "portfolio"
	DocumentOther       DocumentType = "other"
)

var documentTypeLabels = map[DocumentType]string{
	DocumentResume:      "Resume/CV",
	DocumentCertificate: "Certificate",
	DocumentTranscript:  "Transcript",
	DocumentPortfolio:   "Portfolio Document",
	DocumentOther:       "Other",
}

func (t DocumentType) Valid() bool {
	_, ok := documentTypeLabels[t]
	return ok
}

func (t DocumentType) Label() string {
	if label, ok := documentTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

var embeddableExtensions = map[string]struct{}{
	"pdf": {}, "jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "bmp": {}, "webp": {},
}

// DocumentModel is an uploaded resume, certificate or similar file.
type DocumentModel struct {
	Base
	Title        string       `json:"title"         gorm:"size:200;not null"`
	Description  string       `json:"description"   gorm:"type:text"`
	DocumentType DocumentType `json:"document_type" gorm:"size:20;not null;default:other"`
	File         string       `json:"file"          gorm:"size:255;not null"`
	IsPublic     bool         `json:"is_public"     gorm:"index;not null"`
	DisplayOrder int          `json:"display_order" gorm:"not null;default:0"`
}

func (DocumentModel) TableName() string { return "documents" }

// FileExtension is the lowercased text after the last dot of the file name.
// A name without a dot has no extension.
func (d *DocumentModel) FileExtension() string {
	name := path.Base(strings.TrimSpace(d.File))
	if name == "" || name == "." || name == "/" {
		return ""
	}
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

func (d *DocumentModel) IsPDF() bool {
	return d.FileExtension() == "pdf"
}

func (d *DocumentModel) CanBeEmbedded() bool {
	_, ok := embeddableExtensions[d.FileExtension()]
	return ok
}
