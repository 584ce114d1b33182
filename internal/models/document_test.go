package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentModel_FileExtension(t *testing.T) {
	tests := []struct {
		file       string
		ext        string
		isPDF      bool
		embeddable bool
	}{
		{"documents/resume.PDF", "pdf", true, true},
		{"documents/cert.final.png", "png", false, true},
		{"documents/photo.webp", "webp", false, true},
		{"documents/transcript.docx", "docx", false, false},
		{"documents/README", "", false, false},
		{"", "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			d := &DocumentModel{File: tt.file}
			assert.Equal(t, tt.ext, d.FileExtension())
			assert.Equal(t, tt.isPDF, d.IsPDF())
			assert.Equal(t, tt.embeddable, d.CanBeEmbedded())
		})
	}
}

func TestDocumentType_Label(t *testing.T) {
	assert.Equal(t, "Resume/CV", DocumentResume.Label())
	assert.Equal(t, "Portfolio Document", DocumentPortfolio.Label())
	assert.True(t, DocumentCertificate.Valid())
	assert.False(t, DocumentType("memo").Valid())
}
