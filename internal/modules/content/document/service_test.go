package document

import (
	"testing"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func TestService_Create_DefaultsPublic(t *testing.T) {
	svc := NewService(testutil.NewDB(t))

	doc, err := svc.Create(&CreateDocumentDTO{Title: "CV", File: "documents/cv.pdf"})
	require.NoError(t, err)
	assert.True(t, doc.IsPublic)
	assert.Equal(t, models.DocumentOther, doc.DocumentType)

	_, err = svc.Create(&CreateDocumentDTO{Title: "CV", File: "documents/cv.pdf", DocumentType: "memo"})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.Create(&CreateDocumentDTO{Title: " ", File: "documents/cv.pdf"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestService_ListPublic_ExcludesPrivate(t *testing.T) {
	svc := NewService(testutil.NewDB(t))

	public, err := svc.Create(&CreateDocumentDTO{Title: "Resume", File: "documents/resume.pdf", DocumentType: models.DocumentResume})
	require.NoError(t, err)
	private, err := svc.Create(&CreateDocumentDTO{Title: "Transcript", File: "documents/t.pdf", IsPublic: boolPtr(false)})
	require.NoError(t, err)

	items, err := svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, public.ID, items[0].ID)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := svc.GetPublic(private.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = svc.GetByID(private.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Transcript", got.Title)
}

func TestService_ListPublic_Order(t *testing.T) {
	svc := NewService(testutil.NewDB(t))

	for _, dto := range []CreateDocumentDTO{
		{Title: "B", File: "documents/b.pdf", DisplayOrder: 1},
		{Title: "A", File: "documents/a.pdf", DisplayOrder: 0},
		{Title: "C", File: "documents/c.pdf", DisplayOrder: 1},
	} {
		dto := dto
		_, err := svc.Create(&dto)
		require.NoError(t, err)
	}

	items, err := svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "A", items[0].Title)
}

func TestService_Update(t *testing.T) {
	svc := NewService(testutil.NewDB(t))

	doc, err := svc.Create(&CreateDocumentDTO{Title: "CV", File: "documents/cv.pdf"})
	require.NoError(t, err)

	got, err := svc.Update(doc.ID, &UpdateDocumentDTO{IsPublic: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, got.IsPublic)

	empty := ""
	_, err = svc.Update(doc.ID, &UpdateDocumentDTO{File: &empty})
	assert.ErrorIs(t, err, ErrInvalid)

	missing, err := svc.Update("missing", &UpdateDocumentDTO{IsPublic: boolPtr(true)})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestToResponse(t *testing.T) {
	resp := ToResponse(&models.DocumentModel{
		Title:        "CV",
		DocumentType: models.DocumentResume,
		File:         "documents/cv.pdf",
	})
	assert.Equal(t, "Resume/CV", resp.DocumentTypeLabel)
	assert.Equal(t, "pdf", resp.FileExtension)
	assert.True(t, resp.IsPDF)
	assert.True(t, resp.CanBeEmbedded)
}
