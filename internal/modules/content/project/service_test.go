package project

import (
	"fmt"
	"testing"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProject(title, completion string, featured bool, order int) *CreateProjectDTO {
	return &CreateProjectDTO{
		Title:          title,
		Description:    title + " description",
		Technologies:   "Go, SQL",
		CompletionDate: completion,
		IsFeatured:     featured,
		DisplayOrder:   order,
	}
}

func TestService_ListFeatured(t *testing.T) {
	svc := NewService(testutil.NewDB(t))

	for i := 0; i < 5; i++ {
		_, err := svc.Create(newProject(fmt.Sprintf("featured-%d", i), "2024-01-0"+fmt.Sprint(i+1), true, i))
		require.NoError(t, err)
	}
	_, err := svc.Create(newProject("plain", "2024-02-01", false, 99))
	require.NoError(t, err)

	items, err := svc.ListFeatured(FeaturedLimit)
	require.NoError(t, err)
	require.Len(t, items, FeaturedLimit)

	assert.Equal(t, "featured-4", items[0].Title)
	assert.Equal(t, "featured-3", items[1].Title)
	assert.Equal(t, "featured-2", items[2].Title)
	for _, p := range items {
		assert.True(t, p.IsFeatured)
	}
}

func TestService_ListFeatured_TieBreaksOnCompletionDate(t *testing.T) {
	svc := NewService(testutil.NewDB(t))

	_, err := svc.Create(newProject("older", "2023-05-01", true, 1))
	require.NoError(t, err)
	_, err = svc.Create(newProject("newer", "2024-05-01", true, 1))
	require.NoError(t, err)

	items, err := svc.ListFeatured(0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "newer", items[0].Title)
	assert.Equal(t, "older", items[1].Title)
}

func TestService_List_Order(t *testing.T) {
	svc := NewService(testutil.NewDB(t))

	_, err := svc.Create(newProject("second", "2024-01-01", false, 2))
	require.NoError(t, err)
	_, err = svc.Create(newProject("first-old", "2022-01-01", false, 1))
	require.NoError(t, err)
	_, err = svc.Create(newProject("first-new", "2023-01-01", false, 1))
	require.NoError(t, err)

	items, err := svc.List()
	require.NoError(t, err)

	titles := make([]string, len(items))
	for i, p := range items {
		titles[i] = p.Title
	}
	assert.Equal(t, []string{"first-new", "first-old", "second"}, titles)
}

func TestService_Create_Defaults(t *testing.T) {
	svc := NewService(testutil.NewDB(t))

	p, err := svc.Create(newProject("defaults", "2024-03-01", false, 0))
	require.NoError(t, err)
	assert.Equal(t, models.ProjectDevelopment, p.Status)
	assert.NotEmpty(t, p.ID)

	_, err = svc.Create(&CreateProjectDTO{Title: "bad", Technologies: "Go", CompletionDate: "2024-13-45"})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.Create(&CreateProjectDTO{Title: "bad", Technologies: "Go", CompletionDate: "2024-01-01", Status: "shipped"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(testutil.NewDB(t))

	missing, err := svc.GetByID("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)

	p, err := svc.Create(newProject("gallery", "2024-03-01", false, 0))
	require.NoError(t, err)
	_, err = svc.AddImage(p.ID, &CreateImageDTO{Image: "/media/screenshots/b.png", DisplayOrder: 2})
	require.NoError(t, err)
	_, err = svc.AddImage(p.ID, &CreateImageDTO{Image: "/media/screenshots/a.png", DisplayOrder: 1})
	require.NoError(t, err)

	got, err := svc.GetByID(p.ID)
	require.NoError(t, err)
	require.Len(t, got.Images, 2)
	assert.Equal(t, "/media/screenshots/a.png", got.Images[0].Image)
	assert.Equal(t, "/media/screenshots/b.png", got.Images[1].Image)
}

func TestService_Update(t *testing.T) {
	svc := NewService(testutil.NewDB(t))

	p, err := svc.Create(newProject("draft", "2024-03-01", false, 0))
	require.NoError(t, err)

	status := models.ProjectCompleted
	featured := true
	got, err := svc.Update(p.ID, &UpdateProjectDTO{Status: &status, IsFeatured: &featured})
	require.NoError(t, err)
	assert.True(t, got.IsCompleted())
	assert.True(t, got.IsFeatured)
	assert.Equal(t, "draft", got.Title)

	empty := "   "
	_, err = svc.Update(p.ID, &UpdateProjectDTO{Title: &empty})
	assert.ErrorIs(t, err, ErrInvalid)

	missing, err := svc.Update("nope", &UpdateProjectDTO{Status: &status})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestService_Delete_RemovesImages(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewService(db)

	p, err := svc.Create(newProject("cascade", "2024-03-01", false, 0))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := svc.AddImage(p.ID, &CreateImageDTO{Image: fmt.Sprintf("/media/screenshots/%d.png", i)})
		require.NoError(t, err)
	}

	ok, err := svc.Delete(p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	var count int64
	require.NoError(t, db.Model(&models.ProjectImageModel{}).Where("project_id = ?", p.ID).Count(&count).Error)
	assert.Zero(t, count)

	ok, err = svc.Delete(p.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_AddImage_MissingProject(t *testing.T) {
	svc := NewService(testutil.NewDB(t))

	img, err := svc.AddImage("missing", &CreateImageDTO{Image: "/media/screenshots/x.png"})
	require.NoError(t, err)
	assert.Nil(t, img)
}

func TestToResponse(t *testing.T) {
	p := &models.ProjectModel{
		Title:          "api",
		Status:         models.ProjectCompleted,
		TechnologyList: "Go, , Redis ,",
		DemoURL:        "#",
		SourceCodeURL:  "https://github.com/example/api",
	}
	out := ToResponse(p)
	assert.Equal(t, []string{"Go", "Redis"}, out.Technologies)
	assert.Equal(t, "Completed", out.StatusLabel)
	assert.True(t, out.IsCompleted)
	assert.True(t, out.HasLiveLinks)
	assert.Nil(t, out.Images)

	out = ToResponse(&models.ProjectModel{TechnologyList: "Django, Python, HTML", DemoURL: "#"})
	assert.Equal(t, []string{"Django", "Python", "HTML"}, out.Technologies)
	assert.False(t, out.HasLiveLinks)
}
