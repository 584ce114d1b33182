package seed

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSample(t *testing.T) *Fixture {
	t.Helper()
	fx, err := LoadFile(filepath.Join("..", "..", "fixtures", "portfolio.yml"))
	require.NoError(t, err)
	return fx
}

func TestLoader_Load(t *testing.T) {
	db := testutil.NewDB(t)
	fx := loadSample(t)

	summary, err := NewLoader(db, nil).Load(fx, Options{})
	require.NoError(t, err)

	assert.EqualValues(t, 1, summary.Profiles)
	assert.EqualValues(t, len(fx.Skills), summary.Skills)
	assert.EqualValues(t, len(fx.Projects), summary.Projects)
	assert.EqualValues(t, 1, summary.ProjectImages)
	assert.EqualValues(t, len(fx.Education), summary.Education)
	assert.EqualValues(t, len(fx.Experience), summary.Experience)
	assert.EqualValues(t, len(fx.Documents), summary.Documents)
	assert.Empty(t, summary.Skipped)

	var private models.DocumentModel
	require.NoError(t, db.First(&private, "title = ?", "AWS Certificate").Error)
	assert.False(t, private.IsPublic)

	var resume models.DocumentModel
	require.NoError(t, db.First(&resume, "title = ?", "Resume").Error)
	assert.True(t, resume.IsPublic)
}

func TestLoader_SecondRunSkipsPopulatedTables(t *testing.T) {
	db := testutil.NewDB(t)
	fx := loadSample(t)
	loader := NewLoader(db, nil)

	_, err := loader.Load(fx, Options{})
	require.NoError(t, err)

	summary, err := loader.Load(fx, Options{})
	require.NoError(t, err)
	assert.EqualValues(t, len(fx.Projects), summary.Projects)
	assert.EqualValues(t, len(fx.Skills), summary.Skills)
	assert.Equal(t, []string{"profile", "skills", "projects", "education", "experience", "documents"}, summary.Skipped)
}

func TestLoader_ClearReplacesContent(t *testing.T) {
	db := testutil.NewDB(t)
	fx := loadSample(t)
	loader := NewLoader(db, nil)

	_, err := loader.Load(fx, Options{})
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.ContactMessageModel{Name: "a", Email: "a@example.com", Subject: "s", Message: "m"}).Error)

	summary, err := loader.Load(fx, Options{Clear: true})
	require.NoError(t, err)
	assert.Empty(t, summary.Skipped)
	assert.EqualValues(t, len(fx.Projects), summary.Projects)
	assert.EqualValues(t, 0, summary.ContactMessages)
}

func TestLoader_InvalidFixtureRollsBack(t *testing.T) {
	db := testutil.NewDB(t)

	fx, err := ParseFixture([]byte(`
skills:
  - {name: Go, category: backend, proficiency: 90}
projects:
  - {title: Broken, description: x, technologies: Go, completion_date: "2024-13-01"}
`), "inline")
	require.NoError(t, err)

	_, err = NewLoader(db, nil).Load(fx, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load projects")

	var count int64
	require.NoError(t, db.Model(&models.SkillModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestParseFixture_UnknownField(t *testing.T) {
	_, err := ParseFixture([]byte("skils: []\n"), "inline")
	assert.Error(t, err)
}

func TestParseRange(t *testing.T) {
	_, end, err := parseRange("2020-01-01", "")
	require.NoError(t, err)
	assert.Nil(t, end)

	_, _, err = parseRange("2020-01-01", "2019-01-01")
	assert.Error(t, err)
}

func TestSummary_Print(t *testing.T) {
	var buf bytes.Buffer
	(&Summary{Projects: 2, ProjectImages: 3, Skipped: []string{"skills"}}).Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "Data Summary:")
	assert.Contains(t, out, "  - Projects: 2 (images: 3)")
	assert.Contains(t, out, "Skipped (already populated): skills")
}
