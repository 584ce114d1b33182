package pages

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/content/document"
	"github.com/mx-space/portfolio/internal/modules/content/profile"
	"github.com/mx-space/portfolio/internal/modules/content/project"
	"github.com/mx-space/portfolio/internal/modules/content/skill"
	"github.com/mx-space/portfolio/internal/modules/content/timeline"
	"github.com/mx-space/portfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	profiles  *profile.Service
	projects  *project.Service
	skills    *skill.Service
	timeline  *timeline.Service
	documents *document.Service
	svc       *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	f := &fixture{
		db:        db,
		profiles:  profile.NewService(db),
		projects:  project.NewService(db),
		skills:    skill.NewService(db),
		timeline:  timeline.NewService(db),
		documents: document.NewService(db),
	}
	f.svc = NewService(f.profiles, f.projects, f.skills, f.timeline, f.documents)
	return f
}

func (f *fixture) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(f.svc).RegisterRoutes(r)
	return r
}

func str(v string) *string { return &v }

func TestService_Home(t *testing.T) {
	f := newFixture(t)

	_, err := f.profiles.Update(&profile.UpdateProfileDTO{Name: str("Jane"), Title: str("Engineer"), Bio: str("I build **things**.")})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := f.projects.Create(&project.CreateProjectDTO{
			Title:          fmt.Sprintf("P%d", i),
			Description:    "d",
			Technologies:   "Go",
			CompletionDate: fmt.Sprintf("2023-0%d-01", i+1),
			IsFeatured:     i != 4,
			DisplayOrder:   i,
		})
		require.NoError(t, err)
	}
	_, err = f.skills.Create(&skill.CreateSkillDTO{Name: "Go", Category: models.SkillBackend, Proficiency: 90})
	require.NoError(t, err)

	view, err := f.svc.Home()
	require.NoError(t, err)
	require.NotNil(t, view.Profile)
	assert.Equal(t, "Jane", view.Profile.Name)
	assert.Contains(t, view.Profile.BioHTML, "<strong>things</strong>")

	require.Len(t, view.FeaturedProjects, project.FeaturedLimit)
	for _, p := range view.FeaturedProjects {
		assert.True(t, p.IsFeatured)
	}
	assert.Equal(t, "P3", view.FeaturedProjects[0].Title)
	assert.Len(t, view.Skills, 1)
}

func TestService_Home_NoProfile(t *testing.T) {
	f := newFixture(t)

	view, err := f.svc.Home()
	require.NoError(t, err)
	assert.Nil(t, view.Profile)
	assert.Empty(t, view.FeaturedProjects)
}

func TestService_About(t *testing.T) {
	f := newFixture(t)

	_, err := f.skills.Create(&skill.CreateSkillDTO{Name: "Go", Category: models.SkillBackend, Proficiency: 90})
	require.NoError(t, err)
	_, err = f.skills.Create(&skill.CreateSkillDTO{Name: "CSS", Category: models.SkillFrontend, Proficiency: 60})
	require.NoError(t, err)
	_, err = f.timeline.CreateEducation(&timeline.EducationDTO{
		Institution: str("U"), Degree: str("BSc"), FieldOfStudy: str("CS"),
		StartDate: str("2010-09-01"), EndDate: str("2014-06-30"), Description: str("*honours*"),
	})
	require.NoError(t, err)
	_, err = f.timeline.CreateExperience(&timeline.ExperienceDTO{Company: str("Acme"), Title: str("Dev"), StartDate: str("2015-01-01")})
	require.NoError(t, err)

	view, err := f.svc.About()
	require.NoError(t, err)
	require.Len(t, view.SkillsByCategory, 2)
	assert.Equal(t, models.SkillBackend, view.SkillsByCategory[0].Category)
	require.Len(t, view.Education, 1)
	assert.Contains(t, view.Education[0].DescriptionHTML, "<em>honours</em>")
	require.Len(t, view.Experience, 1)
	assert.True(t, view.Experience[0].Ongoing)
}

func TestService_Project(t *testing.T) {
	f := newFixture(t)

	p, err := f.projects.Create(&project.CreateProjectDTO{
		Title:          "Site",
		Description:    "# Heading",
		Technologies:   "Go, Gin",
		CompletionDate: "2024-01-01",
		Challenges:     "- one",
	})
	require.NoError(t, err)

	view, err := f.svc.Project(p.ID)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Contains(t, view.Project.DescriptionHTML, "<h1")
	assert.Contains(t, view.Project.ChallengesHTML, "<li>one</li>")
	assert.Empty(t, strings.TrimSpace(view.Project.SolutionHTML))

	missing, err := f.svc.Project("missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestHandler_PrivateDocumentIsNotFound(t *testing.T) {
	f := newFixture(t)

	private := false
	priv, err := f.documents.Create(&document.CreateDocumentDTO{Title: "Transcript", File: "documents/t.pdf", IsPublic: &private})
	require.NoError(t, err)
	pub, err := f.documents.Create(&document.CreateDocumentDTO{Title: "Resume", File: "documents/r.pdf"})
	require.NoError(t, err)

	router := f.router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/documents/"+priv.ID+"/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/documents/"+pub.ID+"/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var detail DocumentDetailView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Resume", detail.Document.Title)
	assert.True(t, detail.Document.IsPDF)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/documents/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var list DocumentListView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Documents, 1)
	assert.Equal(t, pub.ID, list.Documents[0].ID)
}

func TestHandler_UnknownProjectIsNotFound(t *testing.T) {
	f := newFixture(t)

	w := httptest.NewRecorder()
	f.router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects/nope/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
