package pages

import (
	"github.com/mx-space/portfolio/internal/modules/content/document"
	"github.com/mx-space/portfolio/internal/modules/content/profile"
	"github.com/mx-space/portfolio/internal/modules/content/project"
	"github.com/mx-space/portfolio/internal/modules/content/skill"
	"github.com/mx-space/portfolio/internal/modules/content/timeline"
)

// ProfileView is the profile with its bio rendered to HTML.
type ProfileView struct {
	*profile.Response
	BioHTML string `json:"bio_html"`
}

type HomeView struct {
	Profile          *ProfileView       `json:"profile"`
	FeaturedProjects []project.Response `json:"featured_projects"`
	Skills           []skill.Response   `json:"skills"`
}

type EducationView struct {
	timeline.EducationResponse
	DescriptionHTML string `json:"description_html"`
}

type ExperienceView struct {
	timeline.ExperienceResponse
	DescriptionHTML string `json:"description_html"`
}

type AboutView struct {
	Profile          *ProfileView     `json:"profile"`
	SkillsByCategory []skill.Group    `json:"skills_by_category"`
	Education        []EducationView  `json:"education"`
	Experience       []ExperienceView `json:"experience"`
}

type ProjectListView struct {
	Profile  *ProfileView       `json:"profile"`
	Projects []project.Response `json:"projects"`
}

type ProjectDetail struct {
	project.Response
	DescriptionHTML string `json:"description_html"`
	ChallengesHTML  string `json:"challenges_html"`
	SolutionHTML    string `json:"solution_html"`
}

type ProjectDetailView struct {
	Profile *ProfileView  `json:"profile"`
	Project ProjectDetail `json:"project"`
}

type DocumentListView struct {
	Profile   *ProfileView        `json:"profile"`
	Documents []document.Response `json:"documents"`
}

type DocumentDetail struct {
	document.Response
	DescriptionHTML string `json:"description_html"`
}

type DocumentDetailView struct {
	Profile  *ProfileView   `json:"profile"`
	Document DocumentDetail `json:"document"`
}
