package seed

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture is the YAML document the seed command loads.
type Fixture struct {
	Profile    *ProfileFixture     `yaml:"profile"`
	Skills     []SkillFixture      `yaml:"skills"`
	Projects   []ProjectFixture    `yaml:"projects"`
	Education  []EducationFixture  `yaml:"education"`
	Experience []ExperienceFixture `yaml:"experience"`
	Documents  []DocumentFixture   `yaml:"documents"`
}

type ProfileFixture struct {
	Name         string `yaml:"name"`
	Title        string `yaml:"title"`
	Bio          string `yaml:"bio"`
	Email        string `yaml:"email"`
	Location     string `yaml:"location"`
	GithubURL    string `yaml:"github_url"`
	LinkedinURL  string `yaml:"linkedin_url"`
	TwitterURL   string `yaml:"twitter_url"`
	ProfileImage string `yaml:"profile_image"`
	Resume       string `yaml:"resume"`
}

type SkillFixture struct {
	Name         string `yaml:"name"`
	Category     string `yaml:"category"`
	Proficiency  int    `yaml:"proficiency"`
	DisplayOrder int    `yaml:"display_order"`
}

type ProjectFixture struct {
	Title          string                `yaml:"title"`
	Description    string                `yaml:"description"`
	Image          string                `yaml:"image"`
	DemoURL        string                `yaml:"demo_url"`
	SourceCodeURL  string                `yaml:"source_code_url"`
	Status         string                `yaml:"status"`
	Technologies   string                `yaml:"technologies"`
	CompletionDate string                `yaml:"completion_date"`
	IsFeatured     bool                  `yaml:"is_featured"`
	DisplayOrder   int                   `yaml:"display_order"`
	Challenges     string                `yaml:"challenges"`
	Solution       string                `yaml:"solution"`
	Images         []ProjectImageFixture `yaml:"images"`
}

type ProjectImageFixture struct {
	Image        string `yaml:"image"`
	Caption      string `yaml:"caption"`
	DisplayOrder int    `yaml:"display_order"`
}

type EducationFixture struct {
	Institution  string `yaml:"institution"`
	Degree       string `yaml:"degree"`
	FieldOfStudy string `yaml:"field_of_study"`
	StartDate    string `yaml:"start_date"`
	EndDate      string `yaml:"end_date"`
	Description  string `yaml:"description"`
	DisplayOrder int    `yaml:"display_order"`
}

type ExperienceFixture struct {
	Company      string `yaml:"company"`
	Title        string `yaml:"title"`
	StartDate    string `yaml:"start_date"`
	EndDate      string `yaml:"end_date"`
	Description  string `yaml:"description"`
	DisplayOrder int    `yaml:"display_order"`
}

type DocumentFixture struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	DocumentType string `yaml:"document_type"`
	File         string `yaml:"file"`
	IsPublic     *bool  `yaml:"is_public"`
	DisplayOrder int    `yaml:"display_order"`
}

// LoadFile reads and decodes a fixture file. Unknown keys are rejected.
func LoadFile(path string) (*Fixture, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	return ParseFixture(content, path)
}

func ParseFixture(content []byte, source string) (*Fixture, error) {
	var fx Fixture
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", source, err)
	}
	return &fx, nil
}
