package pages

import (
	"github.com/mx-space/portfolio/internal/modules/content/document"
	"github.com/mx-space/portfolio/internal/modules/content/profile"
	"github.com/mx-space/portfolio/internal/modules/content/project"
	"github.com/mx-space/portfolio/internal/modules/content/skill"
	"github.com/mx-space/portfolio/internal/modules/content/timeline"
	"github.com/mx-space/portfolio/internal/pkg/markdown"
)

// Service assembles read-only page view models. Every call re-reads the store.
type Service struct {
	profiles  *profile.Service
	projects  *project.Service
	skills    *skill.Service
	timeline  *timeline.Service
	documents *document.Service
}

func NewService(
	profiles *profile.Service,
	projects *project.Service,
	skills *skill.Service,
	timeline *timeline.Service,
	documents *document.Service,
) *Service {
	return &Service{
		profiles:  profiles,
		projects:  projects,
		skills:    skills,
		timeline:  timeline,
		documents: documents,
	}
}

func (s *Service) profile() (*ProfileView, error) {
	p, err := s.profiles.Get()
	if err != nil || p == nil {
		return nil, err
	}
	return &ProfileView{Response: profile.ToResponse(p), BioHTML: markdown.Render(p.Bio)}, nil
}

func (s *Service) Home() (*HomeView, error) {
	p, err := s.profile()
	if err != nil {
		return nil, err
	}
	featured, err := s.projects.ListFeatured(project.FeaturedLimit)
	if err != nil {
		return nil, err
	}
	skills, err := s.skills.List()
	if err != nil {
		return nil, err
	}
	return &HomeView{
		Profile:          p,
		FeaturedProjects: project.ToResponses(featured),
		Skills:           skill.ToResponses(skills),
	}, nil
}

func (s *Service) About() (*AboutView, error) {
	p, err := s.profile()
	if err != nil {
		return nil, err
	}
	groups, err := s.skills.Grouped()
	if err != nil {
		return nil, err
	}
	education, err := s.timeline.ListEducation()
	if err != nil {
		return nil, err
	}
	experience, err := s.timeline.ListExperience()
	if err != nil {
		return nil, err
	}

	view := &AboutView{
		Profile:          p,
		SkillsByCategory: groups,
		Education:        make([]EducationView, len(education)),
		Experience:       make([]ExperienceView, len(experience)),
	}
	for i := range education {
		view.Education[i] = EducationView{
			EducationResponse: timeline.ToEducationResponse(&education[i]),
			DescriptionHTML:   markdown.Render(education[i].Description),
		}
	}
	for i := range experience {
		view.Experience[i] = ExperienceView{
			ExperienceResponse: timeline.ToExperienceResponse(&experience[i]),
			DescriptionHTML:    markdown.Render(experience[i].Description),
		}
	}
	return view, nil
}

func (s *Service) Projects() (*ProjectListView, error) {
	p, err := s.profile()
	if err != nil {
		return nil, err
	}
	items, err := s.projects.List()
	if err != nil {
		return nil, err
	}
	return &ProjectListView{Profile: p, Projects: project.ToResponses(items)}, nil
}

// Project returns (nil, nil) when id is unknown.
func (s *Service) Project(id string) (*ProjectDetailView, error) {
	item, err := s.projects.GetByID(id)
	if err != nil || item == nil {
		return nil, err
	}
	p, err := s.profile()
	if err != nil {
		return nil, err
	}
	return &ProjectDetailView{
		Profile: p,
		Project: ProjectDetail{
			Response:        project.ToResponse(item),
			DescriptionHTML: markdown.Render(item.Description),
			ChallengesHTML:  markdown.Render(item.Challenges),
			SolutionHTML:    markdown.Render(item.Solution),
		},
	}, nil
}

func (s *Service) Documents() (*DocumentListView, error) {
	p, err := s.profile()
	if err != nil {
		return nil, err
	}
	items, err := s.documents.ListPublic()
	if err != nil {
		return nil, err
	}
	return &DocumentListView{Profile: p, Documents: document.ToResponses(items)}, nil
}

// Document returns (nil, nil) when id is unknown or the document is private.
func (s *Service) Document(id string) (*DocumentDetailView, error) {
	item, err := s.documents.GetPublic(id)
	if err != nil || item == nil {
		return nil, err
	}
	p, err := s.profile()
	if err != nil {
		return nil, err
	}
	return &DocumentDetailView{
		Profile: p,
		Document: DocumentDetail{
			Response:        document.ToResponse(item),
			DescriptionHTML: markdown.Render(item.Description),
		},
	}, nil
}
