package seed

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/content/profile"
	"github.com/mx-space/portfolio/internal/pkg/dateutil"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Options struct {
	// Clear removes existing content, contact messages included, before loading.
	Clear bool
}

// Summary counts rows per entity after a load.
type Summary struct {
	Profiles        int64
	Projects        int64
	ProjectImages   int64
	Skills          int64
	Education       int64
	Experience      int64
	Documents       int64
	ContactMessages int64
	Skipped         []string
}

// Loader writes a fixture into the store inside a single transaction.
type Loader struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewLoader(db *gorm.DB, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{db: db, logger: logger.Named("Seed")}
}

// Load applies fx. Without Clear, an entity whose table already has rows is
// skipped so a second run never duplicates content.
func (l *Loader) Load(fx *Fixture, opts Options) (*Summary, error) {
	var skipped []string

	err := l.db.Transaction(func(tx *gorm.DB) error {
		if opts.Clear {
			if err := clearContent(tx); err != nil {
				return err
			}
			l.logger.Info("existing data cleared")
		}

		steps := []struct {
			name  string
			model interface{}
			empty bool
			load  func(*gorm.DB) error
		}{
			{"profile", &models.ProfileModel{}, fx.Profile == nil, func(tx *gorm.DB) error { return loadProfile(tx, fx.Profile) }},
			{"skills", &models.SkillModel{}, len(fx.Skills) == 0, func(tx *gorm.DB) error { return loadSkills(tx, fx.Skills) }},
			{"projects", &models.ProjectModel{}, len(fx.Projects) == 0, func(tx *gorm.DB) error { return loadProjects(tx, fx.Projects) }},
			{"education", &models.EducationModel{}, len(fx.Education) == 0, func(tx *gorm.DB) error { return loadEducation(tx, fx.Education) }},
			{"experience", &models.ExperienceModel{}, len(fx.Experience) == 0, func(tx *gorm.DB) error { return loadExperience(tx, fx.Experience) }},
			{"documents", &models.DocumentModel{}, len(fx.Documents) == 0, func(tx *gorm.DB) error { return loadDocuments(tx, fx.Documents) }},
		}

		for _, step := range steps {
			if step.empty {
				continue
			}
			var count int64
			if err := tx.Model(step.model).Count(&count).Error; err != nil {
				return fmt.Errorf("count %s: %w", step.name, err)
			}
			if count > 0 {
				skipped = append(skipped, step.name)
				l.logger.Info("table not empty, skipping", zap.String("entity", step.name), zap.Int64("rows", count))
				continue
			}
			if err := step.load(tx); err != nil {
				return fmt.Errorf("load %s: %w", step.name, err)
			}
			l.logger.Info("loaded", zap.String("entity", step.name))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary, err := l.summarize()
	if err != nil {
		return nil, err
	}
	summary.Skipped = skipped
	return summary, nil
}

func clearContent(tx *gorm.DB) error {
	all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []interface{}{
		&models.ContactMessageModel{},
		&models.ProjectImageModel{},
		&models.ProjectModel{},
		&models.SkillModel{},
		&models.EducationModel{},
		&models.ExperienceModel{},
		&models.DocumentModel{},
		&models.ProfileModel{},
	} {
		if err := all.Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

func (l *Loader) summarize() (*Summary, error) {
	s := &Summary{}
	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&models.ProfileModel{}, &s.Profiles},
		{&models.ProjectModel{}, &s.Projects},
		{&models.ProjectImageModel{}, &s.ProjectImages},
		{&models.SkillModel{}, &s.Skills},
		{&models.EducationModel{}, &s.Education},
		{&models.ExperienceModel{}, &s.Experience},
		{&models.DocumentModel{}, &s.Documents},
		{&models.ContactMessageModel{}, &s.ContactMessages},
	}
	for _, c := range counts {
		if err := l.db.Model(c.model).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Print writes the per-entity summary in the form the seed command shows.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintln(w, "Data Summary:")
	fmt.Fprintf(w, "  - Profiles: %d\n", s.Profiles)
	fmt.Fprintf(w, "  - Projects: %d (images: %d)\n", s.Projects, s.ProjectImages)
	fmt.Fprintf(w, "  - Skills: %d\n", s.Skills)
	fmt.Fprintf(w, "  - Education: %d\n", s.Education)
	fmt.Fprintf(w, "  - Experience: %d\n", s.Experience)
	fmt.Fprintf(w, "  - Documents: %d\n", s.Documents)
	fmt.Fprintf(w, "  - Contact Messages: %d\n", s.ContactMessages)
	if len(s.Skipped) > 0 {
		fmt.Fprintf(w, "Skipped (already populated): %s\n", strings.Join(s.Skipped, ", "))
	}
}

func loadProfile(tx *gorm.DB, f *ProfileFixture) error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Title) == "" {
		return fmt.Errorf("profile name and title are required")
	}
	return profile.NewService(tx).Save(&models.ProfileModel{
		Name:         f.Name,
		Title:        f.Title,
		Bio:          f.Bio,
		Email:        f.Email,
		Location:     f.Location,
		GithubURL:    f.GithubURL,
		LinkedinURL:  f.LinkedinURL,
		TwitterURL:   f.TwitterURL,
		ProfileImage: f.ProfileImage,
		Resume:       f.Resume,
	})
}

func loadSkills(tx *gorm.DB, items []SkillFixture) error {
	rows := make([]models.SkillModel, 0, len(items))
	for i, f := range items {
		category := models.SkillCategory(strings.ToLower(strings.TrimSpace(f.Category)))
		if category == "" {
			category = models.SkillOther
		}
		if !category.Valid() {
			return fmt.Errorf("skill %d: unknown category %q", i, f.Category)
		}
		if f.Proficiency < models.MinProficiency || f.Proficiency > models.MaxProficiency {
			return fmt.Errorf("skill %d: proficiency %d outside [%d,%d]", i, f.Proficiency, models.MinProficiency, models.MaxProficiency)
		}
		rows = append(rows, models.SkillModel{
			Name:         f.Name,
			Category:     category,
			Proficiency:  f.Proficiency,
			DisplayOrder: f.DisplayOrder,
		})
	}
	return tx.Create(&rows).Error
}

func loadProjects(tx *gorm.DB, items []ProjectFixture) error {
	for i, f := range items {
		status := models.ProjectStatus(strings.ToLower(strings.TrimSpace(f.Status)))
		if status == "" {
			status = models.ProjectDevelopment
		}
		if !status.Valid() {
			return fmt.Errorf("project %d: unknown status %q", i, f.Status)
		}
		completed, err := dateutil.Parse(f.CompletionDate)
		if err != nil {
			return fmt.Errorf("project %d: %w", i, err)
		}

		p := models.ProjectModel{
			Title:          f.Title,
			Description:    f.Description,
			Image:          f.Image,
			DemoURL:        f.DemoURL,
			SourceCodeURL:  f.SourceCodeURL,
			Status:         status,
			TechnologyList: f.Technologies,
			CompletionDate: completed,
			IsFeatured:     f.IsFeatured,
			DisplayOrder:   f.DisplayOrder,
			Challenges:     f.Challenges,
			Solution:       f.Solution,
		}
		for _, img := range f.Images {
			p.Images = append(p.Images, models.ProjectImageModel{
				Image:        img.Image,
				Caption:      img.Caption,
				DisplayOrder: img.DisplayOrder,
			})
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}

func loadEducation(tx *gorm.DB, items []EducationFixture) error {
	rows := make([]models.EducationModel, 0, len(items))
	for i, f := range items {
		start, end, err := parseRange(f.StartDate, f.EndDate)
		if err != nil {
			return fmt.Errorf("education %d: %w", i, err)
		}
		rows = append(rows, models.EducationModel{
			Institution:  f.Institution,
			Degree:       f.Degree,
			FieldOfStudy: f.FieldOfStudy,
			StartDate:    start,
			EndDate:      end,
			Description:  f.Description,
			DisplayOrder: f.DisplayOrder,
		})
	}
	return tx.Create(&rows).Error
}

func loadExperience(tx *gorm.DB, items []ExperienceFixture) error {
	rows := make([]models.ExperienceModel, 0, len(items))
	for i, f := range items {
		start, end, err := parseRange(f.StartDate, f.EndDate)
		if err != nil {
			return fmt.Errorf("experience %d: %w", i, err)
		}
		rows = append(rows, models.ExperienceModel{
			Company:      f.Company,
			Title:        f.Title,
			StartDate:    start,
			EndDate:      end,
			Description:  f.Description,
			DisplayOrder: f.DisplayOrder,
		})
	}
	return tx.Create(&rows).Error
}

func loadDocuments(tx *gorm.DB, items []DocumentFixture) error {
	rows := make([]models.DocumentModel, 0, len(items))
	for i, f := range items {
		docType := models.DocumentType(strings.ToLower(strings.TrimSpace(f.DocumentType)))
		if docType == "" {
			docType = models.DocumentOther
		}
		if !docType.Valid() {
			return fmt.Errorf("document %d: unknown type %q", i, f.DocumentType)
		}
		public := true
		if f.IsPublic != nil {
			public = *f.IsPublic
		}
		rows = append(rows, models.DocumentModel{
			Title:        f.Title,
			Description:  f.Description,
			DocumentType: docType,
			File:         f.File,
			IsPublic:     public,
			DisplayOrder: f.DisplayOrder,
		})
	}
	return tx.Create(&rows).Error
}

func parseRange(rawStart, rawEnd string) (start time.Time, end *time.Time, err error) {
	start, err = dateutil.Parse(rawStart)
	if err != nil {
		return start, nil, err
	}
	end, err = dateutil.ParseOptional(rawEnd)
	if err != nil {
		return start, nil, err
	}
	if end != nil && end.Before(start) {
		return start, nil, fmt.Errorf("end date %s is before start date %s", dateutil.Format(*end), dateutil.Format(start))
	}
	return start, end, nil
}
