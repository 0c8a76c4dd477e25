package content

import (
	"github.com/folio/backend/internal/domain/shared"
)

// ProjectStatus values recognized by list filters. Status is stored as a
// free-form string and is deliberately not validated on write: the deployed
// backends never enforced the literal set and existing rows carry arbitrary
// values.
type ProjectStatus string

const (
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusDraft      ProjectStatus = "draft"
)

// FeaturedProjectLimit caps the number of records served by the featured list
const FeaturedProjectLimit = 6

// Project represents a portfolio project
type Project struct {
	shared.BaseEntity
	Title           string            `gorm:"type:varchar(200);not null"`
	Slug            string            `gorm:"type:varchar(50);not null;index"`
	Description     string            `gorm:"type:text"`
	LongDescription string            `gorm:"type:text"`
	ImageURL        string            `gorm:"type:text"`
	DemoURL         string            `gorm:"type:text"`
	GithubURL       string            `gorm:"type:text"`
	TechStack       shared.StringList `gorm:"type:jsonb"`
	Category        string            `gorm:"type:varchar(100);index"`
	Status          string            `gorm:"type:varchar(50);not null;default:'draft';index"`
	Featured        bool              `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (Project) TableName() string {
	return "projects"
}

// NewProject creates a new project with a slug derived from the title
func NewProject(title string) (*Project, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	return &Project{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		Slug:       Slugify(title),
		Status:     string(ProjectStatusDraft),
		TechStack:  shared.StringList{},
	}, nil
}

// Rename changes the title and re-derives the slug
func (p *Project) Rename(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if title == p.Title {
		return nil
	}
	p.Title = title
	p.Slug = Slugify(title)
	p.Touch()
	return nil
}

// validateTitle guards the single field every entity form requires
func validateTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_INPUT", "Title is required")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "Title cannot exceed 200 characters")
	}
	return nil
}
