// Package profile holds the two singleton records every deployment carries:
// the structured about-page document and the legacy flat profile. They are
// distinct on purpose; older frontend variants read the flat profile while
// newer ones read the about document.
package profile

import (
	"context"

	"github.com/folio/backend/internal/domain/shared"
)

// About is the singleton about-page document. The nested collections
// (skills, experience, education) are edited as whole sub-documents by the
// admin form and stored opaquely.
type About struct {
	shared.BaseEntity
	PersonalInfo shared.JSONDocument `gorm:"type:jsonb"`
	Skills       shared.JSONDocument `gorm:"type:jsonb"`
	Experience   shared.JSONDocument `gorm:"type:jsonb"`
	Education    shared.JSONDocument `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (About) TableName() string {
	return "about"
}

// Skill is the shape of one entry in the Skills document
type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

// ExperienceEntry is the shape of one entry in the Experience and Education documents
type ExperienceEntry struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Current      bool     `json:"current"`
}

// Profile is the legacy singleton contact/bio record
type Profile struct {
	shared.BaseEntity
	Name     string `gorm:"type:varchar(200)"`
	Title    string `gorm:"type:varchar(200)"`
	Bio      string `gorm:"type:text"`
	Email    string `gorm:"type:varchar(200)"`
	Phone    string `gorm:"type:varchar(50)"`
	Location string `gorm:"type:varchar(200)"`
	Website  string `gorm:"type:text"`
	Github   string `gorm:"type:text"`
	Linkedin string `gorm:"type:text"`
	Avatar   string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Profile) TableName() string {
	return "profiles"
}

// AboutRepository persists the about singleton. Get returns ErrNotFound when
// the deployment has never saved one; Save upserts.
type AboutRepository interface {
	Get(ctx context.Context) (*About, error)
	Save(ctx context.Context, about *About) error
}

// ProfileRepository persists the profile singleton with the same contract
type ProfileRepository interface {
	Get(ctx context.Context) (*Profile, error)
	Save(ctx context.Context, profile *Profile) error
}
