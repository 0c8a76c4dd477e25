package content

import (
	"time"

	"github.com/folio/backend/internal/domain/shared"
)

// CertificationStatus values recognized by list filters
type CertificationStatus string

const (
	CertificationStatusValid   CertificationStatus = "valid"
	CertificationStatusExpired CertificationStatus = "expired"
)

// Certification represents a professional certification
type Certification struct {
	shared.BaseEntity
	Title         string              `gorm:"type:varchar(200);not null"`
	Slug          string              `gorm:"type:varchar(50);not null;index"`
	Issuer        string              `gorm:"type:varchar(200)"`
	Description   string              `gorm:"type:text"`
	IssueDate     string              `gorm:"type:varchar(50)"`
	ExpiryDate    *string             `gorm:"type:varchar(50)"`
	CredentialID  string              `gorm:"type:varchar(200)"`
	CredentialURL string              `gorm:"type:text"`
	Status        string              `gorm:"type:varchar(50);not null;default:'valid';index"`
	ExamDomains   shared.JSONDocument `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (Certification) TableName() string {
	return "certifications"
}

// NewCertification creates a new certification with a slug derived from the title
func NewCertification(title, issuer string) (*Certification, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	return &Certification{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		Slug:       Slugify(title),
		Issuer:     issuer,
		Status:     string(CertificationStatusValid),
	}, nil
}

// Rename changes the title and re-derives the slug
func (c *Certification) Rename(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if title == c.Title {
		return nil
	}
	c.Title = title
	c.Slug = Slugify(title)
	c.Touch()
	return nil
}

// IsExpired reports whether the expiry date, when set and parseable, has passed.
// Dates are stored as strings because the admin forms submit them verbatim.
func (c *Certification) IsExpired(now time.Time) bool {
	if c.ExpiryDate == nil || *c.ExpiryDate == "" {
		return false
	}
	expiry, err := time.Parse("2006-01-02", *c.ExpiryDate)
	if err != nil {
		return false
	}
	return expiry.Before(now)
}
