package content

import (
	"github.com/folio/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ServiceStatus values recognized by list filters
type ServiceStatus string

const (
	ServiceStatusAvailable ServiceStatus = "available"
	ServiceStatusLimited   ServiceStatus = "limited"
	ServiceStatusBooked    ServiceStatus = "booked"
	ServiceStatusPaused    ServiceStatus = "paused"
)

// FeaturedServiceLimit caps the number of records served by the featured list
const FeaturedServiceLimit = 4

// Service represents a service offering
type Service struct {
	shared.BaseEntity
	Title           string            `gorm:"type:varchar(200);not null"`
	Slug            string            `gorm:"type:varchar(50);not null;index"`
	Description     string            `gorm:"type:text"`
	LongDescription string            `gorm:"type:text"`
	ImageURL        string            `gorm:"type:text"`
	Category        string            `gorm:"type:varchar(100);index"`
	Status          string            `gorm:"type:varchar(50);not null;default:'available';index"`
	Featured        bool              `gorm:"not null;default:false;index"`
	Features        shared.StringList `gorm:"type:jsonb"`
	Tools           shared.StringList `gorm:"type:jsonb"`
	Duration        string            `gorm:"type:varchar(100)"`
	Availability    string            `gorm:"type:varchar(200)"`
	Price           decimal.Decimal   `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (Service) TableName() string {
	return "services"
}

// NewService creates a new service offering with a slug derived from the title
func NewService(title string) (*Service, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	return &Service{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		Slug:       Slugify(title),
		Status:     string(ServiceStatusAvailable),
		Features:   shared.StringList{},
		Tools:      shared.StringList{},
		Price:      decimal.Zero,
	}, nil
}

// Rename changes the title and re-derives the slug
func (s *Service) Rename(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if title == s.Title {
		return nil
	}
	s.Title = title
	s.Slug = Slugify(title)
	s.Touch()
	return nil
}

// SetPrice sets the service price
func (s *Service) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Price cannot be negative")
	}
	s.Price = price
	s.Touch()
	return nil
}
