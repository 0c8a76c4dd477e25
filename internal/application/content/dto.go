package content

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/folio/backend/internal/domain/content"
	"github.com/folio/backend/internal/domain/shared"
)

// CreateProjectRequest is the input for creating a project
type CreateProjectRequest struct {
	Title           string   `json:"title" binding:"required,max=200"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description"`
	ImageURL        string   `json:"image_url"`
	DemoURL         string   `json:"demo_url"`
	GithubURL       string   `json:"github_url"`
	TechStack       []string `json:"tech_stack"`
	Category        string   `json:"category"`
	Status          string   `json:"status"`
	Featured        bool     `json:"featured"`
}

// UpdateProjectRequest is the input for updating a project. Nil fields are
// left unchanged.
type UpdateProjectRequest struct {
	Title           *string   `json:"title" binding:"omitempty,max=200"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"long_description"`
	ImageURL        *string   `json:"image_url"`
	DemoURL         *string   `json:"demo_url"`
	GithubURL       *string   `json:"github_url"`
	TechStack       *[]string `json:"tech_stack"`
	Category        *string   `json:"category"`
	Status          *string   `json:"status"`
	Featured        *bool     `json:"featured"`
}

// ProjectResponse is the wire representation of a project
type ProjectResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	LongDescription string    `json:"long_description,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	DemoURL         string    `json:"demo_url,omitempty"`
	GithubURL       string    `json:"github_url,omitempty"`
	TechStack       []string  `json:"tech_stack"`
	Category        string    `json:"category,omitempty"`
	Status          string    `json:"status"`
	Featured        bool      `json:"featured"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToProjectResponse maps a domain project to its wire representation
func ToProjectResponse(p *content.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:              p.ID.String(),
		Title:           p.Title,
		Slug:            p.Slug,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		ImageURL:        p.ImageURL,
		DemoURL:         p.DemoURL,
		GithubURL:       p.GithubURL,
		TechStack:       p.TechStack,
		Category:        p.Category,
		Status:          p.Status,
		Featured:        p.Featured,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// CreateCertificationRequest is the input for creating a certification
type CreateCertificationRequest struct {
	Title         string              `json:"title" binding:"required,max=200"`
	Issuer        string              `json:"issuer" binding:"required"`
	Description   string              `json:"description"`
	IssueDate     string              `json:"issue_date"`
	ExpiryDate    *string             `json:"expiry_date"`
	CredentialID  string              `json:"credential_id"`
	CredentialURL string              `json:"credential_url"`
	Status        string              `json:"status"`
	ExamDomains   shared.JSONDocument `json:"exam_domains"`
}

// UpdateCertificationRequest is the input for updating a certification
type UpdateCertificationRequest struct {
	Title         *string             `json:"title" binding:"omitempty,max=200"`
	Issuer        *string             `json:"issuer"`
	Description   *string             `json:"description"`
	IssueDate     *string             `json:"issue_date"`
	ExpiryDate    *string             `json:"expiry_date"`
	CredentialID  *string             `json:"credential_id"`
	CredentialURL *string             `json:"credential_url"`
	Status        *string             `json:"status"`
	ExamDomains   shared.JSONDocument `json:"exam_domains"`
}

// CertificationResponse is the wire representation of a certification
type CertificationResponse struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Slug          string              `json:"slug"`
	Issuer        string              `json:"issuer"`
	Description   string              `json:"description,omitempty"`
	IssueDate     string              `json:"issue_date,omitempty"`
	ExpiryDate    *string             `json:"expiry_date,omitempty"`
	CredentialID  string              `json:"credential_id,omitempty"`
	CredentialURL string              `json:"credential_url,omitempty"`
	Status        string              `json:"status"`
	ExamDomains   shared.JSONDocument `json:"exam_domains,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// ToCertificationResponse maps a domain certification to its wire representation
func ToCertificationResponse(c *content.Certification) *CertificationResponse {
	return &CertificationResponse{
		ID:            c.ID.String(),
		Title:         c.Title,
		Slug:          c.Slug,
		Issuer:        c.Issuer,
		Description:   c.Description,
		IssueDate:     c.IssueDate,
		ExpiryDate:    c.ExpiryDate,
		CredentialID:  c.CredentialID,
		CredentialURL: c.CredentialURL,
		Status:        c.Status,
		ExamDomains:   c.ExamDomains,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// CreateServiceRequest is the input for creating a service offering
type CreateServiceRequest struct {
	Title           string   `json:"title" binding:"required,max=200"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description"`
	ImageURL        string   `json:"image_url"`
	Category        string   `json:"category"`
	Features        []string `json:"features"`
	Tools           []string `json:"tools"`
	Duration        string   `json:"duration"`
	Availability    string   `json:"availability"`
	Price           string   `json:"price"`
	Status          string   `json:"status"`
	Featured        bool     `json:"featured"`
}

// UpdateServiceRequest is the input for updating a service offering
type UpdateServiceRequest struct {
	Title           *string   `json:"title" binding:"omitempty,max=200"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"long_description"`
	ImageURL        *string   `json:"image_url"`
	Category        *string   `json:"category"`
	Features        *[]string `json:"features"`
	Tools           *[]string `json:"tools"`
	Duration        *string   `json:"duration"`
	Availability    *string   `json:"availability"`
	Price           *string   `json:"price"`
	Status          *string   `json:"status"`
	Featured        *bool     `json:"featured"`
}

// ServiceResponse is the wire representation of a service offering
type ServiceResponse struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	Description     string          `json:"description,omitempty"`
	LongDescription string          `json:"long_description,omitempty"`
	ImageURL        string          `json:"image_url,omitempty"`
	Category        string          `json:"category,omitempty"`
	Features        []string        `json:"features"`
	Tools           []string        `json:"tools"`
	Duration        string          `json:"duration,omitempty"`
	Availability    string          `json:"availability,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Status          string          `json:"status"`
	Featured        bool            `json:"featured"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToServiceResponse maps a domain service to its wire representation
func ToServiceResponse(s *content.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID.String(),
		Title:           s.Title,
		Slug:            s.Slug,
		Description:     s.Description,
		LongDescription: s.LongDescription,
		ImageURL:        s.ImageURL,
		Category:        s.Category,
		Features:        s.Features,
		Tools:           s.Tools,
		Duration:        s.Duration,
		Availability:    s.Availability,
		Price:           s.Price,
		Status:          s.Status,
		Featured:        s.Featured,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// CreateBlogPostRequest is the input for creating a blog post
type CreateBlogPostRequest struct {
	Title         string              `json:"title" binding:"required,max=200"`
	Excerpt       string              `json:"excerpt"`
	Content       shared.JSONDocument `json:"content"`
	FeaturedImage string              `json:"featured_image"`
	Category      string              `json:"category"`
	Published     bool                `json:"published"`
	Tags          []string            `json:"tags"`
}

// UpdateBlogPostRequest is the input for updating a blog post
type UpdateBlogPostRequest struct {
	Title         *string             `json:"title" binding:"omitempty,max=200"`
	Excerpt       *string             `json:"excerpt"`
	Content       shared.JSONDocument `json:"content"`
	FeaturedImage *string             `json:"featured_image"`
	Category      *string             `json:"category"`
	Published     *bool               `json:"published"`
	Tags          *[]string           `json:"tags"`
}

// BlogPostResponse is the wire representation of a blog post
type BlogPostResponse struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Slug          string              `json:"slug"`
	Excerpt       string              `json:"excerpt,omitempty"`
	Content       shared.JSONDocument `json:"content,omitempty"`
	FeaturedImage string              `json:"featured_image,omitempty"`
	Category      string              `json:"category,omitempty"`
	Published     bool                `json:"published"`
	PublishedAt   *time.Time          `json:"published_at,omitempty"`
	Tags          []string            `json:"tags"`
	Views         int64               `json:"views"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// ToBlogPostResponse maps a domain blog post to its wire representation
func ToBlogPostResponse(p *content.BlogPost) *BlogPostResponse {
	return &BlogPostResponse{
		ID:            p.ID.String(),
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		FeaturedImage: p.FeaturedImage,
		Category:      p.Category,
		Published:     p.Published,
		PublishedAt:   p.PublishedAt,
		Tags:          p.Tags,
		Views:         p.Views,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ListFilter holds the list query parameters shared by all content types
type ListFilter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}

// toDomainFilter converts a ListFilter to the shared repository filter
func (f ListFilter) toDomainFilter() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.OrderBy != "" {
		filter.OrderBy = f.OrderBy
	}
	if f.OrderDir != "" {
		filter.OrderDir = f.OrderDir
	}
	filter.Search = f.Search
	for k, v := range f.Filters {
		filter.Filters[k] = v
	}
	return filter
}
