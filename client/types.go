package client

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Project is the wire representation of a portfolio project.
type Project struct {
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

// Certification is the wire representation of a certification.
type Certification struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Slug          string          `json:"slug"`
	Issuer        string          `json:"issuer"`
	Description   string          `json:"description,omitempty"`
	IssueDate     string          `json:"issue_date,omitempty"`
	ExpiryDate    *string         `json:"expiry_date,omitempty"`
	CredentialID  string          `json:"credential_id,omitempty"`
	CredentialURL string          `json:"credential_url,omitempty"`
	Status        string          `json:"status"`
	ExamDomains   json.RawMessage `json:"exam_domains,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Service is the wire representation of a service offering.
type Service struct {
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

// BlogPost is the wire representation of a blog post.
type BlogPost struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Slug          string          `json:"slug"`
	Excerpt       string          `json:"excerpt,omitempty"`
	Content       json.RawMessage `json:"content,omitempty"`
	FeaturedImage string          `json:"featured_image,omitempty"`
	Category      string          `json:"category,omitempty"`
	Published     bool            `json:"published"`
	PublishedAt   *time.Time      `json:"published_at,omitempty"`
	Tags          []string        `json:"tags"`
	Views         int64           `json:"views"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// About is the singleton about-page document.
type About struct {
	PersonalInfo json.RawMessage `json:"personal_info,omitempty"`
	Skills       json.RawMessage `json:"skills,omitempty"`
	Experience   json.RawMessage `json:"experience,omitempty"`
	Education    json.RawMessage `json:"education,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Profile is the singleton contact/bio record.
type Profile struct {
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Bio       string    `json:"bio"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Location  string    `json:"location,omitempty"`
	Website   string    `json:"website,omitempty"`
	Github    string    `json:"github,omitempty"`
	Linkedin  string    `json:"linkedin,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User is the account record returned by the auth endpoints.
type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name,omitempty"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// Session is an authenticated client session. Mock is set when the session
// was minted locally because the backend was unreachable.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         User      `json:"user"`
	Mock         bool      `json:"mock,omitempty"`
}
