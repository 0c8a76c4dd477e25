package profile

import (
	"time"

	"github.com/folio/backend/internal/domain/profile"
	"github.com/folio/backend/internal/domain/shared"
)

// UpdateAboutRequest carries the about-page sub-documents. Nil documents are
// left unchanged so the admin form can submit sections independently.
type UpdateAboutRequest struct {
	PersonalInfo shared.JSONDocument `json:"personal_info"`
	Skills       shared.JSONDocument `json:"skills"`
	Experience   shared.JSONDocument `json:"experience"`
	Education    shared.JSONDocument `json:"education"`
}

// AboutResponse is the wire representation of the about document
type AboutResponse struct {
	PersonalInfo shared.JSONDocument `json:"personal_info,omitempty"`
	Skills       shared.JSONDocument `json:"skills,omitempty"`
	Experience   shared.JSONDocument `json:"experience,omitempty"`
	Education    shared.JSONDocument `json:"education,omitempty"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// ToAboutResponse maps the about singleton to its wire representation
func ToAboutResponse(a *profile.About) *AboutResponse {
	return &AboutResponse{
		PersonalInfo: a.PersonalInfo,
		Skills:       a.Skills,
		Experience:   a.Experience,
		Education:    a.Education,
		UpdatedAt:    a.UpdatedAt,
	}
}

// UpdateProfileRequest carries the flat profile fields. Nil fields are left
// unchanged.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Title    *string `json:"title"`
	Bio      *string `json:"bio"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
	Website  *string `json:"website"`
	Github   *string `json:"github"`
	Linkedin *string `json:"linkedin"`
	Avatar   *string `json:"avatar"`
}

// ProfileResponse is the wire representation of the profile record
type ProfileResponse struct {
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

// ToProfileResponse maps the profile singleton to its wire representation
func ToProfileResponse(p *profile.Profile) *ProfileResponse {
	return &ProfileResponse{
		Name:      p.Name,
		Title:     p.Title,
		Bio:       p.Bio,
		Email:     p.Email,
		Phone:     p.Phone,
		Location:  p.Location,
		Website:   p.Website,
		Github:    p.Github,
		Linkedin:  p.Linkedin,
		Avatar:    p.Avatar,
		UpdatedAt: p.UpdatedAt,
	}
}
