package client

import "time"

// Featured limits match the service.
const (
	featuredProjectLimit = 6
	featuredServiceLimit = 4
)

// Portfolio bundles one facade per entity over a shared Client.
type Portfolio struct {
	Client         *Client
	Projects       *EntityAPI[Project]
	Certifications *EntityAPI[Certification]
	Services       *EntityAPI[Service]
	BlogPosts      *EntityAPI[BlogPost]
	About          *SingletonAPI[About]
	Profile        *SingletonAPI[Profile]
	Auth           *AuthAPI
}

// New creates a Portfolio client for the service at baseURL. sessions may
// be nil, in which case sessions are held in memory only.
func New(baseURL string, sessions SessionStore, opts ...ClientOption) *Portfolio {
	c := NewClient(baseURL, opts...)
	if sessions == nil {
		sessions = NewMemorySessionStore()
	}
	return &Portfolio{
		Client:         c,
		Projects:       NewProjectsAPI(c),
		Certifications: NewCertificationsAPI(c),
		Services:       NewServicesAPI(c),
		BlogPosts:      NewBlogPostsAPI(c),
		About:          NewSingletonAPI(c, "/about", SeedAbout()),
		Profile:        NewSingletonAPI(c, "/profile", SeedProfile()),
		Auth:           NewAuthAPI(c, sessions),
	}
}

// NewProjectsAPI creates the projects facade with the seeded fallback store.
func NewProjectsAPI(c *Client) *EntityAPI[Project] {
	store := NewFallbackStore(SeedProjects(),
		func(p Project) string { return p.ID },
		func(p Project) string { return p.Slug },
		func(p Project) bool { return p.Featured },
	)
	return NewEntityAPI(c, "/projects", store, featuredProjectLimit,
		func(p *Project, id string, now time.Time) {
			p.ID = id
			p.Slug = Slugify(p.Title)
			if p.Status == "" {
				p.Status = "draft"
			}
			p.CreatedAt = now
			p.UpdatedAt = now
		},
		func(dst *Project, src Project, now time.Time) {
			id, createdAt := dst.ID, dst.CreatedAt
			*dst = src
			dst.ID = id
			dst.CreatedAt = createdAt
			dst.Slug = Slugify(dst.Title)
			dst.UpdatedAt = now
		},
	)
}

// NewCertificationsAPI creates the certifications facade with the seeded
// fallback store. Certifications have no featured variant.
func NewCertificationsAPI(c *Client) *EntityAPI[Certification] {
	store := NewFallbackStore(SeedCertifications(),
		func(cert Certification) string { return cert.ID },
		func(cert Certification) string { return cert.Slug },
		nil,
	)
	return NewEntityAPI(c, "/certifications", store, 0,
		func(cert *Certification, id string, now time.Time) {
			cert.ID = id
			cert.Slug = Slugify(cert.Title)
			if cert.Status == "" {
				cert.Status = "valid"
			}
			cert.CreatedAt = now
			cert.UpdatedAt = now
		},
		func(dst *Certification, src Certification, now time.Time) {
			id, createdAt := dst.ID, dst.CreatedAt
			*dst = src
			dst.ID = id
			dst.CreatedAt = createdAt
			dst.Slug = Slugify(dst.Title)
			dst.UpdatedAt = now
		},
	)
}

// NewServicesAPI creates the services facade with the seeded fallback store.
func NewServicesAPI(c *Client) *EntityAPI[Service] {
	store := NewFallbackStore(SeedServices(),
		func(s Service) string { return s.ID },
		func(s Service) string { return s.Slug },
		func(s Service) bool { return s.Featured },
	)
	return NewEntityAPI(c, "/services", store, featuredServiceLimit,
		func(s *Service, id string, now time.Time) {
			s.ID = id
			s.Slug = Slugify(s.Title)
			if s.Status == "" {
				s.Status = "available"
			}
			s.CreatedAt = now
			s.UpdatedAt = now
		},
		func(dst *Service, src Service, now time.Time) {
			id, createdAt := dst.ID, dst.CreatedAt
			*dst = src
			dst.ID = id
			dst.CreatedAt = createdAt
			dst.Slug = Slugify(dst.Title)
			dst.UpdatedAt = now
		},
	)
}

// NewBlogPostsAPI creates the blog facade with the seeded fallback store.
func NewBlogPostsAPI(c *Client) *EntityAPI[BlogPost] {
	store := NewFallbackStore(SeedBlogPosts(),
		func(p BlogPost) string { return p.ID },
		func(p BlogPost) string { return p.Slug },
		nil,
	)
	return NewEntityAPI(c, "/blog-posts", store, 0,
		func(p *BlogPost, id string, now time.Time) {
			p.ID = id
			p.Slug = Slugify(p.Title)
			if p.Published && p.PublishedAt == nil {
				publishedAt := now
				p.PublishedAt = &publishedAt
			}
			p.CreatedAt = now
			p.UpdatedAt = now
		},
		func(dst *BlogPost, src BlogPost, now time.Time) {
			id, createdAt := dst.ID, dst.CreatedAt
			publishedAt := dst.PublishedAt
			views := dst.Views
			*dst = src
			dst.ID = id
			dst.CreatedAt = createdAt
			dst.Views = views
			dst.Slug = Slugify(dst.Title)
			if dst.Published && dst.PublishedAt == nil {
				if publishedAt != nil {
					dst.PublishedAt = publishedAt
				} else {
					stamped := now
					dst.PublishedAt = &stamped
				}
			}
			dst.UpdatedAt = now
		},
	)
}
