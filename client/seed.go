package client

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Seeded demo datasets served when the remote call fails. Record shapes
// match the service responses; ids are stable so tests and local tooling
// can reference them.

var seedTime = time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)

// SeedProjects returns the demo project dataset.
func SeedProjects() []Project {
	return []Project{
		{
			ID:          "6f1ff50a-62ab-4f39-9046-9f8a8b53cd01",
			Title:       "Distributed Task Queue",
			Slug:        "distributed-task-queue",
			Description: "Redis-backed task queue with worker pools and at-least-once delivery.",
			TechStack:   []string{"Go", "Redis", "PostgreSQL"},
			Category:    "backend",
			Status:      "completed",
			Featured:    true,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          "6f1ff50a-62ab-4f39-9046-9f8a8b53cd02",
			Title:       "Portfolio Website",
			Slug:        "portfolio-website",
			Description: "This site. React front end over a Go content service.",
			TechStack:   []string{"React", "TypeScript", "Go"},
			Category:    "fullstack",
			Status:      "in-progress",
			Featured:    true,
			CreatedAt:   seedTime.Add(24 * time.Hour),
			UpdatedAt:   seedTime.Add(24 * time.Hour),
		},
		{
			ID:          "6f1ff50a-62ab-4f39-9046-9f8a8b53cd03",
			Title:       "Log Shipper",
			Slug:        "log-shipper",
			Description: "Tails files and ships structured events to OTLP collectors.",
			TechStack:   []string{"Go", "OpenTelemetry"},
			Category:    "tooling",
			Status:      "completed",
			Featured:    false,
			CreatedAt:   seedTime.Add(48 * time.Hour),
			UpdatedAt:   seedTime.Add(48 * time.Hour),
		},
	}
}

// SeedCertifications returns the demo certification dataset.
func SeedCertifications() []Certification {
	return []Certification{
		{
			ID:           "8a2cc61b-73bc-4a4a-a157-0f9b9c64de01",
			Title:        "AWS Certified Solutions Architect",
			Slug:         "aws-certified-solutions-architect",
			Issuer:       "Amazon Web Services",
			IssueDate:    "2024-03",
			CredentialID: "AWS-SAA-000001",
			Status:       "valid",
			ExamDomains:  json.RawMessage(`[{"name":"Design Resilient Architectures","weight":30}]`),
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		},
		{
			ID:        "8a2cc61b-73bc-4a4a-a157-0f9b9c64de02",
			Title:     "CKA Certified Kubernetes Administrator",
			Slug:      "cka-certified-kubernetes-administrator",
			Issuer:    "Cloud Native Computing Foundation",
			IssueDate: "2023-11",
			Status:    "valid",
			CreatedAt: seedTime.Add(24 * time.Hour),
			UpdatedAt: seedTime.Add(24 * time.Hour),
		},
	}
}

// SeedServices returns the demo service dataset.
func SeedServices() []Service {
	return []Service{
		{
			ID:          "9b3dd72c-84cd-4b5b-b268-1facad75ef01",
			Title:       "Backend Development",
			Slug:        "backend-development",
			Description: "APIs, data models and integrations in Go.",
			Features:    []string{"REST APIs", "Database design", "Deployment"},
			Tools:       []string{"Go", "PostgreSQL", "Docker"},
			Duration:    "2-8 weeks",
			Price:       decimal.NewFromInt(4500),
			Status:      "available",
			Featured:    true,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          "9b3dd72c-84cd-4b5b-b268-1facad75ef02",
			Title:       "Code Review",
			Slug:        "code-review",
			Description: "Architecture and code quality review for existing services.",
			Features:    []string{"Written report", "Pairing session"},
			Tools:       []string{"Go", "TypeScript"},
			Duration:    "1 week",
			Price:       decimal.NewFromInt(1200),
			Status:      "limited",
			Featured:    false,
			CreatedAt:   seedTime.Add(24 * time.Hour),
			UpdatedAt:   seedTime.Add(24 * time.Hour),
		},
	}
}

// SeedBlogPosts returns the demo blog dataset.
func SeedBlogPosts() []BlogPost {
	publishedAt := seedTime.Add(2 * time.Hour)
	return []BlogPost{
		{
			ID:          "ac4ee83d-95de-4c6c-c379-20bdbe86f001",
			Title:       "Graceful Shutdown in Go Services",
			Slug:        "graceful-shutdown-in-go-services",
			Excerpt:     "Draining in-flight requests without dropping work.",
			Content:     json.RawMessage(`[{"type":"paragraph","text":"Signal handling and http.Server.Shutdown."}]`),
			Category:    "engineering",
			Published:   true,
			PublishedAt: &publishedAt,
			Tags:        []string{"go", "operations"},
			Views:       128,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:        "ac4ee83d-95de-4c6c-c379-20bdbe86f002",
			Title:     "Notes on Table-Driven Tests",
			Slug:      "notes-on-table-driven-tests",
			Excerpt:   "Why the pattern sticks.",
			Content:   json.RawMessage(`[{"type":"paragraph","text":"One loop, many cases."}]`),
			Category:  "engineering",
			Published: false,
			Tags:      []string{"go", "testing"},
			CreatedAt: seedTime.Add(24 * time.Hour),
			UpdatedAt: seedTime.Add(24 * time.Hour),
		},
	}
}

// SeedAbout returns the demo about document.
func SeedAbout() About {
	return About{
		PersonalInfo: json.RawMessage(`{"name":"Demo Author","title":"Software Engineer","bio":"Placeholder shown while the service is unreachable."}`),
		Skills:       json.RawMessage(`[{"name":"Go","level":90,"category":"backend"},{"name":"React","level":75,"category":"frontend"}]`),
		Experience:   json.RawMessage(`[{"id":"exp-1","company":"Example Corp","position":"Engineer","duration":"2021-present","current":true}]`),
		Education:    json.RawMessage(`[{"id":"edu-1","school":"Example University","degree":"BSc Computer Science","duration":"2017-2021"}]`),
		UpdatedAt:    seedTime,
	}
}

// SeedProfile returns the demo profile document.
func SeedProfile() Profile {
	return Profile{
		Name:      "Demo Author",
		Title:     "Software Engineer",
		Bio:       "Placeholder shown while the service is unreachable.",
		Email:     "hello@example.com",
		Location:  "Remote",
		UpdatedAt: seedTime,
	}
}
