package content

import (
	"time"

	"github.com/folio/backend/internal/domain/shared"
)

// BlogPost represents a blog post. Content is an opaque serialized block
// sequence produced by the admin editor; the backend never interprets it.
type BlogPost struct {
	shared.BaseEntity
	Title         string              `gorm:"type:varchar(200);not null"`
	Slug          string              `gorm:"type:varchar(50);not null;index"`
	Excerpt       string              `gorm:"type:text"`
	Content       shared.JSONDocument `gorm:"type:jsonb"`
	FeaturedImage string              `gorm:"type:text"`
	Category      string              `gorm:"type:varchar(100);index"`
	Published     bool                `gorm:"not null;default:false;index"`
	PublishedAt   *time.Time
	Tags          shared.StringList `gorm:"type:jsonb"`
	Views         int64             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (BlogPost) TableName() string {
	return "blog_posts"
}

// NewBlogPost creates a new unpublished blog post with a slug derived from the title
func NewBlogPost(title string) (*BlogPost, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	return &BlogPost{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		Slug:       Slugify(title),
		Tags:       shared.StringList{},
	}, nil
}

// Rename changes the title and re-derives the slug
func (p *BlogPost) Rename(title string) error {
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

// Publish marks the post published, stamping published_at on the first publish
func (p *BlogPost) Publish() {
	if !p.Published {
		p.Published = true
		now := time.Now()
		p.PublishedAt = &now
		p.Touch()
	}
}

// Unpublish takes the post back to draft. published_at is kept so republishing
// preserves the original publication date.
func (p *BlogPost) Unpublish() {
	if p.Published {
		p.Published = false
		p.Touch()
	}
}
