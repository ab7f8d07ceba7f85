package entity

import (
	"database/sql/driver"
	"math"
	"strings"
	"time"

	"teleradiology-api/pkg/slug"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type ContentType string

const (
	ContentTypePage        ContentType = "page"
	ContentTypeBlog        ContentType = "blog"
	ContentTypeService     ContentType = "service"
	ContentTypeCaseStudy   ContentType = "case_study"
	ContentTypeNews        ContentType = "news"
	ContentTypeFAQ         ContentType = "faq"
	ContentTypeTestimonial ContentType = "testimonial"
)

type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
	ContentStatusArchived  ContentStatus = "archived"
)

const (
	MaxContentVersions   = 10
	MetaTitleLength      = 60
	MetaDescriptionLimit = 160
	ExcerptLength        = 200
	WordsPerMinute       = 200
)

var ContentTypes = []ContentType{
	ContentTypePage, ContentTypeBlog, ContentTypeService, ContentTypeCaseStudy,
	ContentTypeNews, ContentTypeFAQ, ContentTypeTestimonial,
}

func (t ContentType) IsValid() bool {
	return lo.Contains(ContentTypes, t)
}

// Content is a CMS entry: pages, posts, service descriptions and the like.
type Content struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title            string          `gorm:"type:varchar(200);not null" json:"title"`
	Slug             string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	Type             ContentType     `gorm:"type:varchar(30);not null;index" json:"type"`
	Status           ContentStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	Excerpt          string          `gorm:"type:text" json:"excerpt"`
	Body             string          `gorm:"type:text" json:"body"`
	BodyHTML         string          `gorm:"type:text" json:"body_html"`
	FeaturedImage    string          `gorm:"type:text" json:"featured_image,omitempty"`
	Category         string          `gorm:"type:varchar(100);index" json:"category,omitempty"`
	Tags             StringList      `gorm:"type:jsonb" json:"tags"`
	SEO              SEO             `gorm:"column:seo;type:jsonb" json:"seo"`
	ServiceDetails   *ServiceDetails `gorm:"type:jsonb" json:"service_details,omitempty"`
	AuthorID         *uuid.UUID      `gorm:"type:uuid;index" json:"author_id,omitempty"`
	LastEditedByID   *uuid.UUID      `gorm:"type:uuid" json:"last_edited_by_id,omitempty"`
	ViewCount        int64           `gorm:"not null;default:0" json:"view_count"`
	Version          int             `gorm:"not null;default:1" json:"version"`
	PreviousVersions ContentVersions `gorm:"type:jsonb" json:"previous_versions,omitempty"`
	PublishedAt      *time.Time      `gorm:"index" json:"published_at,omitempty"`
	SortOrder        int             `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Author       *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	LastEditedBy *User `gorm:"foreignKey:LastEditedByID" json:"last_edited_by,omitempty"`
}

func (Content) TableName() string {
	return "contents"
}

func (c *Content) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

func (c *Content) BeforeSave(tx *gorm.DB) error {
	c.Prepare(time.Now())
	return nil
}

// Prepare fills every derived field: slug, rendered body, excerpt, SEO
// defaults and the first publish timestamp.
func (c *Content) Prepare(now time.Time) {
	ensureID(&c.ID)
	c.Title = strings.TrimSpace(c.Title)
	if c.Status == "" {
		c.Status = ContentStatusDraft
	}
	if c.Version < 1 {
		c.Version = 1
	}

	if c.Slug == "" {
		c.Slug = slug.Make(c.Title)
	} else {
		c.Slug = slug.Make(c.Slug)
	}
	if c.Slug == "" {
		c.Slug = "content-" + c.ID.String()[:8]
	}

	html, plain := renderMarkdown(c.Body)
	c.BodyHTML = html
	if strings.TrimSpace(c.Excerpt) == "" {
		c.Excerpt = truncateRunes(plain, ExcerptLength)
	}

	if c.SEO.MetaTitle == "" {
		c.SEO.MetaTitle = truncateRunes(c.Title, MetaTitleLength)
	}
	if c.SEO.MetaDescription == "" {
		desc := c.Excerpt
		if desc == "" {
			desc = plain
		}
		c.SEO.MetaDescription = truncateRunes(desc, MetaDescriptionLimit)
	}

	if c.Status == ContentStatusPublished && c.PublishedAt == nil {
		c.PublishedAt = &now
	}
}

// ReadingTime estimates minutes to read the body, never less than one.
func (c *Content) ReadingTime() int {
	words := len(strings.Fields(PlainText(c.Body)))
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

func (c *Content) IsPublished() bool {
	return c.Status == ContentStatusPublished
}

// Publish keeps the original PublishedAt when the entry is republished.
func (c *Content) Publish(now time.Time) {
	c.Status = ContentStatusPublished
	if c.PublishedAt == nil {
		c.PublishedAt = &now
	}
}

func (c *Content) Unpublish() {
	c.Status = ContentStatusDraft
}

func (c *Content) Archive() {
	c.Status = ContentStatusArchived
}

// SnapshotVersion pushes the current title and body onto the history and bumps
// the version. Only the newest MaxContentVersions snapshots are kept.
func (c *Content) SnapshotVersion(editor *uuid.UUID, now time.Time) {
	c.PreviousVersions = append(c.PreviousVersions, ContentVersion{
		Version:  c.Version,
		Title:    c.Title,
		Excerpt:  c.Excerpt,
		Body:     c.Body,
		EditedBy: editor,
		EditedAt: now,
	})
	if n := len(c.PreviousVersions); n > MaxContentVersions {
		c.PreviousVersions = append(ContentVersions(nil), c.PreviousVersions[n-MaxContentVersions:]...)
	}
	c.Version++
	c.LastEditedByID = editor
}

// FindVersion returns the stored snapshot with the given number.
func (c *Content) FindVersion(version int) (ContentVersion, bool) {
	return lo.Find(c.PreviousVersions, func(v ContentVersion) bool {
		return v.Version == version
	})
}

// SEO carries search and social metadata.
type SEO struct {
	MetaTitle       string   `json:"meta_title,omitempty"`
	MetaDescription string   `json:"meta_description,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
	CanonicalURL    string   `json:"canonical_url,omitempty"`
	OGImage         string   `json:"og_image,omitempty"`
	NoIndex         bool     `json:"no_index,omitempty"`
}

func (s SEO) Value() (driver.Value, error) {
	return marshalJSON(s)
}

func (s *SEO) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// ServiceDetails is only meaningful for service pages.
type ServiceDetails struct {
	Modalities     []string `json:"modalities,omitempty"`
	TurnaroundTime string   `json:"turnaround_time,omitempty"`
	Features       []string `json:"features,omitempty"`
	PricingNote    string   `json:"pricing_note,omitempty"`
}

func (s ServiceDetails) Value() (driver.Value, error) {
	return marshalJSON(s)
}

func (s *ServiceDetails) Scan(value interface{}) error {
	return scanJSON(value, s)
}

type ContentVersion struct {
	Version  int        `json:"version"`
	Title    string     `json:"title"`
	Excerpt  string     `json:"excerpt,omitempty"`
	Body     string     `json:"body"`
	EditedBy *uuid.UUID `json:"edited_by,omitempty"`
	EditedAt time.Time  `json:"edited_at"`
}

type ContentVersions []ContentVersion

func (v ContentVersions) Value() (driver.Value, error) {
	if v == nil {
		return "[]", nil
	}
	return marshalJSON([]ContentVersion(v))
}

func (v *ContentVersions) Scan(value interface{}) error {
	var out []ContentVersion
	if err := scanJSON(value, &out); err != nil {
		return err
	}
	*v = out
	return nil
}

// ContentFilter narrows content listings.
type ContentFilter struct {
	Type      ContentType
	Status    ContentStatus
	Category  string
	Tag       string
	AuthorID  *uuid.UUID
	Search    string
	Published bool
}
