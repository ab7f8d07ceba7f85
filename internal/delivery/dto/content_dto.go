package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SEORequest struct {
	MetaTitle       string   `json:"meta_title" validate:"omitempty,max=60"`
	MetaDescription string   `json:"meta_description" validate:"omitempty,max=160"`
	Keywords        []string `json:"keywords" validate:"omitempty,max=20,dive,max=50"`
	CanonicalURL    string   `json:"canonical_url" validate:"omitempty,url"`
	OGImage         string   `json:"og_image" validate:"omitempty,max=500"`
	NoIndex         bool     `json:"no_index"`
}

type ServiceDetailsRequest struct {
	Modalities     []string `json:"modalities" validate:"omitempty,dive,max=50"`
	TurnaroundTime string   `json:"turnaround_time" validate:"omitempty,max=100"`
	Features       []string `json:"features" validate:"omitempty,dive,max=200"`
	PricingNote    string   `json:"pricing_note" validate:"omitempty,max=500"`
}

type CreateContentRequest struct {
	Title          string                 `json:"title" validate:"required,notblank,max=200"`
	Slug           string                 `json:"slug" validate:"omitempty,max=100,slug"`
	Type           string                 `json:"type" validate:"required,oneof=page blog service case_study news faq testimonial"`
	Status         string                 `json:"status" validate:"omitempty,oneof=draft published archived"`
	Excerpt        string                 `json:"excerpt" validate:"omitempty,max=500"`
	Body           string                 `json:"body"`
	FeaturedImage  string                 `json:"featured_image" validate:"omitempty,max=500"`
	Category       string                 `json:"category" validate:"omitempty,max=100"`
	Tags           []string               `json:"tags" validate:"omitempty,max=20,dive,notblank,max=50"`
	SEO            *SEORequest            `json:"seo"`
	ServiceDetails *ServiceDetailsRequest `json:"service_details"`
	SortOrder      int                    `json:"sort_order"`
}

type UpdateContentRequest struct {
	Title          *string                `json:"title" validate:"omitempty,notblank,max=200"`
	Slug           *string                `json:"slug" validate:"omitempty,max=100,slug"`
	Type           *string                `json:"type" validate:"omitempty,oneof=page blog service case_study news faq testimonial"`
	Status         *string                `json:"status" validate:"omitempty,oneof=draft published archived"`
	Excerpt        *string                `json:"excerpt" validate:"omitempty,max=500"`
	Body           *string                `json:"body"`
	FeaturedImage  *string                `json:"featured_image" validate:"omitempty,max=500"`
	Category       *string                `json:"category" validate:"omitempty,max=100"`
	Tags           []string               `json:"tags" validate:"omitempty,max=20,dive,notblank,max=50"`
	SEO            *SEORequest            `json:"seo"`
	ServiceDetails *ServiceDetailsRequest `json:"service_details"`
	SortOrder      *int                   `json:"sort_order"`
}

// Response DTOs

type SEOResponse struct {
	MetaTitle       string   `json:"meta_title,omitempty"`
	MetaDescription string   `json:"meta_description,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
	CanonicalURL    string   `json:"canonical_url,omitempty"`
	OGImage         string   `json:"og_image,omitempty"`
	NoIndex         bool     `json:"no_index,omitempty"`
}

type ServiceDetailsResponse struct {
	Modalities     []string `json:"modalities,omitempty"`
	TurnaroundTime string   `json:"turnaround_time,omitempty"`
	Features       []string `json:"features,omitempty"`
	PricingNote    string   `json:"pricing_note,omitempty"`
}

type ContentResponse struct {
	ID             uuid.UUID               `json:"id"`
	Title          string                  `json:"title"`
	Slug           string                  `json:"slug"`
	Type           string                  `json:"type"`
	Status         string                  `json:"status"`
	Excerpt        string                  `json:"excerpt"`
	Body           string                  `json:"body,omitempty"`
	BodyHTML       string                  `json:"body_html,omitempty"`
	FeaturedImage  string                  `json:"featured_image,omitempty"`
	Category       string                  `json:"category,omitempty"`
	Tags           []string                `json:"tags"`
	SEO            SEOResponse             `json:"seo"`
	ServiceDetails *ServiceDetailsResponse `json:"service_details,omitempty"`
	ReadingTime    int                     `json:"reading_time"`
	ViewCount      int64                   `json:"view_count"`
	Version        int                     `json:"version"`
	SortOrder      int                     `json:"sort_order"`
	Author         *UserSummary            `json:"author,omitempty"`
	LastEditedBy   *UserSummary            `json:"last_edited_by,omitempty"`
	PublishedAt    *time.Time              `json:"published_at,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

type ContentVersionResponse struct {
	Version  int        `json:"version"`
	Title    string     `json:"title"`
	Excerpt  string     `json:"excerpt,omitempty"`
	Body     string     `json:"body"`
	EditedBy *uuid.UUID `json:"edited_by,omitempty"`
	EditedAt time.Time  `json:"edited_at"`
}

type LabelCountResponse struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type ContentAnalyticsResponse struct {
	Total      int64                `json:"total"`
	Published  int64                `json:"published"`
	Draft      int64                `json:"draft"`
	Archived   int64                `json:"archived"`
	TotalViews int64                `json:"total_views"`
	ByType     map[string]int64     `json:"by_type"`
	TopViewed  []ContentSummary     `json:"top_viewed"`
	Categories []LabelCountResponse `json:"categories"`
}

// ContentSummary is the list form without the body.
type ContentSummary struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	ViewCount   int64      `json:"view_count"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}
