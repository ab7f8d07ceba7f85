package converter

import (
	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"

	"github.com/samber/lo"
)

// ContentToResponse converts a Content entity to ContentResponse DTO
func ContentToResponse(c *entity.Content) *dto.ContentResponse {
	if c == nil {
		return nil
	}

	resp := &dto.ContentResponse{
		ID:            c.ID,
		Title:         c.Title,
		Slug:          c.Slug,
		Type:          string(c.Type),
		Status:        string(c.Status),
		Excerpt:       c.Excerpt,
		Body:          c.Body,
		BodyHTML:      c.BodyHTML,
		FeaturedImage: c.FeaturedImage,
		Category:      c.Category,
		Tags:          stringsOrEmpty(c.Tags),
		SEO: dto.SEOResponse{
			MetaTitle:       c.SEO.MetaTitle,
			MetaDescription: c.SEO.MetaDescription,
			Keywords:        c.SEO.Keywords,
			CanonicalURL:    c.SEO.CanonicalURL,
			OGImage:         c.SEO.OGImage,
			NoIndex:         c.SEO.NoIndex,
		},
		ReadingTime:  c.ReadingTime(),
		ViewCount:    c.ViewCount,
		Version:      c.Version,
		SortOrder:    c.SortOrder,
		Author:       UserToSummary(c.Author),
		LastEditedBy: UserToSummary(c.LastEditedBy),
		PublishedAt:  c.PublishedAt,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if c.ServiceDetails != nil {
		sd := dto.ServiceDetailsResponse(*c.ServiceDetails)
		resp.ServiceDetails = &sd
	}
	return resp
}

// ContentsToResponses converts a slice of Content entities to slice of ContentResponse DTOs
func ContentsToResponses(contents []entity.Content) []dto.ContentResponse {
	return lo.Map(contents, func(c entity.Content, _ int) dto.ContentResponse {
		return *ContentToResponse(&c)
	})
}

func ContentToSummary(c entity.Content) dto.ContentSummary {
	return dto.ContentSummary{
		ID:          c.ID,
		Title:       c.Title,
		Slug:        c.Slug,
		Type:        string(c.Type),
		Status:      string(c.Status),
		ViewCount:   c.ViewCount,
		PublishedAt: c.PublishedAt,
	}
}

func ContentVersionsToResponses(versions entity.ContentVersions) []dto.ContentVersionResponse {
	return lo.Map(versions, func(v entity.ContentVersion, _ int) dto.ContentVersionResponse {
		return dto.ContentVersionResponse(v)
	})
}

func LabelCountsToResponses(rows []entity.LabelCount) []dto.LabelCountResponse {
	return lo.Map(rows, func(r entity.LabelCount, _ int) dto.LabelCountResponse {
		return dto.LabelCountResponse{Name: r.Label, Count: r.Total}
	})
}

// ContentStatsToResponse folds the category breakdown into the analytics view.
func ContentStatsToResponse(stats *entity.ContentStats, categories []entity.LabelCount) *dto.ContentAnalyticsResponse {
	if stats == nil {
		return nil
	}
	return &dto.ContentAnalyticsResponse{
		Total:      stats.Total,
		Published:  stats.Published,
		Draft:      stats.Draft,
		Archived:   stats.Archived,
		TotalViews: stats.TotalViews,
		ByType:     stats.ByType,
		TopViewed:  lo.Map(stats.TopViewed, func(c entity.Content, _ int) dto.ContentSummary { return ContentToSummary(c) }),
		Categories: LabelCountsToResponses(categories),
	}
}
