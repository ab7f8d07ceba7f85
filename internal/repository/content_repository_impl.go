package repository

import (
	"strings"

	"teleradiology-api/internal/domain/entity"
	domainRepo "teleradiology-api/internal/domain/repository"
	"teleradiology-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const topViewedLimit = 5

type contentRepository struct{}

func NewContentRepository() domainRepo.ContentRepository {
	return &contentRepository{}
}

func (r *contentRepository) Create(db *gorm.DB, content *entity.Content) error {
	return db.Create(content).Error
}

func (r *contentRepository) Update(db *gorm.DB, content *entity.Content) error {
	return saveOmitAssociations(db, content)
}

func (r *contentRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Content{}).Error
}

func (r *contentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Content, error) {
	return first[entity.Content](db.Preload("Author").Preload("LastEditedBy").Where("id = ?", id))
}

func (r *contentRepository) FindBySlug(db *gorm.DB, slug string, publishedOnly bool) (*entity.Content, error) {
	q := db.Preload("Author").Where("slug = ?", slug)
	if publishedOnly {
		q = q.Where("status = ?", entity.ContentStatusPublished)
	}
	return first[entity.Content](q)
}

func (r *contentRepository) FindAll(db *gorm.DB, filter entity.ContentFilter, page pagination.Params) ([]entity.Content, int64, error) {
	q := db.Model(&entity.Content{})
	if filter.Published {
		q = q.Where("status = ?", entity.ContentStatusPublished)
	} else if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		q = q.Where("LOWER(category) = LOWER(?)", filter.Category)
	}
	if filter.Tag != "" {
		// tags is a JSON array of strings; match the quoted element
		q = q.Where("LOWER(CAST(tags AS TEXT)) LIKE ?", `%"`+strings.ToLower(filter.Tag)+`"%`)
	}
	if filter.AuthorID != nil {
		q = q.Where("author_id = ?", *filter.AuthorID)
	}
	q = applySearch(q, filter.Search, "title", "excerpt", "category")

	var contents []entity.Content
	total, err := pagination.Paginate(q, page, &contents, "Author")
	if err != nil {
		return nil, 0, err
	}
	return contents, total, nil
}

func (r *contentRepository) FindServices(db *gorm.DB) ([]entity.Content, error) {
	var services []entity.Content
	err := db.Where("type = ? AND status = ?", entity.ContentTypeService, entity.ContentStatusPublished).
		Order("sort_order ASC").
		Order("title ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *contentRepository) SlugExists(db *gorm.DB, slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	q := db.Model(&entity.Content{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// IncrementViews bumps the counter in SQL so concurrent readers do not lose
// updates.
func (r *contentRepository) IncrementViews(db *gorm.DB, id uuid.UUID) error {
	return db.Model(&entity.Content{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

func (r *contentRepository) Categories(db *gorm.DB) ([]entity.LabelCount, error) {
	var rows []entity.LabelCount
	err := db.Model(&entity.Content{}).
		Select("category AS label, COUNT(*) AS total").
		Where("status = ? AND category <> ''", entity.ContentStatusPublished).
		Group("category").
		Order("total DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *contentRepository) PublishedTags(db *gorm.DB) ([]entity.StringList, error) {
	var tags []entity.StringList
	err := db.Model(&entity.Content{}).
		Where("status = ?", entity.ContentStatusPublished).
		Pluck("tags", &tags).Error
	return tags, err
}

func (r *contentRepository) Stats(db *gorm.DB) (*entity.ContentStats, error) {
	stats := &entity.ContentStats{}

	byStatus, err := countBy(db, &entity.Content{}, "status")
	if err != nil {
		return nil, err
	}
	statusMap := entity.CountMap(byStatus)
	stats.Published = statusMap[string(entity.ContentStatusPublished)]
	stats.Draft = statusMap[string(entity.ContentStatusDraft)]
	stats.Archived = statusMap[string(entity.ContentStatusArchived)]
	for _, n := range statusMap {
		stats.Total += n
	}

	byType, err := countBy(db, &entity.Content{}, "type")
	if err != nil {
		return nil, err
	}
	stats.ByType = entity.CountMap(byType)

	err = db.Model(&entity.Content{}).
		Select("COALESCE(SUM(view_count), 0)").
		Row().Scan(&stats.TotalViews)
	if err != nil {
		return nil, err
	}

	err = db.Select("id", "title", "slug", "type", "status", "view_count", "published_at", "created_at").
		Where("status = ?", entity.ContentStatusPublished).
		Order("view_count DESC").
		Limit(topViewedLimit).
		Find(&stats.TopViewed).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
