package repository

import (
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentRepository interface {
	Create(db *gorm.DB, content *entity.Content) error
	Update(db *gorm.DB, content *entity.Content) error
	Delete(db *gorm.DB, id uuid.UUID) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Content, error)
	FindBySlug(db *gorm.DB, slug string, publishedOnly bool) (*entity.Content, error)
	FindAll(db *gorm.DB, filter entity.ContentFilter, page pagination.Params) ([]entity.Content, int64, error)
	FindServices(db *gorm.DB) ([]entity.Content, error)
	SlugExists(db *gorm.DB, slug string, excludeID uuid.UUID) (bool, error)
	IncrementViews(db *gorm.DB, id uuid.UUID) error
	Categories(db *gorm.DB) ([]entity.LabelCount, error)
	PublishedTags(db *gorm.DB) ([]entity.StringList, error)
	Stats(db *gorm.DB) (*entity.ContentStats, error)
}
