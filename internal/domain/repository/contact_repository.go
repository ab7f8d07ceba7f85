package repository

import (
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(db *gorm.DB, contact *entity.Contact) error
	Update(db *gorm.DB, contact *entity.Contact) error
	Delete(db *gorm.DB, id uuid.UUID) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Contact, error)
	FindAll(db *gorm.DB, filter entity.ContactFilter, page pagination.Params) ([]entity.Contact, int64, error)
	FindRecent(db *gorm.DB, limit int) ([]entity.Contact, error)
	Stats(db *gorm.DB) (*entity.ContactStats, error)
}
