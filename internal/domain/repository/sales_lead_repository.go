package repository

import (
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SalesLeadRepository interface {
	Create(db *gorm.DB, lead *entity.SalesLead) error
	Update(db *gorm.DB, lead *entity.SalesLead) error
	Delete(db *gorm.DB, id uuid.UUID) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.SalesLead, error)
	FindAll(db *gorm.DB, filter entity.LeadFilter, page pagination.Params) ([]entity.SalesLead, int64, error)
	FindRecent(db *gorm.DB, limit int) ([]entity.SalesLead, error)
	Stats(db *gorm.DB) (*entity.LeadStats, error)
}
