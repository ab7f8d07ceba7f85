package repository

import (
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(db *gorm.DB, app *entity.RadiologistApplication) error
	Update(db *gorm.DB, app *entity.RadiologistApplication) error
	Delete(db *gorm.DB, id uuid.UUID) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.RadiologistApplication, error)
	FindByEmail(db *gorm.DB, email string) (*entity.RadiologistApplication, error)
	FindAll(db *gorm.DB, filter entity.ApplicationFilter, page pagination.Params) ([]entity.RadiologistApplication, int64, error)
	FindRecent(db *gorm.DB, limit int) ([]entity.RadiologistApplication, error)
	Stats(db *gorm.DB) (*entity.ApplicationStats, error)
}
