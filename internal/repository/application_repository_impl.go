package repository

import (
	"teleradiology-api/internal/domain/entity"
	domainRepo "teleradiology-api/internal/domain/repository"
	"teleradiology-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type applicationRepository struct{}

func NewApplicationRepository() domainRepo.ApplicationRepository {
	return &applicationRepository{}
}

func (r *applicationRepository) Create(db *gorm.DB, app *entity.RadiologistApplication) error {
	return db.Create(app).Error
}

func (r *applicationRepository) Update(db *gorm.DB, app *entity.RadiologistApplication) error {
	return saveOmitAssociations(db, app)
}

func (r *applicationRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.RadiologistApplication{}).Error
}

func (r *applicationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.RadiologistApplication, error) {
	return first[entity.RadiologistApplication](db.Preload("ReviewedBy").Where("id = ?", id))
}

func (r *applicationRepository) FindByEmail(db *gorm.DB, email string) (*entity.RadiologistApplication, error) {
	return first[entity.RadiologistApplication](db.Where("email = ?", normalizeEmail(email)))
}

func (r *applicationRepository) FindAll(db *gorm.DB, filter entity.ApplicationFilter, page pagination.Params) ([]entity.RadiologistApplication, int64, error) {
	q := db.Model(&entity.RadiologistApplication{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Specialization != "" {
		q = q.Where("specialization = ?", filter.Specialization)
	}
	if filter.MinExperience != nil {
		q = q.Where("experience >= ?", *filter.MinExperience)
	}
	q = applySearch(q, filter.Search, "first_name", "last_name", "email", "license_number")

	var apps []entity.RadiologistApplication
	total, err := pagination.Paginate(q, page, &apps, "ReviewedBy")
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *applicationRepository) FindRecent(db *gorm.DB, limit int) ([]entity.RadiologistApplication, error) {
	var apps []entity.RadiologistApplication
	if err := db.Order("created_at DESC").Limit(limit).Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) Stats(db *gorm.DB) (*entity.ApplicationStats, error) {
	stats := &entity.ApplicationStats{}

	byStatus, err := countBy(db, &entity.RadiologistApplication{}, "status")
	if err != nil {
		return nil, err
	}
	stats.ByStatus = entity.CountMap(byStatus)
	for _, n := range stats.ByStatus {
		stats.Total += n
	}
	stats.Pending = stats.ByStatus[string(entity.ApplicationStatusPending)]
	stats.Approved = stats.ByStatus[string(entity.ApplicationStatusApproved)]

	bySpec, err := countBy(db, &entity.RadiologistApplication{}, "specialization")
	if err != nil {
		return nil, err
	}
	stats.BySpecialization = entity.CountMap(bySpec)
	return stats, nil
}
