package repository

import (
	"teleradiology-api/internal/domain/entity"
	domainRepo "teleradiology-api/internal/domain/repository"
	"teleradiology-api/pkg/pagination"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Create(log).Error
}

func (r *auditLogRepository) FindAll(db *gorm.DB, filter entity.AuditLogFilter, page pagination.Params) ([]entity.AuditLog, int64, error) {
	q := db.Model(&entity.AuditLog{})
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.EntityType != "" {
		q = q.Where("entity_type = ?", filter.EntityType)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}

	var logs []entity.AuditLog
	total, err := pagination.Paginate(q, page, &logs, "User")
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *auditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	return first[entity.AuditLog](db.Preload("User").Where("id = ?", id))
}
