package repository

import (
	"teleradiology-api/internal/domain/entity"
	domainRepo "teleradiology-api/internal/domain/repository"
	"teleradiology-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactRepository struct{}

func NewContactRepository() domainRepo.ContactRepository {
	return &contactRepository{}
}

func (r *contactRepository) Create(db *gorm.DB, contact *entity.Contact) error {
	return db.Create(contact).Error
}

func (r *contactRepository) Update(db *gorm.DB, contact *entity.Contact) error {
	return saveOmitAssociations(db, contact)
}

func (r *contactRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Contact{}).Error
}

func (r *contactRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Contact, error) {
	return first[entity.Contact](db.Preload("AssignedTo").Where("id = ?", id))
}

func (r *contactRepository) FindAll(db *gorm.DB, filter entity.ContactFilter, page pagination.Params) ([]entity.Contact, int64, error) {
	q := db.Model(&entity.Contact{})
	switch {
	case filter.Status != "":
		q = q.Where("status = ?", filter.Status)
	case !filter.IncludeSpam:
		q = q.Where("is_spam = ?", false)
	}
	if filter.InquiryType != "" {
		q = q.Where("inquiry_type = ?", filter.InquiryType)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if filter.AssignedToID != nil {
		q = q.Where("assigned_to_id = ?", *filter.AssignedToID)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at < ?", *filter.To)
	}
	q = applySearch(q, filter.Search, "name", "email", "company", "subject")

	var contacts []entity.Contact
	total, err := pagination.Paginate(q, page, &contacts, "AssignedTo")
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

func (r *contactRepository) FindRecent(db *gorm.DB, limit int) ([]entity.Contact, error) {
	var contacts []entity.Contact
	err := db.Where("is_spam = ?", false).Order("created_at DESC").Limit(limit).Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) Stats(db *gorm.DB) (*entity.ContactStats, error) {
	stats := &entity.ContactStats{}

	byStatus, err := countBy(db, &entity.Contact{}, "status")
	if err != nil {
		return nil, err
	}
	stats.ByStatus = entity.CountMap(byStatus)
	for _, n := range stats.ByStatus {
		stats.Total += n
	}
	stats.New = stats.ByStatus[string(entity.ContactStatusNew)]

	if err := db.Model(&entity.Contact{}).Where("is_spam = ?", true).Count(&stats.Spam).Error; err != nil {
		return nil, err
	}

	byType, err := countBy(db, &entity.Contact{}, "inquiry_type")
	if err != nil {
		return nil, err
	}
	stats.ByInquiryType = entity.CountMap(byType)

	byPriority, err := countBy(db, &entity.Contact{}, "priority")
	if err != nil {
		return nil, err
	}
	stats.ByPriority = entity.CountMap(byPriority)
	return stats, nil
}
