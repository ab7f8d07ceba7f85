package repository

import (
	"teleradiology-api/internal/domain/entity"
	domainRepo "teleradiology-api/internal/domain/repository"
	"teleradiology-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type salesLeadRepository struct{}

func NewSalesLeadRepository() domainRepo.SalesLeadRepository {
	return &salesLeadRepository{}
}

func (r *salesLeadRepository) Create(db *gorm.DB, lead *entity.SalesLead) error {
	return db.Create(lead).Error
}

func (r *salesLeadRepository) Update(db *gorm.DB, lead *entity.SalesLead) error {
	return saveOmitAssociations(db, lead)
}

func (r *salesLeadRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.SalesLead{}).Error
}

func (r *salesLeadRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.SalesLead, error) {
	return first[entity.SalesLead](db.Preload("AssignedTo").Where("id = ?", id))
}

func (r *salesLeadRepository) FindAll(db *gorm.DB, filter entity.LeadFilter, page pagination.Params) ([]entity.SalesLead, int64, error) {
	q := db.Model(&entity.SalesLead{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Industry != "" {
		q = q.Where("industry = ?", filter.Industry)
	}
	if filter.Source != "" {
		q = q.Where("source = ?", filter.Source)
	}
	if filter.AssignedToID != nil {
		q = q.Where("assigned_to_id = ?", *filter.AssignedToID)
	}
	if filter.MinScore != nil {
		q = q.Where("lead_score >= ?", *filter.MinScore)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at < ?", *filter.To)
	}
	q = applySearch(q, filter.Search, "company_name", "contact_name", "email")

	var leads []entity.SalesLead
	total, err := pagination.Paginate(q, page, &leads, "AssignedTo")
	if err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

func (r *salesLeadRepository) FindRecent(db *gorm.DB, limit int) ([]entity.SalesLead, error) {
	var leads []entity.SalesLead
	if err := db.Order("created_at DESC").Limit(limit).Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *salesLeadRepository) Stats(db *gorm.DB) (*entity.LeadStats, error) {
	stats := &entity.LeadStats{}

	byStatus, err := countBy(db, &entity.SalesLead{}, "status")
	if err != nil {
		return nil, err
	}
	stats.ByStatus = entity.CountMap(byStatus)
	for _, n := range stats.ByStatus {
		stats.Total += n
	}

	bySource, err := countBy(db, &entity.SalesLead{}, "source")
	if err != nil {
		return nil, err
	}
	stats.BySource = entity.CountMap(bySource)

	byIndustry, err := countBy(db, &entity.SalesLead{}, "industry")
	if err != nil {
		return nil, err
	}
	stats.ByIndustry = entity.CountMap(byIndustry)

	stats.PipelineValue, err = sumDecimal(
		db.Model(&entity.SalesLead{}).Where("status IN ?", entity.OpenLeadStatuses), "estimated_value")
	if err != nil {
		return nil, err
	}
	stats.WonValue, err = sumDecimal(
		db.Model(&entity.SalesLead{}).Where("status = ?", entity.LeadStatusClosedWon), "estimated_value")
	if err != nil {
		return nil, err
	}

	var avg *float64
	if err := db.Model(&entity.SalesLead{}).Select("AVG(lead_score)").Row().Scan(&avg); err != nil {
		return nil, err
	}
	if avg != nil {
		stats.AverageScore = *avg
	}

	stats.ConversionRate = entity.ConversionRate(
		stats.ByStatus[string(entity.LeadStatusClosedWon)],
		stats.ByStatus[string(entity.LeadStatusClosedLost)],
	)
	return stats, nil
}
