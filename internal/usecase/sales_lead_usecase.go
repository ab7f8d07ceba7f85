package usecase

import (
	"context"
	"strings"
	"time"

	"teleradiology-api/internal/converter"
	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/domain/repository"
	"teleradiology-api/internal/service"
	"teleradiology-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SalesLeadUsecase interface {
	CreateLead(ctx context.Context, req *dto.CreateLeadRequest) (*dto.LeadReceipt, error)
	GetLead(ctx context.Context, id uuid.UUID) (*dto.LeadResponse, error)
	GetAllLeads(ctx context.Context, filter entity.LeadFilter, page pagination.Params) ([]dto.LeadResponse, int64, error)
	UpdateLead(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateLeadRequest) (*dto.LeadResponse, error)
	UpdateStatus(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateLeadStatusRequest) (*dto.LeadResponse, error)
	AssignLead(ctx context.Context, actorID, id uuid.UUID, req *dto.AssignRequest) (*dto.LeadResponse, error)
	QualifyLead(ctx context.Context, actorID, id uuid.UUID, req *dto.QualifyLeadRequest) (*dto.LeadResponse, error)
	CloseLead(ctx context.Context, actorID, id uuid.UUID, req *dto.CloseLeadRequest) (*dto.LeadResponse, error)
	AddNote(ctx context.Context, actorID, id uuid.UUID, req *dto.LeadNoteRequest) (*dto.LeadResponse, error)
	DeleteLead(ctx context.Context, actorID, id uuid.UUID) error
	GetStats(ctx context.Context) (*entity.LeadStats, error)
}

type salesLeadUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	leadRepo     repository.SalesLeadRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
	now          func() time.Time
}

func NewSalesLeadUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	leadRepo repository.SalesLeadRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) SalesLeadUsecase {
	return &salesLeadUsecase{
		db:           db,
		log:          log,
		leadRepo:     leadRepo,
		userRepo:     userRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

func (u *salesLeadUsecase) CreateLead(ctx context.Context, req *dto.CreateLeadRequest) (*dto.LeadReceipt, error) {
	lead := &entity.SalesLead{
		CompanyName:        strings.TrimSpace(req.CompanyName),
		ContactName:        strings.TrimSpace(req.ContactName),
		ContactTitle:       req.ContactTitle,
		Email:              req.Email,
		Phone:              req.Phone,
		Website:            req.Website,
		Industry:           entity.LeadIndustry(req.Industry),
		CompanySize:        entity.CompanySize(req.CompanySize),
		Budget:             entity.LeadBudget(req.Budget),
		Timeline:           entity.LeadTimeline(req.Timeline),
		Source:             entity.LeadSource(req.Source),
		ServicesInterested: entity.StringList(lo.Uniq(req.ServicesInterested)),
		MonthlyStudyVolume: req.MonthlyStudyVolume,
		Message:            req.Message,
		EstimatedValue:     derefOr(req.EstimatedValue, decimal.Zero),
	}

	if err := u.leadRepo.Create(u.db.WithContext(ctx), lead); err != nil {
		u.log.Warnf("Failed to create sales lead: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{"lead_id": lead.ID, "lead_score": lead.LeadScore}).Info("Sales lead created")

	return &dto.LeadReceipt{ID: lead.ID, CreatedAt: lead.CreatedAt}, nil
}

func (u *salesLeadUsecase) GetLead(ctx context.Context, id uuid.UUID) (*dto.LeadResponse, error) {
	lead, err := u.find(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}

	return converter.LeadToResponse(lead), nil
}

func (u *salesLeadUsecase) GetAllLeads(ctx context.Context, filter entity.LeadFilter, page pagination.Params) ([]dto.LeadResponse, int64, error) {
	leads, total, err := u.leadRepo.FindAll(u.db.WithContext(ctx), filter, page)
	if err != nil {
		u.log.Warnf("Failed to find all sales leads: %+v", err)
		return nil, 0, err
	}

	return converter.LeadsToResponses(leads), total, nil
}

func (u *salesLeadUsecase) UpdateLead(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	closeDate, err := parseDate(derefOr(req.ExpectedCloseDate, ""))
	if err != nil {
		return nil, err
	}

	return u.mutate(ctx, actorID, id, entity.AuditActionLeadUpdate, func(_ *gorm.DB, l *entity.SalesLead, _ time.Time) error {
		l.CompanyName = derefOr(req.CompanyName, l.CompanyName)
		l.ContactName = derefOr(req.ContactName, l.ContactName)
		l.ContactTitle = derefOr(req.ContactTitle, l.ContactTitle)
		l.Email = derefOr(req.Email, l.Email)
		l.Phone = derefOr(req.Phone, l.Phone)
		l.Website = derefOr(req.Website, l.Website)
		l.MonthlyStudyVolume = derefOr(req.MonthlyStudyVolume, l.MonthlyStudyVolume)
		l.Message = derefOr(req.Message, l.Message)
		l.EstimatedValue = derefOr(req.EstimatedValue, l.EstimatedValue)
		l.Probability = derefOr(req.Probability, l.Probability)
		if req.Industry != nil {
			l.Industry = entity.LeadIndustry(*req.Industry)
		}
		if req.CompanySize != nil {
			l.CompanySize = entity.CompanySize(*req.CompanySize)
		}
		if req.Budget != nil {
			l.Budget = entity.LeadBudget(*req.Budget)
		}
		if req.Timeline != nil {
			l.Timeline = entity.LeadTimeline(*req.Timeline)
		}
		if req.Source != nil {
			l.Source = entity.LeadSource(*req.Source)
		}
		if req.ServicesInterested != nil {
			l.ServicesInterested = entity.StringList(lo.Uniq(req.ServicesInterested))
		}
		if closeDate != nil {
			l.ExpectedCloseDate = closeDate
		}
		if req.NextFollowUpAt != nil {
			l.NextFollowUpAt = req.NextFollowUpAt
		}
		return nil
	})
}

// UpdateStatus routes qualified and closed stages through their transitions
// so the timestamps and notes stay consistent.
func (u *salesLeadUsecase) UpdateStatus(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateLeadStatusRequest) (*dto.LeadResponse, error) {
	status := entity.LeadStatus(req.Status)
	return u.mutate(ctx, actorID, id, entity.AuditActionLeadStatus, func(_ *gorm.DB, l *entity.SalesLead, now time.Time) error {
		if l.Status == status {
			return nil
		}
		switch status {
		case entity.LeadStatusQualified:
			l.Qualify(actorID, "", now)
		case entity.LeadStatusClosedWon, entity.LeadStatusClosedLost:
			l.Close(status == entity.LeadStatusClosedWon, actorID, "", now)
		default:
			l.SetStatus(status, actorID, now)
		}
		return nil
	})
}

func (u *salesLeadUsecase) AssignLead(ctx context.Context, actorID, id uuid.UUID, req *dto.AssignRequest) (*dto.LeadResponse, error) {
	return u.mutate(ctx, actorID, id, entity.AuditActionLeadAssign, func(tx *gorm.DB, l *entity.SalesLead, now time.Time) error {
		assignee, err := loadAssignee(tx, u.userRepo, req.AssignedTo)
		if err != nil {
			return err
		}
		l.Assign(assignee.ID, actorID, now)
		l.AssignedTo = assignee
		return nil
	})
}

func (u *salesLeadUsecase) QualifyLead(ctx context.Context, actorID, id uuid.UUID, req *dto.QualifyLeadRequest) (*dto.LeadResponse, error) {
	return u.mutate(ctx, actorID, id, entity.AuditActionLeadQualify, func(_ *gorm.DB, l *entity.SalesLead, now time.Time) error {
		l.Qualify(actorID, req.Note, now)
		return nil
	})
}

func (u *salesLeadUsecase) CloseLead(ctx context.Context, actorID, id uuid.UUID, req *dto.CloseLeadRequest) (*dto.LeadResponse, error) {
	return u.mutate(ctx, actorID, id, entity.AuditActionLeadClose, func(_ *gorm.DB, l *entity.SalesLead, now time.Time) error {
		l.Close(req.Outcome == "won", actorID, strings.TrimSpace(req.Reason), now)
		return nil
	})
}

func (u *salesLeadUsecase) AddNote(ctx context.Context, actorID, id uuid.UUID, req *dto.LeadNoteRequest) (*dto.LeadResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	lead, err := u.find(tx, id)
	if err != nil {
		return nil, err
	}

	lead.AddNote(req.Text, req.Type, &actorID, u.now())
	if err := u.leadRepo.Update(tx, lead); err != nil {
		u.log.Warnf("Failed to add lead note: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.LeadToResponse(lead), nil
}

func (u *salesLeadUsecase) DeleteLead(ctx context.Context, actorID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	lead, err := u.find(tx, id)
	if err != nil {
		return err
	}

	if err := u.leadRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete sales lead: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionLeadDelete, "sales_lead", id.String(), lead); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *salesLeadUsecase) GetStats(ctx context.Context) (*entity.LeadStats, error) {
	stats, err := u.leadRepo.Stats(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to compute lead stats: %+v", err)
		return nil, err
	}
	return stats, nil
}

func (u *salesLeadUsecase) mutate(ctx context.Context, actorID, id uuid.UUID, action string, fn func(tx *gorm.DB, l *entity.SalesLead, now time.Time) error) (*dto.LeadResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	lead, err := u.find(tx, id)
	if err != nil {
		return nil, err
	}
	oldValue := leadAuditView(lead)

	if err := fn(tx, lead, u.now()); err != nil {
		return nil, err
	}
	lead.Prepare()

	if err := u.leadRepo.Update(tx, lead); err != nil {
		u.log.Warnf("Failed to update sales lead: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, action, "sales_lead", id.String(), oldValue, leadAuditView(lead)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.LeadToResponse(lead), nil
}

func (u *salesLeadUsecase) find(db *gorm.DB, id uuid.UUID) (*entity.SalesLead, error) {
	lead, err := u.leadRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find sales lead by ID: %+v", err)
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	return lead, nil
}

func leadAuditView(l *entity.SalesLead) map[string]interface{} {
	return map[string]interface{}{
		"status":          l.Status,
		"assigned_to_id":  l.AssignedToID,
		"estimated_value": l.EstimatedValue.StringFixed(2),
		"probability":     l.Probability,
		"lead_score":      l.LeadScore,
	}
}
