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
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ApplicationUsecase interface {
	CreateApplication(ctx context.Context, req *dto.CreateApplicationRequest) (*dto.ApplicationReceipt, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*dto.ApplicationResponse, error)
	GetAllApplications(ctx context.Context, filter entity.ApplicationFilter, page pagination.Params) ([]dto.ApplicationResponse, int64, error)
	UpdateApplication(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error)
	MarkUnderReview(ctx context.Context, actorID, id uuid.UUID, req *dto.ReviewApplicationRequest) (*dto.ApplicationResponse, error)
	ApproveApplication(ctx context.Context, actorID, id uuid.UUID, req *dto.ReviewApplicationRequest) (*dto.ApplicationResponse, error)
	RejectApplication(ctx context.Context, actorID, id uuid.UUID, req *dto.RejectApplicationRequest) (*dto.ApplicationResponse, error)
	HoldApplication(ctx context.Context, actorID, id uuid.UUID, req *dto.ReviewApplicationRequest) (*dto.ApplicationResponse, error)
	DeleteApplication(ctx context.Context, actorID, id uuid.UUID) error
	GetStats(ctx context.Context) (*entity.ApplicationStats, error)
}

type applicationUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	appRepo      repository.ApplicationRepository
	auditService service.AuditService
	mailer       service.Mailer
	now          func() time.Time
}

func NewApplicationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appRepo repository.ApplicationRepository,
	auditService service.AuditService,
	mailer service.Mailer,
) ApplicationUsecase {
	return &applicationUsecase{
		db:           db,
		log:          log,
		appRepo:      appRepo,
		auditService: auditService,
		mailer:       mailer,
		now:          time.Now,
	}
}

func (u *applicationUsecase) CreateApplication(ctx context.Context, req *dto.CreateApplicationRequest) (*dto.ApplicationReceipt, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.appRepo.FindByEmail(tx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find application by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrApplicationExists
	}

	app := &entity.RadiologistApplication{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          req.Email,
		Phone:          req.Phone,
		LicenseNumber:  strings.TrimSpace(req.LicenseNumber),
		LicenseStates:  normalizeStates(req.LicenseStates),
		BoardCertified: req.BoardCertified,
		Specialization: entity.Specialization(req.Specialization),
		Experience:     req.Experience,
		Availability:   entity.Availability(req.Availability),
		CoverLetter:    req.CoverLetter,
		ResumeURL:      req.ResumeURL,
	}

	if err := u.appRepo.Create(tx, app); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrApplicationExists
		}
		u.log.Warnf("Failed to create application: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if err := u.mailer.Send(ctx, service.ApplicationReceivedMessage(app.Email, app.FullName())); err != nil {
		u.log.Warnf("Failed to send application acknowledgement: %+v", err)
	}

	return &dto.ApplicationReceipt{ID: app.ID, Status: string(app.Status), CreatedAt: app.CreatedAt}, nil
}

func (u *applicationUsecase) GetApplication(ctx context.Context, id uuid.UUID) (*dto.ApplicationResponse, error) {
	app, err := u.find(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}

	return converter.ApplicationToResponse(app), nil
}

func (u *applicationUsecase) GetAllApplications(ctx context.Context, filter entity.ApplicationFilter, page pagination.Params) ([]dto.ApplicationResponse, int64, error) {
	apps, total, err := u.appRepo.FindAll(u.db.WithContext(ctx), filter, page)
	if err != nil {
		u.log.Warnf("Failed to find all applications: %+v", err)
		return nil, 0, err
	}

	return converter.ApplicationsToResponses(apps), total, nil
}

func (u *applicationUsecase) UpdateApplication(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error) {
	return u.mutate(ctx, actorID, id, entity.AuditActionApplicationUpdate, func(a *entity.RadiologistApplication, _ time.Time) error {
		a.FirstName = derefOr(req.FirstName, a.FirstName)
		a.LastName = derefOr(req.LastName, a.LastName)
		a.Phone = derefOr(req.Phone, a.Phone)
		a.LicenseNumber = derefOr(req.LicenseNumber, a.LicenseNumber)
		a.BoardCertified = derefOr(req.BoardCertified, a.BoardCertified)
		a.Experience = derefOr(req.Experience, a.Experience)
		a.CoverLetter = derefOr(req.CoverLetter, a.CoverLetter)
		a.ResumeURL = derefOr(req.ResumeURL, a.ResumeURL)
		if req.LicenseStates != nil {
			a.LicenseStates = normalizeStates(req.LicenseStates)
		}
		if req.Specialization != nil {
			a.Specialization = entity.Specialization(*req.Specialization)
		}
		if req.Availability != nil {
			a.Availability = entity.Availability(*req.Availability)
		}
		return nil
	})
}

func (u *applicationUsecase) MarkUnderReview(ctx context.Context, actorID, id uuid.UUID, req *dto.ReviewApplicationRequest) (*dto.ApplicationResponse, error) {
	return u.mutate(ctx, actorID, id, entity.AuditActionApplicationReview, func(a *entity.RadiologistApplication, now time.Time) error {
		a.MarkUnderReview(actorID, now)
		if req.Notes != "" {
			a.ReviewNotes = req.Notes
		}
		return nil
	})
}

func (u *applicationUsecase) ApproveApplication(ctx context.Context, actorID, id uuid.UUID, req *dto.ReviewApplicationRequest) (*dto.ApplicationResponse, error) {
	return u.mutate(ctx, actorID, id, entity.AuditActionApplicationReview, func(a *entity.RadiologistApplication, now time.Time) error {
		a.Approve(actorID, req.Notes, now)
		return nil
	})
}

func (u *applicationUsecase) RejectApplication(ctx context.Context, actorID, id uuid.UUID, req *dto.RejectApplicationRequest) (*dto.ApplicationResponse, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, ErrRejectionReasonRequired
	}
	return u.mutate(ctx, actorID, id, entity.AuditActionApplicationReview, func(a *entity.RadiologistApplication, now time.Time) error {
		if !a.Reject(actorID, req.Reason, now) {
			return ErrRejectionReasonRequired
		}
		return nil
	})
}

func (u *applicationUsecase) HoldApplication(ctx context.Context, actorID, id uuid.UUID, req *dto.ReviewApplicationRequest) (*dto.ApplicationResponse, error) {
	return u.mutate(ctx, actorID, id, entity.AuditActionApplicationReview, func(a *entity.RadiologistApplication, now time.Time) error {
		a.Hold(actorID, req.Notes, now)
		return nil
	})
}

func (u *applicationUsecase) DeleteApplication(ctx context.Context, actorID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	app, err := u.find(tx, id)
	if err != nil {
		return err
	}

	if err := u.appRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete application: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionApplicationDelete, "radiologist_application", id.String(), app); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *applicationUsecase) GetStats(ctx context.Context) (*entity.ApplicationStats, error) {
	stats, err := u.appRepo.Stats(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to compute application stats: %+v", err)
		return nil, err
	}
	return stats, nil
}

func (u *applicationUsecase) mutate(ctx context.Context, actorID, id uuid.UUID, action string, fn func(a *entity.RadiologistApplication, now time.Time) error) (*dto.ApplicationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	app, err := u.find(tx, id)
	if err != nil {
		return nil, err
	}
	old := *app

	if err := fn(app, u.now()); err != nil {
		return nil, err
	}
	if app.ReviewedBy != nil && (app.ReviewedByID == nil || app.ReviewedBy.ID != *app.ReviewedByID) {
		app.ReviewedBy = nil
	}

	if err := u.appRepo.Update(tx, app); err != nil {
		u.log.Warnf("Failed to update application: %+v", err)
		return nil, err
	}

	oldValue := map[string]interface{}{"status": old.Status, "review_notes": old.ReviewNotes}
	newValue := map[string]interface{}{"status": app.Status, "review_notes": app.ReviewNotes, "rejection_reason": app.RejectionReason}
	if err := u.auditService.LogUpdate(ctx, tx, &actorID, action, "radiologist_application", id.String(), oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ApplicationToResponse(app), nil
}

func (u *applicationUsecase) find(db *gorm.DB, id uuid.UUID) (*entity.RadiologistApplication, error) {
	app, err := u.appRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find application by ID: %+v", err)
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	return app, nil
}

// normalizeStates upper-cases two-letter state codes and drops duplicates.
func normalizeStates(states []string) entity.StringList {
	return entity.StringList(lo.Uniq(lo.Map(states, func(s string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(s))
	})))
}
