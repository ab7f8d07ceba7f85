package usecase

import (
	"context"
	"time"

	"teleradiology-api/internal/converter"
	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/domain/repository"
	"teleradiology-api/internal/service"
	"teleradiology-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ContactUsecase interface {
	CreateContact(ctx context.Context, req *dto.CreateContactRequest, meta RequestMeta) (*dto.ContactReceipt, error)
	GetContact(ctx context.Context, id uuid.UUID) (*dto.ContactResponse, error)
	GetAllContacts(ctx context.Context, filter entity.ContactFilter, page pagination.Params) ([]dto.ContactResponse, int64, error)
	UpdateStatus(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateContactStatusRequest) (*dto.ContactResponse, error)
	AssignContact(ctx context.Context, actorID, id uuid.UUID, req *dto.AssignRequest) (*dto.ContactResponse, error)
	AddNote(ctx context.Context, actorID, id uuid.UUID, req *dto.AddNoteRequest) (*dto.ContactResponse, error)
	DeleteContact(ctx context.Context, actorID, id uuid.UUID) error
	GetStats(ctx context.Context) (*entity.ContactStats, error)
}

type contactUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	contactRepo  repository.ContactRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
	mailer       service.Mailer
	now          func() time.Time
}

func NewContactUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	contactRepo repository.ContactRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
	mailer service.Mailer,
) ContactUsecase {
	return &contactUsecase{
		db:           db,
		log:          log,
		contactRepo:  contactRepo,
		userRepo:     userRepo,
		auditService: auditService,
		mailer:       mailer,
		now:          time.Now,
	}
}

// CreateContact stores a public submission. Spam is kept for review but no
// acknowledgement is mailed for it.
func (u *contactUsecase) CreateContact(ctx context.Context, req *dto.CreateContactRequest, meta RequestMeta) (*dto.ContactReceipt, error) {
	source := req.Source
	if source == "" {
		source = "website"
	}

	contact := &entity.Contact{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Subject:     req.Subject,
		Message:     req.Message,
		InquiryType: entity.InquiryType(req.InquiryType),
		Source:      source,
		IPAddress:   meta.IPAddress,
		UserAgent:   meta.UserAgent,
	}

	if err := u.contactRepo.Create(u.db.WithContext(ctx), contact); err != nil {
		u.log.Warnf("Failed to create contact: %+v", err)
		return nil, err
	}

	if contact.IsSpam {
		u.log.WithFields(logrus.Fields{"contact_id": contact.ID, "spam_score": contact.SpamScore}).Info("Contact flagged as spam")
	} else if err := u.mailer.Send(ctx, service.ContactReceivedMessage(contact.Email, contact.Name, contact.Subject)); err != nil {
		u.log.Warnf("Failed to send contact acknowledgement: %+v", err)
	}

	return &dto.ContactReceipt{ID: contact.ID, CreatedAt: contact.CreatedAt}, nil
}

func (u *contactUsecase) GetContact(ctx context.Context, id uuid.UUID) (*dto.ContactResponse, error) {
	contact, err := u.find(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}

	return converter.ContactToResponse(contact), nil
}

func (u *contactUsecase) GetAllContacts(ctx context.Context, filter entity.ContactFilter, page pagination.Params) ([]dto.ContactResponse, int64, error) {
	contacts, total, err := u.contactRepo.FindAll(u.db.WithContext(ctx), filter, page)
	if err != nil {
		u.log.Warnf("Failed to find all contacts: %+v", err)
		return nil, 0, err
	}

	return converter.ContactsToResponses(contacts), total, nil
}

func (u *contactUsecase) UpdateStatus(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateContactStatusRequest) (*dto.ContactResponse, error) {
	return u.mutate(ctx, actorID, id, entity.AuditActionContactStatus, func(_ *gorm.DB, c *entity.Contact, _ time.Time) error {
		c.Status = entity.ContactStatus(req.Status)
		if req.Priority != "" {
			c.Priority = entity.Priority(req.Priority)
		}
		return nil
	})
}

func (u *contactUsecase) AssignContact(ctx context.Context, actorID, id uuid.UUID, req *dto.AssignRequest) (*dto.ContactResponse, error) {
	return u.mutate(ctx, actorID, id, entity.AuditActionContactAssign, func(tx *gorm.DB, c *entity.Contact, now time.Time) error {
		assignee, err := loadAssignee(tx, u.userRepo, req.AssignedTo)
		if err != nil {
			return err
		}
		c.AssignedToID = &assignee.ID
		c.AssignedTo = assignee
		c.AddNote("Assigned to "+assignee.Name, &actorID, now)
		if c.Status == entity.ContactStatusNew {
			c.Status = entity.ContactStatusInProgress
		}
		return nil
	})
}

func (u *contactUsecase) AddNote(ctx context.Context, actorID, id uuid.UUID, req *dto.AddNoteRequest) (*dto.ContactResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	contact, err := u.find(tx, id)
	if err != nil {
		return nil, err
	}

	contact.AddNote(req.Text, &actorID, u.now())
	if err := u.contactRepo.Update(tx, contact); err != nil {
		u.log.Warnf("Failed to add contact note: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ContactToResponse(contact), nil
}

func (u *contactUsecase) DeleteContact(ctx context.Context, actorID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	contact, err := u.find(tx, id)
	if err != nil {
		return err
	}

	if err := u.contactRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete contact: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionContactDelete, "contact", id.String(), contact); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *contactUsecase) GetStats(ctx context.Context) (*entity.ContactStats, error) {
	stats, err := u.contactRepo.Stats(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to compute contact stats: %+v", err)
		return nil, err
	}
	return stats, nil
}

func (u *contactUsecase) mutate(ctx context.Context, actorID, id uuid.UUID, action string, fn func(tx *gorm.DB, c *entity.Contact, now time.Time) error) (*dto.ContactResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	contact, err := u.find(tx, id)
	if err != nil {
		return nil, err
	}
	oldStatus, oldAssignee := contact.Status, contact.AssignedToID
	now := u.now()

	if err := fn(tx, contact, now); err != nil {
		return nil, err
	}
	contact.Prepare(now)

	if err := u.contactRepo.Update(tx, contact); err != nil {
		u.log.Warnf("Failed to update contact: %+v", err)
		return nil, err
	}

	oldValue := map[string]interface{}{"status": oldStatus, "assigned_to_id": oldAssignee}
	newValue := map[string]interface{}{"status": contact.Status, "assigned_to_id": contact.AssignedToID}
	if err := u.auditService.LogUpdate(ctx, tx, &actorID, action, "contact", id.String(), oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ContactToResponse(contact), nil
}

func (u *contactUsecase) find(db *gorm.DB, id uuid.UUID) (*entity.Contact, error) {
	contact, err := u.contactRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find contact by ID: %+v", err)
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}
