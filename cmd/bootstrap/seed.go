package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"teleradiology-api/config"
	"teleradiology-api/internal/domain/entity"
	domainRepo "teleradiology-api/internal/domain/repository"
	"teleradiology-api/internal/repository"
	"teleradiology-api/pkg/pagination"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrSeedPasswordRequired = errors.New("SEED_ADMIN_PASSWORD is required")

// defaultServices are published when the content table is empty.
var defaultServices = []entity.Content{
	{
		Title:    "Emergency Teleradiology",
		Body:     "Around-the-clock preliminary and final reads for emergency departments, with critical findings called in directly to the ordering physician.",
		Category: "services",
		ServiceDetails: &entity.ServiceDetails{
			Modalities:     []string{"CT", "X-Ray", "Ultrasound"},
			TurnaroundTime: "30 minutes for STAT studies",
			Features:       []string{"24/7/365 coverage", "Critical result notification", "Board-certified radiologists"},
		},
	},
	{
		Title:    "Subspecialty Reads",
		Body:     "Fellowship-trained neuroradiologists, musculoskeletal and body imaging specialists for complex studies that need a second look.",
		Category: "services",
		ServiceDetails: &entity.ServiceDetails{
			Modalities:     []string{"MRI", "CT", "PET-CT"},
			TurnaroundTime: "24 hours",
			Features:       []string{"Neuroradiology", "Musculoskeletal", "Body imaging"},
		},
	},
	{
		Title:    "Overnight Coverage",
		Body:     "Nighthawk coverage so your in-house radiologists can rest while your imaging volume keeps moving.",
		Category: "services",
		ServiceDetails: &entity.ServiceDetails{
			Modalities:     []string{"CT", "MRI", "X-Ray", "Ultrasound"},
			TurnaroundTime: "Under 1 hour",
			Features:       []string{"Seamless PACS handoff", "Dedicated overnight team"},
		},
	},
}

type Seeder struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    domainRepo.UserRepository
	contentRepo domainRepo.ContentRepository
}

func NewSeeder(db *gorm.DB, log *logrus.Logger) *Seeder {
	return &Seeder{
		db:          db,
		log:         log,
		userRepo:    repository.NewUserRepository(),
		contentRepo: repository.NewContentRepository(),
	}
}

// Run is idempotent: existing admins and content are left alone.
func (s *Seeder) Run(ctx context.Context, cfg config.SeedConfig) error {
	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admin, err := s.seedAdmin(tx, cfg)
	if err != nil {
		return err
	}
	if err := s.seedServices(tx, admin); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (s *Seeder) seedAdmin(tx *gorm.DB, cfg config.SeedConfig) (*entity.User, error) {
	existing, err := s.userRepo.FindByEmail(tx, cfg.AdminEmail)
	if err != nil {
		s.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		s.log.WithField("email", existing.Email).Info("Super admin already exists")
		return existing, nil
	}

	if cfg.AdminPassword == "" {
		return nil, ErrSeedPasswordRequired
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &entity.User{
		Name:       cfg.AdminName,
		Email:      cfg.AdminEmail,
		Password:   string(hashedPassword),
		Role:       entity.RoleSuperAdmin,
		IsActive:   true,
		IsVerified: true,
	}
	if err := s.userRepo.Create(tx, admin); err != nil {
		s.log.Warnf("Failed to create super admin: %+v", err)
		return nil, err
	}

	s.log.WithField("email", admin.Email).Info("Super admin created")
	return admin, nil
}

func (s *Seeder) seedServices(tx *gorm.DB, author *entity.User) error {
	_, total, err := s.contentRepo.FindAll(tx, entity.ContentFilter{}, pagination.Params{Page: 1, Limit: 1, Sort: pagination.DefaultSort})
	if err != nil {
		s.log.Warnf("Failed to count content: %+v", err)
		return err
	}
	if total > 0 {
		return nil
	}

	for i, tmpl := range defaultServices {
		page := tmpl
		page.Type = entity.ContentTypeService
		page.Status = entity.ContentStatusPublished
		page.SortOrder = i + 1
		page.AuthorID = &author.ID
		if err := s.contentRepo.Create(tx, &page); err != nil {
			s.log.Warnf("Failed to create service page: %+v", err)
			return err
		}
	}

	s.log.WithField("count", len(defaultServices)).Info("Default service pages created")
	return nil
}
