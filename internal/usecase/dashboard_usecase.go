package usecase

import (
	"context"
	"time"

	"teleradiology-api/internal/converter"
	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/domain/repository"
	"teleradiology-api/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	dashboardStatsKey = "dashboard:stats"
	recentLimit       = 5
)

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	GetRecent(ctx context.Context) (*dto.DashboardRecentResponse, error)
}

type dashboardUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	contentRepo repository.ContentRepository
	contactRepo repository.ContactRepository
	appRepo     repository.ApplicationRepository
	leadRepo    repository.SalesLeadRepository
	cache       service.KeyValueStore
	cacheTTL    time.Duration
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	contentRepo repository.ContentRepository,
	contactRepo repository.ContactRepository,
	appRepo repository.ApplicationRepository,
	leadRepo repository.SalesLeadRepository,
	cache service.KeyValueStore,
	cacheTTL time.Duration,
) DashboardUsecase {
	return &dashboardUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		contentRepo: contentRepo,
		contactRepo: contactRepo,
		appRepo:     appRepo,
		leadRepo:    leadRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// GetStats aggregates every module's counters. Results are cached for
// cacheTTL; a cache failure only costs a recomputation.
func (u *dashboardUsecase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	if u.cacheTTL > 0 {
		var cached dto.DashboardStatsResponse
		found, err := service.GetJSON(ctx, u.cache, dashboardStatsKey, &cached)
		if err != nil {
			u.log.Warnf("Failed to read dashboard cache: %+v", err)
		}
		if found {
			return &cached, nil
		}
	}

	var (
		res        dto.DashboardStatsResponse
		content    *entity.ContentStats
		categories []entity.LabelCount
	)

	g, gctx := errgroup.WithContext(ctx)
	db := u.db.WithContext(gctx)

	g.Go(func() (err error) {
		res.Users, err = u.userRepo.Stats(db)
		return err
	})
	g.Go(func() (err error) {
		content, err = u.contentRepo.Stats(db)
		return err
	})
	g.Go(func() (err error) {
		categories, err = u.contentRepo.Categories(db)
		return err
	})
	g.Go(func() (err error) {
		res.Contacts, err = u.contactRepo.Stats(db)
		return err
	})
	g.Go(func() (err error) {
		res.Applications, err = u.appRepo.Stats(db)
		return err
	})
	g.Go(func() (err error) {
		res.Leads, err = u.leadRepo.Stats(db)
		return err
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to compute dashboard stats: %+v", err)
		return nil, err
	}
	res.Content = converter.ContentStatsToResponse(content, categories)

	if u.cacheTTL > 0 {
		if err := service.SetJSON(ctx, u.cache, dashboardStatsKey, &res, u.cacheTTL); err != nil {
			u.log.Warnf("Failed to write dashboard cache: %+v", err)
		}
	}

	return &res, nil
}

func (u *dashboardUsecase) GetRecent(ctx context.Context) (*dto.DashboardRecentResponse, error) {
	var (
		contacts []entity.Contact
		apps     []entity.RadiologistApplication
		leads    []entity.SalesLead
	)

	g, gctx := errgroup.WithContext(ctx)
	db := u.db.WithContext(gctx)

	g.Go(func() (err error) {
		contacts, err = u.contactRepo.FindRecent(db, recentLimit)
		return err
	})
	g.Go(func() (err error) {
		apps, err = u.appRepo.FindRecent(db, recentLimit)
		return err
	})
	g.Go(func() (err error) {
		leads, err = u.leadRepo.FindRecent(db, recentLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to find recent activity: %+v", err)
		return nil, err
	}

	return &dto.DashboardRecentResponse{
		Contacts:     converter.ContactsToResponses(contacts),
		Applications: converter.ApplicationsToResponses(apps),
		Leads:        converter.LeadsToResponses(leads),
	}, nil
}
