package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"teleradiology-api/internal/converter"
	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/domain/repository"
	"teleradiology-api/internal/service"
	"teleradiology-api/pkg/pagination"
	"teleradiology-api/pkg/slug"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ContentUsecase interface {
	CreateContent(ctx context.Context, actorID uuid.UUID, req *dto.CreateContentRequest) (*dto.ContentResponse, error)
	GetContent(ctx context.Context, id uuid.UUID) (*dto.ContentResponse, error)
	GetAllContent(ctx context.Context, filter entity.ContentFilter, page pagination.Params) ([]dto.ContentResponse, int64, error)
	UpdateContent(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateContentRequest) (*dto.ContentResponse, error)
	DeleteContent(ctx context.Context, actorID, id uuid.UUID) error
	PublishContent(ctx context.Context, actorID, id uuid.UUID) (*dto.ContentResponse, error)
	UnpublishContent(ctx context.Context, actorID, id uuid.UUID) (*dto.ContentResponse, error)
	ArchiveContent(ctx context.Context, actorID, id uuid.UUID) (*dto.ContentResponse, error)
	GetVersions(ctx context.Context, id uuid.UUID) ([]dto.ContentVersionResponse, error)
	RestoreVersion(ctx context.Context, actorID, id uuid.UUID, version int) (*dto.ContentResponse, error)
	GetPublishedContent(ctx context.Context, filter entity.ContentFilter, page pagination.Params) ([]dto.ContentResponse, int64, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*dto.ContentResponse, error)
	GetServices(ctx context.Context) ([]dto.ContentResponse, error)
	GetServiceBySlug(ctx context.Context, slug string) (*dto.ContentResponse, error)
	GetCategories(ctx context.Context) ([]dto.LabelCountResponse, error)
	GetTags(ctx context.Context) ([]dto.LabelCountResponse, error)
	GetAnalytics(ctx context.Context) (*dto.ContentAnalyticsResponse, error)
}

type contentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	contentRepo  repository.ContentRepository
	auditService service.AuditService
	now          func() time.Time
}

func NewContentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	contentRepo repository.ContentRepository,
	auditService service.AuditService,
) ContentUsecase {
	return &contentUsecase{
		db:           db,
		log:          log,
		contentRepo:  contentRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

func (u *contentUsecase) CreateContent(ctx context.Context, actorID uuid.UUID, req *dto.CreateContentRequest) (*dto.ContentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	base := req.Slug
	if base == "" {
		base = req.Title
	}
	uniqueSlug, err := u.uniqueSlug(tx, base, uuid.Nil)
	if err != nil {
		return nil, err
	}

	content := &entity.Content{
		Title:          req.Title,
		Slug:           uniqueSlug,
		Type:           entity.ContentType(req.Type),
		Status:         entity.ContentStatus(req.Status),
		Excerpt:        req.Excerpt,
		Body:           req.Body,
		FeaturedImage:  req.FeaturedImage,
		Category:       strings.TrimSpace(req.Category),
		Tags:           normalizeTags(req.Tags),
		SEO:            seoFromRequest(req.SEO, entity.SEO{}),
		ServiceDetails: serviceDetailsFromRequest(req.ServiceDetails, nil),
		SortOrder:      req.SortOrder,
		AuthorID:       &actorID,
		LastEditedByID: &actorID,
	}
	content.Prepare(u.now())

	if err := u.contentRepo.Create(tx, content); err != nil {
		if isDuplicateKeyError(err, "slug") {
			return nil, errSlugTaken(content.Slug)
		}
		u.log.Warnf("Failed to create content: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionContentCreate, "content", content.ID.String(), content); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ContentToResponse(content), nil
}

func (u *contentUsecase) GetContent(ctx context.Context, id uuid.UUID) (*dto.ContentResponse, error) {
	content, err := u.find(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}

	return converter.ContentToResponse(content), nil
}

func (u *contentUsecase) GetAllContent(ctx context.Context, filter entity.ContentFilter, page pagination.Params) ([]dto.ContentResponse, int64, error) {
	contents, total, err := u.contentRepo.FindAll(u.db.WithContext(ctx), filter, page)
	if err != nil {
		u.log.Warnf("Failed to find all content: %+v", err)
		return nil, 0, err
	}

	return converter.ContentsToResponses(contents), total, nil
}

// UpdateContent snapshots the previous revision whenever the title or body
// changes.
func (u *contentUsecase) UpdateContent(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateContentRequest) (*dto.ContentResponse, error) {
	return u.mutate(ctx, actorID, id, entity.AuditActionContentUpdate, func(tx *gorm.DB, c *entity.Content, now time.Time) error {
		titleChanged := req.Title != nil && *req.Title != c.Title
		bodyChanged := req.Body != nil && *req.Body != c.Body
		if titleChanged || bodyChanged {
			c.SnapshotVersion(&actorID, now)
		}

		if req.Slug != nil && slug.Make(*req.Slug) != c.Slug {
			s, err := u.uniqueSlug(tx, *req.Slug, c.ID)
			if err != nil {
				return err
			}
			c.Slug = s
		}

		c.Title = derefOr(req.Title, c.Title)
		c.Body = derefOr(req.Body, c.Body)
		c.Excerpt = derefOr(req.Excerpt, c.Excerpt)
		c.FeaturedImage = derefOr(req.FeaturedImage, c.FeaturedImage)
		c.SortOrder = derefOr(req.SortOrder, c.SortOrder)
		if req.Category != nil {
			c.Category = strings.TrimSpace(*req.Category)
		}
		if req.Type != nil {
			c.Type = entity.ContentType(*req.Type)
		}
		if req.Tags != nil {
			c.Tags = normalizeTags(req.Tags)
		}
		c.SEO = seoFromRequest(req.SEO, c.SEO)
		c.ServiceDetails = serviceDetailsFromRequest(req.ServiceDetails, c.ServiceDetails)

		if req.Status != nil {
			applyContentStatus(c, entity.ContentStatus(*req.Status), now)
		}
		return nil
	})
}

func (u *contentUsecase) DeleteContent(ctx context.Context, actorID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	content, err := u.find(tx, id)
	if err != nil {
		return err
	}

	if err := u.contentRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete content: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionContentDelete, "content", id.String(), content); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *contentUsecase) PublishContent(ctx context.Context, actorID, id uuid.UUID) (*dto.ContentResponse, error) {
	return u.mutate(ctx, actorID, id, entity.AuditActionContentPublish, func(_ *gorm.DB, c *entity.Content, now time.Time) error {
		c.Publish(now)
		return nil
	})
}

func (u *contentUsecase) UnpublishContent(ctx context.Context, actorID, id uuid.UUID) (*dto.ContentResponse, error) {
	return u.mutate(ctx, actorID, id, entity.AuditActionContentUnpublish, func(_ *gorm.DB, c *entity.Content, _ time.Time) error {
		c.Unpublish()
		return nil
	})
}

func (u *contentUsecase) ArchiveContent(ctx context.Context, actorID, id uuid.UUID) (*dto.ContentResponse, error) {
	return u.mutate(ctx, actorID, id, entity.AuditActionContentArchive, func(_ *gorm.DB, c *entity.Content, _ time.Time) error {
		c.Archive()
		return nil
	})
}

func (u *contentUsecase) GetVersions(ctx context.Context, id uuid.UUID) ([]dto.ContentVersionResponse, error) {
	content, err := u.find(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}

	versions := converter.ContentVersionsToResponses(content.PreviousVersions)
	// newest first
	sort.SliceStable(versions, func(i, j int) bool { return versions[i].Version > versions[j].Version })
	return versions, nil
}

// RestoreVersion copies an old revision back as a new version; the current
// text is snapshotted first so the restore itself can be undone.
func (u *contentUsecase) RestoreVersion(ctx context.Context, actorID, id uuid.UUID, version int) (*dto.ContentResponse, error) {
	return u.mutate(ctx, actorID, id, entity.AuditActionContentRestore, func(_ *gorm.DB, c *entity.Content, now time.Time) error {
		v, ok := c.FindVersion(version)
		if !ok {
			return ErrVersionNotFound
		}
		c.SnapshotVersion(&actorID, now)
		c.Title = v.Title
		c.Excerpt = v.Excerpt
		c.Body = v.Body
		return nil
	})
}

func (u *contentUsecase) GetPublishedContent(ctx context.Context, filter entity.ContentFilter, page pagination.Params) ([]dto.ContentResponse, int64, error) {
	filter.Published = true
	filter.Status = ""
	filter.AuthorID = nil
	return u.GetAllContent(ctx, filter, page)
}

// GetPublishedBySlug counts a view for every successful lookup.
func (u *contentUsecase) GetPublishedBySlug(ctx context.Context, slug string) (*dto.ContentResponse, error) {
	db := u.db.WithContext(ctx)
	content, err := u.contentRepo.FindBySlug(db, slug, true)
	if err != nil {
		u.log.Warnf("Failed to find content by slug: %+v", err)
		return nil, err
	}
	if content == nil {
		return nil, ErrContentNotFound
	}

	if err := u.contentRepo.IncrementViews(db, content.ID); err != nil {
		u.log.Warnf("Failed to increment content views: %+v", err)
		return nil, err
	}
	content.ViewCount++

	return converter.ContentToResponse(content), nil
}

func (u *contentUsecase) GetServices(ctx context.Context) ([]dto.ContentResponse, error) {
	services, err := u.contentRepo.FindServices(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find services: %+v", err)
		return nil, err
	}

	return converter.ContentsToResponses(services), nil
}

func (u *contentUsecase) GetServiceBySlug(ctx context.Context, slug string) (*dto.ContentResponse, error) {
	content, err := u.contentRepo.FindBySlug(u.db.WithContext(ctx), slug, true)
	if err != nil {
		u.log.Warnf("Failed to find service by slug: %+v", err)
		return nil, err
	}
	if content == nil || content.Type != entity.ContentTypeService {
		return nil, ErrContentNotFound
	}

	return converter.ContentToResponse(content), nil
}

func (u *contentUsecase) GetCategories(ctx context.Context) ([]dto.LabelCountResponse, error) {
	rows, err := u.contentRepo.Categories(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find categories: %+v", err)
		return nil, err
	}

	return converter.LabelCountsToResponses(rows), nil
}

// GetTags counts tag usage across published content, most used first.
func (u *contentUsecase) GetTags(ctx context.Context) ([]dto.LabelCountResponse, error) {
	lists, err := u.contentRepo.PublishedTags(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find tags: %+v", err)
		return nil, err
	}

	counts := lo.CountValues(lo.Flatten(lo.Map(lists, func(l entity.StringList, _ int) []string { return l })))
	tags := lo.MapToSlice(counts, func(tag string, n int) dto.LabelCountResponse {
		return dto.LabelCountResponse{Name: tag, Count: int64(n)}
	})
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Name < tags[j].Name
	})
	return tags, nil
}

func (u *contentUsecase) GetAnalytics(ctx context.Context) (*dto.ContentAnalyticsResponse, error) {
	db := u.db.WithContext(ctx)
	stats, err := u.contentRepo.Stats(db)
	if err != nil {
		u.log.Warnf("Failed to compute content stats: %+v", err)
		return nil, err
	}

	categories, err := u.contentRepo.Categories(db)
	if err != nil {
		u.log.Warnf("Failed to find categories: %+v", err)
		return nil, err
	}

	return converter.ContentStatsToResponse(stats, categories), nil
}

func (u *contentUsecase) mutate(ctx context.Context, actorID, id uuid.UUID, action string, fn func(tx *gorm.DB, c *entity.Content, now time.Time) error) (*dto.ContentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	content, err := u.find(tx, id)
	if err != nil {
		return nil, err
	}
	old := *content
	now := u.now()

	if err := fn(tx, content, now); err != nil {
		return nil, err
	}
	content.LastEditedByID = &actorID
	if content.LastEditedBy != nil && content.LastEditedBy.ID != actorID {
		content.LastEditedBy = nil
	}
	content.Prepare(now)

	if err := u.contentRepo.Update(tx, content); err != nil {
		if isDuplicateKeyError(err, "slug") {
			return nil, errSlugTaken(content.Slug)
		}
		u.log.Warnf("Failed to update content: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, action, "content", id.String(), contentAuditView(&old), contentAuditView(content)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ContentToResponse(content), nil
}

func (u *contentUsecase) find(db *gorm.DB, id uuid.UUID) (*entity.Content, error) {
	content, err := u.contentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find content by ID: %+v", err)
		return nil, err
	}
	if content == nil {
		return nil, ErrContentNotFound
	}
	return content, nil
}

// uniqueSlug appends -2, -3, ... until no other row uses the slug.
func (u *contentUsecase) uniqueSlug(db *gorm.DB, source string, excludeID uuid.UUID) (string, error) {
	base := slug.Make(source)
	if base == "" {
		base = "content"
	}

	candidate := base
	for n := 2; ; n++ {
		exists, err := u.contentRepo.SlugExists(db, candidate, excludeID)
		if err != nil {
			u.log.Warnf("Failed to check slug: %+v", err)
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = slug.WithSuffix(base, n)
	}
}

func applyContentStatus(c *entity.Content, status entity.ContentStatus, now time.Time) {
	switch status {
	case entity.ContentStatusPublished:
		c.Publish(now)
	case entity.ContentStatusArchived:
		c.Archive()
	default:
		c.Unpublish()
	}
}

// contentAuditView keeps audit rows small: the body and version history are
// left out.
func contentAuditView(c *entity.Content) map[string]interface{} {
	return map[string]interface{}{
		"title":   c.Title,
		"slug":    c.Slug,
		"status":  c.Status,
		"type":    c.Type,
		"version": c.Version,
	}
}

func normalizeTags(tags []string) entity.StringList {
	cleaned := lo.FilterMap(tags, func(t string, _ int) (string, bool) {
		t = strings.ToLower(strings.TrimSpace(t))
		return t, t != ""
	})
	return entity.StringList(lo.Uniq(cleaned))
}

func seoFromRequest(req *dto.SEORequest, current entity.SEO) entity.SEO {
	if req == nil {
		return current
	}
	return entity.SEO{
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
		CanonicalURL:    req.CanonicalURL,
		OGImage:         req.OGImage,
		NoIndex:         req.NoIndex,
	}
}

func serviceDetailsFromRequest(req *dto.ServiceDetailsRequest, current *entity.ServiceDetails) *entity.ServiceDetails {
	if req == nil {
		return current
	}
	details := entity.ServiceDetails(*req)
	return &details
}
