package repository

import (
	"testing"
	"time"

	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/testutil"
	"teleradiology-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var firstPage = pagination.Params{Page: 1, Limit: 10, Sort: "created_at", Desc: true}

func TestUserRepository_FindAndFilter(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository()

	testutil.CreateUser(t, db, "Editor@Example.com", entity.RoleCMSEditor)
	testutil.CreateUser(t, db, "rep@example.com", entity.RoleSalesRep)

	found, err := repo.FindByEmail(db, "editor@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entity.RoleCMSEditor, found.Role)

	missing, err := repo.FindByEmail(db, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	exists, err := repo.ExistsByEmail(db, "rep@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	users, total, err := repo.FindAll(db, entity.UserFilter{Search: "EDIT"}, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "editor@example.com", users[0].Email)

	users, total, err = repo.FindAll(db, entity.UserFilter{Role: entity.RoleSalesRep}, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, entity.RoleSalesRep, users[0].Role)
}

func TestUserRepository_Stats(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository()

	testutil.CreateUser(t, db, "a@example.com", entity.RoleAdmin)
	inactive := testutil.CreateUser(t, db, "b@example.com", entity.RoleUser)
	inactive.IsActive = false
	require.NoError(t, repo.Update(db, inactive))

	stats, err := repo.Stats(db)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Total)
	assert.EqualValues(t, 1, stats.Active)
	assert.EqualValues(t, 1, stats.Inactive)
	assert.EqualValues(t, 1, stats.ByRole["admin"])
}

func TestContentRepository_SlugsTagsAndViews(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewContentRepository()

	published := &entity.Content{
		Title:    "MRI Reads",
		Type:     entity.ContentTypeBlog,
		Status:   entity.ContentStatusPublished,
		Category: "Imaging",
		Tags:     entity.StringList{"MRI", "neuro"},
		Body:     "Body",
	}
	draft := &entity.Content{Title: "Draft Post", Type: entity.ContentTypeBlog, Category: "Imaging"}
	require.NoError(t, repo.Create(db, published))
	require.NoError(t, repo.Create(db, draft))
	assert.Equal(t, "mri-reads", published.Slug)

	exists, err := repo.SlugExists(db, "mri-reads", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.SlugExists(db, "mri-reads", published.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	items, total, err := repo.FindAll(db, entity.ContentFilter{Published: true, Tag: "mri"}, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, published.ID, items[0].ID)

	got, err := repo.FindBySlug(db, "draft-post", true)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.IncrementViews(db, published.ID))
	require.NoError(t, repo.IncrementViews(db, published.ID))
	got, err = repo.FindByID(db, published.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.ViewCount)
	assert.Equal(t, entity.StringList{"MRI", "neuro"}, got.Tags)

	categories, err := repo.Categories(db)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, entity.LabelCount{Label: "Imaging", Total: 1}, categories[0])

	stats, err := repo.Stats(db)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Total)
	assert.EqualValues(t, 1, stats.Published)
	assert.EqualValues(t, 1, stats.Draft)
	assert.EqualValues(t, 2, stats.TotalViews)
	require.Len(t, stats.TopViewed, 1)
}

func TestContentRepository_FindServicesOrdered(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewContentRepository()

	for i, title := range []string{"Neuro", "Body", "Cardiac"} {
		require.NoError(t, repo.Create(db, &entity.Content{
			Title:     title,
			Type:      entity.ContentTypeService,
			Status:    entity.ContentStatusPublished,
			SortOrder: 3 - i,
		}))
	}
	require.NoError(t, repo.Create(db, &entity.Content{Title: "Hidden", Type: entity.ContentTypeService}))

	services, err := repo.FindServices(db)
	require.NoError(t, err)
	require.Len(t, services, 3)
	assert.Equal(t, "Cardiac", services[0].Title)
	assert.Equal(t, "Neuro", services[2].Title)
}

func TestContactRepository_HidesSpamByDefault(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewContactRepository()

	require.NoError(t, repo.Create(db, &entity.Contact{Name: "Ann", Email: "ann@hospital.org", Subject: "Coverage", Message: "Need night reads"}))
	require.NoError(t, repo.Create(db, &entity.Contact{Name: "Bot", Email: "bot@spam.io", Subject: "Casino winner", Message: "cheap viagra"}))

	items, total, err := repo.FindAll(db, entity.ContactFilter{}, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Ann", items[0].Name)

	_, total, err = repo.FindAll(db, entity.ContactFilter{Status: entity.ContactStatusSpam}, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	stats, err := repo.Stats(db)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Total)
	assert.EqualValues(t, 1, stats.New)
	assert.EqualValues(t, 1, stats.Spam)
	assert.EqualValues(t, 1, stats.ByStatus["spam"])
}

func TestApplicationRepository_Filters(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewApplicationRepository()

	for i, exp := range []int{2, 8, 15} {
		require.NoError(t, repo.Create(db, &entity.RadiologistApplication{
			FirstName:      "Doc",
			LastName:       string(rune('A' + i)),
			Email:          "doc" + string(rune('a'+i)) + "@example.com",
			Phone:          "555",
			LicenseNumber:  "LIC",
			Specialization: entity.SpecNeuroradiology,
			Experience:     exp,
			Availability:   entity.AvailabilityNights,
		}))
	}

	minExp := 5
	_, total, err := repo.FindAll(db, entity.ApplicationFilter{MinExperience: &minExp}, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	found, err := repo.FindByEmail(db, "docb@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 8, found.Experience)

	stats, err := repo.Stats(db)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Pending)
	assert.EqualValues(t, 3, stats.BySpecialization["neuroradiology"])
}

func TestSalesLeadRepository_Stats(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewSalesLeadRepository()
	closer := uuid.New()

	mk := func(company string, value int64) *entity.SalesLead {
		l := &entity.SalesLead{
			CompanyName:    company,
			ContactName:    "Pat",
			Email:          company + "@example.com",
			Industry:       entity.IndustryHospital,
			Source:         entity.SourceReferral,
			EstimatedValue: decimal.NewFromInt(value),
		}
		require.NoError(t, repo.Create(db, l))
		return l
	}
	mk("open1", 1000)
	mk("open2", 2500)
	won := mk("won", 4000)
	lost := mk("lost", 9000)

	won.Close(true, closer, "signed", time.Now())
	require.NoError(t, repo.Update(db, won))
	lost.Close(false, closer, "budget", time.Now())
	require.NoError(t, repo.Update(db, lost))

	stats, err := repo.Stats(db)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.Total)
	assert.True(t, decimal.NewFromInt(3500).Equal(stats.PipelineValue), stats.PipelineValue.String())
	assert.True(t, decimal.NewFromInt(4000).Equal(stats.WonValue), stats.WonValue.String())
	assert.EqualValues(t, 1, stats.ByStatus["closed_won"])
	assert.EqualValues(t, 1, stats.ByStatus["closed_lost"])
	assert.Equal(t, 50.0, stats.ConversionRate)
	assert.Equal(t, 30.0, stats.AverageScore)

	minScore := 31
	_, total, err := repo.FindAll(db, entity.LeadFilter{MinScore: &minScore}, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)

	reloaded, err := repo.FindByID(db, won.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Notes, 1)
	assert.Equal(t, entity.LeadNoteClose, reloaded.Notes[0].Type)
}

func TestAuditLogRepository_FilterByAction(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAuditLogRepository()
	user := testutil.CreateUser(t, db, "admin@example.com", entity.RoleAdmin)

	require.NoError(t, repo.Create(db, &entity.AuditLog{UserID: &user.ID, Action: entity.AuditActionContentCreate, EntityType: "content"}))
	require.NoError(t, repo.Create(db, &entity.AuditLog{UserID: &user.ID, Action: entity.AuditActionLeadClose, EntityType: "lead", Metadata: entity.JSON{"won": true}}))

	logs, total, err := repo.FindAll(db, entity.AuditLogFilter{Action: entity.AuditActionLeadClose}, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.NotNil(t, logs[0].User)
	assert.Equal(t, "admin@example.com", logs[0].User.Email)
	assert.Equal(t, true, logs[0].Metadata["won"])

	got, err := repo.FindByID(db, logs[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.AuditActionLeadClose, got.Action)
}
