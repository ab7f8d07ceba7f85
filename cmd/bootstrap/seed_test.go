package bootstrap

import (
	"context"
	"testing"

	"teleradiology-api/config"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeeder_CreatesAdminAndServicesOnce(t *testing.T) {
	db := testutil.NewDB(t)
	seeder := NewSeeder(db, testutil.NewLogger())
	cfg := config.SeedConfig{AdminEmail: "Root@Example.com", AdminPassword: "s3cret-pass", AdminName: "Root"}

	require.NoError(t, seeder.Run(context.Background(), cfg))
	require.NoError(t, seeder.Run(context.Background(), cfg))

	var admins []entity.User
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "root@example.com", admins[0].Email)
	assert.Equal(t, entity.RoleSuperAdmin, admins[0].Role)
	assert.True(t, admins[0].IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins[0].Password), []byte("s3cret-pass")))

	var services []entity.Content
	require.NoError(t, db.Order("sort_order").Find(&services).Error)
	require.Len(t, services, len(defaultServices))
	assert.Equal(t, "emergency-teleradiology", services[0].Slug)
	assert.Equal(t, entity.ContentStatusPublished, services[0].Status)
	assert.NotNil(t, services[0].PublishedAt)
	assert.Equal(t, &admins[0].ID, services[0].AuthorID)
}

func TestSeeder_RequiresPasswordForNewAdmin(t *testing.T) {
	db := testutil.NewDB(t)
	err := NewSeeder(db, testutil.NewLogger()).Run(context.Background(), config.SeedConfig{AdminEmail: "root@example.com"})
	assert.ErrorIs(t, err, ErrSeedPasswordRequired)
}

func TestSeeder_SkipsServicesWhenContentExists(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Create(&entity.Content{Title: "About us", Type: entity.ContentTypePage}).Error)

	cfg := config.SeedConfig{AdminEmail: "root@example.com", AdminPassword: "s3cret-pass"}
	require.NoError(t, NewSeeder(db, testutil.NewLogger()).Run(context.Background(), cfg))

	var count int64
	require.NoError(t, db.Model(&entity.Content{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
