package service

import (
	"context"
	"testing"

	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/repository"
	"teleradiology-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_WritesInsideTransaction(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "admin@example.com", entity.RoleAdmin)
	svc := NewAuditService(testutil.NewLogger(), repository.NewAuditLogRepository())
	ctx := context.Background()

	tx := db.Begin()
	require.NoError(t, svc.LogUpdate(ctx, tx, &user.ID, entity.AuditActionLeadStatus, "lead", "abc", "new", "contacted"))
	tx.Rollback()

	var count int64
	require.NoError(t, db.Model(&entity.AuditLog{}).Count(&count).Error)
	assert.Zero(t, count)

	tx = db.Begin()
	require.NoError(t, svc.LogDelete(ctx, tx, &user.ID, entity.AuditActionContactDelete, "contact", "xyz", map[string]string{"name": "Ann"}))
	require.NoError(t, tx.Commit().Error)

	var logs []entity.AuditLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "contact", logs[0].EntityType)
	assert.Equal(t, "xyz", logs[0].EntityID)
	assert.Nil(t, logs[0].Metadata["new_value"])
	assert.Equal(t, map[string]interface{}{"name": "Ann"}, logs[0].Metadata["old_value"])
}
