package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_LocksAfterFiveFailures(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	u := &User{}

	for i := 0; i < MaxLoginAttempts-1; i++ {
		u.IncLoginAttempts(now)
		assert.False(t, u.IsLocked(now))
	}
	u.IncLoginAttempts(now)

	require.NotNil(t, u.LockUntil)
	assert.True(t, u.IsLocked(now))
	assert.Equal(t, now.Add(LockDuration), *u.LockUntil)
	assert.True(t, u.IsLocked(now.Add(LockDuration-time.Minute)))
	assert.False(t, u.IsLocked(now.Add(LockDuration)))
}

func TestUser_ExpiredLockRestartsCount(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	expired := now.Add(-time.Minute)
	u := &User{LoginAttempts: 5, LockUntil: &expired}

	u.IncLoginAttempts(now)

	assert.Equal(t, 1, u.LoginAttempts)
	assert.Nil(t, u.LockUntil)
}

func TestUser_ResetLoginAttempts(t *testing.T) {
	until := time.Now().Add(time.Hour)
	u := &User{LoginAttempts: 7, LockUntil: &until}
	u.ResetLoginAttempts()
	assert.Zero(t, u.LoginAttempts)
	assert.Nil(t, u.LockUntil)
}

func TestUser_BeforeSaveNormalizes(t *testing.T) {
	u := &User{Email: "  Dr.Who@Example.COM "}
	require.NoError(t, u.BeforeSave(nil))
	assert.Equal(t, "dr.who@example.com", u.Email)
	assert.Equal(t, RoleUser, u.Role)
}

func TestRole_Can(t *testing.T) {
	tests := []struct {
		role Role
		perm string
		want bool
	}{
		{RoleSuperAdmin, PermUsersDelete, true},
		{RoleAdmin, PermUsersDelete, false},
		{RoleAdmin, PermUsersUpdate, true},
		{RoleAdmin, PermAuditRead, true},
		{RoleCMSEditor, PermContentPublish, true},
		{RoleCMSEditor, PermLeadsRead, false},
		{RoleSalesManager, PermLeadsDelete, true},
		{RoleSalesManager, PermContactsRead, true},
		{RoleSalesManager, PermContactsUpdate, false},
		{RoleSalesRep, PermLeadsUpdate, true},
		{RoleSalesRep, PermLeadsDelete, false},
		{RoleHRManager, PermApplicationsReview, true},
		{RoleHRManager, PermUploadsRead, true},
		{RoleHRManager, PermUploadsWrite, false},
		{RoleSupport, PermContactsDelete, true},
		{RoleUser, PermDashboardRead, false},
		{Role("ghost"), PermDashboardRead, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.Can(tt.perm), "%s %s", tt.role, tt.perm)
	}
}

func TestRole_IsStaff(t *testing.T) {
	assert.True(t, RoleSupport.IsStaff())
	assert.False(t, RoleUser.IsStaff())
	assert.False(t, Role("nobody").IsStaff())
}
