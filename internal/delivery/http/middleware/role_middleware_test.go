package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"teleradiology-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func withUser(role entity.Role) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), UserKey, &entity.User{Role: role, IsActive: true})
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	h := RequireRole(entity.RoleSalesManager, entity.RoleSalesRep)(okHandler)

	assert.Equal(t, http.StatusOK, serve(h, withUser(entity.RoleSalesRep)).Code)

	rec := serve(h, withUser(entity.RoleSupport))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Access denied. Insufficient role.", errorMessage(t, rec))

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	assert.Equal(t, http.StatusOK, serve(RequireAdmin(okHandler), withUser(entity.RoleSuperAdmin)).Code)
	assert.Equal(t, http.StatusOK, serve(RequireAdmin(okHandler), withUser(entity.RoleAdmin)).Code)
	assert.Equal(t, http.StatusForbidden, serve(RequireAdmin(okHandler), withUser(entity.RoleCMSEditor)).Code)
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		role       entity.Role
		permission string
		status     int
	}{
		{entity.RoleCMSEditor, entity.PermContentPublish, http.StatusOK},
		{entity.RoleCMSEditor, entity.PermLeadsRead, http.StatusForbidden},
		{entity.RoleSalesRep, entity.PermLeadsUpdate, http.StatusOK},
		{entity.RoleSalesRep, entity.PermLeadsDelete, http.StatusForbidden},
		{entity.RoleAdmin, entity.PermUsersDelete, http.StatusForbidden},
		{entity.RoleSuperAdmin, entity.PermUsersDelete, http.StatusOK},
		{entity.RoleUser, entity.PermDashboardRead, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+" "+tt.permission, func(t *testing.T) {
			rec := serve(Permit(tt.permission, okHandler), withUser(tt.role))
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusForbidden {
				assert.Equal(t, "Access denied. Missing permission "+tt.permission+".", errorMessage(t, rec))
			}
		})
	}
}
